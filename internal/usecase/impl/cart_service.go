package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	txManager   repository.TransactionManager
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager:   params.TxManager,
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	items, err := srv.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return entity.NewCart(userID, items), nil
}

// AddItem adds quantity to the product's line. The resulting line may not exceed current stock.
func (srv *cartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be greater than zero")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		product, err := srv.sellableProduct(ctx, repoFactory.NewProductRepository(), productID)
		if err != nil {
			return err
		}

		newQuantity, err := repoFactory.NewCartRepository().AddQuantity(ctx, userID, productID, quantity)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to add cart item")
		}
		if newQuantity > product.Stock {
			return insufficientStock(product)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Debug("Add to cart rejected",
			slog.String("userID", userID.String()),
			slog.String("productID", productID.String()),
			slog.Any("error", err))

		return nil, err
	}

	return srv.GetCart(ctx, userID)
}

func (srv *cartService) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity cannot be negative")
	}
	if quantity == 0 {
		return srv.RemoveItem(ctx, userID, productID)
	}

	product, err := srv.sellableProduct(ctx, srv.productRepo, productID)
	if err != nil {
		return nil, err
	}
	if quantity > product.Stock {
		return nil, insufficientStock(product)
	}

	if err := srv.cartRepo.SetQuantity(ctx, userID, productID, quantity); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to update cart item")
	}

	return srv.GetCart(ctx, userID)
}

func (srv *cartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*entity.Cart, error) {
	if err := srv.cartRepo.Remove(ctx, userID, productID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return srv.GetCart(ctx, userID)
}

func (srv *cartService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := srv.cartRepo.Clear(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

func (srv *cartService) sellableProduct(ctx context.Context, productRepo repository.ProductRepository, productID uuid.UUID) (*entity.Product, error) {
	product, err := productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if !product.IsActive {
		return nil, domainerrors.ErrProductUnavailable.WithDetails(product.Name + " is no longer available")
	}

	return product, nil
}

func insufficientStock(product *entity.Product) error {
	return domainerrors.ErrInsufficientStock.WithDetails(
		fmt.Sprintf("only %d of %s left in stock", product.Stock, product.Name))
}

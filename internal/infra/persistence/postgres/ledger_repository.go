package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository is the constructor for ledgerRepository.
func NewLedgerRepository(db *gorm.DB) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

// Append inserts entries. A repeated event key fails the whole call with ErrLedgerEntryExists.
func (repo *ledgerRepository) Append(ctx context.Context, entries ...*entity.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	entryModels := make([]*model.LedgerEntryModel, 0, len(entries))
	for _, entry := range entries {
		if entry.ID == uuid.Nil {
			entry.ID = uuid.New()
		}
		entryModels = append(entryModels, &model.LedgerEntryModel{
			ID:         entry.ID,
			EventKey:   entry.EventKey,
			Kind:       string(entry.Kind),
			Amount:     entry.Amount,
			PaymentID:  entry.PaymentID,
			OrderID:    entry.OrderID,
			UserID:     entry.UserID,
			AdID:       entry.AdID,
			OccurredAt: entry.OccurredAt.UTC(),
		})
	}

	if err := repo.db.WithContext(ctx).Create(&entryModels).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrLedgerEntryExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append ledger entries")
	}

	return nil
}

func (repo *ledgerRepository) SumByKind(ctx context.Context, kind entity.LedgerKind, from, to time.Time) (decimal.Decimal, error) {
	var sum struct {
		Total decimal.Decimal
	}
	err := repo.db.WithContext(ctx).
		Model(&model.LedgerEntryModel{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("kind = ? AND occurred_at >= ? AND occurred_at < ?", string(kind), from.UTC(), to.UTC()).
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum ledger entries")
	}

	return sum.Total, nil
}

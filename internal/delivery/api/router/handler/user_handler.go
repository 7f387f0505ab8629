package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves super admin account management.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

type ChangeRoleRequest struct {
	Role entity.Role `json:"role" validate:"required,oneof=client admin"`
}

// ListUsers returns a page of accounts.
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, pageSize, err := pageParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.userUC.ListUsers(c.Request().Context(), page, pageSize)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	users := make([]*UserResponse, 0, len(result.Users))
	for _, u := range result.Users {
		users = append(users, newUserResponse(u))
	}

	return response.Paginated(c, users, result.Page, result.PageSize, result.Total)
}

// ChangeRole promotes a client to admin or demotes an admin to client.
func (h *UserHandler) ChangeRole(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	targetID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ChangeRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.ChangeRole(c.Request().Context(), actorID, targetID, req.Role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("User role changed",
		slog.String("actorID", actorID.String()),
		slog.String("targetID", targetID.String()),
		slog.String("role", req.Role.String()))

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

package middleware

import (
	"crypto/subtle"
	"strings"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Config       *config.Config
}

// AuthMiddleware authenticates access tokens and guards routes by role.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	cronSecret string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	m := &AuthMiddleware{tokenSvc: params.TokenService}
	if params.Config.Cron != nil {
		m.cronSecret = params.Config.Cron.Secret
	}

	return m
}

// Authenticate requires a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing or malformed")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.Type != service.TokenTypeAccess || !claims.Role.IsValid() {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		deliverycontext.SetCaller(c, claims.UserID, claims.Role)

		return next(c)
	}
}

// OptionalAuthenticate records the caller when a valid access token is present and
// lets anonymous requests through. A malformed token is treated as anonymous.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if tokenString, ok := bearerToken(c); ok {
			claims, err := m.tokenSvc.ValidateToken(tokenString)
			if err == nil && claims.Type == service.TokenTypeAccess && claims.Role.IsValid() {
				deliverycontext.SetCaller(c, claims.UserID, claims.Role)
			}
		}

		return next(c)
	}
}

// RequireRole allows callers whose role grants at least required.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			_, role, ok := deliverycontext.GetCaller(c)
			if !ok {
				return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
			}
			if !role.Satisfies(required) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: requires "+required.String()+" role")
			}

			return next(c)
		}
	}
}

// RequireCronSecret guards scheduler endpoints. Without a configured secret every
// request is refused.
func (m *AuthMiddleware) RequireCronSecret(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok || m.cronSecret == "" || subtle.ConstantTimeCompare([]byte(token), []byte(m.cronSecret)) != 1 {
			return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized")
		}

		return next(c)
	}
}

// GetUserID returns the authenticated user id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, _, ok := deliverycontext.GetCaller(c)

	return userID, ok
}

// GetOptionalUserID returns the caller id on routes using OptionalAuthenticate.
func GetOptionalUserID(c echo.Context) *uuid.UUID {
	userID, ok := GetUserID(c)
	if !ok {
		return nil
	}

	return &userID
}

// GetActor returns the authenticated caller as a use case actor.
func GetActor(c echo.Context) (usecase.Actor, bool) {
	userID, role, ok := deliverycontext.GetCaller(c)

	return usecase.Actor{UserID: userID, Role: role}, ok
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))

	return token, token != ""
}

package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StatsHandlerParams holds dependencies for StatsHandler, injected by Fx.
type StatsHandlerParams struct {
	fx.In

	StatsUC usecase.StatsUsecase
	Logger  *slog.Logger
}

// StatsHandler serves platform statistics and the daily cron trigger.
type StatsHandler struct {
	statsUC usecase.StatsUsecase
	logger  *slog.Logger
	now     func() time.Time
}

// NewStatsHandler is the constructor for StatsHandler.
func NewStatsHandler(params StatsHandlerParams) *StatsHandler {
	return &StatsHandler{
		statsUC: params.StatsUC,
		logger:  params.Logger,
		now:     time.Now,
	}
}

// RunDaily recomputes the current UTC day, or ?date=YYYY-MM-DD for a backfill.
func (h *StatsHandler) RunDaily(c echo.Context) error {
	day := h.now().UTC()
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("date must be YYYY-MM-DD"))
		}
		day = parsed
	}

	stats, err := h.statsUC.RecomputeDay(c.Request().Context(), day)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newStatsResponse(stats))
}

// Overview returns today's figures computed live.
func (h *StatsHandler) Overview(c echo.Context) error {
	stats, err := h.statsUC.Overview(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newStatsResponse(stats))
}

// List returns stored daily rows for ?from=YYYY-MM-DD&to=YYYY-MM-DD. Both default to today.
func (h *StatsHandler) List(c echo.Context) error {
	today := h.now().UTC()
	from, err := dateParam(c, "from", today)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	to, err := dateParam(c, "to", today)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	rows, err := h.statsUC.GetStats(c.Request().Context(), from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*StatsResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, newStatsResponse(row))
	}

	return response.Success(c, http.StatusOK, out)
}

func dateParam(c echo.Context, name string, fallback time.Time) (time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	day, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails(name + " must be YYYY-MM-DD")
	}

	return day, nil
}

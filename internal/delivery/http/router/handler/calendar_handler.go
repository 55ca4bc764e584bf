package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pulse/internal/delivery/http/response"
	"pulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const dateParamLayout = "2006-01-02"

// CalendarHandler holds dependencies for calendar handlers.
type CalendarHandler struct {
	uc     usecase.CalendarUsecase
	logger *slog.Logger
}

// NewCalendarHandler is the constructor for CalendarHandler, injected by Fx.
func NewCalendarHandler(uc usecase.CalendarUsecase, logger *slog.Logger) *CalendarHandler {
	return &CalendarHandler{
		uc:     uc,
		logger: logger,
	}
}

// Sync pulls upcoming events from every connected calendar service.
func (h *CalendarHandler) Sync(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.uc.Sync(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"synced": output.Synced}, "Calendar synced")
}

// ListEvents returns the cached events of one calendar day.
func (h *CalendarHandler) ListEvents(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	day, err := dateParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid date, expected YYYY-MM-DD")
	}

	events, err := h.uc.ListEvents(c.Request().Context(), userID, day)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"events": events}, "Events retrieved")
}

// FreeBlocks returns the free gaps of one calendar day inside business hours.
func (h *CalendarHandler) FreeBlocks(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	day, err := dateParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid date, expected YYYY-MM-DD")
	}

	blocks, err := h.uc.FreeBlocks(c.Request().Context(), userID, day)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"free_blocks": blocks}, "Free blocks computed")
}

// dateParam reads the ?date= query parameter, defaulting to today.
func dateParam(c echo.Context) (time.Time, error) {
	raw := c.QueryParam("date")
	if raw == "" {
		now := time.Now()

		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}

	return time.ParseInLocation(dateParamLayout, raw, time.Local)
}

package handler

import (
	"log/slog"
	"net/http"

	"pulse/internal/delivery/http/response"
	"pulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BriefHandler holds dependencies for daily brief handlers.
type BriefHandler struct {
	uc     usecase.BriefUsecase
	logger *slog.Logger
}

// NewBriefHandler is the constructor for BriefHandler, injected by Fx.
func NewBriefHandler(uc usecase.BriefUsecase, logger *slog.Logger) *BriefHandler {
	return &BriefHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get returns the stored brief for one date.
func (h *BriefHandler) Get(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	date, err := dateParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid date, expected YYYY-MM-DD")
	}

	brief, err := h.uc.Get(c.Request().Context(), userID, date)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, brief, "Brief retrieved")
}

// Generate composes and stores the brief for one date.
func (h *BriefHandler) Generate(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	date, err := dateParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid date, expected YYYY-MM-DD")
	}

	brief, err := h.uc.Generate(c.Request().Context(), userID, date)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, brief, "Brief generated")
}

package handler

import (
	"log/slog"
	"net/http"

	"pulse/internal/delivery/http/response"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MailboxHandler holds dependencies for mailbox handlers.
type MailboxHandler struct {
	uc     usecase.MailboxUsecase
	logger *slog.Logger
}

// NewMailboxHandler is the constructor for MailboxHandler, injected by Fx.
func NewMailboxHandler(uc usecase.MailboxUsecase, logger *slog.Logger) *MailboxHandler {
	return &MailboxHandler{
		uc:     uc,
		logger: logger,
	}
}

// Sync pulls recent messages from every connected mail service.
func (h *MailboxHandler) Sync(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.uc.Sync(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"synced": output.Synced}, "Mailbox synced")
}

// List returns the cached messages, newest first.
func (h *MailboxHandler) List(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	emails, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"emails": emails}, "Mail retrieved")
}

// Summarize generates an AI summary for one message.
func (h *MailboxHandler) Summarize(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	emailID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid email ID")
	}

	output, err := h.uc.Summarize(c.Request().Context(), userID, emailID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"summary": output.Summary}, "Summary generated")
}

// SuggestReplies generates one reply suggestion per tone.
func (h *MailboxHandler) SuggestReplies(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	emailID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid email ID")
	}

	replies, err := h.uc.SuggestReplies(c.Request().Context(), userID, emailID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"replies": replies}, "Replies generated")
}

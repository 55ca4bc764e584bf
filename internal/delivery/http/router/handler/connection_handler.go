package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pulse/internal/delivery/http/response"
	"pulse/internal/domain/entity"
	"pulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ConnectionHandler holds dependencies for OAuth connection handlers.
type ConnectionHandler struct {
	uc     usecase.ConnectionUsecase
	logger *slog.Logger
}

// NewConnectionHandler is the constructor for ConnectionHandler, injected by Fx.
func NewConnectionHandler(uc usecase.ConnectionUsecase, logger *slog.Logger) *ConnectionHandler {
	return &ConnectionHandler{
		uc:     uc,
		logger: logger,
	}
}

// Initiate starts a consent flow and redirects the browser to the provider
// (or straight back to settings on the simulation path).
func (h *ConnectionHandler) Initiate(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	provider, ok := entity.ParseExternalProvider(c.Param("provider"))
	if !ok {
		return response.BadRequest(c, "UNKNOWN_PROVIDER", "Unknown provider")
	}

	output, err := h.uc.Initiate(c.Request().Context(), userID, provider)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, output.RedirectURL)
}

// Callback absorbs the provider's redirect. This route is public: the browser
// arrives here from the provider without our Authorization header. The
// usecase folds every failure into the redirect target.
func (h *ConnectionHandler) Callback(c echo.Context) error {
	provider, _ := entity.ParseExternalProvider(c.Param("provider"))

	output := h.uc.Callback(c.Request().Context(), &usecase.CallbackInput{
		Provider: provider,
		Code:     c.QueryParam("code"),
		State:    c.QueryParam("state"),
	})

	return c.Redirect(http.StatusFound, output.RedirectURL)
}

// Disconnect removes one service connection (and its paired sibling).
func (h *ConnectionHandler) Disconnect(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	service, ok := entity.ParseServiceType(c.Param("service"))
	if !ok {
		return response.BadRequest(c, "UNKNOWN_SERVICE", "Unknown service")
	}

	if err := h.uc.Disconnect(c.Request().Context(), userID, service); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Service disconnected"}, "Service disconnected")
}

// connectionView is the API shape of one connection. Token material stays
// out except for the fixed placeholder on simulated connections.
type connectionView struct {
	Service      string `json:"service"`
	AccountEmail string `json:"account_email"`
	Simulated    bool   `json:"simulated"`
	AccessToken  string `json:"access_token,omitempty"`
	ConnectedAt  string `json:"connected_at"`
}

// List returns all of the user's connections.
func (h *ConnectionHandler) List(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	connections, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]connectionView, 0, len(connections))
	for _, conn := range connections {
		view := connectionView{
			Service:      string(conn.Service),
			AccountEmail: conn.AccountEmail,
			Simulated:    conn.Credential.Simulated,
			ConnectedAt:  conn.CreatedAt.Format(time.RFC3339),
		}
		if conn.Credential.Simulated {
			view.AccessToken = conn.Credential.AccessToken
		}
		views = append(views, view)
	}

	return response.Success(c, http.StatusOK, map[string]any{"connections": views}, "Connections retrieved")
}

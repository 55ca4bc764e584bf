package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pulse/config"
	deliverymiddleware "pulse/internal/delivery/http/middleware"
	"pulse/internal/domain/entity"
	mockSvc "pulse/internal/mocks/service"
	mockUsecase "pulse/internal/mocks/usecase"
	"pulse/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// newConnectionTestServer wires the connection routes behind the real auth
// middleware, the way the router registers them.
func newConnectionTestServer(t *testing.T) (*echo.Echo, *mockSvc.MockTokenService, *mockUsecase.MockConnectionUsecase) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"

	tokenSvc := mockSvc.NewMockTokenService(t)
	authMiddleware := deliverymiddleware.NewAuthMiddleware(tokenSvc, cfg)

	uc := mockUsecase.NewMockConnectionUsecase(t)
	handler := NewConnectionHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	api := e.Group("/api", authMiddleware.Authenticate)
	api.GET("/auth/:provider", handler.Initiate)

	return e, tokenSvc, uc
}

func TestConnectionHandler_Initiate_RequiresAuthentication(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
	}{
		{name: "missing authorization header"},
		{name: "not a bearer token", authHeader: "Basic dXNlcjpwYXNz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, _ := newConnectionTestServer(t)

			req := httptest.NewRequest(http.MethodGet, "/api/auth/google", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Empty(t, rec.Header().Get("Location"))
		})
	}
}

func TestConnectionHandler_Initiate_RejectsInvalidToken(t *testing.T) {
	e, tokenSvc, _ := newConnectionTestServer(t)

	tokenSvc.EXPECT().
		ValidateToken("expired-token", "test-access-secret").
		Return(&jwt.Token{Valid: false}, errors.New("token is expired"))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/google", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))
}

func TestConnectionHandler_Initiate_AuthenticatedRedirects(t *testing.T) {
	e, tokenSvc, uc := newConnectionTestServer(t)

	userID := uuid.New()
	tokenSvc.EXPECT().
		ValidateToken("good-token", "test-access-secret").
		Return(&jwt.Token{
			Valid:  true,
			Claims: jwt.MapClaims{"sub": userID.String()},
		}, nil)

	consentURL := "https://accounts.google.com/o/oauth2/auth?client_id=test"
	uc.EXPECT().
		Initiate(mock.Anything, userID, entity.ExternalProviderGoogle).
		Return(&usecase.RedirectOutput{RedirectURL: consentURL}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/google", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, consentURL, rec.Header().Get("Location"))
}

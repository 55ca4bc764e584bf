// Package google implements the OAuth authorization-code flow against
// Google's consent and token endpoints.
package google

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/service"
	"pulse/internal/errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userinfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

var defaultScopes = []string{
	"https://www.googleapis.com/auth/gmail.readonly",
	"https://www.googleapis.com/auth/calendar.readonly",
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
}

type provider struct {
	client   *config.OAuthClientConfig
	oauthCfg *oauth2.Config
}

// NewProvider builds the Google OAuth provider from config. An absent or
// incomplete client registration yields an unconfigured provider, which the
// flow controller routes to the simulation path.
func NewProvider(cfg *config.Config) service.OAuthProvider {
	var client *config.OAuthClientConfig
	if cfg.Providers != nil {
		client = cfg.Providers.Google
	}

	p := &provider{client: client}
	if client.Configured() {
		scopes := client.Scopes
		if len(scopes) == 0 {
			scopes = defaultScopes
		}
		p.oauthCfg = &oauth2.Config{
			ClientID:     client.ClientID,
			ClientSecret: client.ClientSecret,
			RedirectURL:  client.RedirectURI,
			Scopes:       scopes,
			Endpoint:     google.Endpoint,
		}
	}

	return p
}

func (p *provider) Provider() entity.ExternalProvider {
	return entity.ExternalProviderGoogle
}

func (p *provider) Configured() bool {
	return p.oauthCfg != nil
}

// BuildAuthorizationURL returns the consent URL. Offline access plus forced
// consent makes Google return a refresh token on every grant.
func (p *provider) BuildAuthorizationURL(state string) string {
	return p.oauthCfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// ExchangeCode trades an authorization code for tokens.
func (p *provider) ExchangeCode(ctx context.Context, code string) (*service.ProviderToken, error) {
	token, err := p.oauthCfg.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "exchange authorization code")
	}

	return toProviderToken(token), nil
}

// FetchIdentity resolves the Google account behind an access token.
func (p *provider) FetchIdentity(ctx context.Context, accessToken string) (*service.ProviderIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userinfoEndpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build userinfo request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call userinfo endpoint")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, errors.Errorf("userinfo endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "decode userinfo response")
	}

	return &service.ProviderIdentity{
		ID:    payload.ID,
		Email: payload.Email,
		Name:  payload.Name,
	}, nil
}

// RefreshAccessToken trades a refresh token for a fresh access token.
func (p *provider) RefreshAccessToken(ctx context.Context, refreshToken string) (*service.ProviderToken, error) {
	source := p.oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	token, err := source.Token()
	if err != nil {
		return nil, errors.Wrap(err, "refresh access token")
	}

	return toProviderToken(token), nil
}

func toProviderToken(token *oauth2.Token) *service.ProviderToken {
	var expiresAt time.Time
	if !token.Expiry.IsZero() {
		expiresAt = token.Expiry
	}

	return &service.ProviderToken{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    expiresAt,
	}
}

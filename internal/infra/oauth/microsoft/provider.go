// Package microsoft implements the OAuth authorization-code flow against
// the Microsoft identity platform (Azure AD "common" tenant).
package microsoft

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
	"golang.org/x/oauth2/microsoft"
)

const graphMeEndpoint = "https://graph.microsoft.com/v1.0/me"

var defaultScopes = []string{
	"offline_access",
	"User.Read",
	"Mail.Read",
	"Calendars.Read",
}

type provider struct {
	client   *config.OAuthClientConfig
	oauthCfg *oauth2.Config
}

// NewProvider builds the Microsoft OAuth provider from config. An absent or
// incomplete client registration yields an unconfigured provider, which the
// flow controller routes to the simulation path.
func NewProvider(cfg *config.Config) service.OAuthProvider {
	var client *config.OAuthClientConfig
	if cfg.Providers != nil {
		client = cfg.Providers.Microsoft
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
			Endpoint:     microsoft.AzureADEndpoint("common"),
		}
	}

	return p
}

func (p *provider) Provider() entity.ExternalProvider {
	return entity.ExternalProviderMicrosoft
}

func (p *provider) Configured() bool {
	return p.oauthCfg != nil
}

// BuildAuthorizationURL returns the consent URL. The offline_access scope
// makes the token endpoint return a refresh token.
func (p *provider) BuildAuthorizationURL(state string) string {
	return p.oauthCfg.AuthCodeURL(state)
}

// ExchangeCode trades an authorization code for tokens.
func (p *provider) ExchangeCode(ctx context.Context, code string) (*service.ProviderToken, error) {
	token, err := p.oauthCfg.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "exchange authorization code")
	}

	return toProviderToken(token), nil
}

// FetchIdentity resolves the Microsoft account behind an access token via
// the Graph /me resource.
func (p *provider) FetchIdentity(ctx context.Context, accessToken string) (*service.ProviderIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, graphMeEndpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build graph request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call graph /me")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, errors.Errorf("graph /me returned %d: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		ID                string `json:"id"`
		DisplayName       string `json:"displayName"`
		Mail              string `json:"mail"`
		UserPrincipalName string `json:"userPrincipalName"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "decode graph /me response")
	}

	email := payload.Mail
	if email == "" {
		// Personal accounts often leave mail unset.
		email = payload.UserPrincipalName
	}

	return &service.ProviderIdentity{
		ID:    payload.ID,
		Email: email,
		Name:  payload.DisplayName,
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

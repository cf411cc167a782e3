// Package google implements the identity provider on top of Google OAuth 2.0.
package google

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"docgate/config"
	deliverycontext "docgate/internal/delivery/context"
	"docgate/internal/domain/entity"
	"docgate/internal/domain/service"
	"docgate/internal/errors"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
)

const (
	errorCodeInvalidGrant = "invalid_grant"
	promptConsent         = "consent"
)

var defaultScopes = []string{
	"openid",
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
	"https://www.googleapis.com/auth/drive.file",
	"https://www.googleapis.com/auth/documents",
}

// OAuthProvider implements service.IdentityProvider with the authorization code flow.
type OAuthProvider struct {
	oauthConfig *oauth2.Config
	httpClient  *http.Client
	// userInfoEndpoint overrides the oauth2/v2 API base URL when set.
	userInfoEndpoint string
	states           *stateStore
	logger           *slog.Logger
}

// NewOAuthProvider creates a new Google identity provider
func NewOAuthProvider(cfg *config.Config, logger *slog.Logger) service.IdentityProvider {
	return newOAuthProvider(cfg, logger, time.Now)
}

func newOAuthProvider(cfg *config.Config, logger *slog.Logger, now func() time.Time) *OAuthProvider {
	oauthCfg := cfg.GoogleOAuth

	endpoint := googleoauth.Endpoint
	if oauthCfg.AuthURL != "" {
		endpoint.AuthURL = oauthCfg.AuthURL
	}
	if oauthCfg.TokenURL != "" {
		endpoint.TokenURL = oauthCfg.TokenURL
	}
	endpoint.AuthStyle = oauth2.AuthStyleInParams

	scopes := oauthCfg.Scopes
	if len(scopes) == 0 {
		scopes = defaultScopes
	}

	return &OAuthProvider{
		oauthConfig: &oauth2.Config{
			ClientID:     oauthCfg.ClientID,
			ClientSecret: oauthCfg.ClientSecret,
			RedirectURL:  oauthCfg.RedirectURI,
			Scopes:       scopes,
			Endpoint:     endpoint,
		},
		httpClient:       &http.Client{Timeout: oauthCfg.Timeout},
		userInfoEndpoint: oauthCfg.UserInfoURL,
		states:           newStateStore(stateTTL, now),
		logger:           logger,
	}
}

func (p *OAuthProvider) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, p.logger)
}

// withClient makes the oauth2 package use the provider's bounded HTTP client.
func (p *OAuthProvider) withClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
}

// AuthorizationURL constructs the Google consent URL with a fresh state parameter for CSRF protection.
// Offline access and forced consent make Google return a refresh token.
func (p *OAuthProvider) AuthorizationURL(_ context.Context) (string, error) {
	state, err := p.states.issue()
	if err != nil {
		return "", err
	}

	return p.oauthConfig.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", promptConsent),
	), nil
}

// ValidateState validates the state parameter to prevent CSRF attacks
func (p *OAuthProvider) ValidateState(state string) bool {
	return p.states.consume(state)
}

// Exchange trades the authorization code for tokens and loads the user's profile.
func (p *OAuthProvider) Exchange(ctx context.Context, code string) (*entity.LoginGrant, error) {
	ctx = p.withClient(ctx)

	token, err := p.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange code for token")
	}

	profile, err := p.fetchProfile(ctx, token)
	if err != nil {
		return nil, err
	}

	grant := &entity.LoginGrant{
		IdentityKey:      profile.Id,
		AccessCredential: token.AccessToken,
		Attributes: entity.Attributes{
			Name:      profile.Name,
			Email:     profile.Email,
			AvatarURL: profile.Picture,
		},
	}
	if token.RefreshToken != "" {
		refreshToken := token.RefreshToken
		grant.RefreshCredential = &refreshToken
	}

	p.log(ctx).Debug("OAuth code exchanged",
		slog.String("identity_key", grant.IdentityKey),
		slog.Bool("refresh_token_issued", grant.RefreshCredential != nil),
	)

	return grant, nil
}

// Refresh uses the refresh token grant. Google answers "invalid_grant" for
// revoked or expired refresh tokens; everything else is treated as transient.
func (p *OAuthProvider) Refresh(ctx context.Context, refreshCredential string) (*service.RefreshedCredential, error) {
	tokenSource := p.oauthConfig.TokenSource(p.withClient(ctx), &oauth2.Token{RefreshToken: refreshCredential})

	token, err := tokenSource.Token()
	if err != nil {
		return nil, classifyRefreshError(err)
	}

	if token.AccessToken == "" {
		return nil, errors.Wrap(service.ErrProviderUnavailable, "token response without access_token")
	}

	refreshed := &service.RefreshedCredential{
		AccessCredential: token.AccessToken,
		Expiry:           token.Expiry,
	}
	// x/oauth2 echoes the old refresh token back when the response carried none.
	if token.RefreshToken != "" && token.RefreshToken != refreshCredential {
		refreshed.RefreshCredential = token.RefreshToken
	}

	return refreshed, nil
}

func classifyRefreshError(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.ErrorCode == errorCodeInvalidGrant {
		return errors.Join(service.ErrGrantInvalidated, err)
	}

	return errors.Join(service.ErrProviderUnavailable, err)
}

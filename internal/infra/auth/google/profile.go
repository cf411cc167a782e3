package google

import (
	"context"

	"docgate/internal/errors"

	"golang.org/x/oauth2"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// fetchProfile loads the signed-in user's profile from the userinfo endpoint.
func (p *OAuthProvider) fetchProfile(ctx context.Context, token *oauth2.Token) (*oauth2api.Userinfo, error) {
	opts := []option.ClientOption{
		option.WithHTTPClient(oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))),
	}
	if p.userInfoEndpoint != "" {
		opts = append(opts, option.WithEndpoint(p.userInfoEndpoint))
	}

	api, err := oauth2api.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create userinfo client")
	}

	profile, err := api.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user info")
	}

	if profile.Id == "" {
		return nil, errors.New("user info response without id")
	}

	return profile, nil
}

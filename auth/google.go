package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// Profile is the subset of identity-provider claims the application
// consumes.
type Profile struct {
	Email string
	Name  string
}

// GoogleProvider wraps the Google OAuth flow: redirect URL generation,
// code exchange and the userinfo call.
type GoogleProvider struct {
	config *oauth2.Config
}

// NewGoogleProvider builds a provider from client credentials and the
// registered callback URL.
func NewGoogleProvider(clientID, clientSecret, callbackURL string) *GoogleProvider {
	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.profile",
				"https://www.googleapis.com/auth/userinfo.email",
			},
			Endpoint: google.Endpoint,
		},
	}
}

// AuthCodeURL returns the provider redirect URL for the given state.
func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// Exchange trades an authorization code for a token and fetches the
// user's profile claims.
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (*Profile, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(p.config.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to build userinfo client: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	if info.Email == "" {
		return nil, fmt.Errorf("identity provider returned no email")
	}

	return &Profile{Email: info.Email, Name: info.Name}, nil
}

// NewState returns a random state parameter for the OAuth round trip.
func NewState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

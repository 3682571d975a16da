// Package oauth handles the Google SSO flow: consent URL generation and
// exchanging the callback code for a verified profile.
package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userInfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleProfile is the subset of the userinfo response the login flow
// needs to resolve an employee.
type GoogleProfile struct {
	GoogleID      string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
}

type GoogleService interface {
	// AuthURL returns the consent screen URL carrying a fresh random
	// state.
	AuthURL() string
	// Authenticate exchanges the authorization code and fetches the
	// Google profile it grants access to.
	Authenticate(ctx context.Context, code string) (GoogleProfile, error)
}

type GoogleServiceImpl struct {
	config *oauth2.Config
}

func NewGoogleService(clientID string, clientSecret string, redirectURL string, scopes []string) GoogleService {
	return &GoogleServiceImpl{config: &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       scopes,
		Endpoint:     google.Endpoint,
	}}
}

// AuthURL implements GoogleService.
func (g *GoogleServiceImpl) AuthURL() string {
	return g.config.AuthCodeURL(randomState(), oauth2.AccessTypeOffline)
}

// Authenticate implements GoogleService.
func (g *GoogleServiceImpl) Authenticate(ctx context.Context, code string) (GoogleProfile, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return GoogleProfile{}, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	resp, err := g.config.Client(ctx, token).Get(userInfoEndpoint)
	if err != nil {
		return GoogleProfile{}, fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return GoogleProfile{}, fmt.Errorf("userinfo request failed: %s", resp.Status)
	}

	var profile GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return GoogleProfile{}, fmt.Errorf("failed to decode userinfo: %w", err)
	}

	return profile, nil
}

func randomState() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

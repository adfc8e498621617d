// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hoopline/internal/middleware"
	"hoopline/internal/models"
	"hoopline/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const (
	oauthStateTTL = 10 * time.Minute

	googleUserInfoURL   = "https://www.googleapis.com/oauth2/v2/userinfo"
	facebookUserInfoURL = "https://graph.facebook.com/me?fields=id,email,first_name,last_name,picture.width(200)"
)

// oauthConfig builds the oauth2 config for a supported provider.
func (s *Server) oauthConfig(provider string) (*oauth2.Config, error) {
	redirectURL := fmt.Sprintf("%s/api/auth/%s/callback", s.config.OAuthCallbackBase, provider)

	switch provider {
	case "google":
		return &oauth2.Config{
			ClientID:     s.config.GoogleClientID,
			ClientSecret: s.config.GoogleClientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     endpoints.Google,
		}, nil
	case "facebook":
		return &oauth2.Config{
			ClientID:     s.config.FacebookClientID,
			ClientSecret: s.config.FacebookClientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"email", "public_profile"},
			Endpoint:     endpoints.Facebook,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported oauth provider %q", provider)
	}
}

// OAuthRedirect handles GET /api/auth/:provider, sending the browser to the
// provider's consent screen.
func (s *Server) OAuthRedirect(provider string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		conf, err := s.oauthConfig(provider)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("OAuth provider", provider))
		}
		if conf.ClientID == "" {
			return models.RespondWithError(c, fiber.StatusServiceUnavailable,
				models.NewValidationError("OAuth provider not configured"))
		}

		state := uuid.New().String()
		if s.redis != nil {
			if err := s.redis.Set(c.Context(), "oauth_state:"+state, provider, oauthStateTTL).Err(); err != nil {
				return models.RespondWithError(c, fiber.StatusInternalServerError,
					models.NewInternalError(err))
			}
		}

		return c.Redirect(conf.AuthCodeURL(state), fiber.StatusTemporaryRedirect)
	}
}

// OAuthCallback handles GET /api/auth/:provider/callback: it exchanges the
// code, fetches the provider profile, resolves it to a local account, and
// redirects back to the client with a session token.
func (s *Server) OAuthCallback(provider string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		conf, err := s.oauthConfig(provider)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("OAuth provider", provider))
		}

		code := c.Query("code")
		if code == "" {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Missing authorization code"))
		}

		// Single-use state; only validated when Redis is up to issue it.
		if s.redis != nil {
			state := c.Query("state")
			stored, getErr := s.redis.GetDel(c.Context(), "oauth_state:"+state).Result()
			if getErr != nil || stored != provider {
				return models.RespondWithError(c, fiber.StatusBadRequest,
					models.NewValidationError("Invalid or expired OAuth state"))
			}
		}

		token, err := conf.Exchange(c.Context(), code)
		if err != nil {
			middleware.Logger.WarnContext(c.UserContext(), "oauth code exchange failed",
				"provider", provider, "error", err)
			return models.RespondWithError(c, fiber.StatusBadGateway,
				models.NewInternalError(err))
		}

		ident, err := fetchIdentity(c.Context(), provider, conf, token)
		if err != nil {
			middleware.Logger.WarnContext(c.UserContext(), "oauth profile fetch failed",
				"provider", provider, "error", err)
			return models.RespondWithError(c, fiber.StatusBadGateway,
				models.NewInternalError(err))
		}

		user, outcome, err := s.identityService.Resolve(c.Context(), ident)
		if err != nil {
			return models.RespondError(c, err)
		}
		middleware.Logger.InfoContext(c.UserContext(), "federated login",
			"provider", provider, "outcome", string(outcome), "user_id", user.ID)

		jwtToken, err := s.generateToken(user.ID, user.Username)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}

		return c.Redirect(
			fmt.Sprintf("%s/auth-success?token=%s", s.config.ClientURL, jwtToken),
			fiber.StatusFound)
	}
}

// fetchIdentity retrieves the user profile from the provider's userinfo
// endpoint and normalizes it.
func fetchIdentity(ctx context.Context, provider string, conf *oauth2.Config, token *oauth2.Token) (service.ExternalIdentity, error) {
	client := conf.Client(ctx, token)

	switch provider {
	case "google":
		resp, err := client.Get(googleUserInfoURL)
		if err != nil {
			return service.ExternalIdentity{}, err
		}
		defer func() { _ = resp.Body.Close() }()

		var profile struct {
			ID         string `json:"id"`
			Email      string `json:"email"`
			GivenName  string `json:"given_name"`
			FamilyName string `json:"family_name"`
			Picture    string `json:"picture"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
			return service.ExternalIdentity{}, err
		}
		return service.ExternalIdentity{
			Provider:  "google",
			ID:        profile.ID,
			Email:     profile.Email,
			FirstName: profile.GivenName,
			LastName:  profile.FamilyName,
			Avatar:    profile.Picture,
		}, nil

	case "facebook":
		resp, err := client.Get(facebookUserInfoURL)
		if err != nil {
			return service.ExternalIdentity{}, err
		}
		defer func() { _ = resp.Body.Close() }()

		var profile struct {
			ID        string `json:"id"`
			Email     string `json:"email"`
			FirstName string `json:"first_name"`
			LastName  string `json:"last_name"`
			Picture   struct {
				Data struct {
					URL string `json:"url"`
				} `json:"data"`
			} `json:"picture"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
			return service.ExternalIdentity{}, err
		}
		return service.ExternalIdentity{
			Provider:  "facebook",
			ID:        profile.ID,
			Email:     profile.Email,
			FirstName: profile.FirstName,
			LastName:  profile.LastName,
			Avatar:    profile.Picture.Data.URL,
		}, nil

	default:
		return service.ExternalIdentity{}, fmt.Errorf("unsupported oauth provider %q", provider)
	}
}

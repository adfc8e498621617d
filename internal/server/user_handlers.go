// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"hoopline/internal/models"
	"hoopline/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/profile
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetProfile(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/profile. All fields are optional;
// absent fields keep their stored value.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		FirstName string  `json:"first_name"`
		LastName  string  `json:"last_name"`
		Bio       *string `json:"bio"`
		Avatar    *string `json:"avatar"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:    currentUserID(c),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Avatar:    req.Avatar,
	})
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(user)
}

// UpdateMyPreferences handles PUT /api/users/preferences, merging newsletter
// and notification flags.
func (s *Server) UpdateMyPreferences(c *fiber.Ctx) error {
	var req struct {
		Newsletter    models.PreferencesPatch             `json:"newsletter_preferences"`
		Notifications models.NotificationPreferencesPatch `json:"notification_preferences"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdatePreferences(c.Context(), service.UpdatePreferencesInput{
		UserID:        currentUserID(c),
		Newsletter:    req.Newsletter,
		Notifications: req.Notifications,
	})
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(user)
}

// GetPublicProfile handles GET /api/users/:id. Inactive accounts are
// indistinguishable from missing ones.
func (s *Server) GetPublicProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.userService.PublicProfile(c.Context(), userID)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(profile)
}

// DeleteAccount handles DELETE /api/users/account. Accounts are deactivated,
// never hard-deleted, so authored content keeps a valid owner.
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	if err := s.userService.DeactivateAccount(c.Context(), currentUserID(c)); err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Account deactivated"})
}

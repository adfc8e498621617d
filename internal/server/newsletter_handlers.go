// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"hoopline/internal/authz"
	"hoopline/internal/models"
	"hoopline/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Subscribe handles POST /api/newsletter/subscribe. Subscribing an existing
// email merges the provided preference flags over the stored ones.
func (s *Server) Subscribe(c *fiber.Ctx) error {
	var req struct {
		Email       string                    `json:"email"`
		Preferences models.PreferencesPatch   `json:"preferences"`
		Source      models.SubscriptionSource `json:"source"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	sub, err := s.newsletterService.Subscribe(c.Context(), service.SubscribeInput{
		Email:       req.Email,
		Preferences: req.Preferences,
		Source:      req.Source,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":      "Subscribed to newsletter",
		"subscription": sub,
	})
}

// UpdateNewsletterPreferences handles PUT /api/newsletter/preferences
func (s *Server) UpdateNewsletterPreferences(c *fiber.Ctx) error {
	var req struct {
		Email       string                  `json:"email"`
		Preferences models.PreferencesPatch `json:"preferences"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	sub, err := s.newsletterService.UpdatePreferences(c.Context(), req.Email, req.Preferences)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":      "Preferences updated",
		"subscription": sub,
	})
}

// Unsubscribe handles DELETE /api/newsletter/unsubscribe
func (s *Server) Unsubscribe(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.newsletterService.Unsubscribe(c.Context(), req.Email); err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Unsubscribed from newsletter"})
}

// NewsletterStats handles GET /api/newsletter/stats (admin only)
func (s *Server) NewsletterStats(c *fiber.Ctx) error {
	actor, err := s.actorByID(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondError(c, err)
	}
	if !authz.Can(actor, authz.NewsletterStats, 0) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Admin access required"))
	}

	stats, err := s.newsletterService.Stats(c.Context())
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(stats)
}

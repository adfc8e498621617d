// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"hoopline/internal/models"
	"hoopline/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /api/comments/:articleId. The article key is an
// opaque string: blog posts and news articles both use this listing.
func (s *Server) GetComments(c *fiber.Ctx) error {
	articleID := c.Params("articleId")
	if articleID == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Article ID is required"))
	}
	page := parsePageQuery(c)
	currentUserID, _ := s.optionalUserID(c)

	result, err := s.commentService.ListComments(c.Context(), articleID, page.Page, page.Limit, currentUserID)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"comments":   result.Comments,
		"pagination": result.Pagination,
		"total":      result.Total,
	})
}

// CreateComment handles POST /api/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		ArticleID string `json:"articleId"`
		Content   string `json:"content"`
		ParentID  *uint  `json:"parentId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		UserID:    userID,
		ArticleID: req.ArticleID,
		Content:   req.Content,
		ParentID:  req.ParentID,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// UpdateComment handles PUT /api/comments/:id
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	userID := currentUserID(c)
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(c.Context(), service.UpdateCommentInput{
		UserID:    userID,
		CommentID: commentID,
		Content:   req.Content,
	})
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(comment)
}

// DeleteComment handles DELETE /api/comments/:id. Comments with replies are
// tombstoned instead of removed.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	userID := currentUserID(c)
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.Context(), service.DeleteCommentInput{
		UserID:    userID,
		CommentID: commentID,
	}); err != nil {
		return models.RespondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LikeComment handles POST /api/comments/:id/like
func (s *Server) LikeComment(c *fiber.Ctx) error {
	userID := currentUserID(c)
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, err := s.engagementService.ToggleCommentLike(c.Context(), userID, commentID)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(result)
}

// GetUserComments handles GET /api/comments/user/:userId
func (s *Server) GetUserComments(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	page := parsePageQuery(c)

	result, err := s.commentService.ListUserComments(c.Context(), userID, page.Page, page.Limit)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"comments":   result.Comments,
		"pagination": result.Pagination,
		"total":      result.Total,
	})
}

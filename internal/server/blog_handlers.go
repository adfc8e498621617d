// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"hoopline/internal/models"
	"hoopline/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListBlogs handles GET /api/blogs
func (s *Server) ListBlogs(c *fiber.Ctx) error {
	page := parsePageQuery(c)
	currentUserID, _ := s.optionalUserID(c)

	result, err := s.blogService.ListBlogs(c.Context(), service.ListBlogsInput{
		Page:          page.Page,
		Limit:         page.Limit,
		Tag:           c.Query("tag"),
		AuthorID:      uint(c.QueryInt("author", 0)),
		Search:        c.Query("search"),
		CurrentUserID: currentUserID,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"blogs":      result.Blogs,
		"pagination": result.Pagination,
		"total":      result.Total,
	})
}

// GetBlog handles GET /api/blogs/:id
func (s *Server) GetBlog(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	currentUserID, _ := s.optionalUserID(c)

	post, err := s.blogService.GetBlog(c.Context(), id, currentUserID)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(post)
}

// CreateBlog handles POST /api/blogs
func (s *Server) CreateBlog(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Title     string   `json:"title"`
		Content   string   `json:"content"`
		Summary   string   `json:"summary"`
		ImageURL  string   `json:"image_url"`
		Tags      []string `json:"tags"`
		Published bool     `json:"published"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.blogService.CreateBlog(c.Context(), service.CreateBlogInput{
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		Summary:   req.Summary,
		ImageURL:  req.ImageURL,
		Tags:      req.Tags,
		Published: req.Published,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdateBlog handles PUT /api/blogs/:id
func (s *Server) UpdateBlog(c *fiber.Ctx) error {
	userID := currentUserID(c)
	blogID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Summary  string `json:"summary"`
		ImageURL string `json:"image_url"`
		// Tags absent from the body stays nil (unchanged); an explicit
		// empty array clears them.
		Tags      []string `json:"tags"`
		Published *bool    `json:"published"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.blogService.UpdateBlog(c.Context(), service.UpdateBlogInput{
		UserID:    userID,
		BlogID:    blogID,
		Title:     req.Title,
		Content:   req.Content,
		Summary:   req.Summary,
		ImageURL:  req.ImageURL,
		Tags:      req.Tags,
		Published: req.Published,
	})
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(post)
}

// DeleteBlog handles DELETE /api/blogs/:id
func (s *Server) DeleteBlog(c *fiber.Ctx) error {
	userID := currentUserID(c)
	blogID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.blogService.DeleteBlog(c.Context(), blogID, userID); err != nil {
		return models.RespondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LikeBlog handles POST /api/blogs/:id/like. Toggles: liking an already-liked
// post removes the like.
func (s *Server) LikeBlog(c *fiber.Ctx) error {
	userID := currentUserID(c)
	blogID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, err := s.engagementService.ToggleBlogLike(c.Context(), userID, blogID)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(result)
}

// GetUserBlogs handles GET /api/blogs/user/:userId. Drafts are included only
// when the requester is the author.
func (s *Server) GetUserBlogs(c *fiber.Ctx) error {
	authorID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	page := parsePageQuery(c)
	currentUserID, _ := s.optionalUserID(c)

	result, err := s.blogService.ListUserBlogs(c.Context(), authorID, page.Page, page.Limit, currentUserID)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"blogs":      result.Blogs,
		"pagination": result.Pagination,
		"total":      result.Total,
	})
}

// PopularTags handles GET /api/blogs/tags/popular
func (s *Server) PopularTags(c *fiber.Ctx) error {
	tags, err := s.blogService.PopularTags(c.Context())
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"tags": tags})
}

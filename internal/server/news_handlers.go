// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"hoopline/internal/models"
	"hoopline/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListNews handles GET /api/news
func (s *Server) ListNews(c *fiber.Ctx) error {
	result := s.newsService.List(service.ListNewsInput{
		Category: c.Query("category"),
		Breaking: c.QueryBool("breaking", false),
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", 0),
	})

	return c.JSON(fiber.Map{
		"articles":   result.Articles,
		"pagination": result.Pagination,
		"total":      result.Total,
	})
}

// NewsCategories handles GET /api/news/categories
func (s *Server) NewsCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": s.newsService.Categories()})
}

// BreakingNews handles GET /api/news/breaking
func (s *Server) BreakingNews(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"articles": s.newsService.Breaking()})
}

// SearchNews handles GET /api/news/search?q=&category=
func (s *Server) SearchNews(c *fiber.Ctx) error {
	articles, err := s.newsService.Search(c.Query("q"), c.Query("category"))
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"articles": articles})
}

// GetNewsArticle handles GET /api/news/:id
func (s *Server) GetNewsArticle(c *fiber.Ctx) error {
	article, err := s.newsService.Get(c.Params("id"))
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(article)
}

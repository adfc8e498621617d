package service

import (
	"sort"
	"strings"
	"time"

	"hoopline/internal/models"
)

// NewsService serves the curated news feed from an in-memory catalog.
type NewsService struct {
	articles   []models.NewsArticle
	categories []models.NewsCategory
}

type ListNewsInput struct {
	Category string
	Breaking bool
	Page     int
	Limit    int
}

// NewsPage is a paginated news listing result.
type NewsPage struct {
	Articles   []models.NewsArticle
	Pagination models.Pagination
	Total      int
}

func NewNewsService() *NewsService {
	return &NewsService{
		articles:   newsCatalog(time.Now()),
		categories: newsCategories(),
	}
}

// newsServiceWith builds a service over a fixed catalog; used by tests.
func newsServiceWith(articles []models.NewsArticle) *NewsService {
	return &NewsService{articles: articles, categories: newsCategories()}
}

func (s *NewsService) filtered(category string, breakingOnly bool) []models.NewsArticle {
	out := make([]models.NewsArticle, 0, len(s.articles))
	for _, a := range s.articles {
		if category != "" && category != "all" && !strings.EqualFold(a.Category, category) {
			continue
		}
		if breakingOnly && !a.IsBreaking {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})
	return out
}

func (s *NewsService) List(in ListNewsInput) *NewsPage {
	page, limit := models.ClampPagination(in.Page, in.Limit)
	if in.Limit == 0 {
		limit = 20
	}

	all := s.filtered(in.Category, in.Breaking)
	total := len(all)

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &NewsPage{
		Articles:   all[start:end],
		Pagination: models.NewPagination(page, limit, int64(total)),
		Total:      total,
	}
}

func (s *NewsService) Categories() []models.NewsCategory {
	return s.categories
}

// Breaking returns the five most recent breaking articles.
func (s *NewsService) Breaking() []models.NewsArticle {
	breaking := s.filtered("", true)
	if len(breaking) > 5 {
		breaking = breaking[:5]
	}
	return breaking
}

// Search matches the query against title, summary, tags and author,
// newest-first.
func (s *NewsService) Search(query, category string) ([]models.NewsArticle, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	q := strings.ToLower(query)

	results := make([]models.NewsArticle, 0)
	for _, a := range s.filtered(category, false) {
		if articleMatches(a, q) {
			results = append(results, a)
		}
	}
	return results, nil
}

func articleMatches(a models.NewsArticle, q string) bool {
	if strings.Contains(strings.ToLower(a.Title), q) ||
		strings.Contains(strings.ToLower(a.Summary), q) ||
		strings.Contains(strings.ToLower(a.Author), q) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func (s *NewsService) Get(id string) (*models.NewsArticle, error) {
	for i := range s.articles {
		if s.articles[i].ID == id {
			return &s.articles[i], nil
		}
	}
	return nil, models.NewNotFoundError("Article", id)
}

package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hoopline/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNewsTestServer() *fiber.App {
	s := &Server{config: testConfig(), newsService: service.NewNewsService()}
	app := fiber.New()
	news := app.Group("/api/news")
	news.Get("/", s.ListNews)
	news.Get("/categories", s.NewsCategories)
	news.Get("/breaking", s.BreakingNews)
	news.Get("/search", s.SearchNews)
	news.Get("/:id", s.GetNewsArticle)
	return app
}

func getJSON(t *testing.T, app *fiber.App, path string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func TestListNewsHandler(t *testing.T) {
	app := newNewsTestServer()

	resp, body := getJSON(t, app, "/api/news")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotZero(t, body["total"])
	articles := body["articles"].([]any)
	assert.NotEmpty(t, articles)

	// Category filter narrows the result set.
	resp, body = getJSON(t, app, "/api/news?category=wnba")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	for _, a := range body["articles"].([]any) {
		assert.Equal(t, "wnba", a.(map[string]any)["category"])
	}
}

func TestNewsCategoriesHandler(t *testing.T) {
	app := newNewsTestServer()
	resp, body := getJSON(t, app, "/api/news/categories")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	categories := body["categories"].([]any)
	assert.Len(t, categories, 6)
}

func TestBreakingNewsHandler(t *testing.T) {
	app := newNewsTestServer()
	resp, body := getJSON(t, app, "/api/news/breaking")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	for _, a := range body["articles"].([]any) {
		assert.Equal(t, true, a.(map[string]any)["isBreaking"])
	}
}

func TestSearchNewsHandler(t *testing.T) {
	app := newNewsTestServer()

	t.Run("Query Required", func(t *testing.T) {
		resp, _ := getJSON(t, app, "/api/news/search")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("No Matches Is Empty Array", func(t *testing.T) {
		resp, body := getJSON(t, app, "/api/news/search?q=definitely-not-in-catalog")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		articles, ok := body["articles"].([]any)
		require.True(t, ok, "articles must be an array, not null")
		assert.Empty(t, articles)
	})
}

func TestGetNewsArticleHandler(t *testing.T) {
	app := newNewsTestServer()

	resp, body := getJSON(t, app, "/api/news/1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1", body["id"])

	resp, _ = getJSON(t, app, "/api/news/does-not-exist")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hoopline/internal/models"
	"hoopline/internal/repository"
	"hoopline/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MockBlogRepository is a mock of the BlogRepository interface
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) Create(ctx context.Context, post *models.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockBlogRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.BlogPost, error) {
	args := m.Called(ctx, id, currentUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) List(ctx context.Context, filter repository.BlogFilter, limit, offset int, currentUserID uint) ([]*models.BlogPost, int64, error) {
	args := m.Called(ctx, filter, limit, offset, currentUserID)
	return args.Get(0).([]*models.BlogPost), args.Get(1).(int64), args.Error(2)
}

func (m *MockBlogRepository) Update(ctx context.Context, post *models.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockBlogRepository) ReplaceTags(ctx context.Context, postID uint, tags []string) error {
	args := m.Called(ctx, postID, tags)
	return args.Error(0)
}

func (m *MockBlogRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBlogRepository) ToggleLike(ctx context.Context, userID, postID uint) (bool, int64, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockBlogRepository) IncrementViews(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBlogRepository) PopularTags(ctx context.Context, limit int) ([]models.TagCount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TagCount), args.Error(1)
}

// newBlogTestServer wires a Server around mocked repositories, registering
// blog routes in the same order as SetupRoutes.
func newBlogTestServer(blogRepo *MockBlogRepository, userRepo *MockUserRepository) (*fiber.App, *Server) {
	s := &Server{config: testConfig(), userRepo: userRepo}
	s.blogService = service.NewBlogService(blogRepo, s.actorByID)
	s.engagementService = service.NewEngagementService(blogRepo, nil)

	app := fiber.New()
	authed := func(c *fiber.Ctx) error {
		c.Locals("userID", uint(1))
		return c.Next()
	}
	blogs := app.Group("/api/blogs")
	blogs.Get("/", s.ListBlogs)
	blogs.Get("/tags/popular", s.PopularTags)
	blogs.Get("/user/:userId", s.GetUserBlogs)
	blogs.Post("/", authed, s.CreateBlog)
	blogs.Post("/:id/like", authed, s.LikeBlog)
	blogs.Put("/:id", authed, s.UpdateBlog)
	blogs.Delete("/:id", authed, s.DeleteBlog)
	blogs.Get("/:id", s.GetBlog)
	return app, s
}

func TestGetBlogHandler(t *testing.T) {
	t.Run("Published Post", func(t *testing.T) {
		blogRepo := new(MockBlogRepository)
		blogRepo.On("GetByID", mock.Anything, uint(5), uint(0)).Return(
			&models.BlogPost{ID: 5, Title: "Pick and Roll Basics", Content: "# Intro", Published: true}, nil)
		blogRepo.On("IncrementViews", mock.Anything, uint(5)).Return(nil)
		app, _ := newBlogTestServer(blogRepo, new(MockUserRepository))

		req := httptest.NewRequest(http.MethodGet, "/api/blogs/5", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Pick and Roll Basics", body["title"])
		// Detail fetches render the Markdown body.
		assert.Contains(t, body["content_html"], "<h1")
		blogRepo.AssertCalled(t, "IncrementViews", mock.Anything, uint(5))
	})

	t.Run("Not Found", func(t *testing.T) {
		blogRepo := new(MockBlogRepository)
		blogRepo.On("GetByID", mock.Anything, uint(99), uint(0)).Return(nil, gorm.ErrRecordNotFound)
		app, _ := newBlogTestServer(blogRepo, new(MockUserRepository))

		req := httptest.NewRequest(http.MethodGet, "/api/blogs/99", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Draft Hidden From Anonymous", func(t *testing.T) {
		blogRepo := new(MockBlogRepository)
		blogRepo.On("GetByID", mock.Anything, uint(6), uint(0)).Return(
			&models.BlogPost{ID: 6, UserID: 2, Title: "Draft", Published: false}, nil)
		app, _ := newBlogTestServer(blogRepo, new(MockUserRepository))

		req := httptest.NewRequest(http.MethodGet, "/api/blogs/6", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		blogRepo.AssertNotCalled(t, "IncrementViews", mock.Anything, mock.Anything)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		app, _ := newBlogTestServer(new(MockBlogRepository), new(MockUserRepository))
		req := httptest.NewRequest(http.MethodGet, "/api/blogs/abc", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCreateBlogHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		blogRepo := new(MockBlogRepository)
		blogRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*models.BlogPost).ID = 11
		}).Return(nil)
		blogRepo.On("GetByID", mock.Anything, uint(11), uint(1)).Return(
			&models.BlogPost{ID: 11, UserID: 1, Title: "Zone Defense Explained", Published: true}, nil)
		app, _ := newBlogTestServer(blogRepo, new(MockUserRepository))

		resp := postJSON(t, app, "/api/blogs", map[string]any{
			"title":     "Zone Defense Explained",
			"content":   "A breakdown of the 2-3 zone.",
			"tags":      []string{"NBA", "Defense"},
			"published": true,
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, float64(11), body["id"])
	})

	t.Run("Missing Title", func(t *testing.T) {
		app, _ := newBlogTestServer(new(MockBlogRepository), new(MockUserRepository))
		resp := postJSON(t, app, "/api/blogs", map[string]any{"content": "body only"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestLikeBlogHandler(t *testing.T) {
	blogRepo := new(MockBlogRepository)
	blogRepo.On("GetByID", mock.Anything, uint(5), uint(0)).Return(
		&models.BlogPost{ID: 5, Published: true}, nil)
	blogRepo.On("ToggleLike", mock.Anything, uint(1), uint(5)).Return(true, int64(3), nil)
	app, _ := newBlogTestServer(blogRepo, new(MockUserRepository))

	resp := postJSON(t, app, "/api/blogs/5/like", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["liked"])
	assert.Equal(t, float64(3), body["likes_count"])
}

func TestPopularTagsRouteOrder(t *testing.T) {
	// /tags/popular must not be swallowed by the /:id route.
	blogRepo := new(MockBlogRepository)
	blogRepo.On("PopularTags", mock.Anything, 20).Return(
		[]models.TagCount{{Name: "nba", Count: 12}}, nil)
	app, _ := newBlogTestServer(blogRepo, new(MockUserRepository))

	req := httptest.NewRequest(http.MethodGet, "/api/blogs/tags/popular", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	tags := body["tags"].([]any)
	require.Len(t, tags, 1)
	assert.Equal(t, "nba", tags[0].(map[string]any)["name"])
}

func TestDeleteBlogHandler(t *testing.T) {
	t.Run("Owner Deletes", func(t *testing.T) {
		blogRepo := new(MockBlogRepository)
		userRepo := new(MockUserRepository)
		blogRepo.On("GetByID", mock.Anything, uint(5), uint(1)).Return(
			&models.BlogPost{ID: 5, UserID: 1, Published: true}, nil)
		userRepo.On("GetByID", mock.Anything, uint(1)).Return(
			&models.User{ID: 1, Role: models.RoleUser}, nil)
		blogRepo.On("Delete", mock.Anything, uint(5)).Return(nil)
		app, _ := newBlogTestServer(blogRepo, userRepo)

		req := httptest.NewRequest(http.MethodDelete, "/api/blogs/5", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("Non-Owner Forbidden", func(t *testing.T) {
		blogRepo := new(MockBlogRepository)
		userRepo := new(MockUserRepository)
		blogRepo.On("GetByID", mock.Anything, uint(5), uint(1)).Return(
			&models.BlogPost{ID: 5, UserID: 2, Published: true}, nil)
		userRepo.On("GetByID", mock.Anything, uint(1)).Return(
			&models.User{ID: 1, Role: models.RoleUser}, nil)
		app, _ := newBlogTestServer(blogRepo, userRepo)

		req := httptest.NewRequest(http.MethodDelete, "/api/blogs/5", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		blogRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestListBlogsHandler(t *testing.T) {
	blogRepo := new(MockBlogRepository)
	blogRepo.On("List", mock.Anything, repository.BlogFilter{Tag: "nba"}, 10, 0, uint(0)).Return(
		[]*models.BlogPost{{ID: 1, Title: "One", Published: true}}, int64(1), nil)
	app, _ := newBlogTestServer(blogRepo, new(MockUserRepository))

	req := httptest.NewRequest(http.MethodGet, "/api/blogs?tag=nba", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(1), body["total"])
	pagination := body["pagination"].(map[string]any)
	assert.Equal(t, float64(1), pagination["current"])
	assert.Equal(t, false, pagination["hasNext"])
}

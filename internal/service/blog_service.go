// Package service implements the business rules on top of the repositories.
package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"hoopline/internal/authz"
	"hoopline/internal/models"
	"hoopline/internal/repository"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gorm.io/gorm"
)

const (
	maxBlogTitleLen   = 200
	maxBlogSummaryLen = 500
	maxBlogTags       = 10
	maxBlogTagLen     = 50
)

// markdown renders blog content for detail responses. GFM covers the tables
// and strikethrough authors actually use.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

type BlogService struct {
	blogRepo repository.BlogRepository
	getActor func(ctx context.Context, userID uint) (*models.User, error)
}

type CreateBlogInput struct {
	UserID    uint
	Title     string
	Content   string
	Summary   string
	ImageURL  string
	Tags      []string
	Published bool
}

type UpdateBlogInput struct {
	UserID   uint
	BlogID   uint
	Title    string
	Content  string
	Summary  string
	ImageURL string
	// Tags nil means "unchanged"; an empty non-nil slice clears them.
	Tags      []string
	Published *bool
}

type ListBlogsInput struct {
	Page          int
	Limit         int
	Tag           string
	AuthorID      uint
	Search        string
	CurrentUserID uint
}

// BlogPage is a paginated listing result.
type BlogPage struct {
	Blogs      []*models.BlogPost
	Pagination models.Pagination
	Total      int64
}

func NewBlogService(
	blogRepo repository.BlogRepository,
	getActor func(ctx context.Context, userID uint) (*models.User, error),
) *BlogService {
	return &BlogService{blogRepo: blogRepo, getActor: getActor}
}

// normalizeTags lowercases, trims and dedupes, preserving first-seen order.
func normalizeTags(tags []string) ([]string, error) {
	if len(tags) > maxBlogTags {
		return nil, models.NewValidationError("Too many tags (max 10)")
	}
	out := make([]string, 0, len(tags))
	seen := map[string]struct{}{}
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if utf8.RuneCountInString(t) > maxBlogTagLen {
			return nil, models.NewValidationError("Tag too long (max 50 characters)")
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out, nil
}

func (s *BlogService) CreateBlog(ctx context.Context, in CreateBlogInput) (*models.BlogPost, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if utf8.RuneCountInString(title) > maxBlogTitleLen {
		return nil, models.NewValidationError("Title too long (max 200 characters)")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if utf8.RuneCountInString(in.Summary) > maxBlogSummaryLen {
		return nil, models.NewValidationError("Summary too long (max 500 characters)")
	}

	tags, err := normalizeTags(in.Tags)
	if err != nil {
		return nil, err
	}

	summary := strings.TrimSpace(in.Summary)
	if summary == "" {
		summary = models.DefaultSummary(in.Content)
	}

	post := &models.BlogPost{
		Title:     title,
		Content:   in.Content,
		Summary:   summary,
		ImageURL:  in.ImageURL,
		UserID:    in.UserID,
		Published: in.Published,
		ReadTime:  models.ComputeReadTime(in.Content),
	}
	for _, t := range tags {
		post.Tags = append(post.Tags, models.BlogTag{Name: t})
	}

	if err := s.blogRepo.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.blogRepo.GetByID(ctx, post.ID, in.UserID)
}

// GetBlog fetches a single post. Unpublished posts are visible only to their
// owner; every accessible fetch of a published post bumps the view counter.
func (s *BlogService) GetBlog(ctx context.Context, id uint, currentUserID uint) (*models.BlogPost, error) {
	post, err := s.blogRepo.GetByID(ctx, id, currentUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Blog post", id)
		}
		return nil, models.NewInternalError(err)
	}

	if !post.Published && post.UserID != currentUserID {
		return nil, models.NewNotFoundError("Blog post", id)
	}

	if post.Published {
		if err := s.blogRepo.IncrementViews(ctx, id); err != nil {
			return nil, models.NewInternalError(err)
		}
		post.Views++
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(post.Content), &buf); err == nil {
		post.ContentHTML = buf.String()
	}

	return post, nil
}

func (s *BlogService) ListBlogs(ctx context.Context, in ListBlogsInput) (*BlogPage, error) {
	page, limit := models.ClampPagination(in.Page, in.Limit)
	filter := repository.BlogFilter{
		Tag:    strings.ToLower(strings.TrimSpace(in.Tag)),
		UserID: in.AuthorID,
		Search: strings.TrimSpace(in.Search),
	}

	blogs, total, err := s.blogRepo.List(ctx, filter, limit, (page-1)*limit, in.CurrentUserID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &BlogPage{
		Blogs:      blogs,
		Pagination: models.NewPagination(page, limit, total),
		Total:      total,
	}, nil
}

// ListUserBlogs lists one author's posts; drafts are included only when the
// requester is the author.
func (s *BlogService) ListUserBlogs(ctx context.Context, authorID uint, page, limit int, currentUserID uint) (*BlogPage, error) {
	page, limit = models.ClampPagination(page, limit)
	filter := repository.BlogFilter{
		UserID:        authorID,
		IncludeDrafts: authorID == currentUserID,
	}

	blogs, total, err := s.blogRepo.List(ctx, filter, limit, (page-1)*limit, currentUserID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &BlogPage{
		Blogs:      blogs,
		Pagination: models.NewPagination(page, limit, total),
		Total:      total,
	}, nil
}

func (s *BlogService) UpdateBlog(ctx context.Context, in UpdateBlogInput) (*models.BlogPost, error) {
	post, err := s.blogRepo.GetByID(ctx, in.BlogID, in.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Blog post", in.BlogID)
		}
		return nil, models.NewInternalError(err)
	}

	if post.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only update your own posts")
	}

	if in.Title != "" {
		if utf8.RuneCountInString(in.Title) > maxBlogTitleLen {
			return nil, models.NewValidationError("Title too long (max 200 characters)")
		}
		post.Title = strings.TrimSpace(in.Title)
	}
	if in.Content != "" {
		post.Content = in.Content
		post.ReadTime = models.ComputeReadTime(in.Content)
	}
	if in.Summary != "" {
		if utf8.RuneCountInString(in.Summary) > maxBlogSummaryLen {
			return nil, models.NewValidationError("Summary too long (max 500 characters)")
		}
		post.Summary = strings.TrimSpace(in.Summary)
	}
	if in.ImageURL != "" {
		post.ImageURL = in.ImageURL
	}
	if in.Published != nil {
		post.Published = *in.Published
	}

	if err := s.blogRepo.Update(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}

	if in.Tags != nil {
		tags, err := normalizeTags(in.Tags)
		if err != nil {
			return nil, err
		}
		if err := s.blogRepo.ReplaceTags(ctx, post.ID, tags); err != nil {
			return nil, models.NewInternalError(err)
		}
	}

	return s.blogRepo.GetByID(ctx, post.ID, in.UserID)
}

func (s *BlogService) DeleteBlog(ctx context.Context, blogID, userID uint) error {
	post, err := s.blogRepo.GetByID(ctx, blogID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Blog post", blogID)
		}
		return models.NewInternalError(err)
	}

	actor, err := s.getActor(ctx, userID)
	if err != nil {
		return models.NewInternalError(err)
	}
	if !authz.Can(actor, authz.BlogDelete, post.UserID) {
		return models.NewForbiddenError("You can only delete your own posts")
	}

	if err := s.blogRepo.Delete(ctx, blogID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (s *BlogService) PopularTags(ctx context.Context) ([]models.TagCount, error) {
	tags, err := s.blogRepo.PopularTags(ctx, 20)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if tags == nil {
		tags = []models.TagCount{}
	}
	return tags, nil
}

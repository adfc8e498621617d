package service

import (
	"context"
	"errors"
	"strconv"

	"hoopline/internal/middleware"
	"hoopline/internal/models"
	"hoopline/internal/repository"

	"gorm.io/gorm"
)

// LikeResult is the outcome of a toggle: the caller reads the new state from
// the response rather than assuming a direction.
type LikeResult struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"likes_count"`
}

// EngagementService flips like membership on blog posts and comments.
type EngagementService struct {
	blogRepo    repository.BlogRepository
	commentRepo repository.CommentRepository
}

func NewEngagementService(
	blogRepo repository.BlogRepository,
	commentRepo repository.CommentRepository,
) *EngagementService {
	return &EngagementService{blogRepo: blogRepo, commentRepo: commentRepo}
}

func (s *EngagementService) ToggleBlogLike(ctx context.Context, userID, blogID uint) (*LikeResult, error) {
	post, err := s.blogRepo.GetByID(ctx, blogID, 0)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Blog post", blogID)
		}
		return nil, models.NewInternalError(err)
	}
	if !post.Published && post.UserID != userID {
		return nil, models.NewNotFoundError("Blog post", blogID)
	}

	liked, count, err := s.blogRepo.ToggleLike(ctx, userID, blogID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	middleware.LikeToggles.WithLabelValues("blog", strconv.FormatBool(liked)).Inc()
	return &LikeResult{Liked: liked, Count: count}, nil
}

func (s *EngagementService) ToggleCommentLike(ctx context.Context, userID, commentID uint) (*LikeResult, error) {
	if _, err := s.commentRepo.GetByID(ctx, commentID, 0); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", commentID)
		}
		return nil, models.NewInternalError(err)
	}

	liked, count, err := s.commentRepo.ToggleLike(ctx, userID, commentID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	middleware.LikeToggles.WithLabelValues("comment", strconv.FormatBool(liked)).Inc()
	return &LikeResult{Liked: liked, Count: count}, nil
}

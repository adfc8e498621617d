package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"hoopline/internal/authz"
	"hoopline/internal/models"
	"hoopline/internal/repository"

	"gorm.io/gorm"
)

const maxCommentLen = 1000

type CommentService struct {
	commentRepo repository.CommentRepository
	getActor    func(ctx context.Context, userID uint) (*models.User, error)
}

type CreateCommentInput struct {
	UserID    uint
	ArticleID string
	Content   string
	ParentID  *uint
}

type UpdateCommentInput struct {
	UserID    uint
	CommentID uint
	Content   string
}

type DeleteCommentInput struct {
	UserID    uint
	CommentID uint
}

// CommentPage is a paginated listing result.
type CommentPage struct {
	Comments   []*models.Comment
	Pagination models.Pagination
	Total      int64
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	getActor func(ctx context.Context, userID uint) (*models.User, error),
) *CommentService {
	return &CommentService{commentRepo: commentRepo, getActor: getActor}
}

func validateCommentContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", models.NewValidationError("Comment content is required")
	}
	if utf8.RuneCountInString(content) > maxCommentLen {
		return "", models.NewValidationError("Comment too long (max 1000 characters)")
	}
	return content, nil
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if strings.TrimSpace(in.ArticleID) == "" {
		return nil, models.NewValidationError("Article id is required")
	}
	content, err := validateCommentContent(in.Content)
	if err != nil {
		return nil, err
	}

	if in.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *in.ParentID, 0)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.NewNotFoundError("Parent comment", *in.ParentID)
			}
			return nil, models.NewInternalError(err)
		}
		if parent.ArticleID != in.ArticleID {
			return nil, models.NewValidationError("Parent comment belongs to another article")
		}
		// Threads are one level deep: replying to a reply is rejected.
		if parent.ParentID != nil {
			return nil, models.NewValidationError("Cannot reply to a reply")
		}
	}

	comment := &models.Comment{
		ArticleID: in.ArticleID,
		Content:   content,
		UserID:    in.UserID,
		ParentID:  in.ParentID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}

	return s.commentRepo.GetByID(ctx, comment.ID, in.UserID)
}

func (s *CommentService) ListComments(ctx context.Context, articleID string, page, limit int, currentUserID uint) (*CommentPage, error) {
	if strings.TrimSpace(articleID) == "" {
		return nil, models.NewValidationError("Article id is required")
	}
	page, limit = models.ClampPagination(page, limit)

	comments, total, err := s.commentRepo.ListByArticle(ctx, articleID, limit, (page-1)*limit, currentUserID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &CommentPage{
		Comments:   comments,
		Pagination: models.NewPagination(page, limit, total),
		Total:      total,
	}, nil
}

func (s *CommentService) ListUserComments(ctx context.Context, userID uint, page, limit int) (*CommentPage, error) {
	page, limit = models.ClampPagination(page, limit)

	comments, total, err := s.commentRepo.ListByUser(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &CommentPage{
		Comments:   comments,
		Pagination: models.NewPagination(page, limit, total),
		Total:      total,
	}, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID, in.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", in.CommentID)
		}
		return nil, models.NewInternalError(err)
	}
	if comment.IsDeleted {
		return nil, models.NewValidationError("Cannot edit a deleted comment")
	}

	actor, err := s.getActor(ctx, in.UserID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !authz.Can(actor, authz.CommentUpdate, comment.UserID) {
		return nil, models.NewForbiddenError("You can only update your own comments")
	}

	content, err := validateCommentContent(in.Content)
	if err != nil {
		return nil, err
	}

	comment.Content = content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.commentRepo.GetByID(ctx, comment.ID, in.UserID)
}

// DeleteComment removes a comment. A comment that still has replies is
// tombstoned so the thread keeps its shape; a leaf comment is deleted
// outright.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID, in.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Comment", in.CommentID)
		}
		return models.NewInternalError(err)
	}

	actor, err := s.getActor(ctx, in.UserID)
	if err != nil {
		return models.NewInternalError(err)
	}
	if !authz.Can(actor, authz.CommentDelete, comment.UserID) {
		return models.NewForbiddenError("You can only delete your own comments")
	}

	hasReplies, err := s.commentRepo.HasReplies(ctx, in.CommentID)
	if err != nil {
		return models.NewInternalError(err)
	}

	if hasReplies {
		if err := s.commentRepo.Tombstone(ctx, in.CommentID); err != nil {
			return models.NewInternalError(err)
		}
		return nil
	}
	if err := s.commentRepo.Delete(ctx, in.CommentID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

package repository

import (
	"context"

	"hoopline/internal/models"
	"hoopline/internal/observability"

	"gorm.io/gorm"
)

// CommentRepository defines interface for comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Comment, error)
	ListByArticle(ctx context.Context, articleID string, limit, offset int, currentUserID uint) ([]*models.Comment, int64, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Comment, int64, error)
	Update(ctx context.Context, comment *models.Comment) error
	HasReplies(ctx context.Context, id uint) (bool, error)
	Tombstone(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
	ToggleLike(ctx context.Context, userID, commentID uint) (liked bool, count int64, err error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// applyCommentDetails adds subqueries to fetch the like count and liked
// status in a single query.
func (r *commentRepository) applyCommentDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "comments.*, " +
		"(SELECT COUNT(*) FROM comment_likes WHERE comment_likes.comment_id = comments.id) as likes_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM comment_likes WHERE comment_likes.comment_id = comments.id AND comment_likes.user_id = ?) as liked", currentUserID)
	}

	return db.Select(selectQuery + ", false as liked")
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.applyCommentDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByArticle(ctx context.Context, articleID string, limit, offset int, currentUserID uint) ([]*models.Comment, int64, error) {
	defer observability.TrackQuery("select", "comments")()

	base := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("comments.article_id = ? AND comments.parent_id IS NULL", articleID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []*models.Comment
	err := r.applyCommentDetails(base.Session(&gorm.Session{}), currentUserID).
		Preload("User").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return r.applyCommentDetails(db, currentUserID).Order("comments.created_at ASC")
		}).
		Preload("Replies.User").
		Order("comments.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *commentRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Comment, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("comments.user_id = ? AND comments.is_deleted = ?", userID, false)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []*models.Comment
	err := r.applyCommentDetails(base.Session(&gorm.Session{}), userID).
		Preload("User").
		Order("comments.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).
		Model(&models.Comment{ID: comment.ID}).
		Updates(map[string]any{"content": comment.Content}).Error
}

func (r *commentRepository) HasReplies(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("parent_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// Tombstone blanks a comment that still has replies so the thread keeps its
// shape. The row stays visible with placeholder content.
func (r *commentRepository) Tombstone(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Comment{ID: id}).
		Updates(map[string]any{
			"content":    models.TombstoneContent,
			"is_deleted": true,
		}).Error
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error
}

// ToggleLike flips the liker's membership atomically, same scheme as blog
// post likes.
func (r *commentRepository) ToggleLike(ctx context.Context, userID, commentID uint) (bool, int64, error) {
	defer observability.TrackQuery("toggle", "comment_likes")()

	insert := r.db.WithContext(ctx).Exec(
		`INSERT INTO comment_likes (user_id, comment_id, created_at)
		 VALUES (?, ?, NOW())
		 ON CONFLICT (user_id, comment_id) DO NOTHING`,
		userID, commentID,
	)
	if insert.Error != nil {
		return false, 0, insert.Error
	}

	liked := insert.RowsAffected == 1
	if !liked {
		if err := r.db.WithContext(ctx).
			Where("user_id = ? AND comment_id = ?", userID, commentID).
			Delete(&models.CommentLike{}).Error; err != nil {
			return false, 0, err
		}
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error; err != nil {
		return liked, 0, err
	}
	return liked, count, nil
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// TombstoneContent replaces the body of a soft-deleted comment that still has
// replies attached.
const TombstoneContent = "[This comment has been deleted]"

// Comment is a user comment attached to an article.
//
// ArticleID is an opaque string key rather than a foreign key to BlogPost:
// comments also attach to news articles that live outside the database.
// Threading is one level deep; a reply's ParentID always references a
// top-level comment.
type Comment struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ArticleID string `gorm:"size:64;not null;index:idx_comment_article_created,priority:1" json:"article_id"`
	Content   string `gorm:"size:1000;not null" json:"content"`
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	User      User   `gorm:"foreignKey:UserID" json:"user"`

	ParentID *uint     `gorm:"index" json:"parent_id,omitempty"`
	Replies  []Comment `gorm:"foreignKey:ParentID" json:"replies"`

	IsDeleted bool `gorm:"default:false" json:"is_deleted"`

	// LikesCount is not persisted; computed at query time.
	LikesCount int `gorm:"->" json:"likes_count"`
	// Liked indicates whether the current requesting user liked this comment (computed).
	Liked bool `gorm:"->" json:"liked"`

	CreatedAt time.Time      `gorm:"index:idx_comment_article_created,priority:2,sort:desc" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// CommentLike records a user's like on a comment; (UserID, CommentID) unique.
type CommentLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_comment_like" json:"user_id"`
	CommentID uint      `gorm:"not null;uniqueIndex:idx_comment_like" json:"comment_id"`
	CreatedAt time.Time `json:"created_at"`
}

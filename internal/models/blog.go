package models

import (
	"encoding/json"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

// wordsPerMinute is the reading speed used for the computed read time.
const wordsPerMinute = 200

// BlogPost represents an author-owned article in the community blog.
type BlogPost struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"size:200;not null" json:"title"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Summary  string `gorm:"size:500" json:"summary"`
	ImageURL string `json:"image_url"`
	UserID   uint   `gorm:"not null;index:idx_blog_owner_created,priority:1" json:"user_id"`
	User     User   `gorm:"foreignKey:UserID" json:"user"`

	Tags []BlogTag `gorm:"foreignKey:BlogPostID" json:"tags"`

	Published bool `gorm:"default:false;index" json:"published"`
	// Views is incremented atomically on every fetch of a published,
	// accessible post. No per-viewer dedup.
	Views    int `gorm:"default:0" json:"views"`
	ReadTime int `gorm:"default:1" json:"read_time"`

	// LikesCount is not persisted; computed at query time.
	LikesCount int `gorm:"->" json:"likes_count"`
	// Liked indicates whether the current requesting user liked this post (computed).
	Liked bool `gorm:"->" json:"liked"`

	// ContentHTML is the rendered Markdown body, populated on detail fetches only.
	ContentHTML string `gorm:"-" json:"content_html,omitempty"`

	CreatedAt time.Time      `gorm:"index:idx_blog_owner_created,priority:2,sort:desc" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BlogTag is a single lowercase tag attached to a post.
type BlogTag struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	BlogPostID uint   `gorm:"not null;index" json:"-"`
	Name       string `gorm:"size:50;not null;index" json:"name"`
}

// MarshalJSON renders a tag as its bare name so responses carry plain
// string arrays like the client expects.
func (t BlogTag) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Name)
}

// UnmarshalJSON accepts the bare-name form so cached posts round-trip.
func (t *BlogTag) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &t.Name)
}

// BlogLike records a user's like on a post. The (UserID, BlogPostID) pair is
// unique so a membership flip can be expressed as a single atomic statement.
type BlogLike struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_blog_like" json:"user_id"`
	BlogPostID uint      `gorm:"not null;uniqueIndex:idx_blog_like" json:"blog_post_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// TagCount is one entry of the popular-tags aggregation.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ComputeReadTime derives the estimated read time in minutes from the word
// count of content: ceil(words/200), minimum 1.
func ComputeReadTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 1
	}
	rt := int(math.Ceil(float64(words) / float64(wordsPerMinute)))
	if rt < 1 {
		rt = 1
	}
	return rt
}

// DefaultSummary returns the fallback summary for a post created without one:
// roughly the first 200 bytes of content, cut on a rune boundary, followed by
// an ellipsis.
func DefaultSummary(content string) string {
	if len(content) <= 200 {
		return content
	}
	cut := 200
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	return content[:cut] + "..."
}

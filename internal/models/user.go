// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Role is the authorization role of a user account.
type Role string

const (
	// RoleUser is the default role for registered accounts.
	RoleUser Role = "user"
	// RoleModerator can remove other users' comments.
	RoleModerator Role = "moderator"
	// RoleAdmin can manage all content and view newsletter statistics.
	RoleAdmin Role = "admin"
)

// NewsletterPreferences holds the per-category newsletter opt-ins of a user.
type NewsletterPreferences struct {
	NBA           bool `gorm:"default:true" json:"nba"`
	WNBA          bool `gorm:"default:false" json:"wnba"`
	NCAA          bool `gorm:"default:false" json:"ncaa"`
	International bool `gorm:"default:false" json:"international"`
	Breaking      bool `gorm:"default:true" json:"breaking"`
}

// NotificationPreferences holds delivery-channel opt-ins of a user.
type NotificationPreferences struct {
	Email bool `gorm:"default:true" json:"email"`
	Push  bool `gorm:"default:false" json:"push"`
}

// User represents a member of the Hoopline community.
//
// Accounts are never hard-deleted; deactivation sets IsActive=false so
// authored posts and comments keep a valid owner reference.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"size:50;not null" json:"first_name"`
	LastName  string `gorm:"size:50;not null" json:"last_name"`
	Username  string `gorm:"size:30;uniqueIndex;not null" json:"username"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	Avatar    string `json:"avatar"`
	Bio       string `gorm:"size:500" json:"bio"`

	IsVerified bool `gorm:"default:false" json:"is_verified"`
	IsActive   bool `gorm:"default:true" json:"is_active"`
	Role       Role `gorm:"type:varchar(20);default:'user'" json:"role"`

	// External identities from federated login providers.
	GoogleID   string `gorm:"index" json:"-"`
	FacebookID string `gorm:"index" json:"-"`

	Newsletter    NewsletterPreferences   `gorm:"embedded;embeddedPrefix:newsletter_" json:"newsletter_preferences"`
	Notifications NotificationPreferences `gorm:"embedded;embeddedPrefix:notification_" json:"notification_preferences"`

	LastLogin time.Time      `json:"last_login"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Posts []BlogPost `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// FullName returns the display name of the user.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// PublicProfile is the redacted view of a user returned on public routes.
// Email, preferences, and external identities are omitted.
type PublicProfile struct {
	ID         uint       `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Username   string     `json:"username"`
	Avatar     string     `json:"avatar"`
	Bio        string     `json:"bio"`
	IsVerified bool       `json:"is_verified"`
	CreatedAt  time.Time  `json:"created_at"`
	Posts      []BlogPost `json:"posts,omitempty"`
}

// Public returns the redacted view of the user.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Username:   u.Username,
		Avatar:     u.Avatar,
		Bio:        u.Bio,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
		Posts:      u.Posts,
	}
}

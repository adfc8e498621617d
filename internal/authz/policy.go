// Package authz centralizes role- and ownership-based permission checks.
//
// Handlers and services ask Can(actor, action, ownerID) instead of comparing
// role strings inline, so the policy lives in one table.
package authz

import "hoopline/internal/models"

// Action identifies an operation subject to authorization.
type Action string

const (
	BlogUpdate      Action = "blog.update"
	BlogDelete      Action = "blog.delete"
	CommentUpdate   Action = "comment.update"
	CommentDelete   Action = "comment.delete"
	NewsletterStats Action = "newsletter.stats"
)

// rolePolicy lists the actions a role may perform on resources it does NOT
// own. Owners are always allowed the ownerActions below regardless of role.
var rolePolicy = map[models.Role]map[Action]bool{
	models.RoleAdmin: {
		BlogDelete:      true,
		CommentUpdate:   true,
		CommentDelete:   true,
		NewsletterStats: true,
	},
	models.RoleModerator: {
		CommentDelete: true,
	},
	models.RoleUser: {},
}

// ownerActions are granted to the resource owner independent of role.
var ownerActions = map[Action]bool{
	BlogUpdate:    true,
	BlogDelete:    true,
	CommentUpdate: true,
	CommentDelete: true,
}

// Can reports whether actor may perform action on a resource owned by
// ownerID. For resource-less actions (admin views) pass ownerID 0.
func Can(actor *models.User, action Action, ownerID uint) bool {
	if actor == nil {
		return false
	}
	if ownerID != 0 && actor.ID == ownerID && ownerActions[action] {
		return true
	}
	allowed, ok := rolePolicy[actor.Role]
	if !ok {
		return false
	}
	return allowed[action]
}

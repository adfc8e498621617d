package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hoopline/internal/models"
	"hoopline/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LinkOutcome tags how an external identity was resolved to an account.
type LinkOutcome string

const (
	// LinkExisting means the external id was already attached to an account.
	LinkExisting LinkOutcome = "existing"
	// LinkByEmail means an account with the provider's email existed and the
	// external id was attached to it.
	LinkByEmail LinkOutcome = "linked"
	// LinkCreated means a fresh account was created for the identity.
	LinkCreated LinkOutcome = "created"
)

// ExternalIdentity is the profile a federated provider hands back on callback.
type ExternalIdentity struct {
	Provider  string // "google" or "facebook"
	ID        string
	Email     string
	FirstName string
	LastName  string
	Avatar    string
}

// IdentityService resolves federated identities to local accounts.
type IdentityService struct {
	userRepo repository.UserRepository
}

func NewIdentityService(userRepo repository.UserRepository) *IdentityService {
	return &IdentityService{userRepo: userRepo}
}

// Resolve finds or creates the account for an external identity using a
// three-way lookup: by external id, then by email (linking the id onto the
// account), then create. Repeated callbacks for the same external id land on
// the first branch and are therefore idempotent.
func (s *IdentityService) Resolve(ctx context.Context, ident ExternalIdentity) (*models.User, LinkOutcome, error) {
	if ident.ID == "" {
		return nil, "", models.NewValidationError("External identity is missing an id")
	}

	user, err := s.userRepo.GetByExternalID(ctx, ident.Provider, ident.ID)
	if err == nil {
		if touchErr := s.touchLogin(ctx, user); touchErr != nil {
			return nil, "", touchErr
		}
		return user, LinkExisting, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", models.NewInternalError(err)
	}

	email := strings.ToLower(strings.TrimSpace(ident.Email))
	if email != "" {
		user, err = s.userRepo.GetByEmail(ctx, email)
		if err == nil {
			s.setExternalID(user, ident)
			if touchErr := s.touchLogin(ctx, user); touchErr != nil {
				return nil, "", touchErr
			}
			return user, LinkByEmail, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", models.NewInternalError(err)
		}
	}

	username, err := s.synthesizeUsername(ctx, email)
	if err != nil {
		return nil, "", err
	}

	user = &models.User{
		FirstName:  ident.FirstName,
		LastName:   ident.LastName,
		Username:   username,
		Email:      email,
		Avatar:     ident.Avatar,
		IsVerified: true,
		IsActive:   true,
		Role:       models.RoleUser,
		Newsletter: models.DefaultNewsletterPreferences(),
		LastLogin:  time.Now(),
	}
	s.setExternalID(user, ident)

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", models.NewInternalError(err)
	}
	return user, LinkCreated, nil
}

func (s *IdentityService) setExternalID(user *models.User, ident ExternalIdentity) {
	switch ident.Provider {
	case "facebook":
		user.FacebookID = ident.ID
	default:
		user.GoogleID = ident.ID
	}
}

func (s *IdentityService) touchLogin(ctx context.Context, user *models.User) error {
	user.LastLogin = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// synthesizeUsername derives a unique username from the email local part,
// appending a random suffix until it is free.
func (s *IdentityService) synthesizeUsername(ctx context.Context, email string) (string, error) {
	base := "fan"
	if at := strings.IndexByte(email, '@'); at > 0 {
		base = sanitizeUsername(email[:at])
	}
	if len(base) > 20 {
		base = base[:20]
	}

	for range 5 {
		candidate := fmt.Sprintf("%s_%s", base, uuid.NewString()[:8])
		taken, err := s.userRepo.UsernameExists(ctx, candidate)
		if err != nil {
			return "", models.NewInternalError(err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", models.NewInternalError(errors.New("could not synthesize a unique username"))
}

// sanitizeUsername keeps only the characters usernames allow.
func sanitizeUsername(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(raw) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "fan"
	}
	return b.String()
}

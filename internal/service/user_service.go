package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"hoopline/internal/cache"
	"hoopline/internal/models"
	"hoopline/internal/repository"
	"hoopline/internal/validation"

	"gorm.io/gorm"
)

type UserService struct {
	userRepo repository.UserRepository
	blogRepo repository.BlogRepository
}

type UpdateProfileInput struct {
	UserID    uint
	FirstName string
	LastName  string
	Bio       *string
	Avatar    *string
}

type UpdatePreferencesInput struct {
	UserID        uint
	Newsletter    models.PreferencesPatch
	Notifications models.NotificationPreferencesPatch
}

func NewUserService(userRepo repository.UserRepository, blogRepo repository.BlogRepository) *UserService {
	return &UserService{userRepo: userRepo, blogRepo: blogRepo}
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", userID)
		}
		return nil, models.NewInternalError(err)
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.GetProfile(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.FirstName != "" {
		if err := validation.ValidateName("First name", in.FirstName); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.FirstName = strings.TrimSpace(in.FirstName)
	}
	if in.LastName != "" {
		if err := validation.ValidateName("Last name", in.LastName); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.LastName = strings.TrimSpace(in.LastName)
	}
	if in.Bio != nil {
		if utf8.RuneCountInString(*in.Bio) > 500 {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		user.Bio = *in.Bio
	}
	if in.Avatar != nil {
		user.Avatar = *in.Avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, models.NewInternalError(err)
	}
	return user, nil
}

// UpdatePreferences merges newsletter and notification flag patches onto the
// account; unspecified flags keep their stored values.
func (s *UserService) UpdatePreferences(ctx context.Context, in UpdatePreferencesInput) (*models.User, error) {
	user, err := s.GetProfile(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	in.Newsletter.ApplyTo(&user.Newsletter)
	in.Notifications.ApplyTo(&user.Notifications)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, models.NewInternalError(err)
	}
	return user, nil
}

// PublicProfile returns the redacted view of a user with their recent
// published posts. Missing and deactivated accounts both read as not found.
// Profiles are served cache-aside; account updates invalidate the key.
func (s *UserService) PublicProfile(ctx context.Context, userID uint) (*models.PublicProfile, error) {
	return cache.Aside(ctx, cache.UserKey(userID), cache.UserTTL, func() (*models.PublicProfile, error) {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.NewNotFoundError("User", userID)
			}
			return nil, models.NewInternalError(err)
		}
		if !user.IsActive {
			return nil, models.NewNotFoundError("User", userID)
		}

		posts, _, err := s.blogRepo.List(ctx, repository.BlogFilter{UserID: userID}, 5, 0, 0)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		for _, p := range posts {
			user.Posts = append(user.Posts, *p)
		}

		profile := user.Public()
		return &profile, nil
	})
}

// DeactivateAccount flags the account inactive. Rows are never hard-deleted
// so authored posts and comments keep a valid owner.
func (s *UserService) DeactivateAccount(ctx context.Context, userID uint) error {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	user.IsActive = false
	if err := s.userRepo.Update(ctx, user); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

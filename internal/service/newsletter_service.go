package service

import (
	"context"
	"errors"
	"strings"

	"hoopline/internal/models"
	"hoopline/internal/repository"
	"hoopline/internal/validation"

	"gorm.io/gorm"
)

// NewsletterMailer is the slice of the mailer the subscription registry needs.
type NewsletterMailer interface {
	SendNewsletterWelcome(ctx context.Context, to string)
	SendNewsletterGoodbye(ctx context.Context, to string)
}

type NewsletterService struct {
	newsletterRepo repository.NewsletterRepository
	mailer         NewsletterMailer
}

type SubscribeInput struct {
	Email       string
	Preferences models.PreferencesPatch
	Source      models.SubscriptionSource
}

func NewNewsletterService(
	newsletterRepo repository.NewsletterRepository,
	mailer NewsletterMailer,
) *NewsletterService {
	return &NewsletterService{newsletterRepo: newsletterRepo, mailer: mailer}
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validation.ValidateEmail(email); err != nil {
		return "", models.NewValidationError(err.Error())
	}
	return email, nil
}

// Subscribe upserts a subscription. An existing row keeps every flag the
// patch does not mention; a new row starts from the defaults before the patch
// is applied. A welcome email goes out best-effort on both paths.
func (s *NewsletterService) Subscribe(ctx context.Context, in SubscribeInput) (*models.NewsletterSubscription, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}

	sub, err := s.newsletterRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		in.Preferences.ApplyTo(&sub.Preferences)
		sub.IsActive = true
	case errors.Is(err, gorm.ErrRecordNotFound):
		source := in.Source
		if source == "" {
			source = models.SourceWebsite
		}
		prefs := models.DefaultNewsletterPreferences()
		in.Preferences.ApplyTo(&prefs)
		sub = &models.NewsletterSubscription{
			Email:       email,
			Preferences: prefs,
			IsActive:    true,
			Source:      source,
		}
	default:
		return nil, models.NewInternalError(err)
	}

	if err := s.newsletterRepo.Upsert(ctx, sub); err != nil {
		return nil, models.NewInternalError(err)
	}

	if s.mailer != nil {
		s.mailer.SendNewsletterWelcome(ctx, email)
	}
	return sub, nil
}

// UpdatePreferences merges the patch into an existing subscription; 404 when
// the email was never subscribed.
func (s *NewsletterService) UpdatePreferences(ctx context.Context, email string, patch models.PreferencesPatch) (*models.NewsletterSubscription, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	sub, err := s.newsletterRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Subscription", email)
		}
		return nil, models.NewInternalError(err)
	}

	patch.ApplyTo(&sub.Preferences)
	if err := s.newsletterRepo.Upsert(ctx, sub); err != nil {
		return nil, models.NewInternalError(err)
	}
	return sub, nil
}

// Unsubscribe hard-deletes the subscription and sends a best-effort goodbye.
func (s *NewsletterService) Unsubscribe(ctx context.Context, email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	if _, err := s.newsletterRepo.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Subscription", email)
		}
		return models.NewInternalError(err)
	}

	if err := s.newsletterRepo.Delete(ctx, email); err != nil {
		return models.NewInternalError(err)
	}

	if s.mailer != nil {
		s.mailer.SendNewsletterGoodbye(ctx, email)
	}
	return nil
}

func (s *NewsletterService) Stats(ctx context.Context) (*models.NewsletterStats, error) {
	stats, err := s.newsletterRepo.Stats(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return stats, nil
}

package repository

import (
	"context"

	"hoopline/internal/models"

	"gorm.io/gorm"
)

// NewsletterRepository defines interface for newsletter subscription operations
type NewsletterRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.NewsletterSubscription, error)
	Upsert(ctx context.Context, sub *models.NewsletterSubscription) error
	Delete(ctx context.Context, email string) error
	Stats(ctx context.Context) (*models.NewsletterStats, error)
}

type newsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository creates a new NewsletterRepository
func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) GetByEmail(ctx context.Context, email string) (*models.NewsletterSubscription, error) {
	var sub models.NewsletterSubscription
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *newsletterRepository) Upsert(ctx context.Context, sub *models.NewsletterSubscription) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

// Delete removes the subscription row entirely; unsubscribing leaves no trace.
func (r *newsletterRepository) Delete(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&models.NewsletterSubscription{}).Error
}

func (r *newsletterRepository) Stats(ctx context.Context) (*models.NewsletterStats, error) {
	var stats models.NewsletterStats

	active := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&models.NewsletterSubscription{}).
			Where("is_active = ?", true)
	}

	if err := active().Count(&stats.TotalSubscribers).Error; err != nil {
		return nil, err
	}

	counts := []struct {
		column string
		dest   *int64
	}{
		{"pref_nba", &stats.PreferenceStats.NBA},
		{"pref_wnba", &stats.PreferenceStats.WNBA},
		{"pref_ncaa", &stats.PreferenceStats.NCAA},
		{"pref_international", &stats.PreferenceStats.International},
		{"pref_breaking", &stats.PreferenceStats.Breaking},
	}
	for _, c := range counts {
		if err := active().Where(c.column+" = ?", true).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	return &stats, nil
}

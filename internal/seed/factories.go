// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"hoopline/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var blogTags = []string{
	"nba", "wnba", "ncaa", "playoffs", "draft", "trade-deadline",
	"analytics", "coaching", "euroleague", "g-league", "defense", "offense",
}

var teams = []string{
	"Celtics", "Nuggets", "Thunder", "Knicks", "Timberwolves",
	"Aces", "Liberty", "Sky", "Fever", "Pacers", "Mavericks", "Sparks",
}

var titleTemplates = []string{
	"Why the %s Are Built for the Playoffs",
	"Breaking Down the %s' Pick-and-Roll Coverage",
	"The %s Rebuild, One Year In",
	"What the Numbers Say About the %s",
	"Film Room: How the %s Attack a Switch",
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// pastTime returns a timestamp spread over the last maxDays days so listings
// do not all share one created_at.
func (f *Factory) pastTime(maxDays int) time.Time {
	return time.Now().
		Add(-time.Duration(f.rng.Intn(maxDays*24)) * time.Hour).
		Add(-time.Duration(f.rng.Intn(60)) * time.Minute)
}

// CreateUser constructs and persists a sample user. The password for every
// seeded account is "password123".
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName:     gofakeit.FirstName(),
		LastName:      gofakeit.LastName(),
		Username:      strings.ToLower(gofakeit.Username()) + fmt.Sprintf("%d", gofakeit.Number(10, 999)),
		Email:         strings.ToLower(gofakeit.Email()),
		Password:      string(hashed),
		Bio:           gofakeit.Sentence(12),
		Avatar:        fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		IsActive:      true,
		Role:          models.RoleUser,
		Newsletter:    models.DefaultNewsletterPreferences(),
		Notifications: models.NotificationPreferences{Email: true},
		LastLogin:     f.pastTime(30),
	}
	user.CreatedAt = f.pastTime(365)

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateBlogPost constructs and persists a post authored by the given user.
func (f *Factory) CreateBlogPost(user *models.User, overrides ...func(*models.BlogPost)) (*models.BlogPost, error) {
	team := teams[f.rng.Intn(len(teams))]
	title := fmt.Sprintf(titleTemplates[f.rng.Intn(len(titleTemplates))], team)
	content := gofakeit.Paragraph(4, 5, 12, "\n\n")

	post := &models.BlogPost{
		Title:     title,
		Content:   content,
		Summary:   models.DefaultSummary(content),
		ImageURL:  fmt.Sprintf("https://picsum.photos/seed/%s/1200/630", gofakeit.UUID()),
		UserID:    user.ID,
		Published: f.rng.Intn(10) > 1, // ~80% published
		Views:     f.rng.Intn(5000),
		ReadTime:  models.ComputeReadTime(content),
	}
	post.CreatedAt = f.pastTime(180)

	for _, name := range pick(f.rng, blogTags, 1+f.rng.Intn(3)) {
		post.Tags = append(post.Tags, models.BlogTag{Name: name})
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a comment on the given article key, optionally as a
// reply to parent.
func (f *Factory) CreateComment(user *models.User, articleID string, parent *models.Comment) (*models.Comment, error) {
	comment := &models.Comment{
		ArticleID: articleID,
		Content:   gofakeit.Sentence(8 + f.rng.Intn(12)),
		UserID:    user.ID,
	}
	if parent != nil {
		comment.ParentID = &parent.ID
	}
	comment.CreatedAt = f.pastTime(60)

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateSubscription persists a newsletter subscription with randomized
// preference flags.
func (f *Factory) CreateSubscription() (*models.NewsletterSubscription, error) {
	sub := &models.NewsletterSubscription{
		Email: strings.ToLower(gofakeit.Email()),
		Preferences: models.NewsletterPreferences{
			NBA:           f.rng.Intn(10) > 2,
			WNBA:          f.rng.Intn(10) > 6,
			NCAA:          f.rng.Intn(10) > 6,
			International: f.rng.Intn(10) > 7,
			Breaking:      f.rng.Intn(10) > 3,
		},
		IsActive: true,
		Source:   []models.SubscriptionSource{models.SourceWebsite, models.SourceSocial, models.SourceReferral}[f.rng.Intn(3)],
	}
	if err := f.db.Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

// pick returns n distinct random elements of options.
func pick(rng *rand.Rand, options []string, n int) []string {
	idx := rng.Perm(len(options))
	if n > len(options) {
		n = len(options)
	}
	out := make([]string, 0, n)
	for _, i := range idx[:n] {
		out = append(out, options[i])
	}
	return out
}

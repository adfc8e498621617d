package seed

import (
	"fmt"
	"testing"

	"hoopline/internal/database"
	"hoopline/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.Models()...))
	return db
}

func TestFactoryCreateUser(t *testing.T) {
	db := newTestDB(t)
	f := NewFactory(db)

	user, err := f.CreateUser()
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.True(t, user.IsActive)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
}

func TestFactoryCreateUserOverrides(t *testing.T) {
	db := newTestDB(t)
	f := NewFactory(db)

	user, err := f.CreateUser(func(u *models.User) {
		u.Username = "hooplineadmin"
		u.Role = models.RoleAdmin
	})
	require.NoError(t, err)

	assert.Equal(t, "hooplineadmin", user.Username)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestFactoryCreateBlogPost(t *testing.T) {
	db := newTestDB(t)
	f := NewFactory(db)

	author, err := f.CreateUser()
	require.NoError(t, err)

	post, err := f.CreateBlogPost(author)
	require.NoError(t, err)

	assert.NotZero(t, post.ID)
	assert.Equal(t, author.ID, post.UserID)
	assert.NotEmpty(t, post.Title)
	assert.NotEmpty(t, post.Tags)
	assert.GreaterOrEqual(t, post.ReadTime, 1)

	var tagCount int64
	require.NoError(t, db.Model(&models.BlogTag{}).Where("blog_post_id = ?", post.ID).Count(&tagCount).Error)
	assert.Equal(t, int64(len(post.Tags)), tagCount)
}

func TestFactoryCreateCommentThread(t *testing.T) {
	db := newTestDB(t)
	f := NewFactory(db)

	user, err := f.CreateUser()
	require.NoError(t, err)

	parent, err := f.CreateComment(user, "blog-1", nil)
	require.NoError(t, err)
	assert.Nil(t, parent.ParentID)

	reply, err := f.CreateComment(user, "blog-1", parent)
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, parent.ID, *reply.ParentID)
	assert.Equal(t, "blog-1", reply.ArticleID)
}

func TestSeedPopulatesAllTables(t *testing.T) {
	db := newTestDB(t)

	// ShouldClean uses TRUNCATE CASCADE, which sqlite does not support.
	err := Seed(db, Options{NumUsers: 8, NumPosts: 12, NumSubs: 10})
	require.NoError(t, err)

	counts := map[string]int64{}
	for _, model := range []struct {
		name string
		m    any
	}{
		{"users", &models.User{}},
		{"posts", &models.BlogPost{}},
		{"comments", &models.Comment{}},
		{"subscriptions", &models.NewsletterSubscription{}},
	} {
		var n int64
		require.NoError(t, db.Model(model.m).Count(&n).Error)
		counts[model.name] = n
	}

	assert.Equal(t, int64(8), counts["users"])
	assert.Equal(t, int64(12), counts["posts"])
	assert.Greater(t, counts["comments"], int64(0), "expected seeded comments")
	assert.Equal(t, int64(10), counts["subscriptions"])

	// The fixed demo accounts must exist with their elevated roles.
	var admin models.User
	require.NoError(t, db.Where("username = ?", "hooplineadmin").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	var mod models.User
	require.NoError(t, db.Where("username = ?", "courtside_mod").First(&mod).Error)
	assert.Equal(t, models.RoleModerator, mod.Role)
}

func TestSeedCommentArticleKeys(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Seed(db, Options{NumUsers: 4, NumPosts: 5, NumSubs: 0}))

	var keys []string
	require.NoError(t, db.Model(&models.Comment{}).Distinct("article_id").Pluck("article_id", &keys).Error)

	foundNews := false
	for _, k := range keys {
		if k == fmt.Sprintf("news-%d", 1) {
			foundNews = true
		}
	}
	assert.True(t, foundNews, "expected comments on news articles, got keys %v", keys)
}

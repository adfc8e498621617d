package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestModelsMigrate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(Models()...))

	for _, table := range []string{
		"users", "blog_posts", "blog_tags", "blog_likes",
		"comments", "comment_likes", "newsletter_subscriptions",
	} {
		assert.True(t, db.Migrator().HasTable(table), "expected table %s", table)
	}
}

package repository

import (
	"context"

	"hoopline/internal/cache"
	"hoopline/internal/models"
	"hoopline/internal/observability"

	"gorm.io/gorm"
)

// BlogFilter narrows a blog listing. Zero values mean "no filter".
type BlogFilter struct {
	Tag    string
	Search string
	UserID uint
	// IncludeDrafts lists unpublished posts too; only valid when the
	// listing is scoped to the author's own posts.
	IncludeDrafts bool
}

// BlogRepository defines the interface for blog post data operations
type BlogRepository interface {
	Create(ctx context.Context, post *models.BlogPost) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.BlogPost, error)
	List(ctx context.Context, filter BlogFilter, limit, offset int, currentUserID uint) ([]*models.BlogPost, int64, error)
	Update(ctx context.Context, post *models.BlogPost) error
	ReplaceTags(ctx context.Context, postID uint, tags []string) error
	Delete(ctx context.Context, id uint) error
	ToggleLike(ctx context.Context, userID, postID uint) (liked bool, count int64, err error)
	IncrementViews(ctx context.Context, id uint) error
	PopularTags(ctx context.Context, limit int) ([]models.TagCount, error)
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, post *models.BlogPost) error {
	err := r.db.WithContext(ctx).Create(post).Error
	if err == nil {
		cache.InvalidateBlog(ctx, post.ID)
	}
	return err
}

// applyBlogDetails adds subqueries to fetch the like count and liked status
// in a single query.
func (r *blogRepository) applyBlogDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "blog_posts.*, " +
		"(SELECT COUNT(*) FROM blog_likes WHERE blog_likes.blog_post_id = blog_posts.id) as likes_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM blog_likes WHERE blog_likes.blog_post_id = blog_posts.id AND blog_likes.user_id = ?) as liked", currentUserID)
	}

	return db.Select(selectQuery + ", false as liked")
}

func (r *blogRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.BlogPost, error) {
	defer observability.TrackQuery("select", "blog_posts")()

	load := func() (models.BlogPost, error) {
		var post models.BlogPost
		err := r.applyBlogDetails(r.db.WithContext(ctx), currentUserID).
			Preload("User").
			Preload("Tags").
			First(&post, id).Error
		return post, err
	}

	// Anonymous reads share a cached copy; viewer-specific fields make
	// authenticated reads uncacheable.
	if currentUserID == 0 {
		post, err := cache.Aside(ctx, cache.BlogKey(id), cache.BlogTTL, load)
		if err != nil {
			return nil, err
		}
		return &post, nil
	}

	post, err := load()
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) List(ctx context.Context, filter BlogFilter, limit, offset int, currentUserID uint) ([]*models.BlogPost, int64, error) {
	defer observability.TrackQuery("select", "blog_posts")()

	base := r.db.WithContext(ctx).Model(&models.BlogPost{})
	if !filter.IncludeDrafts {
		base = base.Where("blog_posts.published = ?", true)
	}
	if filter.UserID != 0 {
		base = base.Where("blog_posts.user_id = ?", filter.UserID)
	}
	if filter.Tag != "" {
		base = base.Where("EXISTS(SELECT 1 FROM blog_tags WHERE blog_tags.blog_post_id = blog_posts.id AND blog_tags.name = ?)", filter.Tag)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		base = base.Where("blog_posts.title ILIKE ? OR blog_posts.content ILIKE ?", like, like)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*models.BlogPost
	err := r.applyBlogDetails(base.Session(&gorm.Session{}), currentUserID).
		Preload("User").
		Preload("Tags").
		Order("blog_posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *blogRepository) Update(ctx context.Context, post *models.BlogPost) error {
	if err := r.db.WithContext(ctx).Omit("Tags", "User").Save(post).Error; err != nil {
		return err
	}
	cache.InvalidateBlog(ctx, post.ID)
	return nil
}

// ReplaceTags swaps the full tag set of a post in one transaction.
func (r *blogRepository) ReplaceTags(ctx context.Context, postID uint, tags []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("blog_post_id = ?", postID).Delete(&models.BlogTag{}).Error; err != nil {
			return err
		}
		if len(tags) == 0 {
			return nil
		}
		rows := make([]models.BlogTag, 0, len(tags))
		for _, name := range tags {
			rows = append(rows, models.BlogTag{BlogPostID: postID, Name: name})
		}
		return tx.Create(&rows).Error
	})
	if err == nil {
		cache.InvalidateBlog(ctx, postID)
	}
	return err
}

func (r *blogRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.BlogPost{}, id).Error; err != nil {
		return err
	}
	cache.InvalidateBlog(ctx, id)
	return nil
}

// ToggleLike flips the liker's membership atomically. The insert races safely
// against concurrent toggles: exactly one of the conflicting statements
// observes RowsAffected == 1.
func (r *blogRepository) ToggleLike(ctx context.Context, userID, postID uint) (bool, int64, error) {
	defer observability.TrackQuery("toggle", "blog_likes")()

	insert := r.db.WithContext(ctx).Exec(
		`INSERT INTO blog_likes (user_id, blog_post_id, created_at)
		 VALUES (?, ?, NOW())
		 ON CONFLICT (user_id, blog_post_id) DO NOTHING`,
		userID, postID,
	)
	if insert.Error != nil {
		return false, 0, insert.Error
	}

	liked := insert.RowsAffected == 1
	if !liked {
		if err := r.db.WithContext(ctx).
			Where("user_id = ? AND blog_post_id = ?", userID, postID).
			Delete(&models.BlogLike{}).Error; err != nil {
			return false, 0, err
		}
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BlogLike{}).
		Where("blog_post_id = ?", postID).
		Count(&count).Error; err != nil {
		return liked, 0, err
	}

	cache.InvalidateBlog(ctx, postID)
	return liked, count, nil
}

// IncrementViews bumps the view counter with a single UPDATE so concurrent
// fetches never lose increments.
func (r *blogRepository) IncrementViews(ctx context.Context, id uint) error {
	defer observability.TrackQuery("update", "blog_posts")()

	err := r.db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
	if err != nil {
		return err
	}

	// The cached copy carries the old count; drop it like other mutations do.
	cache.Delete(ctx, cache.BlogKey(id))
	return nil
}

func (r *blogRepository) PopularTags(ctx context.Context, limit int) ([]models.TagCount, error) {
	return cache.Aside(ctx, cache.PopularTagsKey, cache.TagTTL, func() ([]models.TagCount, error) {
		defer observability.TrackQuery("select", "blog_tags")()

		var tags []models.TagCount
		err := r.db.WithContext(ctx).
			Model(&models.BlogTag{}).
			Select("blog_tags.name as name, COUNT(*) as count").
			Joins("JOIN blog_posts ON blog_posts.id = blog_tags.blog_post_id").
			Where("blog_posts.published = ? AND blog_posts.deleted_at IS NULL", true).
			Group("blog_tags.name").
			Order("count DESC, name ASC").
			Limit(limit).
			Scan(&tags).Error
		return tags, err
	})
}

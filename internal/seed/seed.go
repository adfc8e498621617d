package seed

import (
	"fmt"
	"log"
	"strings"

	"hoopline/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	NumSubs     int
	ShouldClean bool
}

// Seed populates the database with demo data. Every seeded account logs in
// with the password "password123".
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	f := NewFactory(db)

	users, err := createUsers(f, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d users created", len(users))

	posts, err := createPosts(f, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	comments, err := createComments(f, users, posts)
	if err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("✓ %d comments created", comments)

	likes, err := createLikes(f, users, posts)
	if err != nil {
		return fmt.Errorf("failed to create likes: %w", err)
	}
	log.Printf("✓ %d likes created", likes)

	subs, err := createSubscriptions(f, opts.NumSubs)
	if err != nil {
		return fmt.Errorf("failed to create subscriptions: %w", err)
	}
	log.Printf("✓ %d newsletter subscriptions created", subs)

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE blog_likes, comment_likes, comments, blog_tags, blog_posts, newsletter_subscriptions, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(f *Factory, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)

	// Fixed accounts so the demo login credentials stay stable across reseeds.
	base := []struct {
		username string
		role     models.Role
		bio      string
	}{
		{"hooplineadmin", models.RoleAdmin, "Runs the place. Still mad about the 2016 Finals."},
		{"courtside_mod", models.RoleModerator, "Keeping the comment section civil since day one."},
		{"test", models.RoleUser, "Just here for the box scores."},
	}
	for _, b := range base {
		b := b
		user, err := f.CreateUser(func(u *models.User) {
			u.Username = b.username
			u.Email = fmt.Sprintf("%s@example.com", b.username)
			u.Role = b.role
			u.Bio = b.bio
			u.IsVerified = true
		})
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	for i := len(users); i < count; i++ {
		user, err := f.CreateUser()
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, user)

		if i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}
	return users, nil
}

func createPosts(f *Factory, users []*models.User, count int) ([]*models.BlogPost, error) {
	posts := make([]*models.BlogPost, 0, count)
	for i := 0; i < count; i++ {
		author := users[f.rng.Intn(len(users))]
		post, err := f.CreateBlogPost(author)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)

		if i%100 == 0 {
			log.Printf("Created %d posts...", i)
		}
	}
	return posts, nil
}

// createComments puts a small thread under most posts and scatters a few
// comments on news article keys so both surfaces have content.
func createComments(f *Factory, users []*models.User, posts []*models.BlogPost) (int, error) {
	total := 0
	for _, post := range posts {
		if f.rng.Intn(10) < 2 {
			continue
		}
		articleID := fmt.Sprintf("blog-%d", post.ID)
		top := 1 + f.rng.Intn(4)
		for i := 0; i < top; i++ {
			parent, err := f.CreateComment(users[f.rng.Intn(len(users))], articleID, nil)
			if err != nil {
				return total, err
			}
			total++
			for r := 0; r < f.rng.Intn(3); r++ {
				if _, err := f.CreateComment(users[f.rng.Intn(len(users))], articleID, parent); err != nil {
					return total, err
				}
				total++
			}
		}
	}

	for i := 1; i <= 5; i++ {
		articleID := fmt.Sprintf("news-%d", i)
		for c := 0; c < 1+f.rng.Intn(3); c++ {
			if _, err := f.CreateComment(users[f.rng.Intn(len(users))], articleID, nil); err != nil {
				return total, err
			}
			total++
		}
	}
	return total, nil
}

func createLikes(f *Factory, users []*models.User, posts []*models.BlogPost) (int, error) {
	total := 0
	for _, post := range posts {
		for _, user := range users {
			if f.rng.Intn(10) > 2 {
				continue
			}
			like := models.BlogLike{UserID: user.ID, BlogPostID: post.ID}
			if err := f.db.Create(&like).Error; err != nil {
				return total, err
			}
			total++
		}
	}

	var comments []models.Comment
	if err := f.db.Find(&comments).Error; err != nil {
		return total, err
	}
	for _, comment := range comments {
		for _, user := range users {
			if f.rng.Intn(10) > 1 {
				continue
			}
			like := models.CommentLike{UserID: user.ID, CommentID: comment.ID}
			if err := f.db.Create(&like).Error; err != nil {
				return total, err
			}
			total++
		}
	}
	return total, nil
}

func createSubscriptions(f *Factory, count int) (int, error) {
	created := 0
	for i := 0; i < count; i++ {
		if _, err := f.CreateSubscription(); err != nil {
			continue
		}
		created++
	}
	return created, nil
}

// DemoCredentials returns the login hint printed after a successful seed.
func DemoCredentials() string {
	var sb strings.Builder
	sb.WriteString("Demo accounts (password for all: password123):\n")
	sb.WriteString("  hooplineadmin@example.com  (admin)\n")
	sb.WriteString("  courtside_mod@example.com  (moderator)\n")
	sb.WriteString("  test@example.com           (user)\n")
	return sb.String()
}

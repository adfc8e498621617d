package service

import (
	"context"
	"testing"

	"hoopline/internal/models"
	"hoopline/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// blogRepoStub is a stub for repository.BlogRepository.
type blogRepoStub struct {
	createFn         func(context.Context, *models.BlogPost) error
	getByIDFn        func(context.Context, uint, uint) (*models.BlogPost, error)
	listFn           func(context.Context, repository.BlogFilter, int, int, uint) ([]*models.BlogPost, int64, error)
	updateFn         func(context.Context, *models.BlogPost) error
	replaceTagsFn    func(context.Context, uint, []string) error
	deleteFn         func(context.Context, uint) error
	toggleLikeFn     func(context.Context, uint, uint) (bool, int64, error)
	incrementViewsFn func(context.Context, uint) error
	popularTagsFn    func(context.Context, int) ([]models.TagCount, error)
}

func (s *blogRepoStub) Create(ctx context.Context, post *models.BlogPost) error {
	return s.createFn(ctx, post)
}
func (s *blogRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.BlogPost, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *blogRepoStub) List(ctx context.Context, f repository.BlogFilter, limit, offset int, currentUserID uint) ([]*models.BlogPost, int64, error) {
	return s.listFn(ctx, f, limit, offset, currentUserID)
}
func (s *blogRepoStub) Update(ctx context.Context, post *models.BlogPost) error {
	return s.updateFn(ctx, post)
}
func (s *blogRepoStub) ReplaceTags(ctx context.Context, postID uint, tags []string) error {
	return s.replaceTagsFn(ctx, postID, tags)
}
func (s *blogRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *blogRepoStub) ToggleLike(ctx context.Context, userID, postID uint) (bool, int64, error) {
	return s.toggleLikeFn(ctx, userID, postID)
}
func (s *blogRepoStub) IncrementViews(ctx context.Context, id uint) error {
	return s.incrementViewsFn(ctx, id)
}
func (s *blogRepoStub) PopularTags(ctx context.Context, limit int) ([]models.TagCount, error) {
	return s.popularTagsFn(ctx, limit)
}

func noopBlogRepo() *blogRepoStub {
	return &blogRepoStub{
		createFn: func(_ context.Context, p *models.BlogPost) error {
			p.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id, _ uint) (*models.BlogPost, error) {
			return &models.BlogPost{ID: id, UserID: 1, Published: true}, nil
		},
		listFn: func(context.Context, repository.BlogFilter, int, int, uint) ([]*models.BlogPost, int64, error) {
			return nil, 0, nil
		},
		updateFn:         func(context.Context, *models.BlogPost) error { return nil },
		replaceTagsFn:    func(context.Context, uint, []string) error { return nil },
		deleteFn:         func(context.Context, uint) error { return nil },
		toggleLikeFn:     func(context.Context, uint, uint) (bool, int64, error) { return true, 1, nil },
		incrementViewsFn: func(context.Context, uint) error { return nil },
		popularTagsFn:    func(context.Context, int) ([]models.TagCount, error) { return nil, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn        func(context.Context, *models.Comment) error
	getByIDFn       func(context.Context, uint, uint) (*models.Comment, error)
	listByArticleFn func(context.Context, string, int, int, uint) ([]*models.Comment, int64, error)
	listByUserFn    func(context.Context, uint, int, int) ([]*models.Comment, int64, error)
	updateFn        func(context.Context, *models.Comment) error
	hasRepliesFn    func(context.Context, uint) (bool, error)
	tombstoneFn     func(context.Context, uint) error
	deleteFn        func(context.Context, uint) error
	toggleLikeFn    func(context.Context, uint, uint) (bool, int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, c *models.Comment) error {
	return s.createFn(ctx, c)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *commentRepoStub) ListByArticle(ctx context.Context, articleID string, limit, offset int, currentUserID uint) ([]*models.Comment, int64, error) {
	return s.listByArticleFn(ctx, articleID, limit, offset, currentUserID)
}
func (s *commentRepoStub) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Comment, int64, error) {
	return s.listByUserFn(ctx, userID, limit, offset)
}
func (s *commentRepoStub) Update(ctx context.Context, c *models.Comment) error {
	return s.updateFn(ctx, c)
}
func (s *commentRepoStub) HasReplies(ctx context.Context, id uint) (bool, error) {
	return s.hasRepliesFn(ctx, id)
}
func (s *commentRepoStub) Tombstone(ctx context.Context, id uint) error {
	return s.tombstoneFn(ctx, id)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *commentRepoStub) ToggleLike(ctx context.Context, userID, commentID uint) (bool, int64, error) {
	return s.toggleLikeFn(ctx, userID, commentID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, c *models.Comment) error {
			c.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Comment, error) {
			return &models.Comment{ID: id, UserID: 1, ArticleID: "a1", Content: "hey"}, nil
		},
		listByArticleFn: func(context.Context, string, int, int, uint) ([]*models.Comment, int64, error) {
			return nil, 0, nil
		},
		listByUserFn: func(context.Context, uint, int, int) ([]*models.Comment, int64, error) {
			return nil, 0, nil
		},
		updateFn:     func(context.Context, *models.Comment) error { return nil },
		hasRepliesFn: func(context.Context, uint) (bool, error) { return false, nil },
		tombstoneFn:  func(context.Context, uint) error { return nil },
		deleteFn:     func(context.Context, uint) error { return nil },
		toggleLikeFn: func(context.Context, uint, uint) (bool, int64, error) { return true, 1, nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn          func(context.Context, *models.User) error
	getByIDFn         func(context.Context, uint) (*models.User, error)
	getByEmailFn      func(context.Context, string) (*models.User, error)
	getByUsernameFn   func(context.Context, string) (*models.User, error)
	getByExternalIDFn func(context.Context, string, string) (*models.User, error)
	updateFn          func(context.Context, *models.User) error
	usernameExistsFn  func(context.Context, string) (bool, error)
	emailExistsFn     func(context.Context, string) (bool, error)
}

func (s *userRepoStub) Create(ctx context.Context, u *models.User) error { return s.createFn(ctx, u) }
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByExternalID(ctx context.Context, provider, id string) (*models.User, error) {
	return s.getByExternalIDFn(ctx, provider, id)
}
func (s *userRepoStub) Update(ctx context.Context, u *models.User) error { return s.updateFn(ctx, u) }
func (s *userRepoStub) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.usernameExistsFn(ctx, username)
}
func (s *userRepoStub) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.emailExistsFn(ctx, email)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn: func(_ context.Context, u *models.User) error {
			u.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleUser, IsActive: true}, nil
		},
		getByEmailFn: func(context.Context, string) (*models.User, error) {
			return nil, errNotFoundStub
		},
		getByUsernameFn: func(context.Context, string) (*models.User, error) {
			return nil, errNotFoundStub
		},
		getByExternalIDFn: func(context.Context, string, string) (*models.User, error) {
			return nil, errNotFoundStub
		},
		updateFn:         func(context.Context, *models.User) error { return nil },
		usernameExistsFn: func(context.Context, string) (bool, error) { return false, nil },
		emailExistsFn:    func(context.Context, string) (bool, error) { return false, nil },
	}
}

// newsletterRepoStub is a stub for repository.NewsletterRepository.
type newsletterRepoStub struct {
	getByEmailFn func(context.Context, string) (*models.NewsletterSubscription, error)
	upsertFn     func(context.Context, *models.NewsletterSubscription) error
	deleteFn     func(context.Context, string) error
	statsFn      func(context.Context) (*models.NewsletterStats, error)
}

func (s *newsletterRepoStub) GetByEmail(ctx context.Context, email string) (*models.NewsletterSubscription, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *newsletterRepoStub) Upsert(ctx context.Context, sub *models.NewsletterSubscription) error {
	return s.upsertFn(ctx, sub)
}
func (s *newsletterRepoStub) Delete(ctx context.Context, email string) error {
	return s.deleteFn(ctx, email)
}
func (s *newsletterRepoStub) Stats(ctx context.Context) (*models.NewsletterStats, error) {
	return s.statsFn(ctx)
}

func noopNewsletterRepo() *newsletterRepoStub {
	return &newsletterRepoStub{
		getByEmailFn: func(context.Context, string) (*models.NewsletterSubscription, error) {
			return nil, errNotFoundStub
		},
		upsertFn: func(context.Context, *models.NewsletterSubscription) error { return nil },
		deleteFn: func(context.Context, string) error { return nil },
		statsFn:  func(context.Context) (*models.NewsletterStats, error) { return &models.NewsletterStats{}, nil },
	}
}

// actorWithRole builds the getActor dependency used by the services.
func actorWithRole(role models.Role) func(context.Context, uint) (*models.User, error) {
	return func(_ context.Context, userID uint) (*models.User, error) {
		return &models.User{ID: userID, Role: role, IsActive: true}, nil
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeValidation)
}

func assertForbiddenError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeForbidden)
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeNotFound)
}

var errNotFoundStub = gorm.ErrRecordNotFound

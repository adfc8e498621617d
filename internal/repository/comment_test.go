package repository

import (
	"context"
	"testing"

	"hoopline/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_HasReplies(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "comments" WHERE parent_id = \$1`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	has, err := repo.HasReplies(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestCommentRepository_Tombstone(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "comments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Tombstone(context.Background(), 3)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)

	// Comments soft-delete: the delete is an UPDATE on deleted_at.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "comments" SET "deleted_at"=`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 4)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_ToggleLike_On(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectExec(`INSERT INTO comment_likes`).
		WithArgs(1, 9).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "comment_likes" WHERE comment_id = \$1`).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	liked, count, err := repo.ToggleLike(context.Background(), 1, 9)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)
}

func TestCommentRepository_ToggleLike_Off(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectExec(`INSERT INTO comment_likes`).
		WithArgs(1, 9).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "comment_likes" WHERE user_id = \$1 AND comment_id = \$2`).
		WithArgs(1, 9).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "comment_likes" WHERE comment_id = \$1`).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	liked, count, err := repo.ToggleLike(context.Background(), 1, 9)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, int64(0), count)
}

func TestCommentRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "comments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	comment := &models.Comment{ArticleID: "12", Content: "Great game", UserID: 1}
	err := repo.Create(context.Background(), comment)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), comment.ID)
}

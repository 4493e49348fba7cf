package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/focusflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepo_CreateListOldestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	activities := NewSQLiteActivityRepo(db)
	comments := NewSQLiteCommentRepo(db)
	ctx := context.Background()

	a := testutil.NewTestActivity()
	require.NoError(t, activities.Create(ctx, a))

	base := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	second := testutil.NewTestComment(a.ID, "second", base.Add(time.Minute))
	first := testutil.NewTestComment(a.ID, "first", base)
	require.NoError(t, comments.Create(ctx, second))
	require.NoError(t, comments.Create(ctx, first))

	got, err := comments.ListByActivity(ctx, a.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Body)
	assert.Equal(t, "second", got[1].Body)

	page, err := comments.ListByActivity(ctx, a.ID, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "second", page[0].Body)
}

func TestCommentRepo_UpdateBody(t *testing.T) {
	db := testutil.NewTestDB(t)
	activities := NewSQLiteActivityRepo(db)
	comments := NewSQLiteCommentRepo(db)
	ctx := context.Background()

	a := testutil.NewTestActivity()
	require.NoError(t, activities.Create(ctx, a))
	at := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	c := testutil.NewTestComment(a.ID, "typo", at)
	require.NoError(t, comments.Create(ctx, c))

	require.NoError(t, comments.UpdateBody(ctx, c.ID, "fixed", at.Add(time.Hour)))

	got, err := comments.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "fixed", got.Body)
	assert.True(t, got.Edited())
	assert.True(t, at.Equal(got.CreatedAt))
}

func TestCommentRepo_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	comments := NewSQLiteCommentRepo(db)
	ctx := context.Background()

	_, err := comments.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, comments.UpdateBody(ctx, "nope", "x", time.Now()), ErrNotFound)
	assert.ErrorIs(t, comments.Delete(ctx, "nope"), ErrNotFound)
}

func TestLikeRepo_AddRemoveIdempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	activities := NewSQLiteActivityRepo(db)
	likes := NewSQLiteLikeRepo(db)
	ctx := context.Background()

	a := testutil.NewTestActivity()
	require.NoError(t, activities.Create(ctx, a))
	now := time.Now()

	require.NoError(t, likes.Add(ctx, a.ID, now))
	require.NoError(t, likes.Add(ctx, a.ID, now))
	liked, err := likes.Has(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	require.NoError(t, likes.Remove(ctx, a.ID))
	require.NoError(t, likes.Remove(ctx, a.ID))
	liked, err = likes.Has(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestActivityRepo_CountsLikesAndComments(t *testing.T) {
	db := testutil.NewTestDB(t)
	activities := NewSQLiteActivityRepo(db)
	comments := NewSQLiteCommentRepo(db)
	likes := NewSQLiteLikeRepo(db)
	ctx := context.Background()

	busy := testutil.NewTestActivity(testutil.WithCreatedAt(time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC)))
	quiet := testutil.NewTestActivity(testutil.WithCreatedAt(time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)))
	require.NoError(t, activities.Create(ctx, busy))
	require.NoError(t, activities.Create(ctx, quiet))

	at := time.Date(2026, 6, 2, 10, 0, 0, 0, time.UTC)
	require.NoError(t, comments.Create(ctx, testutil.NewTestComment(busy.ID, "one", at)))
	require.NoError(t, comments.Create(ctx, testutil.NewTestComment(busy.ID, "two", at)))
	require.NoError(t, likes.Add(ctx, busy.ID, at))

	got, err := activities.GetByID(ctx, busy.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.LikeCount)
	assert.Equal(t, 2, got.CommentCount)

	list, err := activities.List(ctx, ActivityFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, busy.ID, list[0].ID)
	assert.Equal(t, 2, list[0].CommentCount)
	assert.Equal(t, 0, list[1].CommentCount)
	assert.Equal(t, 0, list[1].LikeCount)
}

func TestActivityRepo_DeleteRemovesCommentsAndLike(t *testing.T) {
	db := testutil.NewTestDB(t)
	activities := NewSQLiteActivityRepo(db)
	comments := NewSQLiteCommentRepo(db)
	likes := NewSQLiteLikeRepo(db)
	ctx := context.Background()

	a := testutil.NewTestActivity()
	require.NoError(t, activities.Create(ctx, a))
	require.NoError(t, comments.Create(ctx, testutil.NewTestComment(a.ID, "bye", time.Now())))
	require.NoError(t, likes.Add(ctx, a.ID, time.Now()))

	require.NoError(t, activities.Delete(ctx, a.ID))

	left, err := comments.ListByActivity(ctx, a.ID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, left)
	liked, err := likes.Has(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, liked)
}

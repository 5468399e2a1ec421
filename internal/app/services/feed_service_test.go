package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandroom/backend/internal/app/models"
)

func TestFormatMentions(t *testing.T) {
	tests := []struct {
		names []string
		want  string
	}{
		{nil, ""},
		{[]string{"Alice"}, "Alice"},
		{[]string{"Alice", "Bob"}, "Alice and Bob"},
		{[]string{"Alice", "Bob", "Cleo"}, "Alice, Bob and Cleo"},
		{[]string{"Alice", "Bob", "Cleo", "Dre"}, "Alice, Bob, Cleo and Dre"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatMentions(tc.names))
	}
}

func TestFeedOrdering(t *testing.T) {
	store := seededStore()
	feed := NewFeedService(store)
	ctx := context.Background()

	// Three comments on the same student; the middle one is updated last, so
	// it must surface first.
	for _, content := range []string{"one", "two", "three"} {
		c := &models.Comment{Scope: models.ScopeStudent, ScopeID: 10, Content: content, AuthorID: 1}
		require.NoError(t, store.Create(ctx, c, nil))
	}
	require.NoError(t, store.Update(ctx, &models.Comment{ID: 2, Scope: models.ScopeStudent, ScopeID: 10, Content: "two edited"}, nil))

	views, err := feed.GetFeed(ctx, models.ScopeStudent, 10, 0)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "two edited", views[0].Content)
	assert.Equal(t, "three", views[1].Content)
	assert.Equal(t, "one", views[2].Content)
}

func TestFeedOrderingTieBreaksOnID(t *testing.T) {
	store := seededStore()
	feed := NewFeedService(store)
	ctx := context.Background()

	shared := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, content := range []string{"first", "second", "third"} {
		store.comments[int64(i+1)] = &models.Comment{
			ID:        int64(i + 1),
			Scope:     models.ScopeStudent,
			ScopeID:   10,
			Content:   content,
			AuthorID:  1,
			CreatedAt: shared,
			UpdatedAt: shared,
		}
	}

	views, err := feed.GetFeed(ctx, models.ScopeStudent, 10, 0)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, int64(1), views[0].ID, "lower id wins on equal timestamps")
	assert.Equal(t, int64(2), views[1].ID)
	assert.Equal(t, int64(3), views[2].ID)
}

func TestFeedTake(t *testing.T) {
	store := seededStore()
	feed := NewFeedService(store)
	ctx := context.Background()

	for _, content := range []string{"a", "b", "c"} {
		c := &models.Comment{Scope: models.ScopeSong, ScopeID: 100, Content: content, AuthorID: 1}
		require.NoError(t, store.Create(ctx, c, nil))
	}

	views, err := feed.GetFeed(ctx, models.ScopeSong, 100, 1)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "c", views[0].Content, "take=1 returns the most recent entry")
}

func TestFeedScopesAreIsolated(t *testing.T) {
	store := seededStore()
	feed := NewFeedService(store)
	ctx := context.Background()

	studentComment := &models.Comment{Scope: models.ScopeStudent, ScopeID: 10, Content: "on the student", AuthorID: 1}
	require.NoError(t, store.Create(ctx, studentComment, nil))
	songComment := &models.Comment{Scope: models.ScopeSong, ScopeID: 100, Content: "on the song", AuthorID: 1}
	require.NoError(t, store.Create(ctx, songComment, nil))

	views, err := feed.GetFeed(ctx, models.ScopeStudent, 10, 0)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "on the student", views[0].Content)
}

func TestMentionFeed(t *testing.T) {
	store := seededStore()
	feed := NewFeedService(store)
	ctx := context.Background()

	withAlice := &models.Comment{Scope: models.ScopeSong, ScopeID: 100, Content: "shoutout", AuthorID: 1}
	require.NoError(t, store.Create(ctx, withAlice, []int64{10, 11}))
	withoutAlice := &models.Comment{Scope: models.ScopeSong, ScopeID: 100, Content: "other", AuthorID: 1}
	require.NoError(t, store.Create(ctx, withoutAlice, []int64{11}))

	views, err := feed.GetMentionFeed(ctx, 10)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "shoutout", views[0].Content)
	assert.Equal(t, "Alice and Bob", views[0].MentionLine)
}

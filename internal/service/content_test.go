package service

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSortedByPublishDate(t *testing.T) {
	s := NewContentService()
	articles := s.All()
	require.NotEmpty(t, articles)
	for i := 1; i < len(articles); i++ {
		assert.False(t, articles[i].PublishedAt.After(articles[i-1].PublishedAt))
	}
}

func TestFeaturedOnly(t *testing.T) {
	s := NewContentService()
	featured := s.Featured()
	require.NotEmpty(t, featured)
	for _, a := range featured {
		assert.True(t, a.Featured)
	}
}

func TestByCategoryCaseInsensitive(t *testing.T) {
	s := NewContentService()
	assert.Equal(t, s.ByCategory("Wellness"), s.ByCategory("wellness"))
	assert.NotEmpty(t, s.ByCategory("WELLNESS"))
	assert.Empty(t, s.ByCategory("nope"))
}

func TestSearchMatchesAcrossFields(t *testing.T) {
	s := NewContentService()

	results := s.Search("anxiety")
	require.NotEmpty(t, results)
	for _, a := range results {
		assert.True(t, articleMatches(a, "anxiety"), "article %s should match", a.ID)
	}

	assert.Empty(t, s.Search("zzzznothing"))
}

func TestCategoriesSortedUnique(t *testing.T) {
	s := NewContentService()
	cats := s.Categories()
	require.NotEmpty(t, cats)
	assert.True(t, sort.StringsAreSorted(cats))
	seen := map[string]bool{}
	for _, c := range cats {
		assert.False(t, seen[c], "duplicate category %s", c)
		seen[c] = true
	}
}

func TestByIDMissingReturnsNil(t *testing.T) {
	s := NewContentService()
	assert.Nil(t, s.ByID("no-such-article"))
	assert.NotNil(t, s.ByID("article-1"))
}

func TestUpsertProgressStampsCompletedAtOnce(t *testing.T) {
	s := NewContentService()
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	yes := true
	first := s.UpsertProgress("u1", "article-1", &yes, nil, nil)
	require.NotNil(t, first.CompletedAt)
	firstStamp := *first.CompletedAt

	s.now = func() time.Time { return now.Add(time.Hour) }
	second := s.UpsertProgress("u1", "article-1", &yes, nil, nil)
	require.NotNil(t, second.CompletedAt)
	assert.Equal(t, firstStamp, *second.CompletedAt, "second completed=true must not restamp")
}

func TestUpsertProgressMergesPartialFields(t *testing.T) {
	s := NewContentService()

	yes := true
	p := s.UpsertProgress("u1", "article-2", nil, &yes, nil)
	assert.True(t, p.Bookmarked)
	assert.False(t, p.Completed)
	assert.Equal(t, 0, p.ReadingProgress)

	pct := 150
	p = s.UpsertProgress("u1", "article-2", nil, nil, &pct)
	assert.True(t, p.Bookmarked, "earlier fields survive the merge")
	assert.Equal(t, 100, p.ReadingProgress, "reading progress clamps to [0,100]")
}

func TestBookmarksAndCompletedProjections(t *testing.T) {
	s := NewContentService()
	yes := true

	s.UpsertProgress("u1", "article-1", nil, &yes, nil)
	s.UpsertProgress("u1", "article-3", &yes, nil, nil)
	s.UpsertProgress("u1", "ghost-article", &yes, &yes, nil)
	s.UpsertProgress("u2", "article-2", nil, &yes, nil)

	bookmarks := s.Bookmarks("u1")
	require.Len(t, bookmarks, 1, "dangling progress rows are dropped, other users excluded")
	assert.Equal(t, "article-1", bookmarks[0].ID)

	completed := s.Completed("u1")
	require.Len(t, completed, 1)
	assert.Equal(t, "article-3", completed[0].ID)
}

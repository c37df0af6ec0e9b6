package service

import (
	"sort"
	"strings"
	"sync"
	"time"

	"mindlift/internal/model"
)

// ContentService serves the immutable article catalog seeded at startup and
// tracks per-user reading progress.
type ContentService struct {
	mu       sync.RWMutex
	articles map[string]*model.Article
	progress map[string]*model.UserProgress // userID+"/"+articleID
	now      func() time.Time
}

func NewContentService() *ContentService {
	s := &ContentService{
		articles: make(map[string]*model.Article),
		progress: make(map[string]*model.UserProgress),
		now:      time.Now,
	}
	for _, a := range seedArticles() {
		article := a
		s.articles[article.ID] = &article
	}
	return s
}

// All returns every article, newest publish date first.
func (s *ContentService) All() []model.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Article, 0, len(s.articles))
	for _, a := range s.articles {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})
	return out
}

func (s *ContentService) Featured() []model.Article {
	var out []model.Article
	for _, a := range s.All() {
		if a.Featured {
			out = append(out, a)
		}
	}
	return out
}

func (s *ContentService) ByCategory(category string) []model.Article {
	var out []model.Article
	for _, a := range s.All() {
		if strings.EqualFold(a.Category, category) {
			out = append(out, a)
		}
	}
	return out
}

func (s *ContentService) ByID(id string) *model.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a := s.articles[id]
	if a == nil {
		return nil
	}
	cp := *a
	return &cp
}

// Search matches the term case-insensitively against title, description,
// tags, and category.
func (s *ContentService) Search(term string) []model.Article {
	term = strings.ToLower(term)
	var out []model.Article
	for _, a := range s.All() {
		if articleMatches(a, term) {
			out = append(out, a)
		}
	}
	return out
}

func articleMatches(a model.Article, term string) bool {
	if strings.Contains(strings.ToLower(a.Title), term) ||
		strings.Contains(strings.ToLower(a.Description), term) ||
		strings.Contains(strings.ToLower(a.Category), term) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// Categories returns the sorted unique category names.
func (s *ContentService) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, a := range s.All() {
		if !seen[a.Category] {
			seen[a.Category] = true
			out = append(out, a.Category)
		}
	}
	sort.Strings(out)
	return out
}

func progressKey(userID, articleID string) string { return userID + "/" + articleID }

func (s *ContentService) Progress(userID, articleID string) *model.UserProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.progress[progressKey(userID, articleID)]
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

// UpsertProgress merges the given fields over the stored record (or a zeroed
// default). CompletedAt is stamped once, on the first false->true transition.
func (s *ContentService) UpsertProgress(userID, articleID string, completed, bookmarked *bool, readingProgress *int) *model.UserProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := progressKey(userID, articleID)
	p := s.progress[key]
	if p == nil {
		p = &model.UserProgress{UserID: userID, ArticleID: articleID}
		s.progress[key] = p
	}

	if completed != nil {
		if *completed && !p.Completed {
			t := s.now().UTC()
			p.CompletedAt = &t
		}
		p.Completed = *completed
	}
	if bookmarked != nil {
		p.Bookmarked = *bookmarked
	}
	if readingProgress != nil {
		v := *readingProgress
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		p.ReadingProgress = v
	}

	cp := *p
	return &cp
}

// Bookmarks projects the user's bookmarked progress rows down to articles,
// dropping rows whose article no longer exists.
func (s *ContentService) Bookmarks(userID string) []model.Article {
	return s.projectProgress(userID, func(p *model.UserProgress) bool { return p.Bookmarked })
}

func (s *ContentService) Completed(userID string) []model.Article {
	return s.projectProgress(userID, func(p *model.UserProgress) bool { return p.Completed })
}

func (s *ContentService) projectProgress(userID string, keep func(*model.UserProgress) bool) []model.Article {
	s.mu.RLock()
	var ids []string
	for _, p := range s.progress {
		if p.UserID == userID && keep(p) {
			ids = append(ids, p.ArticleID)
		}
	}
	s.mu.RUnlock()

	out := []model.Article{}
	for _, id := range ids {
		if a := s.ByID(id); a != nil {
			out = append(out, *a)
		}
	}
	return out
}

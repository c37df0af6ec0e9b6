package service

import (
	"math"
	"sync"
	"time"

	"mindlift/internal/apperr"
	"mindlift/internal/model"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// streakCap bounds the backward walk when counting consecutive days.
const streakCap = 365

// MoodService keeps one mood entry per user per calendar day. Entries live in
// a flat id map plus a per-user id slice ordered most-recent-date-first.
type MoodService struct {
	mu      sync.RWMutex
	entries map[string]*model.MoodEntry
	byUser  map[string][]string
	now     func() time.Time
}

func NewMoodService() *MoodService {
	return &MoodService{
		entries: make(map[string]*model.MoodEntry),
		byUser:  make(map[string][]string),
		now:     time.Now,
	}
}

// Record validates and stores a mood entry. An existing entry for the same
// (user, date) is removed from both maps before the new one goes in, which is
// what keeps the one-entry-per-day invariant.
func (s *MoodService) Record(userID string, mood int, note, date string) (*model.MoodEntry, error) {
	if mood < 1 || mood > 5 {
		return nil, apperr.Validation("mood must be an integer between 1 and 5")
	}
	if date == "" {
		date = s.now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, apperr.Validation("date must be formatted YYYY-MM-DD")
	}

	entry := &model.MoodEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Mood:      mood,
		Note:      note,
		Date:      date,
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.byUser[userID]
	for i, id := range ids {
		if existing := s.entries[id]; existing != nil && existing.Date == date {
			delete(s.entries, id)
			ids = append(ids[:i], ids[i+1:]...)
			break
		}
	}

	// Insert keeping most-recent-date-first order. Dates are YYYY-MM-DD so
	// string comparison is chronological.
	pos := len(ids)
	for i, id := range ids {
		if s.entries[id].Date < date {
			pos = i
			break
		}
	}
	ids = append(ids, "")
	copy(ids[pos+1:], ids[pos:])
	ids[pos] = entry.ID

	s.entries[entry.ID] = entry
	s.byUser[userID] = ids
	return entry, nil
}

// List returns the user's entries most recent date first. A limit of 0 means
// no truncation.
func (s *MoodService) List(userID string, limit int) []model.MoodEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byUser[userID]
	out := make([]model.MoodEntry, 0, len(ids))
	for _, id := range ids {
		if e := s.entries[id]; e != nil {
			out = append(out, *e)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Get returns the entry only when it exists and belongs to userID.
func (s *MoodService) Get(entryID, userID string) *model.MoodEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e := s.entries[entryID]
	if e == nil || e.UserID != userID {
		return nil
	}
	cp := *e
	return &cp
}

// Delete returns false for both a missing entry and an ownership mismatch;
// non-owners must not learn whether the id exists.
func (s *MoodService) Delete(entryID, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entries[entryID]
	if e == nil || e.UserID != userID {
		return false
	}
	delete(s.entries, entryID)
	ids := s.byUser[userID]
	for i, id := range ids {
		if id == entryID {
			s.byUser[userID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return true
}

func (s *MoodService) Stats(userID string) model.MoodStats {
	entries := s.List(userID, 0)

	stats := model.MoodStats{
		WeeklyTrend:      "stable",
		MoodDistribution: map[int]int{},
	}
	if len(entries) == 0 {
		return stats
	}

	sum := 0
	for _, e := range entries {
		sum += e.Mood
		stats.MoodDistribution[e.Mood]++
	}
	stats.TotalEntries = len(entries)
	stats.AverageMood = math.Round(float64(sum)/float64(len(entries))*10) / 10

	stats.Streak = s.streak(entries)

	recent := windowAvg(entries, 0, 7)
	prior := windowAvg(entries, 7, 14)
	if recent != nil && prior != nil {
		switch {
		case *recent > *prior+0.2:
			stats.WeeklyTrend = "improving"
		case *recent < *prior-0.2:
			stats.WeeklyTrend = "declining"
		}
	}
	return stats
}

// streak counts consecutive calendar days with an entry, walking backward
// from today.
func (s *MoodService) streak(entries []model.MoodEntry) int {
	have := make(map[string]bool, len(entries))
	for _, e := range entries {
		have[e.Date] = true
	}

	streak := 0
	day := s.now()
	for streak < streakCap && have[day.Format(dateLayout)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func windowAvg(entries []model.MoodEntry, from, to int) *float64 {
	if from >= len(entries) {
		return nil
	}
	if to > len(entries) {
		to = len(entries)
	}
	sum := 0
	for _, e := range entries[from:to] {
		sum += e.Mood
	}
	avg := float64(sum) / float64(to-from)
	return &avg
}

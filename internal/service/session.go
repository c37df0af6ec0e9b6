package service

import (
	"sync"
	"time"

	"mindlift/internal/apperr"
	"mindlift/internal/model"

	"github.com/google/uuid"
)

const defaultSessionTitle = "New Chat"

// SessionService holds per-user conversation threads. The per-user slice is
// most-recent-first; new sessions are prepended.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[string]*model.ChatSession
	byUser   map[string][]string
	now      func() time.Time
}

func NewSessionService() *SessionService {
	return &SessionService{
		sessions: make(map[string]*model.ChatSession),
		byUser:   make(map[string][]string),
		now:      time.Now,
	}
}

func (s *SessionService) Create(userID, title string) *model.ChatSession {
	if title == "" {
		title = defaultSessionTitle
	}
	now := s.now().UTC()
	sess := &model.ChatSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Messages:  []model.ChatMessage{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.byUser[userID] = append([]string{sess.ID}, s.byUser[userID]...)
	s.mu.Unlock()

	cp := *sess
	return &cp
}

// Get returns the session only when it exists and belongs to userID.
func (s *SessionService) Get(sessionID, userID string) *model.ChatSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copySession(sessionID, userID)
}

func (s *SessionService) copySession(sessionID, userID string) *model.ChatSession {
	sess := s.sessions[sessionID]
	if sess == nil || sess.UserID != userID {
		return nil
	}
	cp := *sess
	cp.Messages = append([]model.ChatMessage{}, sess.Messages...)
	return &cp
}

func (s *SessionService) List(userID string) []model.ChatSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.ChatSession{}
	for _, id := range s.byUser[userID] {
		if cp := s.copySession(id, userID); cp != nil {
			out = append(out, *cp)
		}
	}
	return out
}

func (s *SessionService) Rename(sessionID, userID, title string) *model.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessions[sessionID]
	if sess == nil || sess.UserID != userID {
		return nil
	}
	sess.Title = title
	sess.UpdatedAt = s.now().UTC()
	return s.copySession(sessionID, userID)
}

// AppendMessage adds a turn to the session and bumps UpdatedAt.
func (s *SessionService) AppendMessage(sessionID, userID, role, content string) (*model.ChatMessage, error) {
	if role != "user" && role != "assistant" {
		return nil, apperr.Validation("message role must be user or assistant")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessions[sessionID]
	if sess == nil || sess.UserID != userID {
		return nil, apperr.NotFound("chat session")
	}
	msg := model.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: s.now().UTC(),
	}
	sess.Messages = append(sess.Messages, msg)
	sess.UpdatedAt = msg.Timestamp
	return &msg, nil
}

// Delete returns false for both a missing session and an ownership mismatch.
func (s *SessionService) Delete(sessionID, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessions[sessionID]
	if sess == nil || sess.UserID != userID {
		return false
	}
	delete(s.sessions, sessionID)
	ids := s.byUser[userID]
	for i, id := range ids {
		if id == sessionID {
			s.byUser[userID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return true
}

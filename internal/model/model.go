package model

import "encoding/json"

type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type MoodRequest struct {
	Mood int    `json:"mood"`
	Note string `json:"note,omitempty"`
	Date string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
}

type ProgressRequest struct {
	ArticleID       string `json:"articleId"`
	Completed       *bool  `json:"completed,omitempty"`
	Bookmarked      *bool  `json:"bookmarked,omitempty"`
	ReadingProgress *int   `json:"readingProgress,omitempty"`
}

type EmergencyLogRequest struct {
	ContactID   string `json:"contactId"`
	ContactType string `json:"contactType"`
}

type SessionRequest struct {
	Title string `json:"title,omitempty"`
}

type HistoryItem struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// HistoryList decodes best-effort: a conversation payload that is not an
// ordered list of {role, content} turns is discarded and treated as empty,
// never rejected.
type HistoryList []HistoryItem

func (h *HistoryList) UnmarshalJSON(data []byte) error {
	var turns []HistoryItem
	if err := json.Unmarshal(data, &turns); err != nil {
		*h = nil
		return nil
	}
	*h = turns
	return nil
}

type ChatRequest struct {
	Message      string      `json:"message"`
	Conversation HistoryList `json:"conversation,omitempty"`
	SessionID    string      `json:"sessionId,omitempty"`
}

// ChatResult is the proxy's only output shape. Type is "crisis" or "ok";
// callers must branch on it, never on the reply text.
type ChatResult struct {
	Type  string `json:"type"`
	Reply string `json:"reply"`
}

const (
	ChatResultOK     = "ok"
	ChatResultCrisis = "crisis"
)

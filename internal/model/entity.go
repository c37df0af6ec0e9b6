package model

import "time"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type MoodEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Mood      int       `json:"mood"` // 1-5 scale
	Note      string    `json:"note,omitempty"`
	Date      string    `json:"date"` // YYYY-MM-DD
	CreatedAt time.Time `json:"createdAt"`
}

type MoodStats struct {
	AverageMood      float64     `json:"averageMood"`
	TotalEntries     int         `json:"totalEntries"`
	Streak           int         `json:"streak"`
	WeeklyTrend      string      `json:"weeklyTrend"` // improving | declining | stable
	MoodDistribution map[int]int `json:"moodDistribution"`
}

type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	ReadTime    string    `json:"readTime"`
	Image       string    `json:"image"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
	Tags        []string  `json:"tags"`
	Featured    bool      `json:"featured"`
}

type UserProgress struct {
	UserID          string     `json:"userId"`
	ArticleID       string     `json:"articleId"`
	Completed       bool       `json:"completed"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	Bookmarked      bool       `json:"bookmarked"`
	ReadingProgress int        `json:"readingProgress"` // 0-100
}

type EmergencyContact struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Number       string `json:"number"`
	Description  string `json:"description"`
	Type         string `json:"type"`     // call | text | chat
	Category     string `json:"category"` // crisis | campus | national | local
	Available247 bool   `json:"available24_7"`
	Priority     int    `json:"priority"`
}

type CampusResource struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Location            string   `json:"location"`
	Hours               string   `json:"hours,omitempty"`
	Phone               string   `json:"phone,omitempty"`
	Email               string   `json:"email,omitempty"`
	Website             string   `json:"website,omitempty"`
	Services            []string `json:"services"`
	WalkInAvailable     bool     `json:"walkInAvailable"`
	AppointmentRequired bool     `json:"appointmentRequired"`
}

type EmergencyLog struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	ContactID   string    `json:"contactId"`
	ContactType string    `json:"contactType"` // call | text | chat
	Timestamp   time.Time `json:"timestamp"`
	Resolved    bool      `json:"resolved,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

type EmergencyStats struct {
	TotalContacts   int `json:"totalContacts"`
	CrisisContacts  int `json:"crisisContacts"`
	CampusResources int `json:"campusResources"`
	Available247    int `json:"available24_7"`
}

type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // user | assistant
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatSession struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	Title     string        `json:"title"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

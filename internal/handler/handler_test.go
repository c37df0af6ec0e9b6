package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mindlift/internal/apperr"
	"mindlift/internal/middleware"
	"mindlift/internal/model"
	"mindlift/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompleter struct {
	reply string
	err   error
}

func (s *stubCompleter) Complete(context.Context, string, []model.HistoryItem) (string, error) {
	return s.reply, s.err
}

type stubModerator struct {
	calls   int
	flagged bool
	err     error
}

func (s *stubModerator) Moderate(context.Context, string) (bool, error) {
	s.calls++
	return s.flagged, s.err
}

type testEnv struct {
	router    *gin.Engine
	moderator *stubModerator
	completer *stubCompleter
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authSvc := service.NewAuthService("test-secret")
	moodSvc := service.NewMoodService()
	contentSvc := service.NewContentService()
	emergencySvc := service.NewEmergencyService()
	sessionSvc := service.NewSessionService()
	completer := &stubCompleter{reply: "glad you asked"}
	moderator := &stubModerator{}
	assistant := service.NewAssistant(completer, moderator)

	authH := NewAuthHandler(authSvc, false)
	moodH := NewMoodHandler(moodSvc)
	contentH := NewContentHandler(contentSvc)
	emergencyH := NewEmergencyHandler(emergencySvc)
	sessionH := NewSessionHandler(sessionSvc)
	chatH := NewChatHandler(assistant, sessionSvc)

	r := gin.New()
	r.POST("/api/auth/signup", authH.Signup)
	r.POST("/api/auth/login", authH.Login)
	r.GET("/api/content", contentH.List)
	r.GET("/api/content/:articleId", contentH.Get)
	r.GET("/api/emergency/stats", emergencyH.Stats)

	api := r.Group("/api", middleware.Auth(authSvc))
	api.GET("/auth/me", authH.Me)
	api.GET("/mood", moodH.List)
	api.POST("/mood", moodH.Record)
	api.DELETE("/mood/:entryId", moodH.Delete)
	api.GET("/content/progress", contentH.GetProgress)
	api.POST("/content/progress", contentH.UpdateProgress)
	api.POST("/emergency/log", emergencyH.LogContact)
	api.POST("/chat/sessions", sessionH.Create)
	api.DELETE("/chat/sessions/:sessionId", sessionH.Delete)
	api.POST("/chat", chatH.Chat)

	return &testEnv{router: r, moderator: moderator, completer: completer}
}

func (e *testEnv) do(t *testing.T, method, path, body, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: middleware.AuthCookie, Value: cookie})
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// signup registers a user and returns the session token from the cookie.
func (e *testEnv) signup(t *testing.T, email string) string {
	t.Helper()
	w := e.do(t, "POST", "/api/auth/signup", `{"email":"`+email+`","password":"password1","name":"Sam"}`, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.AuthCookie {
			require.True(t, c.HttpOnly)
			return c.Value
		}
	}
	t.Fatal("auth cookie not set")
	return ""
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "GET", "/api/mood", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, "GET", "/api/mood", "", "bogus-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignupDuplicateConflict(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "sam@school.edu")

	w := env.do(t, "POST", "/api/auth/signup", `{"email":"sam@school.edu","password":"password1","name":"Sam"}`, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestMoodFlow(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "sam@school.edu")

	w := env.do(t, "POST", "/api/mood", `{"mood":4,"note":"good day","date":"2024-03-10"}`, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.do(t, "POST", "/api/mood", `{"mood":9}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// non-integer mood fails JSON binding
	w = env.do(t, "POST", "/api/mood", `{"mood":3.5}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, "GET", "/api/mood?stats=true", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Entries []model.MoodEntry `json:"entries"`
		Stats   *model.MoodStats  `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Entries, 1)
	require.NotNil(t, resp.Stats)
	assert.Equal(t, 1, resp.Stats.TotalEntries)
}

func TestMoodDeleteNotOwned(t *testing.T) {
	env := newTestEnv(t)
	owner := env.signup(t, "owner@school.edu")
	other := env.signup(t, "other@school.edu")

	w := env.do(t, "POST", "/api/mood", `{"mood":3,"date":"2024-03-10"}`, owner)
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Entry model.MoodEntry `json:"entry"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = env.do(t, "DELETE", "/api/mood/"+created.Entry.ID, "", other)
	assert.Equal(t, http.StatusNotFound, w.Code, "not-owned collapses into 404")

	w = env.do(t, "GET", "/api/mood", "", owner)
	var resp struct {
		Entries []model.MoodEntry `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Entries, 1, "entry unaffected")
}

func TestContentPublicEndpoints(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "GET", "/api/content?search=anxiety", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Anxiety")

	w = env.do(t, "GET", "/api/content/article-1", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, "GET", "/api/content/nope", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, "GET", "/api/emergency/stats", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestChatCrisisKeywordSkipsModeration(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "sam@school.edu")

	w := env.do(t, "POST", "/api/chat", `{"message":"sometimes I want to DIE"}`, token)
	require.Equal(t, http.StatusOK, w.Code)

	var result model.ChatResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, model.ChatResultCrisis, result.Type)
	assert.Equal(t, 0, env.moderator.calls)
}

func TestChatMalformedHistoryDiscarded(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "sam@school.edu")

	// conversation is not an array: dropped, message still answered
	w := env.do(t, "POST", "/api/chat", `{"message":"hello there","conversation":"junk"}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var result model.ChatResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, model.ChatResultOK, result.Type)
	assert.Equal(t, 1, env.moderator.calls, "message goes through the normal gate")

	// items of the wrong shape are equally discarded
	w = env.do(t, "POST", "/api/chat", `{"message":"hello again","conversation":[{"role":5,"content":false}]}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, model.ChatResultOK, result.Type)
}

func TestChatCompletionAndUpstreamFailure(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "sam@school.edu")

	w := env.do(t, "POST", "/api/chat", `{"message":"how do I sleep better?"}`, token)
	require.Equal(t, http.StatusOK, w.Code)
	var result model.ChatResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, model.ChatResultOK, result.Type)
	assert.Equal(t, "glad you asked", result.Reply)

	env.moderator.err = apperr.Upstream("moderation", errors.New("connection refused"))
	w = env.do(t, "POST", "/api/chat", `{"message":"how do I sleep better?"}`, token)
	assert.Equal(t, http.StatusBadGateway, w.Code, "upstream failure is not a crisis and not a 500")
}

func TestEmergencyLogEndpoint(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "sam@school.edu")

	w := env.do(t, "POST", "/api/emergency/log", `{"contactId":"contact-1","contactType":"call"}`, token)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, "POST", "/api/emergency/log", `{"contactId":"contact-1","contactType":"fax"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionDeleteNotOwned(t *testing.T) {
	env := newTestEnv(t)
	owner := env.signup(t, "owner@school.edu")
	other := env.signup(t, "other@school.edu")

	w := env.do(t, "POST", "/api/chat/sessions", `{"title":"mine"}`, owner)
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Session model.ChatSession `json:"session"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = env.do(t, "DELETE", "/api/chat/sessions/"+created.Session.ID, "", other)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/madrasah/internal/config"
	"github.com/yigit/madrasah/internal/pkg/logger"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Server.Mode = "production"
	cfg.Database.Driver = config.DriverMemory
	cfg.Session.Secret = "test-secret"
	cfg.Auth.BcryptCost = 4
	cfg.RateLimit.Enabled = false
	cfg.Seed.Enabled = false
	return cfg
}

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	return newLoggingRouter(t, cfg, logger.Nop())
}

func newLoggingRouter(t *testing.T, cfg *config.Config, lgr zerolog.Logger) *gin.Engine {
	t.Helper()
	ctx := context.Background()

	database, err := SetupDatabase(ctx, cfg, lgr)
	require.NoError(t, err)
	t.Cleanup(database.Close)

	store, err := SetupSessionStore(ctx, cfg, lgr)
	require.NoError(t, err)

	deps := BuildDependencies(cfg, database.Repos, store, lgr)
	t.Cleanup(func() { _ = deps.Close() })

	return SetupRouter(cfg, deps, lgr)
}

// client keeps the session cookie between requests
type client struct {
	t      *testing.T
	router *gin.Engine
	cookie *http.Cookie
}

func (c *client) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		if ck.MaxAge < 0 {
			c.cookie = nil
		} else {
			c.cookie = ck
		}
	}
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	ID      string          `json:"id"`
	Errors  json.RawMessage `json:"errors"`
	User    struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"user"`
	Article struct {
		ID          string  `json:"id"`
		Published   bool    `json:"published"`
		PublishedAt *string `json:"publishedAt"`
	} `json:"article"`
	Alumni struct {
		ID       string `json:"id"`
		Approved bool   `json:"approved"`
	} `json:"alumni"`
	Event struct {
		ID string `json:"id"`
	} `json:"event"`
	Registration struct {
		ID     string  `json:"id"`
		Status string  `json:"status"`
		Notes  *string `json:"notes"`
	} `json:"registration"`
}

func login(t *testing.T, c *client) string {
	t.Helper()
	creds := map[string]string{"username": "admin", "password": "admin123"}

	w := c.do(http.MethodPost, "/api/auth/register", creds)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = c.do(http.MethodPost, "/api/auth/login", creds)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotNil(t, c.cookie)

	var resp envelope
	decode(t, w, &resp)
	return resp.User.ID
}

func TestAuthFlow(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t, testConfig())}
	creds := map[string]string{"username": "admin", "password": "admin123"}

	w := c.do(http.MethodPost, "/api/auth/register", creds)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Nil(t, c.cookie, "register does not log in")

	w = c.do(http.MethodPost, "/api/auth/register", creds)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var dup envelope
	decode(t, w, &dup)
	assert.False(t, dup.Success)
	assert.Equal(t, "Username is already taken", dup.Message)

	w = c.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	wrongPassword := c.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "nope"})
	unknownUser := c.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "ghost", "password": "admin123"})
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.JSONEq(t, wrongPassword.Body.String(), unknownUser.Body.String())

	w = c.do(http.MethodPost, "/api/auth/login", creds)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotNil(t, c.cookie)
	assert.True(t, c.cookie.HttpOnly)
	var loggedIn envelope
	decode(t, w, &loggedIn)

	w = c.do(http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var me envelope
	decode(t, w, &me)
	assert.Equal(t, loggedIn.User.ID, me.User.ID)
	assert.Equal(t, "admin", me.User.Username)
	assert.NotContains(t, w.Body.String(), "password")

	stale := c.cookie
	w = c.do(http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, c.cookie)

	// the old cookie no longer resolves to a session
	c.cookie = stale
	w = c.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// logout without a session still succeeds
	c.cookie = nil
	w = c.do(http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegistrationDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.AllowRegistration = false
	c := &client{t: t, router: newTestRouter(t, cfg)}

	w := c.do(http.MethodPost, "/api/auth/register", map[string]string{"username": "admin", "password": "admin123"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestContactFlow(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t, testConfig())}

	msg := map[string]string{
		"name":    "Aisha",
		"email":   "aisha@example.com",
		"subject": "Enrollment",
		"message": "123456789",
	}
	w := c.do(http.MethodPost, "/api/contact", msg)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var invalid envelope
	decode(t, w, &invalid)
	assert.False(t, invalid.Success)
	assert.Contains(t, string(invalid.Errors), "message")

	msg["message"] = "1234567890"
	w = c.do(http.MethodPost, "/api/contact", msg)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created envelope
	decode(t, w, &created)
	assert.NotEmpty(t, created.ID)

	w = c.do(http.MethodGet, "/api/contact-messages", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	login(t, c)

	w = c.do(http.MethodGet, "/api/contact-messages", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var messages []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decode(t, w, &messages)
	require.Len(t, messages, 1)
	assert.Equal(t, created.ID, messages[0].ID)
	assert.Equal(t, "unread", messages[0].Status)

	w = c.do(http.MethodPut, "/api/contact-messages/"+created.ID+"/status", map[string]string{"status": "replied"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodPut, "/api/contact-messages/"+created.ID+"/status", map[string]string{"status": "deleted"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodPut, "/api/contact-messages/missing/status", map[string]string{"status": "read"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewsFlow(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t, testConfig())}

	article := map[string]interface{}{
		"title":   "Open day",
		"content": "The school opens its doors on Saturday.",
		"excerpt": "Open day on Saturday",
		"author":  "Office",
	}
	w := c.do(http.MethodPost, "/api/news", article)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	login(t, c)

	w = c.do(http.MethodPost, "/api/news", article)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created envelope
	decode(t, w, &created)
	id := created.Article.ID
	assert.False(t, created.Article.Published)
	assert.Nil(t, created.Article.PublishedAt)

	w = c.do(http.MethodGet, "/api/news?published=true", nil)
	var list []map[string]interface{}
	decode(t, w, &list)
	assert.Empty(t, list)

	anonymous := &client{t: t, router: c.router}
	w = anonymous.do(http.MethodPut, "/api/news/"+id, map[string]interface{}{"title": "Changed", "published": true})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var stored map[string]interface{}
	decode(t, c.do(http.MethodGet, "/api/news/"+id, nil), &stored)
	assert.Equal(t, "Open day", stored["title"])
	assert.Equal(t, false, stored["published"])

	w = c.do(http.MethodPut, "/api/news/"+id, map[string]bool{"published": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated envelope
	decode(t, w, &updated)
	assert.True(t, updated.Article.Published)
	require.NotNil(t, updated.Article.PublishedAt)

	w = c.do(http.MethodGet, "/api/news?published=true", nil)
	decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0]["id"])

	w = c.do(http.MethodPut, "/api/news/"+id, map[string]string{"title": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodDelete, "/api/news/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = c.do(http.MethodDelete, "/api/news/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodGet, "/api/news/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	var missing envelope
	decode(t, w, &missing)
	assert.Equal(t, "Article not found", missing.Message)
}

func TestAlumniFlow(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t, testConfig())}

	w := c.do(http.MethodPost, "/api/alumni", map[string]interface{}{
		"fullName":       "Yusuf Rahman",
		"graduationYear": 2015,
		"program":        "Science",
		"approved":       true,
		"featured":       true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created envelope
	decode(t, w, &created)
	assert.False(t, created.Alumni.Approved, "public submissions start unapproved")

	var list []map[string]interface{}
	w = c.do(http.MethodGet, "/api/alumni?approved=true", nil)
	decode(t, w, &list)
	assert.Empty(t, list)

	var all []map[string]interface{}
	decode(t, c.do(http.MethodGet, "/api/alumni", nil), &all)
	require.Len(t, all, 1)
	assert.Equal(t, created.Alumni.ID, all[0]["id"])
	assert.Equal(t, false, all[0]["approved"])

	w = c.do(http.MethodPut, "/api/alumni/"+created.Alumni.ID+"/status", map[string]bool{"approved": true})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	login(t, c)

	w = c.do(http.MethodPut, "/api/alumni/"+created.Alumni.ID, map[string]interface{}{"company": "ACME", "approved": true, "featured": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var edited envelope
	decode(t, w, &edited)
	assert.False(t, edited.Alumni.Approved, "edits do not change moderation flags")

	w = c.do(http.MethodGet, "/api/alumni?featured=true", nil)
	decode(t, w, &list)
	assert.Empty(t, list)

	w = c.do(http.MethodPut, "/api/alumni/"+created.Alumni.ID+"/status", map[string]bool{"approved": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = c.do(http.MethodGet, "/api/alumni?approved=true", nil)
	decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, created.Alumni.ID, list[0]["id"])

	// false selects the moderation queue, which is now empty
	w = c.do(http.MethodGet, "/api/alumni?approved=false", nil)
	decode(t, w, &list)
	assert.Empty(t, list)

	w = c.do(http.MethodPost, "/api/alumni", map[string]interface{}{"fullName": "No Year", "program": "Science"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegistrationFlow(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t, testConfig())}

	w := c.do(http.MethodPost, "/api/registrations", map[string]string{
		"fullName":       "Ahmad Fauzi",
		"email":          "ahmad@example.com",
		"phone":          "0812345678",
		"dateOfBirth":    "2010-05-17",
		"address":        "Jl. Merdeka 1",
		"parentName":     "Fauzi",
		"parentPhone":    "0812345679",
		"previousSchool": "MTs Negeri 1",
		"program":        "Science",
		"notes":          "accept this one",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created envelope
	decode(t, w, &created)
	assert.True(t, created.Success)
	assert.Equal(t, "Registration submitted successfully", created.Message)
	id := created.Registration.ID
	require.NotEmpty(t, id)
	assert.Equal(t, "pending", created.Registration.Status)
	assert.Nil(t, created.Registration.Notes, "applicants cannot write reviewer notes")

	w = c.do(http.MethodPost, "/api/registrations", map[string]string{"fullName": "Incomplete"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/api/registrations", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/api/registrations/"+id, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodPut, "/api/registrations/"+id+"/status", map[string]string{"status": "accepted"}).Code)

	login(t, c)

	var list []map[string]interface{}
	decode(t, c.do(http.MethodGet, "/api/registrations", nil), &list)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0]["id"])
	assert.Nil(t, list[0]["notes"])

	w = c.do(http.MethodPut, "/api/registrations/missing/status", map[string]string{"status": "accepted"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = c.do(http.MethodPut, "/api/registrations/"+id+"/status", map[string]string{"status": "enrolled"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodPut, "/api/registrations/"+id+"/status", map[string]string{"status": "reviewed", "notes": "Documents complete"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = c.do(http.MethodPut, "/api/registrations/"+id+"/status", map[string]string{"status": "accepted", "notes": ""})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored map[string]interface{}
	w = c.do(http.MethodGet, "/api/registrations/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &stored)
	assert.Equal(t, "accepted", stored["status"])
	assert.Equal(t, "Documents complete", stored["notes"])

	w = c.do(http.MethodGet, "/api/registrations/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPanicIsRecoveredAndLogged(t *testing.T) {
	var buf bytes.Buffer
	router := newLoggingRouter(t, testConfig(), zerolog.New(&buf))
	router.GET("/api/explode", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/explode", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, w.Body.String())
	assert.Contains(t, buf.String(), "Recovered from panic")
	assert.Contains(t, buf.String(), `"path":"/api/explode","status":500`)
	assert.Contains(t, buf.String(), "Request handled")
}

func TestEventFlow(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t, testConfig())}
	login(t, c)

	w := c.do(http.MethodPost, "/api/events", map[string]interface{}{
		"title":     "Final exams",
		"eventDate": "2025-06-02T08:00:00Z",
		"category":  "exam",
		"isPublic":  false,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created envelope
	decode(t, w, &created)

	w = c.do(http.MethodPost, "/api/events", map[string]interface{}{
		"title":     "Graduation",
		"eventDate": "next tuesday",
		"category":  "ceremony",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var badDate struct {
		Errors []struct {
			Field string `json:"field"`
			Rule  string `json:"rule"`
		} `json:"errors"`
	}
	decode(t, w, &badDate)
	require.Len(t, badDate.Errors, 1)
	assert.Equal(t, "eventDate", badDate.Errors[0].Field)
	assert.Equal(t, "date", badDate.Errors[0].Rule)
	assert.NotContains(t, w.Body.String(), "next tuesday")

	var list []map[string]interface{}
	w = c.do(http.MethodGet, "/api/events?public=true", nil)
	decode(t, w, &list)
	assert.Empty(t, list)

	w = c.do(http.MethodGet, "/api/events", nil)
	decode(t, w, &list)
	assert.Len(t, list, 1)

	w = c.do(http.MethodDelete, "/api/events/"+created.Event.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = c.do(http.MethodGet, "/api/events/"+created.Event.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouterFallbacks(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t, testConfig())}

	w := c.do(http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"OK"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = c.do(http.MethodGet, "/api/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/json"))

	w = c.do(http.MethodPatch, "/api/health", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = c.do(http.MethodPost, "/api/contact", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "madrasah_http_requests_total")
}

func TestRateLimitedLogin(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.RequestsPerSecond = 0.001
	cfg.RateLimit.Burst = 2
	c := &client{t: t, router: newTestRouter(t, cfg)}

	creds := map[string]string{"username": "ghost", "password": "x"}
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodPost, "/api/auth/login", creds).Code)
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodPost, "/api/auth/login", creds).Code)
	assert.Equal(t, http.StatusTooManyRequests, c.do(http.MethodPost, "/api/auth/login", creds).Code)

	// reads are not limited
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/news", nil).Code)
}

func TestSeededAdminCanLogIn(t *testing.T) {
	cfg := testConfig()
	cfg.Seed.Enabled = true
	c := &client{t: t, router: newTestRouter(t, cfg)}

	w := c.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "admin123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var list []map[string]interface{}
	decode(t, c.do(http.MethodGet, "/api/news?published=true", nil), &list)
	assert.NotEmpty(t, list)
}

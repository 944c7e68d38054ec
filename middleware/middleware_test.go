package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badapples/registry/models"
	"github.com/badapples/registry/userctx"
)

type fakeResolver struct {
	actors map[int64]*models.Actor
	err    error
	calls  int
}

func (f *fakeResolver) ResolveActor(ctx context.Context, userID int64) (*models.Actor, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.actors[userID], nil
}

// sessionRouter logs in as ?id= on /login and reports the resolved actor on /me
func sessionRouter(t *testing.T, resolver ActorResolver, guard func(http.Handler) http.Handler) http.Handler {
	t.Helper()

	sessioner, err := session.Sessioner(session.Options{Provider: "memory", CookieName: "test_session"})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(sessioner)
	r.Use(LoadActor(resolver))

	r.Get("/login", func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)
		require.NoError(t, sess.Set(SessionUserKey, int64(7)))
		w.WriteHeader(http.StatusNoContent)
	})

	me := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(userctx.GetActor(r.Context()))
	})
	if guard != nil {
		r.Get("/me", guard(me).ServeHTTP)
	} else {
		r.Get("/me", me)
	}
	return r
}

func login(t *testing.T, h http.Handler) []*http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	return rec.Result().Cookies()
}

func get(h http.Handler, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestLoadActor(t *testing.T) {
	resolver := &fakeResolver{actors: map[int64]*models.Actor{
		7: {UserID: 7, Username: "mod", Role: models.RoleModerator},
	}}
	h := sessionRouter(t, resolver, nil)

	t.Run("anonymous without session user", func(t *testing.T) {
		rec := get(h, "/me", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "null", rec.Body.String())
	})

	t.Run("resolves the session user", func(t *testing.T) {
		cookies := login(t, h)
		calls := resolver.calls

		rec := get(h, "/me", cookies)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"user_id":7,"username":"mod","role":"moderator"}`, rec.Body.String())
		assert.Equal(t, calls+1, resolver.calls)
	})

	t.Run("role changes apply on the next request", func(t *testing.T) {
		cookies := login(t, h)
		resolver.actors[7] = &models.Actor{UserID: 7, Username: "mod", Role: models.RoleUser}

		rec := get(h, "/me", cookies)

		assert.JSONEq(t, `{"user_id":7,"username":"mod","role":"user"}`, rec.Body.String())
	})
}

func TestLoadActor_StoreError(t *testing.T) {
	resolver := &fakeResolver{err: models.StoreError("failed to get user", errors.New("disk I/O error"))}
	h := sessionRouter(t, resolver, nil)
	cookies := login(t, h)

	rec := get(h, "/me", cookies)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk I/O")
}

func TestRequireModerator(t *testing.T) {
	resolver := &fakeResolver{actors: map[int64]*models.Actor{}}
	h := sessionRouter(t, resolver, RequireModerator)

	assert.Equal(t, http.StatusForbidden, get(h, "/me", nil).Code, "anonymous")

	cookies := login(t, h)
	resolver.actors[7] = &models.Actor{UserID: 7, Role: models.RoleUser}
	assert.Equal(t, http.StatusForbidden, get(h, "/me", cookies).Code, "plain user")

	resolver.actors[7] = &models.Actor{UserID: 7, Role: models.RoleModerator}
	assert.Equal(t, http.StatusOK, get(h, "/me", cookies).Code, "moderator")

	resolver.actors[7] = &models.Actor{UserID: 7, Role: models.RoleAdmin}
	assert.Equal(t, http.StatusOK, get(h, "/me", cookies).Code, "admin")
}

func TestRequireAdmin(t *testing.T) {
	resolver := &fakeResolver{actors: map[int64]*models.Actor{
		7: {UserID: 7, Role: models.RoleModerator},
	}}
	h := sessionRouter(t, resolver, RequireAdmin)
	cookies := login(t, h)

	rec := get(h, "/me", cookies)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resolver.actors[7].Role = models.RoleAdmin
	assert.Equal(t, http.StatusOK, get(h, "/me", cookies).Code)
}

func TestRequestInfo(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"remote addr", "192.0.2.1:5555", nil, "192.0.2.1"},
		{"ipv6 remote addr", "[2001:db8::1]:5555", nil, "2001:db8::1"},
		{"forwarded for", "10.0.0.1:80", map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.2"}, "203.0.113.9"},
		{"real ip", "10.0.0.1:80", map[string]string{"X-Real-IP": "198.51.100.4"}, "198.51.100.4"},
		{"no address", "", nil, userctx.UnknownIP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got userctx.RequestInfo
			h := RequestInfo(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = userctx.GetRequestInfo(r.Context())
			}))

			req := httptest.NewRequest(http.MethodPost, "/dispute/incidents/1", nil)
			req.RemoteAddr = tt.remoteAddr
			req.Header.Set("User-Agent", "test-agent/1.0")
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got.IPAddress)
			assert.Equal(t, "test-agent/1.0", got.UserAgent)
		})
	}
}

func TestRateLimiter(t *testing.T) {
	rl, err := NewRateLimiter("admin_login", 5, time.Minute)
	require.NoError(t, err)

	h := RequestInfo(rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	post := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, post("192.0.2.1").Code, "request %d", i+1)
	}

	rec := post("192.0.2.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, post("192.0.2.2").Code, "other clients keep their own bucket")
}

func TestNewRateLimiter_Invalid(t *testing.T) {
	_, err := NewRateLimiter("community_report", 0, time.Hour)
	assert.Error(t, err)

	_, err = NewRateLimiter("community_report", 10, 0)
	assert.Error(t, err)
}

func TestSecurityHeaders(t *testing.T) {
	h := SecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "SAMEORIGIN", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", rec.Header().Get("X-XSS-Protection"))
	assert.Contains(t, rec.Header().Get("Strict-Transport-Security"), "max-age=31536000")
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "default-src 'self'")
}

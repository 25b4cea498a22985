package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomOccupancy/pkg/logger"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.RegisteredClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return raw
}

func validClaims() jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   "teacher@school.test",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
}

func sessionHandler() http.Handler {
	opts := SessionOptions{
		CookieName: "session",
		Secret:     testSecret,
		LoginURL:   "/login",
		APIPrefix:  "/api",
	}
	return Session(opts, logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, _ := GetSubject(r.Context())
		_, _ = w.Write([]byte(subject))
	}))
}

func TestSession(t *testing.T) {
	valid := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims())

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	tests := []struct {
		name       string
		path       string
		prepare    func(r *http.Request)
		wantStatus int
		wantBody   string
		wantLoc    string
	}{
		{
			name:       "cookie token",
			path:       "/api/data",
			prepare:    func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "session", Value: valid}) },
			wantStatus: http.StatusOK,
			wantBody:   "teacher@school.test",
		},
		{
			name:       "bearer token",
			path:       "/api/data",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+valid) },
			wantStatus: http.StatusOK,
			wantBody:   "teacher@school.test",
		},
		{
			name:       "missing token on api",
			path:       "/api/data",
			prepare:    func(*http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing token on page redirects",
			path:       "/",
			prepare:    func(*http.Request) {},
			wantStatus: http.StatusFound,
			wantLoc:    "/login",
		},
		{
			name: "wrong secret",
			path: "/api/data",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims()))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "expired token",
			path: "/api/data",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "no subject",
			path: "/api/data",
			prepare: func(r *http.Request) {
				claims := validClaims()
				claims.Subject = ""
				r.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "unsigned token",
			path: "/api/data",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, validClaims()))
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()

			sessionHandler().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
			if tt.wantLoc != "" {
				assert.Equal(t, tt.wantLoc, rec.Header().Get("Location"))
			}
		})
	}
}

func TestGetSubject_Empty(t *testing.T) {
	_, ok := GetSubject(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}

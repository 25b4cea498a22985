package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"

	"github.com/m04kA/SMC-RoomOccupancy/internal/api/handlers"
)

const msgUnauthorized = "требуется вход в систему"

// SessionOptions параметры проверки сессии
// Токен выдает внешний шлюз входа, здесь он только проверяется
type SessionOptions struct {
	CookieName string
	Secret     string
	LoginURL   string
	APIPrefix  string // Запросы с этим префиксом получают 401 вместо перенаправления
}

// Session проверяет HS256-токен сессии из cookie или заголовка Authorization
// Для API отвечает 401 JSON, для страниц перенаправляет на LoginURL
func Session(opts SessionOptions, log Logger) func(http.Handler) http.Handler {
	secret := []byte(opts.Secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject, err := verify(tokenFromRequest(r, opts.CookieName), secret)
			if err != nil {
				log.Warn("%s %s - Session rejected: %v", r.Method, r.URL.Path, err)
				if opts.APIPrefix != "" && strings.HasPrefix(r.URL.Path, opts.APIPrefix) {
					handlers.RespondUnauthorized(w, msgUnauthorized)
					return
				}
				http.Redirect(w, r, opts.LoginURL, http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request, cookieName string) string {
	if authz := strings.TrimSpace(r.Header.Get("Authorization")); len(authz) > 7 && strings.EqualFold(authz[:7], "bearer ") {
		return strings.TrimSpace(authz[7:])
	}
	if cookie, err := r.Cookie(cookieName); err == nil {
		return strings.TrimSpace(cookie.Value)
	}
	return ""
}

func verify(raw string, secret []byte) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("missing session token")
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid session token")
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("session token has no subject")
	}

	return claims.Subject, nil
}

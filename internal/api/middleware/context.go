package middleware

import "context"

type contextKey string

const (
	subjectKey   contextKey = "session_subject"
	requestIDKey contextKey = "request_id"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// GetSubject возвращает идентификатор пользователя из сессии
func GetSubject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	return subject, ok && subject != ""
}

// GetRequestID возвращает ID запроса
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusCreated, map[string]int{"rooms": 3})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"rooms":3}`, rec.Body.String())
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name    string
		respond func(w http.ResponseWriter)
		status  int
	}{
		{name: "bad request", respond: func(w http.ResponseWriter) { RespondBadRequest(w, "bad") }, status: http.StatusBadRequest},
		{name: "unauthorized", respond: func(w http.ResponseWriter) { RespondUnauthorized(w, "who") }, status: http.StatusUnauthorized},
		{name: "not found", respond: func(w http.ResponseWriter) { RespondNotFound(w, "none") }, status: http.StatusNotFound},
		{name: "internal", respond: RespondInternalError, status: http.StatusInternalServerError},
		{name: "unavailable", respond: RespondServiceUnavailable, status: http.StatusServiceUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.respond(rec)

			assert.Equal(t, tc.status, rec.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.status, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()

	RespondWithJSON(w, http.StatusCreated, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestRespondWithJSON_NilPayload(t *testing.T) {
	w := httptest.NewRecorder()

	RespondWithJSON(w, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondWithError(w, http.StatusNotFound, "account not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "account not found", body.Error)
}

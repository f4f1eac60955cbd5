package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notehub/notehub/internal/api/response"
)

func TestSuccess(t *testing.T) {
	w := httptest.NewRecorder()

	response.Success(w, http.StatusOK, map[string]string{"hello": "world"}, "req-1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var env map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	data := env["data"].(map[string]interface{})
	assert.Equal(t, "world", data["hello"])
	assert.Nil(t, env["error"])

	meta := env["meta"].(map[string]interface{})
	assert.Equal(t, "req-1", meta["requestId"])
	assert.NotEmpty(t, meta["timestamp"])
}

func TestErr(t *testing.T) {
	w := httptest.NewRecorder()

	response.Err(w, http.StatusConflict, "EMAIL_IN_USE", "Email already in use", "req-2")

	assert.Equal(t, http.StatusConflict, w.Code)

	var env map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	assert.Nil(t, env["data"])
	apiErr := env["error"].(map[string]interface{})
	assert.Equal(t, "EMAIL_IN_USE", apiErr["code"])
	assert.Equal(t, "Email already in use", apiErr["message"])
}

func TestErrWithDetails(t *testing.T) {
	w := httptest.NewRecorder()

	details := []map[string]string{{"field": "email", "message": "email is required"}}
	response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", details, "req-3")

	var env map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	apiErr := env["error"].(map[string]interface{})
	assert.NotNil(t, apiErr["details"])
}

func TestNewMeta_GeneratesRequestID(t *testing.T) {
	meta := response.NewMeta("")
	assert.NotEmpty(t, meta.RequestID)
}

package shared_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/seogen-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON_DoesNotEscapeHTML(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	shared.RespondWithJSON(rec, req, http.StatusOK, map[string]string{"result": "<b>&</b>"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"result":"<b>&</b>"}`+"\n", rec.Body.String())
}

func TestRespondWithErrorAndLog_WritesPlainMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	shared.RespondWithErrorAndLog(rec, req, http.StatusInternalServerError, "boom",
		errors.New("boom with key=abcdefghijklmnop"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "boom", rec.Body.String())
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
}

func TestSetCORSHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	shared.SetCORSHeaders(rec, "*")

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, X-API-Key", rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestReadBody(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := shared.ReadBody(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("")))
	assert.ErrorIs(t, err, shared.ErrEmptyBody)

	body, err := shared.ReadBody(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":1}`)))
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(body))

	big := strings.Repeat("x", shared.MaxBodyBytes+1)
	_, err = shared.ReadBody(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big)))
	assert.Error(t, err)
}

func TestTraceID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	assert.Empty(t, shared.GetTraceID(req.Context()))

	ctx := shared.SetTraceID(req.Context())
	assert.NotEmpty(t, shared.GetTraceID(ctx))
	assert.NotEqual(t, shared.GetTraceID(ctx), shared.GetTraceID(shared.SetTraceID(req.Context())))
}

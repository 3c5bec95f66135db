package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jahooker/int2en/internal/app"
	"github.com/jahooker/int2en/numwords"
)

func newTestServer() *echo.Echo {
	e := echo.New()
	e.Use(RequestIDMiddleware())
	svc := app.NewWordsService(16, time.Minute)
	NewHandler(svc, numwords.ShortScale).Register(e)
	return e
}

func doGet(t *testing.T, e *echo.Echo, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestWords(t *testing.T) {
	e := newTestServer()

	t.Run("happy path", func(t *testing.T) {
		rec := doGet(t, e, "/v1/words?n=118")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp WordsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "118", resp.Number)
		assert.Equal(t, "one hundred and eighteen", resp.Words)
		assert.Equal(t, "short", resp.Scale)
		assert.Equal(t, "cardinal", resp.Mode)
		assert.NotEmpty(t, resp.Meta.RequestID)
	})

	t.Run("ordinal long scale", func(t *testing.T) {
		rec := doGet(t, e, "/v1/words?n=1000000000&scale=long&mode=ordinal")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp WordsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "one milliardth", resp.Words)
		assert.Equal(t, "long", resp.Scale)
		assert.Equal(t, "ordinal", resp.Mode)
	})

	t.Run("negative with minus", func(t *testing.T) {
		rec := doGet(t, e, "/v1/words?n=-42&negation=minus")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp WordsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "minus forty-two", resp.Words)
	})

	t.Run("and disabled", func(t *testing.T) {
		rec := doGet(t, e, "/v1/words?n=1001&and=false")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp WordsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "one thousand one", resp.Words)
	})

	t.Run("missing n", func(t *testing.T) {
		rec := doGet(t, e, "/v1/words")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-numeric n", func(t *testing.T) {
		rec := doGet(t, e, "/v1/words?n=twelve")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown scale", func(t *testing.T) {
		rec := doGet(t, e, "/v1/words?n=5&scale=medium")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown negation", func(t *testing.T) {
		rec := doGet(t, e, "/v1/words?n=5&negation=anti")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealthz(t *testing.T) {
	e := newTestServer()

	rec := doGet(t, e, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRequestIDPropagation(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/v1/words?n=7", nil)
	req.Header.Set(headerRequestID, "fixed-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fixed-id", rec.Header().Get(headerRequestID))

	var resp WordsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "fixed-id", resp.Meta.RequestID)
}

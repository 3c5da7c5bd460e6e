package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

func newSystemRouter(db Pinger) *gin.Engine {
	h := NewSystemHandler(db, "Insurance App")
	router := gin.New()
	router.GET("/health", h.Health)
	router.GET("/status", h.Status)
	router.GET("/about", h.About)
	router.GET("/contact", h.Contact)
	router.GET("/help", h.Help)
	return router
}

func TestSystemHandler_Health(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		w := doJSON(newSystemRouter(fakePinger{}), http.MethodGet, "/health", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "ok", resp.Database)
		assert.NotEmpty(t, resp.Time)
	})

	t.Run("database down", func(t *testing.T) {
		w := doJSON(newSystemRouter(fakePinger{err: errors.New("refused")}), http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unhealthy"`)
	})

	t.Run("real sqlite handle", func(t *testing.T) {
		sqlDB, err := newTestDB(t).DB()
		require.NoError(t, err)
		w := doJSON(newSystemRouter(sqlDB), http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestSystemHandler_Informational(t *testing.T) {
	router := newSystemRouter(fakePinger{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	for path, want := range map[string]string{
		"/about":   "designed to manage client policies and claims",
		"/contact": "support@insuranceapp.com",
		"/help":    "help center",
	} {
		w := doJSON(router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body["message"], want, path)
	}
}

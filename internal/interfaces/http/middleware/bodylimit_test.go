package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/insurance/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
)

func bodyLimitRouter(limit int64) *gin.Engine {
	router := gin.New()
	router.Use(BodyLimit(limit))
	router.POST("/api/documents/1/file", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusCreated)
	})
	router.GET("/api/documents", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestBodyLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		chunked  bool
		wantCode int
	}{
		{"upload within limit", http.MethodPost, "/api/documents/1/file", strings.Repeat("a", 16), false, http.StatusCreated},
		{"upload at limit", http.MethodPost, "/api/documents/1/file", strings.Repeat("a", 32), false, http.StatusCreated},
		{"declared length over limit", http.MethodPost, "/api/documents/1/file", strings.Repeat("a", 33), false, http.StatusRequestEntityTooLarge},
		{"chunked body over limit", http.MethodPost, "/api/documents/1/file", strings.Repeat("a", 64), true, http.StatusRequestEntityTooLarge},
		{"bodiless GET", http.MethodGet, "/api/documents", "", false, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := bodyLimitRouter(32)
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.chunked {
				req.ContentLength = -1
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestBodyLimit_ErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := bodyLimitRouter(4)

	req := httptest.NewRequest(http.MethodPost, "/api/documents/1/file", strings.NewReader("too large"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), dto.ErrCodePayloadTooLarge)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

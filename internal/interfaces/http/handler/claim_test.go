package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	claimsapp "github.com/insurance/backend/internal/application/claims"
	"github.com/insurance/backend/internal/infrastructure/config"
	"github.com/insurance/backend/internal/infrastructure/persistence"
	"github.com/insurance/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := persistence.NewDatabase(&config.DatabaseConfig{URL: "sqlite://:memory:", MaxOpenConns: 1, MaxIdleConns: 1})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { _ = db.Close() })
	return db.DB
}

type invalidations struct{ n atomic.Int32 }

func (i *invalidations) Invalidate(context.Context) { i.n.Add(1) }

func newClaimRouter(t *testing.T) (*gin.Engine, *invalidations) {
	t.Helper()
	inv := &invalidations{}
	h := NewClaimHandler(claimsapp.NewClaimService(persistence.NewGormClaimRepository(newTestDB(t)), inv, nil))

	router := gin.New()
	g := router.Group("/api/claims")
	g.GET("/", h.List)
	g.POST("/", h.Create)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return router, inv
}

func doJSON(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func claimData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp.Data
}

func TestClaimHandler_Lifecycle(t *testing.T) {
	router, inv := newClaimRouter(t)

	w := doJSON(router, http.MethodPost, "/api/claims/",
		`{"policy_id":4,"claim_number":"CLM-9","amount":"250.50","status":"open","filed_date":"2024-05-02","settled_date":"2024-06-01"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := claimData(t, w)
	id := int(created["id"].(float64))
	assert.Equal(t, "CLM-9", created["claim_number"])
	assert.Equal(t, "2024-05-02", created["filed_date"])

	w = doJSON(router, http.MethodGet, "/api/claims/"+strconv.Itoa(id), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "open", claimData(t, w)["status"])

	// status changes, amount and settled_date are cleared, the rest is untouched
	w = doJSON(router, http.MethodPut, "/api/claims/"+strconv.Itoa(id), `{"status":"settled","amount":null,"settled_date":null}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := claimData(t, w)
	assert.Equal(t, "settled", updated["status"])
	assert.Nil(t, updated["amount"])
	assert.Nil(t, updated["settled_date"])
	assert.Equal(t, "CLM-9", updated["claim_number"])
	assert.Equal(t, "2024-05-02", updated["filed_date"])
	assert.EqualValues(t, 4, updated["policy_id"])

	w = doJSON(router, http.MethodDelete, "/api/claims/"+strconv.Itoa(id), "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, http.MethodGet, "/api/claims/"+strconv.Itoa(id), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Claim not found")

	w = doJSON(router, http.MethodDelete, "/api/claims/"+strconv.Itoa(id), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.Equal(t, int32(3), inv.n.Load())
}

func TestClaimHandler_CreateValidation(t *testing.T) {
	router, _ := newClaimRouter(t)

	w := doJSON(router, http.MethodPost, "/api/claims/", `{"status":"open"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	require.NotEmpty(t, resp.Error.Details)
	assert.Equal(t, "claim_number", resp.Error.Details[0].Field)

	w = doJSON(router, http.MethodPost, "/api/claims/", `{"claim_number":"A","filed_date":"02/05/2024"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClaimHandler_UpdateRejectsNullClaimNumber(t *testing.T) {
	router, _ := newClaimRouter(t)

	w := doJSON(router, http.MethodPost, "/api/claims/", `{"claim_number":"CLM-1"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	id := int(claimData(t, w)["id"].(float64))

	w = doJSON(router, http.MethodPut, "/api/claims/"+strconv.Itoa(id), `{"claim_number":null}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeInvalidInput, decodeResponse(t, w).Error.Code)
}

func TestClaimHandler_DuplicateNumber(t *testing.T) {
	router, _ := newClaimRouter(t)

	require.Equal(t, http.StatusCreated, doJSON(router, http.MethodPost, "/api/claims/", `{"claim_number":"DUP"}`).Code)
	w := doJSON(router, http.MethodPost, "/api/claims/", `{"claim_number":"DUP"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestClaimHandler_ListPaging(t *testing.T) {
	router, _ := newClaimRouter(t)

	for _, n := range []string{"A", "B", "C"} {
		require.Equal(t, http.StatusCreated, doJSON(router, http.MethodPost, "/api/claims/", `{"claim_number":"`+n+`","status":"open"}`).Code)
	}

	w := doJSON(router, http.MethodGet, "/api/claims/?page=2&page_size=2&order_by=claim_number", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.EqualValues(t, 3, resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 2, resp.Meta.TotalPages)
	rows := resp.Data.([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "C", rows[0].(map[string]any)["claim_number"])

	w = doJSON(router, http.MethodGet, "/api/claims/?page_size=0", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 100, decodeResponse(t, w).Meta.PageSize)

	w = doJSON(router, http.MethodGet, "/api/claims/?page=-1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodGet, "/api/claims/?page=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func newRequestWithCookies(method, path string, cookies []*http.Cookie) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

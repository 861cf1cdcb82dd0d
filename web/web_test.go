package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newPageRouter() *gin.Engine {
	router := gin.New()
	Register(router)
	return router
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPublicSiteServedAtRoot(t *testing.T) {
	router := newPageRouter()

	w := get(t, router, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<html")
}

func TestAdminPanelServed(t *testing.T) {
	router := newPageRouter()

	w := get(t, router, "/admin")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}

func TestStaticAssetsServed(t *testing.T) {
	router := newPageRouter()

	w := get(t, router, "/static/js/script.js")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Header().Get("Content-Type"), "javascript") ||
		strings.Contains(w.Header().Get("Content-Type"), "text"))
}

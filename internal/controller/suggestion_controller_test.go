package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() (*gin.Engine, *SuggestionController, *MessageController) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	sc := &SuggestionController{}
	mc := &MessageController{}
	router.GET("/api/suggestions", sc.QueryContext)
	router.PUT("/api/messages", mc.IngestMessage)
	return router, sc, mc
}

func TestQueryContextRequiresUserID(t *testing.T) {
	router, _, _ := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/suggestions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "userId is required")
}

func TestQueryContextRejectsInvalidUserID(t *testing.T) {
	router, _, _ := newTestRouter()

	for _, raw := range []string{"abc", "0", "-3"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/suggestions?userId="+raw, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "userId=%s", raw)
	}
}

func TestIngestMessageRejectsMalformedJSON(t *testing.T) {
	router, _, _ := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/messages", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"travelbook/internal/pkg/logger"
)

func TestCORS_AllowedOrigin(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"https://travel.example.com"}))
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://travel.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://travel.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_UnknownOriginAndPreflight(t *testing.T) {
	router := gin.New()
	router.Use(CORS(nil))
	router.OPTIONS("/x", func(c *gin.Context) { t.Fatal("preflight should stop in middleware") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestErrorLogger_RecoversPanic(t *testing.T) {
	var buf bytes.Buffer
	router := gin.New()
	router.Use(ErrorLogger(logger.New(logger.Config{Output: &buf})))
	router.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	assert.Contains(t, buf.String(), "kaboom")
}

func TestErrorLogger_LogsContextErrors(t *testing.T) {
	var buf bytes.Buffer
	router := gin.New()
	router.Use(ErrorLogger(logger.New(logger.Config{Output: &buf})))
	router.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("persist bookings-storage: disk full"))
		c.Status(http.StatusInternalServerError)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Contains(t, buf.String(), "disk full")
	assert.Contains(t, buf.String(), "request_error")
}

func TestAllowedOrigins(t *testing.T) {
	got := AllowedOrigins([]string{" https://travel.example.com ", "", "http://localhost:3000"})

	assert.Contains(t, got, "http://localhost:5173")
	assert.Contains(t, got, "https://travel.example.com")

	n := 0
	for _, o := range got {
		if o == "http://localhost:3000" {
			n++
		}
	}
	assert.Equal(t, 1, n)
	assert.Len(t, AllowedOrigins(nil), len(defaultOrigins))
}

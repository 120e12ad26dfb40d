package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func brotliRouter(body string) *gin.Engine {
	r := gin.New()
	r.Use(BrotliWithConfig(BrotliConfig{Quality: 5, MinLength: 64}))
	r.GET("/", func(c *gin.Context) {
		// Two writes so compression switches on mid-body.
		c.Writer.WriteString(body[:len(body)/2])
		c.Writer.WriteString(body[len(body)/2:])
	})
	return r
}

func TestBrotliCompressesLargeBodies(t *testing.T) {
	body := strings.Repeat("CSCI101-A Intro to Programming ", 20)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip, br;q=1.0")
	w := httptest.NewRecorder()
	brotliRouter(body).ServeHTTP(w, req)

	require.Equal(t, "br", w.Header().Get("Content-Encoding"))
	decoded, err := io.ReadAll(brotli.NewReader(w.Body))
	require.NoError(t, err)
	assert.Equal(t, body, string(decoded))
}

func TestBrotliPassesSmallBodies(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "br")
	w := httptest.NewRecorder()
	brotliRouter("short").ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, "short", w.Body.String())
}

func TestBrotliSkippedWithoutAcceptEncoding(t *testing.T) {
	body := strings.Repeat("x", 200)
	w := httptest.NewRecorder()
	brotliRouter(body).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, body, w.Body.String())
}

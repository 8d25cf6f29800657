package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T, target string, header string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	if header != "" {
		c.Request.Header.Set("Authorization", header)
	}
	return c
}

func TestBearerTokenFromHeader(t *testing.T) {
	c := testContext(t, "/admin/dashboard/stats", "Bearer abc-123")
	assert.Equal(t, "abc-123", BearerToken(c))
}

// The browser EventSource API cannot set headers, so the stream route
// falls back to a query parameter.
func TestBearerTokenFromQuery(t *testing.T) {
	c := testContext(t, "/admin/dashboard/stream?token=xyz", "")
	assert.Equal(t, "xyz", BearerToken(c))
}

func TestBearerTokenMissing(t *testing.T) {
	c := testContext(t, "/admin/doctors/fetchAll", "")
	assert.Equal(t, "", BearerToken(c))

	c = testContext(t, "/admin/doctors/fetchAll", "Basic abc")
	assert.Equal(t, "", BearerToken(c))
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("admin123")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("admin1234")))
}

func TestMatchesMaster(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	t.Setenv("MASTER_EMAIL", "admin@visioncare360.example")
	t.Setenv("MASTER_PASSWORD_HASH", hash)

	assert.True(t, matchesMaster("admin@visioncare360.example", "s3cret"))
	assert.False(t, matchesMaster("admin@visioncare360.example", "wrong"))
	assert.False(t, matchesMaster("other@visioncare360.example", "s3cret"))
}

func TestMatchesMasterUnconfigured(t *testing.T) {
	t.Setenv("MASTER_EMAIL", "")
	t.Setenv("MASTER_PASSWORD_HASH", "")
	assert.False(t, matchesMaster("", ""))
}

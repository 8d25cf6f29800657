package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionValid(t *testing.T) {
	assert.True(t, Session{Email: "a@b.c", Role: "admin"}.Valid())
	assert.False(t, Session{Email: "a@b.c"}.Valid())
	assert.False(t, Session{Role: "admin"}.Valid())
	assert.False(t, Session{}.Valid())
}

// A stored blob missing the expected fields decodes without error but
// reads as an invalid session rather than an authenticated one.
func TestSessionDecodeMalformedBlob(t *testing.T) {
	var session Session
	require.NoError(t, json.Unmarshal([]byte(`{"something":"else"}`), &session))
	assert.False(t, session.Valid())
}

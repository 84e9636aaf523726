package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	h := NewHasher(4)

	digest, err := h.Hash("pass123")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotContains(t, digest, "pass123")

	assert.True(t, h.Verify(digest, "pass123"))
	assert.False(t, h.Verify(digest, "wrong"))
	assert.False(t, h.Verify("not-a-digest", "pass123"))
}

func TestNewHasherClampsCost(t *testing.T) {
	h := NewHasher(99)
	digest, err := h.Hash("x")
	require.NoError(t, err)
	assert.True(t, h.Verify(digest, "x"))
}

package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	hashed, err := Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", hashed)
	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, Cost, cost)
}

func TestHash_Salted(t *testing.T) {
	first, err := Hash("secret1")
	require.NoError(t, err)
	second, err := Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerify(t *testing.T) {
	hashed, err := Hash("secret1")
	require.NoError(t, err)

	assert.True(t, Verify("secret1", hashed))
	assert.False(t, Verify("secret2", hashed))
	assert.False(t, Verify("secret1", "not-a-hash"))
}

func TestHash_TooLong(t *testing.T) {
	_, err := Hash(strings.Repeat("a", MaxLength+1))
	assert.Error(t, err)
}

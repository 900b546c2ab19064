package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptVerifier(t *testing.T) {
	t.Parallel()

	// MinCost keeps the adaptive work factor cheap in tests
	verifier := &BcryptVerifier{cost: bcrypt.MinCost}

	t.Run("hash then compare succeeds", func(t *testing.T) {
		t.Parallel()
		hashed, err := verifier.Hash("correct horse battery staple")
		require.NoError(t, err)
		require.NotEmpty(t, hashed)
		assert.NotEqual(t, "correct horse battery staple", hashed)

		assert.NoError(t, verifier.Compare(hashed, "correct horse battery staple"))
	})

	t.Run("compare fails for wrong password", func(t *testing.T) {
		t.Parallel()
		hashed, err := verifier.Hash("password1")
		require.NoError(t, err)

		assert.Error(t, verifier.Compare(hashed, "password2"))
	})

	t.Run("hashes are salted", func(t *testing.T) {
		t.Parallel()
		first, err := verifier.Hash("same-password")
		require.NoError(t, err)
		second, err := verifier.Hash("same-password")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}

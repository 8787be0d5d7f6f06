package encode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T) *BcryptHasher {
	t.Helper()
	h, err := NewBcryptHasher(MinBcryptCost)
	assert.NoError(t, err)
	return h
}

func TestBcryptHasher_Hash(t *testing.T) {
	h := newTestHasher(t)

	t.Run("salted", func(t *testing.T) {
		h1, err := h.Hash("p@ss1234")
		assert.NoError(t, err)
		h2, err := h.Hash("p@ss1234")
		assert.NoError(t, err)

		assert.NotEqual(t, h1, h2)
		assert.NotEqual(t, "p@ss1234", h1)
		assert.NotContains(t, h1, "p@ss1234")
		assert.True(t, h.Verify("p@ss1234", h1))
		assert.True(t, h.Verify("p@ss1234", h2))
	})

	t.Run("cost is embedded", func(t *testing.T) {
		hashed, err := h.Hash("p@ss1234")
		assert.NoError(t, err)
		cost, err := bcrypt.Cost([]byte(hashed))
		assert.NoError(t, err)
		assert.Equal(t, MinBcryptCost, cost)
	})

	t.Run("byte limit", func(t *testing.T) {
		hashed, err := h.Hash(strings.Repeat("a", 72))
		assert.NoError(t, err)
		assert.True(t, h.Verify(strings.Repeat("a", 72), hashed))

		_, err = h.Hash(strings.Repeat("é", 36))
		assert.NoError(t, err)
	})

	t.Run("too long", func(t *testing.T) {
		_, err := h.Hash(strings.Repeat("a", 73))
		assert.ErrorIs(t, err, ErrHashing)

		// 40 runes but 80 bytes
		_, err = h.Hash(strings.Repeat("é", 40))
		assert.ErrorIs(t, err, ErrHashing)
	})
}

func TestBcryptHasher_Verify(t *testing.T) {
	h := newTestHasher(t)
	hashed, err := h.Hash("right-password")
	assert.NoError(t, err)

	assert.True(t, h.Verify("right-password", hashed))
	assert.False(t, h.Verify("wrong-password", hashed))
	assert.False(t, h.Verify("right-password", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("right-password", ""))
}

func TestNewBcryptHasher_Cost(t *testing.T) {
	h, err := NewBcryptHasher(4)
	assert.NoError(t, err)
	assert.Equal(t, MinBcryptCost, h.Cost())

	_, err = NewBcryptHasher(bcrypt.MaxCost + 1)
	assert.Error(t, err)
}

func TestBcryptHasher_Burn(t *testing.T) {
	h := newTestHasher(t)
	assert.NotPanics(t, func() { h.Burn("anything") })
}

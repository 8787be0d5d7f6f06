package encode

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MinBcryptCost is the lowest work factor the hasher accepts.
const MinBcryptCost = bcrypt.DefaultCost

var ErrHashing = errors.New("password hashing failed")

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify never errors: a mismatch or an unreadable hash is false.
	Verify(plaintext, hashed string) bool
	// Burn spends the same work as a failed Verify. Used when there is no
	// stored hash to compare against.
	Burn(plaintext string)
}

type BcryptHasher struct {
	cost  int
	dummy []byte
}

func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost < MinBcryptCost {
		cost = MinBcryptCost
	}
	if cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d exceeds %d", cost, bcrypt.MaxCost)
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("venue-tracker-dummy"), cost)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHashing, err)
	}
	return &BcryptHasher{cost: cost, dummy: dummy}, nil
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashing, err)
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}

func (h *BcryptHasher) Burn(plaintext string) {
	_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(plaintext))
}

func (h *BcryptHasher) Cost() int {
	return h.cost
}

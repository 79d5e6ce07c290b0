package repository

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithClock sets the time source for CreatedAt/UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithBcryptCost sets the cost used to hash donor passwords.
func WithBcryptCost(cost int) Option {
	return func(s *MemoryStore) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.bcryptCost = cost
		}
	}
}

package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for trace ids and
// temporary message ids.
type UUIDGenerator struct {
	prefix string
}

// NewUUIDGenerator returns a generator whose ids start with prefix.
func NewUUIDGenerator(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate returns prefix followed by a UUIDv7, or a random UUIDv4 when the
// clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return g.prefix + uuid.NewString()
	}

	return g.prefix + v7.String()
}

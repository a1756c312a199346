package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered unique tokens. The Redis sync lock uses
// them as owner tokens so that only the holder can release a lock.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, or a random UUIDv4 if the clock source fails.
func (g *UUIDGenerator) Generate() string {
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}
	return uuid.NewString()
}

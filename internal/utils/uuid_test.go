package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	seen := make(map[string]struct{})
	for range 100 {
		token := g.Generate()

		parsed, err := uuid.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())

		seen[token] = struct{}{}
	}
	assert.Len(t, seen, 100)
}

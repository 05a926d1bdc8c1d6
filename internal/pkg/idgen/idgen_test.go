package idgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keeperforge/keeper-core/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("room")

	assert.Equal(t, "room_1", gen.Generate())
	assert.Equal(t, "room_2", gen.Generate())
}

func TestSequentialGenerator_NoPrefix(t *testing.T) {
	gen := idgen.NewSequential("")

	assert.Equal(t, "1", gen.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("room")

	first := gen.Generate()
	second := gen.Generate()

	assert.NotEqual(t, first, second)
	assert.Contains(t, first, "room_")
}

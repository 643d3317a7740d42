package bigint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNarrowUint64(t *testing.T) {
	v, err := NarrowUint64(42)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestNarrowUint64Overflow(t *testing.T) {
	_, err := NarrowUint64(uint64(math.MaxInt) + 1)
	assert.ErrorIs(t, err, ErrOverflow)
}

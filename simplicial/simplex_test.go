package simplicial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSimplex(t *testing.T) {
	s, err := NewSimplex([]int{2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Popcount())
	assert.Equal(t, 2, s.Dimension())
	assert.Equal(t, []int{0, 1, 2}, s.Vertices())
	assert.True(t, s.Contains(1))
	assert.False(t, s.Contains(5))
}

func TestNewSimplexRejectsEmpty(t *testing.T) {
	_, err := NewSimplex(nil)
	assert.ErrorIs(t, err, ErrEmptySimplex)
}

func TestSimplexEqualIgnoresOrder(t *testing.T) {
	a, _ := NewSimplex([]int{0, 1, 2})
	b, _ := NewSimplex([]int{2, 1, 0})
	assert.True(t, a.Equal(b))
}

func TestWithoutVertex(t *testing.T) {
	s, _ := NewSimplex([]int{0, 1, 2})
	face := s.WithoutVertex(1)
	assert.Equal(t, []int{0, 2}, face.Vertices())
}

func TestIterOverSubsetsSignAlternation(t *testing.T) {
	s, _ := NewSimplex([]int{0, 1, 2})
	type entry struct {
		vertices []int
		sign     bool
	}
	var got []entry
	iterOverSubsets(s, func(face Simplex, sign bool) {
		got = append(got, entry{face.Vertices(), sign})
	})
	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 2}, got[0].vertices)
	assert.True(t, got[0].sign)
	assert.Equal(t, []int{0, 2}, got[1].vertices)
	assert.False(t, got[1].sign)
	assert.Equal(t, []int{0, 1}, got[2].vertices)
	assert.True(t, got[2].sign)
}

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/technosentience/simp-hom-calc/bigint"
)

func TestParseComplexValid(t *testing.T) {
	got, err := ParseComplex([]byte("[[1, 2], [3, 4]]"))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, got)
}

func TestParseComplexWhitespaceTolerant(t *testing.T) {
	got, err := ParseComplex([]byte("[ [3, 5, 7], [9]\n        ]"))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{3, 5, 7}, {9}}, got)
}

func TestParseComplexIncompletePrefix(t *testing.T) {
	_, err := ParseComplex([]byte("[[1, 2"))
	assert.ErrorIs(t, err, ErrIncomplete)

	_, err = ParseComplex([]byte(""))
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestParseComplexRejectsEmptyComplex(t *testing.T) {
	_, err := ParseComplex([]byte("[]"))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParseComplexRejectsEmptyFacet(t *testing.T) {
	_, err := ParseComplex([]byte("[[1,2],[]]"))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParseComplexRejectsGarbage(t *testing.T) {
	_, err := ParseComplex([]byte("not json at all }"))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParseComplexRejectsNegative(t *testing.T) {
	_, err := ParseComplex([]byte("[[-1, 2]]"))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParseComplexOverflow(t *testing.T) {
	_, err := ParseComplex([]byte("[[18446744073709551615]]"))
	assert.ErrorIs(t, err, bigint.ErrOverflow)
}

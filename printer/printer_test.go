package printer

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/technosentience/simp-hom-calc/homology"
)

func TestFormatNoTorsion(t *testing.T) {
	got := Format([]homology.HomologyGroup{{Free: 1}})
	assert.Equal(t, []string{"H_0: Z^1"}, got)
}

func TestFormatZeroFreeNoTorsion(t *testing.T) {
	got := Format([]homology.HomologyGroup{{Free: 0}})
	assert.Equal(t, []string{"H_0: Z^0"}, got)
}

func TestFormatWithTorsion(t *testing.T) {
	got := Format([]homology.HomologyGroup{
		{Free: 1},
		{Free: 1, Torsion: []*big.Int{big.NewInt(2)}},
	})
	assert.Equal(t, []string{"H_0: Z^1", "H_1: Z^1 x Z/2Z"}, got)
}

func TestFormatMultipleTorsionFactors(t *testing.T) {
	got := Format([]homology.HomologyGroup{
		{Free: 0, Torsion: []*big.Int{big.NewInt(2), big.NewInt(4)}},
	})
	assert.Equal(t, []string{"H_0: Z^0 x Z/2Z x Z/4Z"}, got)
}

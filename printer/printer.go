package printer

import (
	"fmt"
	"strings"

	"github.com/technosentience/simp-hom-calc/homology"
)

// Format renders one line per dimension: "H_k: Z^b[ x Z/d_1 Z]...",
// where b is groups[k].Free (written verbatim, including b = 0) and
// torsion terms are emitted in SNF-produced (divisibility) order,
// separated by " x ".
func Format(groups []homology.HomologyGroup) []string {
	lines := make([]string, len(groups))
	for k, g := range groups {
		var b strings.Builder
		fmt.Fprintf(&b, "H_%d: Z^%d", k, g.Free)
		for _, d := range g.Torsion {
			fmt.Fprintf(&b, " x Z/%sZ", d.String())
		}
		lines[k] = b.String()
	}
	return lines
}

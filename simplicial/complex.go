package simplicial

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat/combin"
)

// Complex is a finite abstract simplicial complex: a set of Simplex
// values closed under the nonempty-subset relation. It is built once
// from a facet list and immutable thereafter.
type Complex struct {
	numVertices int
	simplices   map[string]Simplex
	dimension   int
}

// NewComplex builds the closed complex from a list of facets via BFS
// closure:
//  1. n = (max vertex index across all input simplices) + 1.
//  2. Encode each facet as a bitmask of length n; seed the work queue.
//  3. While the queue is nonempty: pop σ; skip if already closed; else
//     enqueue every σ\{v} for v ∈ σ with |σ| ≥ 2, and insert σ.
//
// Returns ErrEmptyComplex if facets is empty, ErrEmptySimplex if any
// facet is empty, and ErrComplexTooLarge if the closure exceeds
// Options.MaxSimplices.
func NewComplex(facets [][]int, opts ...Option) (*Complex, error) {
	if len(facets) == 0 {
		return nil, ErrEmptyComplex
	}
	o := NewOptions(opts...)

	maxVertex := -1
	for _, f := range facets {
		if len(f) == 0 {
			return nil, ErrEmptySimplex
		}
		for _, v := range f {
			if v > maxVertex {
				maxVertex = v
			}
		}
	}
	n := maxVertex + 1
	if n <= 0 {
		return nil, ErrNoVertices
	}

	queue := make([]Simplex, 0, len(facets))
	for _, f := range facets {
		s, err := NewSimplex(f)
		if err != nil {
			return nil, err
		}
		queue = append(queue, s)
	}

	closed := make(map[string]Simplex)
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		key := s.key()
		if _, ok := closed[key]; ok {
			continue
		}
		if len(closed) >= o.MaxSimplices {
			return nil, ErrComplexTooLarge
		}
		if s.Popcount() >= 2 {
			iterOverSubsets(s, func(face Simplex, _ bool) {
				queue = append(queue, face)
			})
		}
		closed[key] = s
	}

	dim := -1
	for _, s := range closed {
		if d := s.Dimension(); d > dim {
			dim = d
		}
	}

	return &Complex{numVertices: n, simplices: closed, dimension: dim}, nil
}

// NumVertices returns n, the size of the vertex universe the complex was
// built over.
func (c *Complex) NumVertices() int {
	return c.numVertices
}

// Dimension returns the complex's dimension: max simplex popcount - 1,
// mirroring simplex.rs's dimension() — derived from the closed complex's
// own simplices, not re-derived from the input facets.
func (c *Complex) Dimension() int {
	return c.dimension
}

// Len returns the total number of simplices in the closed complex.
func (c *Complex) Len() int {
	return len(c.simplices)
}

// simplicesOfDim returns every simplex of dimension k (popcount k+1),
// sorted by Simplex.compare for a deterministic, fixed-for-one-call
// enumeration order.
func (c *Complex) simplicesOfDim(k int) []Simplex {
	capacity := 0
	if k >= 0 && c.numVertices > 0 && k+1 <= c.numVertices {
		capacity = combin.Binomial(c.numVertices, k+1)
	}
	out := make([]Simplex, 0, capacity)
	for _, s := range c.simplices {
		if s.Popcount() == k+1 {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].compare(out[j]) < 0 })
	return out
}

// ContainsSimplex reports whether σ belongs to the complex — used by the
// closure-under-subset property test.
func (c *Complex) ContainsSimplex(s Simplex) bool {
	_, ok := c.simplices[s.key()]
	return ok
}

// verifyClosure is a defensive check that every codimension-1 face of
// every simplex with popcount >= 2 is present — the closure invariant a
// simplicial complex must satisfy. Exposed for tests; never called on the
// construction hot path since NewComplex's BFS already guarantees it by
// construction.
func (c *Complex) verifyClosure() error {
	for _, s := range c.simplices {
		if s.Popcount() < 2 {
			continue
		}
		var missing error
		iterOverSubsets(s, func(face Simplex, _ bool) {
			if missing == nil && !c.ContainsSimplex(face) {
				missing = fmt.Errorf("simplicial: face %v of %v missing from closed complex", face.Vertices(), s.Vertices())
			}
		})
		if missing != nil {
			return missing
		}
	}
	return nil
}

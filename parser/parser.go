package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/technosentience/simp-hom-calc/bigint"
)

// ParseComplex attempts to parse data as the bracketed list-of-lists
// grammar. On success it returns the facet list with every vertex index
// narrowed to int. Returns ErrIncomplete if data is a valid prefix that
// needs more bytes, or ErrMalformed (with a byte offset where the
// underlying decoder supplies one) on a grammar violation, including an
// empty facet list or an empty facet.
func ParseComplex(data []byte) ([][]int, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw [][]json.Number
	if err := dec.Decode(&raw); err != nil {
		if isIncomplete(err) {
			return nil, ErrIncomplete
		}
		if se, ok := err.(*json.SyntaxError); ok {
			return nil, fmt.Errorf("%w: offset %d: %v", ErrMalformed, se.Offset, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty facet list", ErrMalformed)
	}

	out := make([][]int, len(raw))
	for i, facet := range raw {
		if len(facet) == 0 {
			return nil, fmt.Errorf("%w: facet %d is empty", ErrMalformed, i)
		}
		vertices := make([]int, len(facet))
		for j, n := range facet {
			u, err := strconv.ParseUint(n.String(), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: facet %d entry %d: %v", ErrMalformed, i, j, err)
			}
			v, err := bigint.NarrowUint64(u)
			if err != nil {
				return nil, fmt.Errorf("facet %d entry %d: %w", i, j, err)
			}
			vertices[j] = v
		}
		out[i] = vertices
	}
	return out, nil
}

// isIncomplete reports whether err indicates data was a truncated prefix
// of valid JSON rather than a grammar violation.
func isIncomplete(err error) bool {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return true
	}
	// encoding/json surfaces some truncation cases as *json.SyntaxError
	// with this exact message rather than io.ErrUnexpectedEOF.
	return strings.Contains(err.Error(), "unexpected end of JSON input")
}

package parser

import "errors"

// ErrIncomplete indicates the input parsed as a valid prefix of the
// grammar but needs more bytes to complete. Recovered locally by the
// driver's feed loop, never surfaced to the user.
var ErrIncomplete = errors.New("parser: input incomplete")

// ErrMalformed indicates a grammar violation, or an empty complex/facet.
// Fatal: call sites wrap it with a byte offset via fmt.Errorf when the
// underlying decoder provides one.
var ErrMalformed = errors.New("parser: malformed input")

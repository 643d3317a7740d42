package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/technosentience/simp-hom-calc/bigint"
	"github.com/technosentience/simp-hom-calc/homology"
	"github.com/technosentience/simp-hom-calc/matrix"
	"github.com/technosentience/simp-hom-calc/parser"
	"github.com/technosentience/simp-hom-calc/printer"
	"github.com/technosentience/simp-hom-calc/simplicial"
	"github.com/technosentience/simp-hom-calc/snf"
)

// log is the driver's structured logger, built the way this corpus's own
// zerolog package builds one (itohio-EasyRobot's pkg/logger/logger.go):
// a package-level zerolog.Logger with a ConsoleWriter to stderr.
var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Timestamp().Logger()

func main() {
	facets, err := readComplex(os.Stdin)
	if err != nil {
		fatal(err)
	}

	complex, err := simplicial.NewComplex(facets)
	if err != nil {
		fatal(err)
	}

	groups, err := homology.Groups(complex)
	if err != nil {
		fatal(err)
	}

	for _, line := range printer.Format(groups) {
		fmt.Println(line)
	}
}

// readComplex implements a "parse, read more on Incomplete" loop: it
// reads from r one line at a time, appending to a growing buffer, and
// retries parser.ParseComplex until it succeeds or reports a
// non-Incomplete error. Reaching EOF while still Incomplete is reported
// as parser.ErrMalformed, since the input can never complete.
func readComplex(r io.Reader) ([][]int, error) {
	reader := bufio.NewReader(r)
	var buf bytes.Buffer

	for {
		facets, err := parser.ParseComplex(buf.Bytes())
		if err == nil {
			return facets, nil
		}
		if !errors.Is(err, parser.ErrIncomplete) {
			return nil, err
		}

		line, readErr := reader.ReadBytes('\n')
		buf.Write(line)
		if readErr != nil {
			if readErr != io.EOF {
				return nil, fmt.Errorf("simphom: reading stdin: %w", readErr)
			}
			// A final line without a trailing newline is parsed once more on
			// the next pass; only an EOF that adds no bytes ends the loop.
			if len(line) == 0 {
				return nil, fmt.Errorf("%w: input ended while incomplete", parser.ErrMalformed)
			}
		}
	}
}

// fatal logs err with its error kind and exits non-zero.
func fatal(err error) {
	log.Error().Str("kind", errorKind(err)).Err(err).Msg("simphom: fatal error")
	os.Exit(1)
}

// errorKind classifies err into one of this driver's error kinds for
// logging: InputMalformed (the input itself was bad), Overflow (a parsed
// value didn't fit), InternalInvariant (a bug in this package's own
// postconditions), or IOFailure (everything else, e.g. a read error).
func errorKind(err error) string {
	switch {
	case errors.Is(err, parser.ErrMalformed):
		return "InputMalformed"
	case errors.Is(err, bigint.ErrOverflow):
		return "Overflow"
	case errors.Is(err, snf.ErrNotConverged), errors.Is(err, snf.ErrInvariantViolated):
		return "InternalInvariant"
	case errors.Is(err, simplicial.ErrEmptyComplex), errors.Is(err, simplicial.ErrEmptySimplex),
		errors.Is(err, simplicial.ErrNoVertices), errors.Is(err, simplicial.ErrComplexTooLarge):
		return "InputMalformed"
	case errors.Is(err, matrix.ErrNilMatrix), errors.Is(err, matrix.ErrInvalidDimensions),
		errors.Is(err, matrix.ErrDimensionMismatch), errors.Is(err, matrix.ErrNonSquare),
		errors.Is(err, matrix.ErrOutOfRange):
		return "InternalInvariant"
	default:
		return "IOFailure"
	}
}

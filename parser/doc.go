// Package parser implements an incremental "parse, read more on
// Incomplete" reader for the bracketed list-of-lists grammar:
//
//	complex := WS '[' WS simplex (WS ',' WS simplex)* WS ']'
//	simplex := '[' WS uint (WS ',' WS uint)* WS ']'
//
// Grounded on original_source/src/parser.rs's contract — nom streaming
// combinators that report Incomplete on a truncated prefix and Error on
// a grammar violation — re-implemented with encoding/json.Decoder, since
// this grammar is exactly JSON's `[[uint,...],...]` shape; what matters to
// callers is the Incomplete/Malformed interface, not the parsing
// technique underneath. No parser-combinator library appears anywhere in
// this module's dependency corpus, so there was none to reach for instead
// (see DESIGN.md).
package parser

package matchio

import "errors"

var (
	// ErrMalformedHeader is returned when an edge-list or Matrix Market
	// file's header line cannot be parsed as the expected integers.
	ErrMalformedHeader = errors.New("matchio: malformed header")
	// ErrEdgeCountMismatch is returned when an edge-list file's header
	// promises a different edge count than the lines that follow it.
	ErrEdgeCountMismatch = errors.New("matchio: edge count does not match header")
	// ErrMalformedLine is returned when a data line cannot be parsed as
	// the expected integer (and optional float) tokens.
	ErrMalformedLine = errors.New("matchio: malformed data line")
)

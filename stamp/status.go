package stamp

import "errors"

//go:generate go tool stringer --linecomment --type Status --output status_string.go

// Status is the outcome of one stamp request.
type Status uint8

// Constants enumerating the request outcomes.
const (
	Applied             Status = iota // applied
	NotFound                          // not-found
	AmbiguousNamespace                // ambiguous-namespace
	UnsupportedLiteral                // unsupported-literal
	MalformedExpression               // malformed-expression
	ParseFailed                       // parse-failed
)

// StatusOf derives the status reported for a request that ended with err.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return Applied
	case errors.Is(err, ErrParseFailed):
		return ParseFailed
	case errors.Is(err, ErrNotFound):
		return NotFound
	case errors.Is(err, ErrAmbiguousNamespace):
		return AmbiguousNamespace
	case errors.Is(err, ErrUnsupportedLiteral):
		return UnsupportedLiteral
	default:
		return MalformedExpression
	}
}

// MarshalText renders the status by name in JSON and YAML reports.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

package stamp

import (
	"errors"
	"log/slog"
	"regexp"
	"strings"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Request asks for the initializer of one variable to be replaced by the
// expansion of Expression.
type Request struct {
	Identifier string `json:"identifier" yaml:"identifier"`
	Expression string `json:"expression" yaml:"expression"`

	err error
}

// ParseRequest parses an IDENT=EXPR argument. The identifier and expression
// are trimmed of surrounding white space. A malformed argument still yields a
// Request; [Request.Validate] reports why it cannot be applied.
func ParseRequest(arg string) Request {
	ident, expr, ok := strings.Cut(arg, "=")
	if !ok {
		return Request{
			Identifier: strings.TrimSpace(arg),
			err:        errors.New("expected IDENT=EXPR, got " + arg),
		}
	}

	return Request{
		Identifier: strings.TrimSpace(ident),
		Expression: strings.TrimSpace(expr),
	}
}

// ParseRequests parses each argument with [ParseRequest].
func ParseRequests(args ...string) []Request {
	reqs := make([]Request, len(args))
	for i, a := range args {
		reqs[i] = ParseRequest(a)
	}

	return reqs
}

// IsRequest reports whether arg has the IDENT=EXPR form.
func IsRequest(arg string) bool { return strings.Contains(arg, "=") }

// IsIdentifier reports whether s is a valid C++ identifier.
func IsIdentifier(s string) bool { return identifierPattern.MatchString(s) }

// Validate reports whether r can be applied.
func (r Request) Validate() error {
	if r.err != nil {
		return ErrMalformedExpression.Wrap(r.err)
	}

	if !IsIdentifier(r.Identifier) {
		return ErrMalformedExpression.
			Wrapf("invalid identifier " + `"` + r.Identifier + `"`)
	}

	return nil
}

// String returns r in IDENT=EXPR form.
func (r Request) String() string { return r.Identifier + "=" + r.Expression }

// LogValue implements slog.LogValuer.
func (r Request) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("identifier", r.Identifier),
		slog.String("expression", r.Expression),
	)
}

package stamp

import (
	"strings"

	"github.com/ardnew/cppstamp/syntax"
)

// Compile returns the literal text that replaces m's initializer for req.
//
// String targets take the expanded expression as their contents, keeping the
// encoding prefix. Integer targets require the expansion to be an integer
// literal.
func Compile(m Match, req Request, r Resolver) (string, error) {
	switch m.Kind {
	case syntax.LiteralString:
		prefix, _, ok := SplitString(m.Text)
		if !ok {
			return "", ErrUnsupportedLiteral.Wrapf("cannot decode string literal")
		}

		text, err := r.Expand(req.Expression, nil)
		if err != nil {
			return "", err
		}

		return QuoteString(prefix, text), nil

	case syntax.LiteralInteger:
		current, err := ParseInteger(m.Text)
		if err != nil {
			return "", ErrUnsupportedLiteral.Wrap(err)
		}

		text, err := r.Expand(req.Expression, &current)
		if err != nil {
			return "", err
		}

		if strings.TrimSpace(text) == "" {
			return "", ErrMalformedExpression.Wrapf("empty integer expression")
		}

		n, err := ParseInteger(text)
		if err != nil {
			return "", ErrUnsupportedLiteral.
				Wrapf("expression is not an integer literal: " + text)
		}

		return n.String(), nil
	}

	reason := m.Reason
	if reason == "" {
		reason = "initializer is not a literal"
	}

	return "", ErrUnsupportedLiteral.Wrapf(reason)
}

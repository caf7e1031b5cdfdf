package cpp

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/ardnew/cppstamp/syntax"
)

// classify determines the literal form of an initializer. For a supported
// form it also returns the node holding exactly the literal token; for an
// unsupported one, the reason.
func (b *builder) classify(v *sitter.Node) (syntax.LiteralKind, *sitter.Node, string) {
	switch v.Type() {
	case "string_literal":
		return syntax.LiteralString, v, ""

	case "number_literal":
		if isInteger(b.text(v)) {
			return syntax.LiteralInteger, v, ""
		}

		return syntax.LiteralUnsupported, nil, "floating-point literal"

	case "unary_expression":
		op, arg := v.ChildByFieldName("operator"), v.ChildByFieldName("argument")
		if op != nil && arg != nil && arg.Type() == "number_literal" {
			if sign := b.text(op); (sign == "-" || sign == "+") && isInteger(b.text(arg)) {
				return syntax.LiteralInteger, v, ""
			}
		}

		return syntax.LiteralUnsupported, nil, "expression"

	case "initializer_list", "argument_list":
		var items []*sitter.Node

		for i := 0; i < int(v.NamedChildCount()); i++ {
			if c := v.NamedChild(i); c.Type() != "comment" {
				items = append(items, c)
			}
		}

		switch len(items) {
		case 0:
			return syntax.LiteralUnsupported, nil, "empty initializer"
		case 1:
			return b.classify(items[0])
		}

		return syntax.LiteralUnsupported, nil, "aggregate initializer"

	case "raw_string_literal":
		return syntax.LiteralUnsupported, nil, "raw string literal"
	case "concatenated_string":
		return syntax.LiteralUnsupported, nil, "concatenated string literal"
	case "char_literal":
		return syntax.LiteralUnsupported, nil, "character literal"
	case "true", "false":
		return syntax.LiteralUnsupported, nil, "boolean literal"
	case "null", "nullptr":
		return syntax.LiteralUnsupported, nil, "null pointer literal"
	case "user_defined_literal":
		return syntax.LiteralUnsupported, nil, "user-defined literal"
	case "call_expression":
		return syntax.LiteralUnsupported, nil, "function call"
	case "identifier", "qualified_identifier":
		return syntax.LiteralUnsupported, nil, "named constant or macro"
	}

	return syntax.LiteralUnsupported, nil, "expression"
}

// isInteger reports whether a number literal token is an integer rather than
// a floating-point literal.
func isInteger(tok string) bool {
	tok = strings.TrimLeft(tok, "+-")

	lower := strings.ToLower(tok)
	if strings.HasPrefix(lower, "0x") {
		return !strings.ContainsAny(lower, ".p")
	}

	return !strings.ContainsAny(lower, ".ef")
}

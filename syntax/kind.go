package syntax

//go:generate go tool stringer --linecomment --type Kind,LiteralKind --output kind_string.go

// Kind identifies the role of a [Node] in a [Tree].
type Kind uint8

const (
	KindRoot      Kind = iota // root
	KindNamespace             // namespace
	KindRecord                // record
	KindVariable              // variable
)

// LiteralKind is the closed set of initializer forms a variable can carry.
// Only [LiteralString] and [LiteralInteger] can be rewritten.
type LiteralKind uint8

const (
	LiteralUnsupported LiteralKind = iota // unsupported
	LiteralString                         // string
	LiteralInteger                        // integer
)

// Supported reports whether literals of kind k can be rewritten.
func (k LiteralKind) Supported() bool {
	return k == LiteralString || k == LiteralInteger
}

// MarshalText implements [encoding.TextMarshaler].
func (k LiteralKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

package cpp

import (
	"context"
	"fmt"
	"log/slog"

	sitter "github.com/smacker/go-tree-sitter"
	tsc "github.com/smacker/go-tree-sitter/c"
	tscpp "github.com/smacker/go-tree-sitter/cpp"

	"github.com/ardnew/cppstamp/log"
	"github.com/ardnew/cppstamp/stamp"
	"github.com/ardnew/cppstamp/syntax"
)

// Predefined errors.
var (
	ErrParse  = stamp.NewError("cannot parse source")
	ErrSyntax = stamp.NewError("syntax error")
)

// Parser builds [syntax.Tree] values from C or C++ source buffers.
// A Parser holds no tree-sitter state and is safe for concurrent use.
type Parser struct {
	logger  log.Logger
	std     string
	args    []string
	ignored []string
	macros  []string
	lang    Language
	lenient bool
}

var _ stamp.Parser = (*Parser)(nil)

// New returns a C++ parser configured with opts.
func New(opts ...Option) *Parser {
	p := Parser{logger: log.Default()}

	for _, opt := range opts {
		if opt != nil {
			p = opt(p)
		}
	}

	return &p
}

// Language returns the selected grammar.
func (p *Parser) Language() Language { return p.lang }

// Args returns the front-end arguments given with [WithArgs].
func (p *Parser) Args() []string { return p.args }

// Parse parses src and returns its declaration tree.
//
// Uses of blank object-like macros, defined in src or with [WithArgs], are
// erased before parsing so that annotated declarations stay intact. Each
// remaining syntax error is logged and, unless the parser is lenient,
// recorded as a [syntax.Fault] wrapping [ErrSyntax]. Parse fails only when
// tree-sitter produces no tree at all.
func (p *Parser) Parse(ctx context.Context, src []byte) (*syntax.Tree, error) {
	for _, arg := range p.ignored {
		p.logger.DebugContext(ctx, "ignored front-end argument",
			slog.String("arg", arg))
	}

	parser := sitter.NewParser()
	defer parser.Close()

	if p.lang == LanguageC {
		parser.SetLanguage(tsc.GetLanguage())
	} else {
		parser.SetLanguage(tscpp.GetLanguage())
	}

	macros := blankMacros(src, p.macros)
	if len(macros) > 0 {
		p.logger.TraceContext(ctx, "erasing blank macros",
			slog.Any("macros", macros))
	}

	tree, err := parser.ParseCtx(ctx, nil, mask(src, macros))
	if err != nil {
		return nil, ErrParse.Wrap(err)
	}
	defer tree.Close()

	root := tree.RootNode()

	b := builder{src: src, tree: syntax.New(len(src))}
	b.scope(root, b.tree.Root())

	for _, bad := range errorNodes(root, nil) {
		serr := syntaxError(src, bad)

		if p.lenient {
			p.logger.WarnContext(ctx, "ignoring syntax error", log.Err(serr))

			continue
		}

		p.logger.WarnContext(ctx, "damaged declarations", log.Err(serr))
		b.tree.AddFault(syntax.Fault{Span: span(bad), Err: serr})
	}

	p.logger.TraceContext(ctx, "parsed source",
		slog.Any("parser", *p),
		slog.Int("nodes", b.tree.Len()),
		slog.Int("faults", len(b.tree.Faults())),
	)

	return b.tree, nil
}

// errorNodes appends the outermost ERROR and MISSING nodes below n in
// document order.
func errorNodes(n *sitter.Node, bad []*sitter.Node) []*sitter.Node {
	switch {
	case n == nil:
		return bad
	case n.Type() == "ERROR" || n.IsMissing():
		return append(bad, n)
	case !n.HasError():
		return bad
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		bad = errorNodes(n.Child(i), bad)
	}

	return bad
}

func syntaxError(src []byte, n *sitter.Node) *stamp.Error {
	if n == nil {
		return ErrSyntax
	}

	pt := n.StartPoint()
	line, col := int(pt.Row)+1, int(pt.Column)+1

	what := "unexpected input"
	if n.IsMissing() {
		what = "missing " + n.Type()
	}

	near := string(src[n.StartByte():min(n.EndByte(), n.StartByte()+32)])

	return ErrSyntax.
		Wrapf(fmt.Sprintf("line %d, column %d: %s", line, col, what)).
		With(
			slog.Int("line", line),
			slog.Int("column", col),
			slog.String("near", near),
		)
}

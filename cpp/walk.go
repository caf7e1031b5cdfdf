package cpp

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/ardnew/cppstamp/syntax"
)

// builder copies the declarations of a tree-sitter parse tree into a
// [syntax.Tree].
type builder struct {
	tree *syntax.Tree
	src  []byte

	// unsupported, when set, is the reason every variable found is recorded
	// as unsupported.
	unsupported string
}

func (b *builder) text(n *sitter.Node) string {
	return string(b.src[n.StartByte():n.EndByte()])
}

func span(n *sitter.Node) syntax.Span {
	return syntax.Span{Start: int(n.StartByte()), End: int(n.EndByte())}
}

// scope visits every named child of n as a member of parent.
func (b *builder) scope(n *sitter.Node, parent syntax.NodeID) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		b.visit(n.NamedChild(i), parent)
	}
}

func (b *builder) visit(n *sitter.Node, parent syntax.NodeID) {
	switch n.Type() {
	case "namespace_definition":
		b.namespace(n, parent)

	case "linkage_specification":
		if body := n.ChildByFieldName("body"); body != nil {
			if body.Type() == "declaration_list" {
				b.scope(body, parent)
			} else {
				b.visit(body, parent)
			}
		}

	case "declaration_list",
		"preproc_if", "preproc_ifdef", "preproc_else",
		"preproc_elif", "preproc_elifdef":
		b.scope(n, parent)

	case "declaration":
		b.record(n.ChildByFieldName("type"), parent)
		b.declaration(n, parent)

	case "class_specifier", "struct_specifier", "union_specifier":
		b.record(n, parent)

	case "template_declaration":
		// Each instantiation has its own value; there is no single literal
		// to stamp.
		outer := b.unsupported
		b.unsupported = "template"
		b.scope(n, parent)
		b.unsupported = outer
	}
}

func (b *builder) namespace(n *sitter.Node, parent syntax.NodeID) {
	names := []string{""}

	if name := n.ChildByFieldName("name"); name != nil {
		if name.Type() == "nested_namespace_specifier" {
			names = b.nestedNames(name, nil)
		} else {
			names = []string{b.text(name)}
		}
	}

	id := parent
	for _, name := range names {
		id = b.tree.Add(id, syntax.Node{
			Kind: syntax.KindNamespace,
			Name: name,
			Decl: span(n),
		})
	}

	if body := n.ChildByFieldName("body"); body != nil {
		b.scope(body, id)
	}
}

// nestedNames collects the namespace identifiers of an "a::inline b::c"
// specifier, outermost first.
func (b *builder) nestedNames(n *sitter.Node, names []string) []string {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)

		switch c.Type() {
		case "namespace_identifier", "identifier":
			names = append(names, b.text(c))
		case "nested_namespace_specifier":
			names = b.nestedNames(c, names)
		}
	}

	return names
}

// record adds a class, struct or union with a body and its static data
// members.
func (b *builder) record(n *sitter.Node, parent syntax.NodeID) {
	if n == nil {
		return
	}

	switch n.Type() {
	case "class_specifier", "struct_specifier", "union_specifier":
	default:
		return
	}

	body := n.ChildByFieldName("body")
	if body == nil {
		return
	}

	var name string
	if nm := n.ChildByFieldName("name"); nm != nil {
		name = b.text(nm)
	}

	id := b.tree.Add(parent, syntax.Node{
		Kind: syntax.KindRecord,
		Name: name,
		Decl: span(n),
	})

	b.members(body, id)
}

func (b *builder) members(n *sitter.Node, record syntax.NodeID) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)

		switch c.Type() {
		case "field_declaration":
			b.record(c.ChildByFieldName("type"), record)

			if isStatic(b, c) {
				b.declarators(c, record)
			}

		case "declaration":
			b.record(c.ChildByFieldName("type"), record)

			if isStatic(b, c) {
				b.declaration(c, record)
			}

		case "preproc_if_in_field_declaration_list",
			"preproc_ifdef_in_field_declaration_list",
			"preproc_else_in_field_declaration_list",
			"preproc_elif_in_field_declaration_list",
			"preproc_if", "preproc_ifdef", "preproc_else", "preproc_elif":
			b.members(c, record)
		}
	}
}

func isStatic(b *builder, n *sitter.Node) bool {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() == "storage_class_specifier" && b.text(c) == "static" {
			return true
		}
	}

	return false
}

// declaration adds every initialized declarator of a declaration.
func (b *builder) declaration(n *sitter.Node, parent syntax.NodeID) {
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.FieldNameForChild(i) != "declarator" {
			continue
		}

		d := n.Child(i)
		if d == nil || d.Type() != "init_declarator" {
			continue
		}

		name, ok := b.declaratorName(d.ChildByFieldName("declarator"))
		if !ok {
			continue
		}

		if value := d.ChildByFieldName("value"); value != nil {
			b.variable(parent, name, n, value)
		}
	}
}

// declarators adds every member declarator of a field declaration that is
// followed by a default value.
func (b *builder) declarators(n *sitter.Node, parent syntax.NodeID) {
	var (
		name string
		ok   bool
	)

	for i := 0; i < int(n.ChildCount()); i++ {
		switch n.FieldNameForChild(i) {
		case "declarator":
			name, ok = b.declaratorName(n.Child(i))
		case "default_value":
			if ok {
				b.variable(parent, name, n, n.Child(i))
			}

			ok = false
		}
	}
}

// declaratorName returns the declared identifier, looking through pointer,
// reference, array and parenthesized declarators. Qualified names belong to
// out-of-line definitions and function declarators to functions; neither is
// accepted.
func (b *builder) declaratorName(d *sitter.Node) (string, bool) {
	for d != nil {
		switch d.Type() {
		case "identifier", "field_identifier":
			return b.text(d), true

		case "pointer_declarator", "array_declarator", "attributed_declarator":
			d = d.ChildByFieldName("declarator")

		case "reference_declarator", "parenthesized_declarator":
			d = firstDeclarator(d)

		default:
			return "", false
		}
	}

	return "", false
}

func firstDeclarator(n *sitter.Node) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)

		switch c.Type() {
		case "type_qualifier", "attribute_declaration", "comment", "ms_call_modifier":
			continue
		}

		return c
	}

	return nil
}

func (b *builder) variable(
	parent syntax.NodeID,
	name string,
	decl, value *sitter.Node,
) {
	kind, lit, reason := b.classify(value)
	if b.unsupported != "" {
		kind, reason = syntax.LiteralUnsupported, b.unsupported
	}

	if !kind.Supported() {
		lit = value
	}

	b.tree.Add(parent, syntax.Node{
		Kind:    syntax.KindVariable,
		Name:    name,
		Decl:    span(decl),
		Literal: kind,
		Value:   span(lit),
		Text:    b.text(lit),
		Reason:  reason,
	})
}

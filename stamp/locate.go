package stamp

import (
	"iter"
	"log/slog"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/cppstamp/syntax"
)

// maxSuggestions bounds the "did you mean" list of a NotFound result.
const maxSuggestions = 3

// Match is one declaration selected by [Locate].
type Match struct {
	Identifier string             `json:"identifier"          yaml:"identifier"`
	Namespace  []string           `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Scope      []string           `json:"scope,omitempty"     yaml:"scope,omitempty"`
	Text       string             `json:"text"                yaml:"text"`
	Reason     string             `json:"reason,omitempty"    yaml:"reason,omitempty"`
	Span       syntax.Span        `json:"span"                yaml:"span"`
	Decl       syntax.Span        `json:"-"                   yaml:"-"`
	Kind       syntax.LiteralKind `json:"kind"                yaml:"kind"`
}

// Qualified returns the declaration's name qualified by its enclosing
// namespaces and records. Anonymous scopes are spelled "(anonymous)".
func (m Match) Qualified() string {
	parts := make([]string, 0, len(m.Scope)+1)

	for _, s := range m.Scope {
		if s == "" {
			s = "(anonymous)"
		}

		parts = append(parts, s)
	}

	return strings.Join(append(parts, m.Identifier), "::")
}

// LogValue implements slog.LogValuer.
func (m Match) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("name", m.Qualified()),
		slog.String("kind", m.Kind.String()),
		slog.String("span", m.Span.String()),
	}

	if m.Reason != "" {
		attrs = append(attrs, slog.String("reason", m.Reason))
	}

	return slog.GroupValue(attrs...)
}

func matchOf(tree *syntax.Tree, id syntax.NodeID) Match {
	n := tree.Node(id)

	return Match{
		Identifier: n.Name,
		Namespace:  tree.Namespace(id),
		Scope:      tree.Scope(id),
		Kind:       n.Literal,
		Text:       n.Text,
		Span:       n.Value,
		Decl:       n.Decl,
		Reason:     n.Reason,
	}
}

// Matches is the result of one batched [Locate] query.
type Matches struct {
	found map[string][]Match
	names []string // every variable name in a matching scope
}

// Locate finds, for each identifier, every initialized variable declaration
// with that name inside a scope accepted by the namespace filter.
//
// An empty filter accepts every scope. Otherwise a declaration is accepted
// when the filter names one of its enclosing namespaces. A filter written as
// a path ("a::b") must appear as consecutive namespaces.
func Locate(tree *syntax.Tree, namespace string, idents ...string) Matches {
	want := make(map[string]bool, len(idents))
	for _, id := range idents {
		want[id] = true
	}

	m := Matches{found: make(map[string][]Match, len(idents))}
	seen := make(map[string]bool)

	for d := range Declarations(tree, namespace) {
		if !seen[d.Identifier] {
			seen[d.Identifier] = true
			m.names = append(m.names, d.Identifier)
		}

		if want[d.Identifier] {
			m.found[d.Identifier] = append(m.found[d.Identifier], d)
		}
	}

	return m
}

// Declarations returns every initialized variable declaration inside a scope
// accepted by the namespace filter, in source order.
func Declarations(tree *syntax.Tree, namespace string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for id := range tree.Variables() {
			if !InNamespace(tree.Namespace(id), namespace) {
				continue
			}

			if !yield(matchOf(tree, id)) {
				return
			}
		}
	}
}

// InNamespace reports whether a namespace path is accepted by filter.
func InNamespace(path []string, filter string) bool {
	if filter == "" {
		return true
	}

	want := strings.Split(filter, "::")

	for i := 0; i+len(want) <= len(path); i++ {
		if slices.Equal(path[i:i+len(want)], want) {
			return true
		}
	}

	return false
}

// Lookup returns every match found for ident.
func (m Matches) Lookup(ident string) []Match { return m.found[ident] }

// Resolve returns the single declaration matching ident. It fails with
// [ErrNotFound] when there is none and with [ErrAmbiguousNamespace] when
// there is more than one.
func (m Matches) Resolve(ident string) (Match, error) {
	found := m.found[ident]

	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return Match{}, ErrNotFound.With(slog.String("identifier", ident))
	}

	names := make([]string, len(found))
	for i, f := range found {
		names[i] = f.Qualified()
	}

	return Match{}, ErrAmbiguousNamespace.
		Wrapf("candidates: " + strings.Join(names, ", ")).
		With(slog.String("identifier", ident))
}

// Suggest returns up to three declared names that resemble ident, best first.
func (m Matches) Suggest(ident string) []string {
	var out []string

	add := func(s string) {
		if s != ident && !slices.Contains(out, s) && len(out) < maxSuggestions {
			out = append(out, s)
		}
	}

	for _, f := range fuzzy.Find(ident, m.names) {
		add(f.Str)
	}

	// Names that are abbreviations of ident.
	for _, name := range m.names {
		if len(fuzzy.Find(name, []string{ident})) > 0 {
			add(name)
		}
	}

	return out
}

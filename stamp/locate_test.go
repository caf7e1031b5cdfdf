package stamp

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/cppstamp/syntax"
)

// buildTree returns the tree of:
//
//	const int version = 1;
//	namespace build_info {
//	  const char* date = "x";
//	  namespace detail { const int version = 2; }
//	  struct Meta { static const int number = 3; };
//	}
//	namespace other { const int version = 4; const double ratio = 0.5; }
func buildTree() *syntax.Tree {
	tree := syntax.New(1000)
	root := tree.Root()

	variable := func(parent syntax.NodeID, name, text string, kind syntax.LiteralKind, at int) {
		n := syntax.Node{
			Kind:    syntax.KindVariable,
			Name:    name,
			Literal: kind,
			Value:   syntax.Span{Start: at, End: at + len(text)},
			Text:    text,
		}
		if !kind.Supported() {
			n.Reason = "floating-point literal"
		}

		tree.Add(parent, n)
	}

	variable(root, "version", "1", syntax.LiteralInteger, 10)

	info := tree.Add(root, syntax.Node{Kind: syntax.KindNamespace, Name: "build_info"})
	variable(info, "date", `"x"`, syntax.LiteralString, 100)

	detail := tree.Add(info, syntax.Node{Kind: syntax.KindNamespace, Name: "detail"})
	variable(detail, "version", "2", syntax.LiteralInteger, 200)

	meta := tree.Add(info, syntax.Node{Kind: syntax.KindRecord, Name: "Meta"})
	variable(meta, "number", "3", syntax.LiteralInteger, 300)

	other := tree.Add(root, syntax.Node{Kind: syntax.KindNamespace, Name: "other"})
	variable(other, "version", "4", syntax.LiteralInteger, 400)
	variable(other, "ratio", "0.5", syntax.LiteralUnsupported, 410)

	return tree
}

func TestLocate_Resolve(t *testing.T) {
	tree := buildTree()

	tests := []struct {
		name      string
		namespace string
		ident     string
		want      string // qualified name
		wantErr   error
	}{
		{name: "unique global search", ident: "date", want: "build_info::date"},
		{name: "member", ident: "number", want: "build_info::Meta::number"},
		{name: "ambiguous without filter", ident: "version", wantErr: ErrAmbiguousNamespace},
		{name: "filter selects", namespace: "other", ident: "version", want: "other::version"},
		{name: "filter leaf at depth", namespace: "detail", ident: "version", want: "build_info::detail::version"},
		{name: "filter path", namespace: "build_info::detail", ident: "version", want: "build_info::detail::version"},
		{name: "filter path not contiguous", namespace: "build_info::other", ident: "version", wantErr: ErrNotFound},
		{name: "filter includes nested", namespace: "build_info", ident: "version", want: "build_info::detail::version"},
		{name: "filter excludes", namespace: "other", ident: "date", wantErr: ErrNotFound},
		{name: "missing", ident: "nope", wantErr: ErrNotFound},
		{name: "unsupported still located", ident: "ratio", want: "other::ratio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Locate(tree, tt.namespace, tt.ident).Resolve(tt.ident)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}

			if got := m.Qualified(); got != tt.want {
				t.Errorf("Qualified() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocate_Match(t *testing.T) {
	m, err := Locate(buildTree(), "", "number").Resolve("number")
	if err != nil {
		t.Fatal(err)
	}

	want := Match{
		Identifier: "number",
		Namespace:  []string{"build_info"},
		Scope:      []string{"build_info", "Meta"},
		Kind:       syntax.LiteralInteger,
		Text:       "3",
		Span:       syntax.Span{Start: 300, End: 301},
	}

	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("Match mismatch (-want +got):\n%s", diff)
	}
}

func TestLocate_Batched(t *testing.T) {
	found := Locate(buildTree(), "", "version", "date", "absent")

	if n := len(found.Lookup("version")); n != 3 {
		t.Errorf("Lookup(version) = %d matches, want 3", n)
	}

	if n := len(found.Lookup("date")); n != 1 {
		t.Errorf("Lookup(date) = %d matches, want 1", n)
	}

	if n := len(found.Lookup("absent")); n != 0 {
		t.Errorf("Lookup(absent) = %d matches, want 0", n)
	}
}

func TestMatches_Suggest(t *testing.T) {
	found := Locate(buildTree(), "", "num")

	got := found.Suggest("num")
	if len(got) == 0 || got[0] != "number" {
		t.Errorf("Suggest(num) = %v, want number first", got)
	}

	if got := found.Suggest("dates"); !cmp.Equal(got, []string{"date"}) {
		t.Errorf("Suggest(dates) = %v, want [date]", got)
	}

	if got := found.Suggest("zzz"); len(got) != 0 {
		t.Errorf("Suggest(zzz) = %v, want none", got)
	}
}

func TestDeclarations(t *testing.T) {
	var got []string
	for m := range Declarations(buildTree(), "build_info") {
		got = append(got, m.Qualified())
	}

	want := []string{
		"build_info::date",
		"build_info::detail::version",
		"build_info::Meta::number",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Declarations mismatch (-want +got):\n%s", diff)
	}
}

func TestInNamespace(t *testing.T) {
	tests := []struct {
		path   []string
		filter string
		want   bool
	}{
		{filter: "", want: true},
		{path: []string{"a"}, filter: "", want: true},
		{path: nil, filter: "a", want: false},
		{path: []string{"a", "b"}, filter: "b", want: true},
		{path: []string{"a", "b"}, filter: "a", want: true},
		{path: []string{"a", "b", "c"}, filter: "b::c", want: true},
		{path: []string{"a", "b", "c"}, filter: "a::c", want: false},
		{path: []string{"ab"}, filter: "a", want: false},
	}

	for _, tt := range tests {
		if got := InNamespace(tt.path, tt.filter); got != tt.want {
			t.Errorf("InNamespace(%v, %q) = %v, want %v", tt.path, tt.filter, got, tt.want)
		}
	}
}

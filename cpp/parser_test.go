package cpp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/cppstamp/log"
	"github.com/ardnew/cppstamp/syntax"
)

// variable is the observable part of a variable node.
type variable struct {
	Scope  string
	Name   string
	Text   string
	Reason string
	Kind   syntax.LiteralKind
}

func parse(t *testing.T, src string, opts ...Option) *syntax.Tree {
	t.Helper()

	opts = append([]Option{WithLogger(log.Make(nil))}, opts...)

	tree, err := New(opts...).Parse(context.Background(), []byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	return tree
}

func variables(tree *syntax.Tree) []variable {
	var out []variable

	for id := range tree.Variables() {
		n := tree.Node(id)
		out = append(out, variable{
			Scope:  strings.Join(tree.Scope(id), "::"),
			Name:   n.Name,
			Text:   n.Text,
			Reason: n.Reason,
			Kind:   n.Literal,
		})
	}

	return out
}

func TestParse_Declarations(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []variable
	}{
		{
			name: "global string and integer",
			src: `const char* build_date = "01 Jan 2000";
static const int build_number = 42;
`,
			want: []variable{
				{Name: "build_date", Text: `"01 Jan 2000"`, Kind: syntax.LiteralString},
				{Name: "build_number", Text: "42", Kind: syntax.LiteralInteger},
			},
		},
		{
			name: "namespaces",
			src: `namespace build_info {
  const char* version = "1.0";
  namespace detail { const int n = 1; }
}
namespace { const int hidden = 2; }
namespace a::b { constexpr unsigned long rev = 0x10UL; }
`,
			want: []variable{
				{Scope: "build_info", Name: "version", Text: `"1.0"`, Kind: syntax.LiteralString},
				{Scope: "build_info::detail", Name: "n", Text: "1", Kind: syntax.LiteralInteger},
				{Name: "hidden", Text: "2", Kind: syntax.LiteralInteger},
				{Scope: "a::b", Name: "rev", Text: "0x10UL", Kind: syntax.LiteralInteger},
			},
		},
		{
			name: "encoding prefix and negative",
			src: `const wchar_t* w = L"wide";
const char8_t* u = u8"utf";
const long offset = -5;
`,
			want: []variable{
				{Name: "w", Text: `L"wide"`, Kind: syntax.LiteralString},
				{Name: "u", Text: `u8"utf"`, Kind: syntax.LiteralString},
				{Name: "offset", Text: "-5", Kind: syntax.LiteralInteger},
			},
		},
		{
			name: "braced and parenthesized",
			src: `const int a{1};
const int b = {2};
const int c(3);
`,
			want: []variable{
				{Name: "a", Text: "1", Kind: syntax.LiteralInteger},
				{Name: "b", Text: "2", Kind: syntax.LiteralInteger},
				{Name: "c", Text: "3", Kind: syntax.LiteralInteger},
			},
		},
		{
			name: "linkage and preprocessor",
			src: `extern "C" {
const int in_linkage = 1;
}
#ifdef DEBUG
const int in_ifdef = 2;
#else
const int in_else = 3;
#endif
`,
			want: []variable{
				{Name: "in_linkage", Text: "1", Kind: syntax.LiteralInteger},
				{Name: "in_ifdef", Text: "2", Kind: syntax.LiteralInteger},
				{Name: "in_else", Text: "3", Kind: syntax.LiteralInteger},
			},
		},
		{
			name: "static members",
			src: `struct Version {
  static constexpr int major = 1;
  int not_static = 2;
};
`,
			want: []variable{
				{Scope: "Version", Name: "major", Text: "1", Kind: syntax.LiteralInteger},
			},
		},
		{
			name: "function bodies skipped",
			src: `int f() {
  const int local = 1;
  return local;
}
const int global = 2;
`,
			want: []variable{
				{Name: "global", Text: "2", Kind: syntax.LiteralInteger},
			},
		},
		{
			name: "declaration without initializer",
			src:  "extern const int declared;\nconst int defined = 1;\n",
			want: []variable{
				{Name: "defined", Text: "1", Kind: syntax.LiteralInteger},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := variables(parse(t, tt.src))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("variables mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Unsupported(t *testing.T) {
	src := `const double pi = 3.14;
const bool flag = true;
const char c = 'x';
const char* raw = R"(raw)";
const char* cat = "a" "b";
const int sum = 1 + 2;
const int call = f(1);
const int macro = VALUE;
template <typename T> constexpr int tv = 1;
template <class T> struct Box { static constexpr int size = 4; };
`
	want := map[string]string{
		"tv":    "template",
		"size":  "template",
		"pi":    "floating-point literal",
		"flag":  "boolean literal",
		"c":     "character literal",
		"raw":   "raw string literal",
		"cat":   "concatenated string literal",
		"sum":   "expression",
		"call":  "function call",
		"macro": "named constant or macro",
	}

	for _, v := range variables(parse(t, src)) {
		if v.Kind != syntax.LiteralUnsupported {
			t.Errorf("%s: Kind = %v, want unsupported", v.Name, v.Kind)
		}

		if v.Reason != want[v.Name] {
			t.Errorf("%s: Reason = %q, want %q", v.Name, v.Reason, want[v.Name])
		}

		delete(want, v.Name)
	}

	for name := range want {
		t.Errorf("%s: not found", name)
	}
}

func TestParse_Spans(t *testing.T) {
	src := `namespace ns { const char* s = "value"; const int n = -12; }`
	tree := parse(t, src)

	for id := range tree.Variables() {
		n := tree.Node(id)
		if got := string(n.Value.Slice([]byte(src))); got != n.Text {
			t.Errorf("%s: source at %v = %q, want %q", n.Name, n.Value, got, n.Text)
		}
	}
}

func TestParse_SyntaxFaults(t *testing.T) {
	src := "const int ok = 1;\nconst int broken = ;\nconst int after = 3;\n"

	tree := parse(t, src)

	faults := tree.Faults()
	if len(faults) == 0 {
		t.Fatal("Faults() is empty, want the error on line 2")
	}

	if !errors.Is(faults[0].Err, ErrSyntax) {
		t.Errorf("Faults()[0].Err = %v, want ErrSyntax", faults[0].Err)
	}

	if !strings.Contains(faults[0].Err.Error(), "line 2") {
		t.Errorf("Faults()[0].Err = %q, want it to name line 2", faults[0].Err)
	}

	var names []string
	for id := range tree.Variables() {
		n := tree.Node(id)
		names = append(names, n.Name)

		if n.Name == "ok" {
			if f, bad := tree.Damaged(n.Decl); bad {
				t.Errorf("ok is damaged by %v", f.Err)
			}
		}
	}

	if len(names) == 0 || names[0] != "ok" {
		t.Errorf("variables = %v, want ok first", names)
	}

	if got := parse(t, src, WithLenient(true)).Faults(); len(got) != 0 {
		t.Errorf("lenient Faults() = %v, want none", got)
	}
}

func TestParse_BlankMacros(t *testing.T) {
	tests := []struct {
		name string
		src  string
		args []string
	}{
		{
			name: "defined in source",
			src:  "#define API\nAPI const int a = 1;\n",
		},
		{
			name: "attribute body",
			src: "#define API __attribute__((visibility(\"default\")))\n" +
				"API const int a = 1;\n",
		},
		{
			name: "defined on command line",
			src:  "API const int a = 1;\n",
			args: []string{"-DAPI="},
		},
		{
			name: "separate define argument",
			src:  "API const int a = 1;\n",
			args: []string{"-D", "API=[[maybe_unused]]"},
		},
	}

	want := []variable{{Name: "a", Text: "1", Kind: syntax.LiteralInteger}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parse(t, tt.src, WithArgs(tt.args...))

			if diff := cmp.Diff(want, variables(tree)); diff != "" {
				t.Errorf("variables mismatch (-want +got):\n%s", diff)
			}

			if f := tree.Faults(); len(f) != 0 {
				t.Errorf("Faults() = %v, want none", f)
			}
		})
	}
}

func TestParse_LanguageC(t *testing.T) {
	src := "static const char *build = \"x\";\nconst int class = 3;\n"

	got := variables(parse(t, src, WithArgs("-x", "c")))
	want := []variable{
		{Name: "build", Text: `"x"`, Kind: syntax.LiteralString},
		{Name: "class", Text: "3", Kind: syntax.LiteralInteger},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("variables mismatch (-want +got):\n%s", diff)
	}
}

func TestWithArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Language
		std    string
		macros []string
	}{
		{name: "default", want: LanguageCPP},
		{name: "separate", args: []string{"-x", "c"}, want: LanguageC},
		{name: "joined", args: []string{"-xc"}, want: LanguageC},
		{name: "joined c++", args: []string{"-xc++"}, want: LanguageCPP},
		{name: "c standard", args: []string{"-std=c11"}, want: LanguageC, std: "c11"},
		{name: "gnu++ standard", args: []string{"-std=gnu++20"}, want: LanguageCPP, std: "gnu++20"},
		{
			name: "explicit language wins",
			args: []string{"-x", "c++", "-std=c99"},
			want: LanguageCPP,
			std:  "c99",
		},
		{name: "ignored", args: []string{"-Wall", "-DFOO=1", "-DBAR"}, want: LanguageCPP},
		{
			name:   "blank macros",
			args:   []string{"-DAPI=", "-D", "DEPRECATED=[[deprecated]]"},
			want:   LanguageCPP,
			macros: []string{"API", "DEPRECATED"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(WithArgs(tt.args...))
			if p.Language() != tt.want {
				t.Errorf("Language() = %v, want %v", p.Language(), tt.want)
			}

			if p.std != tt.std {
				t.Errorf("std = %q, want %q", p.std, tt.std)
			}

			if diff := cmp.Diff(tt.macros, p.macros); diff != "" {
				t.Errorf("macros mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tt.args, p.Args()); len(tt.args) > 0 && diff != "" {
				t.Errorf("Args() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIsInteger(t *testing.T) {
	tests := map[string]bool{
		"42":      true,
		"-7":      true,
		"0x1F":    true,
		"0xE":     true,
		"0b1010":  true,
		"1'000":   true,
		"10ull":   true,
		"1.5":     false,
		"1e3":     false,
		"0x1p3":   false,
		"2.0f":    false,
		"0x1.8p1": false,
	}

	for tok, want := range tests {
		if got := isInteger(tok); got != want {
			t.Errorf("isInteger(%q) = %v, want %v", tok, got, want)
		}
	}
}

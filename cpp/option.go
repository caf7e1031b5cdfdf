package cpp

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/ardnew/cppstamp/log"
)

// Language selects the grammar used to parse a source buffer.
type Language uint8

// Constants enumerating the supported grammars.
const (
	LanguageCPP Language = iota
	LanguageC
)

// String returns the name used on a compiler command line.
func (l Language) String() string {
	if l == LanguageC {
		return "c"
	}

	return "c++"
}

// Option configures a [Parser].
type Option func(Parser) Parser

// WithLanguage selects the grammar explicitly.
func WithLanguage(lang Language) Option {
	return func(p Parser) Parser {
		p.lang = lang

		return p
	}
}

// WithLenient ignores syntax errors entirely. By default each damaged region
// is recorded as a [syntax.Fault] so requests touching it can be refused;
// a lenient parser records nothing and declarations lost in the damage are
// simply not found.
func WithLenient(lenient bool) Option {
	return func(p Parser) Parser {
		p.lenient = lenient

		return p
	}
}

// WithLogger sets the logger receiving diagnostics.
func WithLogger(l log.Logger) Option {
	return func(p Parser) Parser {
		p.logger = l

		return p
	}
}

// WithArgs interprets compiler front-end arguments. The language ("-x c",
// "-xc++") and standard ("-std=c11") are honored; a C standard selects the C
// grammar unless a language was given. A macro defined empty or as an
// attribute ("-DAPI=", "-D API=[[nodiscard]]") is erased from declarations
// before parsing. Other arguments are recorded and ignored.
func WithArgs(args ...string) Option {
	return func(p Parser) Parser {
		explicit := false

		for i := 0; i < len(args); i++ {
			arg := args[i]

			switch {
			case arg == "-x" && i+1 < len(args):
				i++
				p.lang, explicit = languageOf(args[i]), true
			case strings.HasPrefix(arg, "-x") && len(arg) > 2:
				p.lang, explicit = languageOf(arg[2:]), true
			case arg == "-D" && i+1 < len(args):
				i++
				p = p.define(args[i])
			case strings.HasPrefix(arg, "-D") && len(arg) > 2:
				p = p.define(arg[2:])
			case strings.HasPrefix(arg, "-std="):
				p.std = strings.TrimPrefix(arg, "-std=")
				if !explicit {
					p.lang = standardLanguage(p.std)
				}
			default:
				p.ignored = append(p.ignored, arg)
			}
		}

		p.args = append(p.args, args...)

		return p
	}
}

// define records a command-line macro definition "NAME" or "NAME=body".
func (p Parser) define(def string) Parser {
	name, body, ok := strings.Cut(def, "=")
	if !ok {
		body = "1"
	}

	if name == "" || !isBlank(body) {
		p.ignored = append(p.ignored, "-D"+def)

		return p
	}

	p.macros = append(slices.Clip(p.macros), name)

	return p
}

func languageOf(name string) Language {
	switch strings.TrimSuffix(name, "-header") {
	case "c":
		return LanguageC
	default:
		return LanguageCPP
	}
}

func standardLanguage(std string) Language {
	if strings.HasPrefix(std, "c++") || strings.HasPrefix(std, "gnu++") {
		return LanguageCPP
	}

	if strings.HasPrefix(std, "c") || strings.HasPrefix(std, "gnu") ||
		strings.HasPrefix(std, "iso9899") {
		return LanguageC
	}

	return LanguageCPP
}

// LogValue implements slog.LogValuer.
func (p Parser) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("language", p.lang.String()),
		slog.Bool("lenient", p.lenient),
	}

	if p.std != "" {
		attrs = append(attrs, slog.String("std", p.std))
	}

	return slog.GroupValue(attrs...)
}

package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/ardnew/cppstamp/cpp"
	"github.com/ardnew/cppstamp/log"
	"github.com/ardnew/cppstamp/stamp"
)

// Globals holds the flags shared by every command. They are also the flags
// persisted by [Init].
type Globals struct {
	Timezone   string `default:"Local"          help:"IANA time zone used by {date} and {time}."       placeholder:"ZONE"`
	DateFormat string `default:"%d %b %Y"       help:"strftime layout of {date}."                      placeholder:"LAYOUT" aliases:"date_format"`
	TimeFormat string `default:"%I:%M:%S %p %Z" help:"strftime layout of {time}."                      placeholder:"LAYOUT" aliases:"time_format"`
	Report     string `default:"none"           help:"Print a report of the results (${enum})."         enum:"none,text,json,yaml"`
	Lenient    bool   `                         help:"Ignore syntax errors instead of refusing requests in damaged code."`
}

// Location loads the configured time zone.
func (g *Globals) Location() (*time.Location, error) {
	if g.Timezone == "" || g.Timezone == "Local" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(g.Timezone)
	if err != nil {
		return nil, ErrTimezone.Wrap(err).With(slog.String("timezone", g.Timezone))
	}

	return loc, nil
}

// Resolver returns the placeholder resolver configured by g.
func (g *Globals) Resolver() (stamp.Resolver, error) {
	loc, err := g.Location()
	if err != nil {
		return stamp.Resolver{}, err
	}

	return stamp.Resolver{
		Location:   loc,
		DateFormat: g.DateFormat,
		TimeFormat: g.TimeFormat,
	}, nil
}

// Parser returns the source parser configured by g and the front-end
// arguments stored in ctx.
func (g *Globals) Parser(ctx context.Context) *cpp.Parser {
	return cpp.New(
		cpp.WithArgs(frontEndArgsFrom(ctx)...),
		cpp.WithLenient(g.Lenient),
		cpp.WithLogger(log.Default()),
	)
}

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	frontEndArgsKey struct{}
	outputKey       struct{}
)

// FrontEndFlag separates the cppstamp arguments from the compiler front-end
// arguments, which must come last on the command line.
const FrontEndFlag = "--clang-args"

// SplitFrontEndArgs splits args at [FrontEndFlag].
func SplitFrontEndArgs(args []string) (own, frontEnd []string) {
	for i, arg := range args {
		if arg == FrontEndFlag {
			return args[:i], args[i+1:]
		}
	}

	return args, nil
}

// WithFrontEndArgs returns a new context.Context containing the compiler
// front-end arguments.
func WithFrontEndArgs(ctx context.Context, args []string) context.Context {
	return context.WithValue(ctx, frontEndArgsKey{}, args)
}

func frontEndArgsFrom(ctx context.Context) []string {
	args, _ := ctx.Value(frontEndArgsKey{}).([]string)

	return args
}

// WithOutput returns a new context.Context whose commands print reports to w
// instead of standard output.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

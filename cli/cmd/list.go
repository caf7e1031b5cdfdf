package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ardnew/cppstamp/stamp"
)

// List prints the declarations that can be targeted by stamp.
type List struct {
	File      string `arg:"" help:"C or C++ source file to inspect."              type:"existingfile"`
	Namespace string `arg:"" help:"Only list declarations inside this namespace." optional:""`
	Format    string `       help:"Output format (${enum})."                      default:"text" enum:"text,json,yaml" short:"f"`
	All       bool   `       help:"Include declarations that cannot be stamped."  short:"a"`
}

// Run executes the list command.
func (l *List) Run(ctx context.Context, g *Globals) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	src, err := os.ReadFile(l.File)
	if err != nil {
		return ErrReadSource.Wrap(err).With(slog.String("file", l.File))
	}

	tree, err := g.Parser(ctx).Parse(ctx, src)
	if err != nil {
		return stamp.ErrParseFailed.Wrap(err).With(slog.String("file", l.File))
	}

	var matches []stamp.Match

	for m := range stamp.Declarations(tree, l.Namespace) {
		if l.All || m.Kind.Supported() {
			matches = append(matches, m)
		}
	}

	text := func(w io.Writer) error {
		for _, m := range matches {
			line := nameStyle.Render(m.Qualified()) + " " +
				hintStyle.Render(m.Kind.String()) + " " + m.Text

			if m.Reason != "" {
				line = failedStyle.Render(m.Qualified()) + " " +
					hintStyle.Render(m.Reason) + " " + oneLine(m.Text)
			}

			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}

		return nil
	}

	if matches == nil {
		matches = []stamp.Match{}
	}

	return writeReport(ctx, outputFrom(ctx), l.Format, matches, text)
}

// oneLine collapses the white space of an initializer spanning lines.
func oneLine(s string) string { return strings.Join(strings.Fields(s), " ") }

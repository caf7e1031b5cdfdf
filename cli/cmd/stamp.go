package cmd

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ardnew/cppstamp/log"
	"github.com/ardnew/cppstamp/stamp"
)

// Stamp rewrites constant initializers in a source file.
type Stamp struct {
	File      string   `arg:"" help:"C or C++ source file to modify."                                 type:"existingfile"`
	Args      []string `arg:"" help:"Optional NAMESPACE followed by IDENT=EXPR assignments. EXPR may contain ${placeholders}." name:"assignment"`
	Namespace string   `       help:"Only match declarations inside this namespace."                  short:"n"`
	DryRun    bool     `       help:"Print the changes as a diff instead of writing the file."`
}

// Run executes the stamp command.
func (s *Stamp) Run(ctx context.Context, g *Globals) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	namespace, args, err := s.split()
	if err != nil {
		return err
	}

	resolver, err := g.Resolver()
	if err != nil {
		return err
	}

	logger := log.Default().With(slog.String("file", s.File))

	report, err := stamp.StampFile(ctx, s.File, g.Parser(ctx),
		stamp.ParseRequests(args...),
		stamp.WithNamespace(namespace),
		stamp.WithResolver(resolver),
		stamp.WithDryRun(s.DryRun),
		stamp.WithLogger(logger),
	)

	out := outputFrom(ctx)

	if report.Results != nil {
		sum := summarize(s.File, report, s.DryRun)

		if werr := writeReport(ctx, out, g.Report, sum, sum.text); werr != nil {
			return werr
		}
	}

	if s.DryRun && report.Changed() {
		if derr := writeDiff(out, s.File, report.Source, report.Output); derr != nil {
			return ErrWriteReport.Wrap(derr)
		}
	}

	if err != nil {
		return err
	}

	if !report.OK() {
		return ErrIncomplete.With(
			slog.String("file", s.File),
			slog.Int("applied", len(report.Results)-failed(report)),
			slog.Int("failed", failed(report)),
		)
	}

	return nil
}

// PlaceholderHelp describes the placeholders of [stamp.Placeholders] for the
// assignment help.
func PlaceholderHelp() string {
	parts := make([]string, len(stamp.Placeholders))
	for i, p := range stamp.Placeholders {
		parts[i] = p.Name + " (" + p.Help + ")"
	}

	return strings.Join(parts, ", ")
}

// split separates the optional leading namespace from the assignments.
func (s *Stamp) split() (namespace string, args []string, err error) {
	namespace, args = s.Namespace, s.Args

	if len(args) > 0 && !stamp.IsRequest(args[0]) {
		if namespace != "" && namespace != args[0] {
			return "", nil, ErrNamespace.With(
				slog.String("flag", namespace),
				slog.String("argument", args[0]),
			)
		}

		namespace, args = args[0], args[1:]
	}

	if len(args) == 0 {
		return "", nil, ErrNoRequests
	}

	return namespace, args, nil
}

func failed(report stamp.Report) int {
	n := 0

	for _, r := range report.Results {
		if r.Status != stamp.Applied {
			n++
		}
	}

	return n
}

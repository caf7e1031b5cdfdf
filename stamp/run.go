package stamp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ardnew/cppstamp/log"
	"github.com/ardnew/cppstamp/syntax"
)

// Parser builds the declaration tree of a source buffer.
type Parser interface {
	Parse(ctx context.Context, src []byte) (*syntax.Tree, error)
}

// ParserFunc adapts a function to the [Parser] interface.
type ParserFunc func(ctx context.Context, src []byte) (*syntax.Tree, error)

// Parse calls f(ctx, src).
func (f ParserFunc) Parse(ctx context.Context, src []byte) (*syntax.Tree, error) {
	return f(ctx, src)
}

// Result is the outcome of one request.
type Result struct {
	Err         error    `json:"-"                     yaml:"-"`
	Match       *Match   `json:"match,omitempty"       yaml:"match,omitempty"`
	Old         string   `json:"old,omitempty"         yaml:"old,omitempty"`
	New         string   `json:"new,omitempty"         yaml:"new,omitempty"`
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
	Request     Request  `json:"request"               yaml:"request"`
	Status      Status   `json:"status"                yaml:"status"`
}

// Changed reports whether the request produced an edit.
func (r Result) Changed() bool { return r.Status == Applied && r.Old != r.New }

// Error returns the failure message, or "" when the request was applied.
func (r Result) Error() string {
	if r.Err == nil {
		return ""
	}

	return r.Err.Error()
}

// LogValue implements slog.LogValuer.
func (r Result) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("identifier", r.Request.Identifier),
		slog.String("status", r.Status.String()),
	}

	if r.Match != nil {
		attrs = append(attrs, slog.String("name", r.Match.Qualified()))
	}

	if r.Status == Applied {
		attrs = append(attrs, slog.String("old", r.Old), slog.String("new", r.New))
	}

	return slog.GroupValue(attrs...)
}

// Report collects the results of a run.
type Report struct {
	Results []Result `json:"results" yaml:"results"`
	Source  []byte   `json:"-"       yaml:"-"`
	Output  []byte   `json:"-"       yaml:"-"`
}

// OK reports whether every request was applied.
func (r Report) OK() bool {
	for _, res := range r.Results {
		if res.Status != Applied {
			return false
		}
	}

	return true
}

// Changed reports whether the output differs from the source.
func (r Report) Changed() bool { return !bytes.Equal(r.Source, r.Output) }

// Applied returns the number of requests that produced an edit.
func (r Report) Applied() int {
	n := 0

	for _, res := range r.Results {
		if res.Changed() {
			n++
		}
	}

	return n
}

// Run applies every request to src and returns the results together with
// the new buffer. Requests are independent: one failing request does not
// prevent the others from being applied.
//
// Syntax faults recorded in the tree fail only the requests they affect: a
// request whose declaration overlaps a fault, or that matches nothing while
// faults exist, is reported as [ParseFailed]. The only error returned is a
// parser that produced no usable tree, in which case every request is
// reported as [ParseFailed] and the output equals src.
func Run(
	ctx context.Context,
	src []byte,
	p Parser,
	reqs []Request,
	opts ...Option,
) (Report, error) {
	cfg := makeConfig(opts...)
	report := Report{
		Results: make([]Result, len(reqs)),
		Source:  src,
		Output:  src,
	}

	for i, req := range reqs {
		report.Results[i].Request = req
	}

	tree, err := p.Parse(ctx, src)
	if err == nil && tree.Size() != len(src) {
		err = ErrOutOfBounds.Wrapf(fmt.Sprintf(
			"tree describes %d bytes, source has %d", tree.Size(), len(src)))
	}

	if err != nil {
		perr := ErrParseFailed.Wrap(err)

		for i := range report.Results {
			report.Results[i].Status = ParseFailed
			report.Results[i].Err = perr
		}

		cfg.logger.ErrorContext(ctx, "parse failed", log.Err(perr))

		return report, perr
	}

	idents := make([]string, 0, len(reqs))
	for _, req := range reqs {
		idents = append(idents, req.Identifier)
	}

	matches := Locate(tree, cfg.namespace, idents...)
	resolver := cfg.resolver.Fixed()
	seen := make(map[string]bool, len(reqs))
	edits := make([]Edit, 0, len(reqs))

	for i := range report.Results {
		res := &report.Results[i]
		res.Err = compileResult(res, tree, matches, resolver, seen)
		res.Status = StatusOf(res.Err)

		switch {
		case res.Err != nil:
			if res.Status == NotFound {
				res.Suggestions = matches.Suggest(res.Request.Identifier)
			}

			cfg.logger.ErrorContext(ctx, "cannot stamp "+res.Request.Identifier,
				slog.Any("result", *res),
				log.Err(res.Err),
			)
		case res.Changed():
			edits = append(edits, Edit{Span: res.Match.Span, Text: res.New})

			cfg.logger.DebugContext(ctx, "stamped "+res.Request.Identifier,
				slog.Any("result", *res))
		default:
			cfg.logger.DebugContext(ctx, "unchanged "+res.Request.Identifier,
				slog.Any("result", *res))
		}
	}

	out, err := Apply(src, edits...)
	if err != nil {
		// Spans of distinct declarations are disjoint.
		return report, err
	}

	report.Output = out

	cfg.logger.InfoContext(ctx, "applied modifications",
		slog.Int("count", report.Applied()),
		slog.Int("requests", len(reqs)),
	)

	return report, nil
}

func compileResult(
	res *Result,
	tree *syntax.Tree,
	matches Matches,
	resolver Resolver,
	seen map[string]bool,
) error {
	req := res.Request
	if err := req.Validate(); err != nil {
		return err
	}

	if seen[req.Identifier] {
		return ErrMalformedExpression.Wrapf("duplicate request for " + req.Identifier)
	}

	seen[req.Identifier] = true

	m, err := matches.Resolve(req.Identifier)
	if errors.Is(err, ErrNotFound) {
		if faults := tree.Faults(); len(faults) > 0 {
			return ErrParseFailed.Wrap(faults[0].Err).With(
				slog.String("identifier", req.Identifier))
		}
	}

	if err != nil {
		return err
	}

	res.Match = &m
	res.Old = m.Text

	if f, bad := tree.Damaged(m.Decl); bad {
		return ErrParseFailed.Wrap(f.Err).With(
			slog.String("identifier", req.Identifier))
	}

	text, err := Compile(m, req, resolver)
	if err != nil {
		return err
	}

	res.New = text

	return nil
}

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/cppstamp/stamp"
)

// reportIndent is the indentation of JSON and YAML reports.
const reportIndent = 2

var (
	appliedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	nameStyle    = lipgloss.NewStyle().Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	deleteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	insertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// entry is the serialized form of one [stamp.Result].
type entry struct {
	Identifier  string       `json:"identifier"            yaml:"identifier"`
	Expression  string       `json:"expression"            yaml:"expression"`
	Name        string       `json:"name,omitempty"        yaml:"name,omitempty"`
	Old         string       `json:"old,omitempty"         yaml:"old,omitempty"`
	New         string       `json:"new,omitempty"         yaml:"new,omitempty"`
	Error       string       `json:"error,omitempty"       yaml:"error,omitempty"`
	Suggestions []string     `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
	Status      stamp.Status `json:"status"                yaml:"status"`
}

// summary is the serialized form of a [stamp.Report].
type summary struct {
	File    string  `json:"file"    yaml:"file"`
	Results []entry `json:"results" yaml:"results"`
	Applied int     `json:"applied" yaml:"applied"`
	Changed bool    `json:"changed" yaml:"changed"`
	DryRun  bool    `json:"dryRun"  yaml:"dryRun"`
}

func summarize(file string, report stamp.Report, dryRun bool) summary {
	s := summary{
		File:    file,
		Results: make([]entry, len(report.Results)),
		Applied: report.Applied(),
		Changed: report.Changed(),
		DryRun:  dryRun,
	}

	for i, r := range report.Results {
		e := entry{
			Identifier:  r.Request.Identifier,
			Expression:  r.Request.Expression,
			Status:      r.Status,
			Error:       r.Error(),
			Suggestions: r.Suggestions,
		}

		if r.Match != nil {
			e.Name = r.Match.Qualified()
			e.Old = r.Old
			e.New = r.New
		}

		s.Results[i] = e
	}

	return s
}

// writeReport prints v in the given format. Text output is produced by text.
func writeReport(
	ctx context.Context,
	w io.Writer,
	format string,
	v any,
	text func(io.Writer) error,
) error {
	var err error

	switch format {
	case "", "none":
		return nil
	case "text":
		err = text(w)
	case "json":
		err = writeJSON(w, v)
	case "yaml":
		err = writeYAML(ctx, w, v)
	default:
		return ErrUnknownFormat.Wrap(fmt.Errorf("%q", format))
	}

	if err != nil {
		return ErrWriteReport.Wrap(err)
	}

	return nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", strings.Repeat(" ", reportIndent))
	if err != nil {
		return ErrJSONMarshal.Wrap(err)
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

func writeYAML(ctx context.Context, w io.Writer, v any) error {
	data, err := yaml.MarshalContext(ctx, v, yaml.Indent(reportIndent))
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	_, err = fmt.Fprint(w, string(data))

	return err
}

// text prints one line per request.
func (s summary) text(w io.Writer) error {
	for _, e := range s.Results {
		var line string

		switch {
		case e.Status != stamp.Applied:
			line = failedStyle.Render("✗ "+e.Identifier) + " " + e.Error
			if len(e.Suggestions) > 0 {
				line += hintStyle.Render(
					" (did you mean " + strings.Join(e.Suggestions, ", ") + "?)")
			}
		case e.Old == e.New:
			line = appliedStyle.Render("=") + " " + nameStyle.Render(e.Name) + " " +
				hintStyle.Render(e.Old+" (unchanged)")
		default:
			line = appliedStyle.Render("✓") + " " + nameStyle.Render(e.Name) + " " +
				e.Old + " → " + e.New
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	verb := "modified"
	if s.DryRun {
		verb = "would modify"
	}

	_, err := fmt.Fprintf(w, "%s: %s %d of %d\n", s.File, verb, s.Applied, len(s.Results))

	return err
}

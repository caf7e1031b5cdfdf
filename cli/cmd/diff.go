package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// writeDiff prints the lines that differ between before and after, each
// group of changes headed by its line number in before.
func writeDiff(w io.Writer, name string, before, after []byte) error {
	dmp := diffmatchpatch.New()

	a, b, lines := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder

	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", name, name)

	line, inHunk := 1, false

	for _, d := range diffs {
		text := splitLines(d.Text)

		switch d.Type {
		case diffmatchpatch.DiffEqual:
			line += len(text)
			inHunk = false

			continue

		case diffmatchpatch.DiffDelete:
			if !inHunk {
				fmt.Fprintf(&sb, "@@ %d @@\n", line)
			}

			for _, l := range text {
				sb.WriteString(deleteStyle.Render("-"+l) + "\n")
			}

			line += len(text)

		case diffmatchpatch.DiffInsert:
			if !inHunk {
				fmt.Fprintf(&sb, "@@ %d @@\n", line)
			}

			for _, l := range text {
				sb.WriteString(insertStyle.Render("+"+l) + "\n")
			}
		}

		inHunk = true
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// splitLines splits s into lines without their terminators.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

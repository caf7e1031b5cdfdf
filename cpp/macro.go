package cpp

import (
	"bytes"
	"regexp"
	"strings"
)

var (
	// defineLine matches an object-like macro definition. Function-like
	// macros have a parenthesis directly after the name and do not match.
	defineLine = regexp.MustCompile(
		`(?m)^[ \t]*#[ \t]*define[ \t]+([A-Za-z_]\w*)(?:[ \t]+(.*?))?[ \t]*\r?$`)

	// blankBody matches a macro body that expands to nothing but
	// attributes, such as an export or deprecation annotation.
	blankBody = regexp.MustCompile(
		`^(?:(?:__attribute__\s*\(\(.*\)\)|__declspec\s*\(.*\)|\[\[.*\]\])\s*)*$`)
)

// isBlank reports whether a macro body can be erased without changing which
// declarations a source contains.
func isBlank(body string) bool {
	if i := strings.Index(body, "//"); i >= 0 {
		body = body[:i]
	}

	return blankBody.MatchString(strings.TrimSpace(body))
}

// blankMacros returns the object-like macros of src, followed by extra,
// whose bodies are blank.
func blankMacros(src []byte, extra []string) []string {
	names := append([]string(nil), extra...)

	for _, m := range defineLine.FindAllSubmatch(src, -1) {
		if isBlank(string(m[2])) {
			names = append(names, string(m[1]))
		}
	}

	return names
}

// mask returns a copy of src with every use of the named macros outside
// preprocessor directives overwritten by spaces. Byte offsets are preserved,
// so spans into the result are spans into src. It returns src itself when
// names is empty.
func mask(src []byte, names []string) []byte {
	if len(names) == 0 {
		return src
	}

	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = regexp.QuoteMeta(name)
	}

	use := regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
	out := bytes.Clone(src)
	continued := false

	for start := 0; start < len(out); {
		end := bytes.IndexByte(out[start:], '\n')
		if end < 0 {
			end = len(out)
		} else {
			end += start
		}

		line := out[start:end]
		directive := continued || bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("#"))

		if !directive {
			for _, loc := range use.FindAllIndex(line, -1) {
				for i := loc[0]; i < loc[1]; i++ {
					line[i] = ' '
				}
			}
		}

		continued = directive && bytes.HasSuffix(bytes.TrimRight(line, "\r"), []byte(`\`))
		start = end + 1
	}

	return out
}

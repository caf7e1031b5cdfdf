package stamp

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Integer is a C++ integer literal split into the parts needed to rewrite its
// value without changing its spelling.
type Integer struct {
	Prefix    string // "", "0", "0x", "0X", "0b" or "0B"
	Suffix    string // u, l, ll, z and combinations, as written
	Magnitude uint64
	Base      int
	Negative  bool
	Upper     bool // hexadecimal digits written in upper case
}

var (
	errEmptyInteger   = errors.New("empty integer literal")
	errIntegerSuffix  = errors.New("invalid integer suffix")
	errDigitSeparator = errors.New("misplaced digit separator")
	errIntegerRange   = errors.New("integer literal out of range")
)

// validSuffix lists the accepted integer suffixes, lower-cased.
var validSuffix = map[string]bool{
	"": true, "u": true, "l": true, "ul": true, "lu": true,
	"ll": true, "ull": true, "llu": true, "z": true, "uz": true, "zu": true,
}

// ParseInteger parses a C++ integer literal with an optional leading sign.
func ParseInteger(s string) (Integer, error) {
	var n Integer

	s = strings.TrimSpace(s)
	if s == "" {
		return n, errEmptyInteger
	}

	switch s[0] {
	case '-':
		n.Negative = true

		fallthrough
	case '+':
		s = strings.TrimSpace(s[1:])
	}

	end := len(s)
	for end > 0 && strings.IndexByte("uUlLzZ", s[end-1]) >= 0 {
		end--
	}

	s, n.Suffix = s[:end], s[end:]
	if !validSuffix[strings.ToLower(n.Suffix)] ||
		strings.Contains(n.Suffix, "lL") || strings.Contains(n.Suffix, "Ll") {
		return n, errIntegerSuffix
	}

	n.Base = 10

	switch {
	case len(s) > 1 && (s[:2] == "0x" || s[:2] == "0X"):
		n.Base, n.Prefix = 16, s[:2]
	case len(s) > 1 && (s[:2] == "0b" || s[:2] == "0B"):
		n.Base, n.Prefix = 2, s[:2]
	case len(s) > 1 && s[0] == '0':
		n.Base, n.Prefix = 8, s[:1]
	}

	digits := s[len(n.Prefix):]

	// The octal prefix is itself a digit, so 0'17 is well formed.
	grouped := digits
	if n.Base == 8 {
		grouped = s
	}

	if strings.HasPrefix(grouped, "'") || strings.HasSuffix(grouped, "'") ||
		strings.Contains(grouped, "''") {
		return n, errDigitSeparator
	}

	digits = strings.ReplaceAll(digits, "'", "")
	if digits == "" {
		return n, errEmptyInteger
	}

	mag, err := strconv.ParseUint(digits, n.Base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return n, errIntegerRange
		}

		return n, errors.New("invalid integer literal " + strconv.Quote(s))
	}

	n.Magnitude = mag
	n.Upper = n.Base == 16 && strings.ContainsAny(digits, "ABCDEF")

	if mag == 0 {
		n.Negative = false
	}

	return n, nil
}

// String renders the literal in its original radix, prefix, digit case and
// suffix. Digit separators are not reproduced.
func (n Integer) String() string {
	var sb strings.Builder

	if n.Negative {
		sb.WriteByte('-')
	}

	base := n.Base
	if base == 0 {
		base = 10
	}

	digits := strconv.FormatUint(n.Magnitude, base)
	if n.Upper {
		digits = strings.ToUpper(digits)
	}

	sb.WriteString(n.Prefix)
	sb.WriteString(digits)
	sb.WriteString(n.Suffix)

	return sb.String()
}

// Increment returns n+1, keeping its spelling.
func (n Integer) Increment() (Integer, error) {
	switch {
	case n.Negative:
		n.Magnitude--
		n.Negative = n.Magnitude != 0
	case n.Magnitude == math.MaxUint64:
		return n, errIntegerRange
	default:
		n.Magnitude++
	}

	return n, nil
}

// String literal encoding prefixes.
var stringPrefixes = []string{"u8", "L", "u", "U", ""}

// SplitString separates a quoted C++ string literal into its encoding prefix
// and the text between the quotes. Raw and concatenated literals are rejected.
func SplitString(lit string) (prefix, body string, ok bool) {
	for _, p := range stringPrefixes {
		rest, found := strings.CutPrefix(lit, p)
		if !found || len(rest) < 2 || rest[0] != '"' || rest[len(rest)-1] != '"' {
			continue
		}

		body = rest[1 : len(rest)-1]
		if !closedBody(body) {
			return "", "", false
		}

		return p, body, true
	}

	return "", "", false
}

// closedBody reports whether body contains no unescaped double quote.
func closedBody(body string) bool {
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\\':
			i++
		case '"':
			return false
		}
	}

	return true
}

// QuoteString renders s as a C++ string literal with the given encoding
// prefix. Quotes, backslashes and control characters are escaped; every other
// byte is copied verbatim.
func QuoteString(prefix, s string) string {
	var sb strings.Builder

	sb.Grow(len(prefix) + len(s) + 2)
	sb.WriteString(prefix)
	sb.WriteByte('"')

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\a':
			sb.WriteString(`\a`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\v':
			sb.WriteString(`\v`)
		default:
			if c < 0x20 || c == 0x7f {
				// Three digits so a following digit is not absorbed.
				sb.WriteByte('\\')
				sb.WriteByte('0' + c>>6)
				sb.WriteByte('0' + c>>3&7)
				sb.WriteByte('0' + c&7)
			} else {
				sb.WriteByte(c)
			}
		}
	}

	sb.WriteByte('"')

	return sb.String()
}

// UnquoteString returns the contents of a C++ string literal with escape
// sequences decoded. The encoding prefix is discarded.
func UnquoteString(lit string) (string, error) {
	_, body, ok := SplitString(lit)
	if !ok {
		return "", errors.New("not a string literal: " + lit)
	}

	var sb strings.Builder

	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			sb.WriteByte(c)

			continue
		}

		i++
		if i >= len(body) {
			return "", errors.New("unterminated escape sequence")
		}

		switch c = body[i]; c {
		case '\'', '"', '?', '\\':
			sb.WriteByte(c)
		case 'a':
			sb.WriteByte('\a')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'v':
			sb.WriteByte('\v')
		case '0', '1', '2', '3', '4', '5', '6', '7':
			j := i
			for j < len(body) && j < i+3 && body[j] >= '0' && body[j] <= '7' {
				j++
			}

			v, _ := strconv.ParseUint(body[i:j], 8, 16)
			sb.WriteByte(byte(v))

			i = j - 1
		case 'x':
			j := i + 1
			for j < len(body) && isHex(body[j]) {
				j++
			}

			if j == i+1 {
				return "", errors.New(`\x used with no following hex digits`)
			}

			v, err := strconv.ParseUint(body[i+1:j], 16, 64)
			if err != nil || v > 0xff {
				return "", errors.New("hex escape sequence out of range")
			}

			sb.WriteByte(byte(v))

			i = j - 1
		case 'u', 'U':
			size := 4
			if c == 'U' {
				size = 8
			}

			if i+size >= len(body) {
				return "", errors.New("incomplete universal character name")
			}

			v, err := strconv.ParseUint(body[i+1:i+1+size], 16, 32)
			if err != nil || !utf8.ValidRune(rune(v)) {
				return "", errors.New("invalid universal character name")
			}

			sb.WriteRune(rune(v))

			i += size
		default:
			return "", errors.New("unknown escape sequence \\" + string(c))
		}
	}

	return sb.String(), nil
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

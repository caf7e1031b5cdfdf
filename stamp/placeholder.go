package stamp

import (
	"regexp"
	"time"

	"github.com/ncruces/go-strftime"
)

// Default layouts for the {date} and {time} placeholders, in strftime
// notation.
const (
	DefaultDateFormat = "%d %b %Y"
	DefaultTimeFormat = "%I:%M:%S %p %Z"
)

// Placeholder describes one substitution recognized in an expression.
type Placeholder struct {
	Name string
	Help string
}

// Placeholders lists the recognized substitutions in the order they are
// documented.
var Placeholders = []Placeholder{
	{Name: "{date}", Help: "current date"},
	{Name: "{time}", Help: "current time"},
	{Name: "{++}", Help: "increment current value"},
}

var placeholderPattern = regexp.MustCompile(`\{(date|time|\+\+)\}`)

// Resolver expands placeholders in request expressions.
//
// The zero value formats the wall clock in the local time zone with the
// default layouts.
type Resolver struct {
	Now        func() time.Time
	Location   *time.Location
	DateFormat string
	TimeFormat string
}

// Time returns the instant used for {date} and {time}, in r.Location.
func (r Resolver) Time() time.Time {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	loc := r.Location
	if loc == nil {
		loc = time.Local
	}

	return now().In(loc)
}

// Fixed returns a copy of r whose clock always reports the current instant,
// so every expansion made with it agrees on the date and time.
func (r Resolver) Fixed() Resolver {
	t := r.Time()
	r.Now = func() time.Time { return t }

	return r
}

// Expand substitutes every placeholder in expr. Current is the integer value
// of the literal being replaced, or nil when it is not an integer; {++}
// requires it. Unrecognized brace sequences are kept verbatim and
// substituted text is not expanded again.
func (r Resolver) Expand(expr string, current *Integer) (string, error) {
	var (
		err error
		now time.Time
	)

	if placeholderPattern.MatchString(expr) {
		now = r.Time()
	}

	out := placeholderPattern.ReplaceAllStringFunc(expr, func(m string) string {
		switch m {
		case "{date}":
			return strftime.Format(layout(r.DateFormat, DefaultDateFormat), now)
		case "{time}":
			return strftime.Format(layout(r.TimeFormat, DefaultTimeFormat), now)
		}

		if current == nil {
			if err == nil {
				err = ErrUnsupportedLiteral.Wrapf("{++} requires an integer literal")
			}

			return m
		}

		next, incErr := current.Increment()
		if incErr != nil {
			if err == nil {
				err = ErrMalformedExpression.Wrap(incErr)
			}

			return m
		}

		return next.String()
	})
	if err != nil {
		return "", err
	}

	return out, nil
}

func layout(format, fallback string) string {
	if format == "" {
		return fallback
	}

	return format
}

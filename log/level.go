package log

//go:generate go tool stringer --linecomment --type Level,Format --output level_string.go

import (
	"iter"
	"log/slog"
	"slices"
	"strings"
)

// Level is the severity of a log message.
type Level slog.Level

// Levels understood by [ParseLevel], from most to least detailed.
const (
	LevelTrace Level = Level(slog.LevelDebug - 4) // trace
	LevelDebug Level = Level(slog.LevelDebug)     // debug
	LevelInfo  Level = Level(slog.LevelInfo)      // info
	LevelWarn  Level = Level(slog.LevelWarn)      // warn
	LevelError Level = Level(slog.LevelError)     // error
)

// DefaultLevel is used when a level name is not recognized.
const DefaultLevel = LevelInfo

var levels = []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}

// Levels yields the name of every level, most detailed first.
func Levels() iter.Seq[string] { return names(levels) }

// ParseLevel returns the level named s, ignoring case. Offsets such as
// "info+2" are accepted as by [slog.Level.UnmarshalText]. Unknown names
// yield [DefaultLevel].
func ParseLevel(s string) Level {
	if strings.EqualFold(strings.TrimSpace(s), LevelTrace.String()) {
		return LevelTrace
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return DefaultLevel
	}

	return Level(l)
}

// Format selects the encoding of log records.
type Format int

// Formats understood by [ParseFormat].
const (
	FormatText Format = iota // text
	FormatJSON               // json
)

// DefaultFormat is used when a format name is not recognized.
const DefaultFormat = FormatText

var formats = []Format{FormatText, FormatJSON}

// Formats yields the name of every format.
func Formats() iter.Seq[string] { return names(formats) }

// ParseFormat returns the format named s, ignoring case and surrounding
// white space. Unknown names yield [DefaultFormat].
func ParseFormat(s string) Format {
	s = strings.ToLower(strings.TrimSpace(s))

	if i := slices.IndexFunc(formats, func(f Format) bool { return f.String() == s }); i >= 0 {
		return formats[i]
	}

	return DefaultFormat
}

func names[T interface{ String() string }](values []T) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, v := range values {
			if !yield(v.String()) {
				return
			}
		}
	}
}

// Package cli contains the command line interface for cppstamp.
//
// # Usage
//
// The default command stamps values into a source file:
//
//	cppstamp [flags] FILE [NAMESPACE] IDENT=EXPR... [--clang-args ARGS...]
//
// Everything after --clang-args is handed to the source parser, which
// understands -x c, -x c++ and -std=. Other front-end arguments are accepted
// and ignored.
//
// The list command prints the declarations a stamp request can target:
//
//	cppstamp list [--all] [--format=json] FILE [NAMESPACE]
//
// # Configuration
//
// Flag defaults are read from config.yaml (or config.json) in the user
// configuration directory. The init command writes the current flag values
// there. Keys may use hyphens or underscores:
//
//	timezone: UTC
//	date_format: "%Y-%m-%d"
//	log-level: debug
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (Kitchen, RFC3339, none, ...)
//   - --log-caller: Include caller information in log output
//   - -v, --verbose: Same as --log-level=debug
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o cppstamp .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/cppstamp/pprof)
package cli

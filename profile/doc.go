// Package profile provides optional runtime profiling for cppstamp.
//
// Profiling is built on [github.com/pkg/profile] and only compiled in with
// the "pprof" build tag:
//
//	go build -tags pprof .
//	cppstamp --pprof-mode=cpu version.cpp build_number={++}
//
// Without the tag, [Modes] is empty and [Profiler.Start] returns a no-op.
//
// Profiles are written to the cache directory by default
// ($XDG_CACHE_HOME/cppstamp/pprof on Linux) and read with go tool pprof:
//
//	go tool pprof -http=: ~/.cache/cppstamp/pprof/cpu.pprof
package profile

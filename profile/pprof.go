//go:build pprof

package profile

import (
	"maps"
	"slices"

	"github.com/pkg/profile"

	_ "net/http/pprof" // register HTTP handlers
)

// Enabled reports whether profiling is compiled in.
const Enabled = true

var mode = map[string]func(*profile.Profile){
	"block":     profile.BlockProfile,
	"cpu":       profile.CPUProfile,
	"clock":     profile.ClockProfile,
	"goroutine": profile.GoroutineProfile,
	"mem":       profile.MemProfile,
	"allocs":    profile.MemProfileAllocs,
	"heap":      profile.MemProfileHeap,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

// Modes returns the supported profiling modes, sorted.
func Modes() []string { return slices.Sorted(maps.Keys(mode)) }

// option appends pkg/profile settings derived from a Profiler.
type option func([]func(*profile.Profile)) []func(*profile.Profile)

func start(p Profiler) Stopper {
	fn, ok := mode[p.Mode]
	if !ok {
		return ignore{}
	}

	opts := []func(*profile.Profile){fn}
	for _, o := range []option{withPath(p.Path), withQuiet(p.Quiet)} {
		opts = o(opts)
	}

	return profile.Start(opts...)
}

func withPath(path string) option {
	return func(opts []func(*profile.Profile)) []func(*profile.Profile) {
		if path != "" {
			opts = append(opts, profile.ProfilePath(path))
		}

		return opts
	}
}

func withQuiet(quiet bool) option {
	return func(opts []func(*profile.Profile)) []func(*profile.Profile) {
		if quiet {
			opts = append(opts, profile.Quiet)
		}

		return opts
	}
}

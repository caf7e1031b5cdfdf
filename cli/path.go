package cli

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/ardnew/cppstamp/pkg"
)

// baseConfig is the base name of the configuration file.
const baseConfig = "config"

// defaultDirMode is the permission of created runtime directories.
var defaultDirMode os.FileMode = 0o700

// debugBinary matches the executable name chosen by the dlv debugger.
var debugBinary = regexp.MustCompile(`^__debug_bin\d*$`)

// basePrefix names the per-user configuration and cache directories. It is
// the executable's base name without extension or leading dots, or
// [pkg.Name] when running under the debugger.
var basePrefix = sync.OnceValue(func() string {
	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}

	id := strings.TrimLeft(filepath.Base(exe), ".")
	id = strings.TrimSuffix(id, filepath.Ext(id))

	if id == "" || debugBinary.MatchString(id) {
		return pkg.Name
	}

	return id
})

// userDir returns the directory found by lookup, or the hidden directory
// fallback under the home directory, or the working directory, with
// [basePrefix] appended.
func userDir(lookup func() (string, error), fallback string) string {
	dir, err := lookup()
	if err != nil {
		if home, herr := os.UserHomeDir(); herr == nil {
			dir = filepath.Join(home, fallback)
		} else if dir, err = os.Getwd(); err != nil {
			dir = "."
		}
	}

	return filepath.Join(dir, basePrefix())
}

var (
	configDir = sync.OnceValue(func() string { return userDir(os.UserConfigDir, ".config") })
	cacheDir  = sync.OnceValue(func() string { return userDir(os.UserCacheDir, ".cache") })
)

// configPath joins elem to the configuration directory.
func configPath(elem ...string) string {
	return filepath.Join(append([]string{configDir()}, elem...)...)
}

// mkdirAllRequired creates the configuration and cache directories.
func mkdirAllRequired() error {
	for _, dir := range []string{configDir(), cacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return err
		}
	}

	return nil
}

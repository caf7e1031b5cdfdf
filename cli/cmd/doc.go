// Package cmd implements the cppstamp subcommands: stamp (the default),
// list and init.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"

	// PlaceholdersIdentifier is the kong variable identifier containing the
	// list of placeholders an assignment expression may contain.
	PlaceholdersIdentifier = "placeholders"
)

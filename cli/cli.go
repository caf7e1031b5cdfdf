package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/cppstamp/cli/cmd"
	"github.com/ardnew/cppstamp/pkg"
)

// CLI is the top-level command-line interface for cppstamp.
type CLI struct {
	cmd.Globals `embed:""`

	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Verbose bool             `help:"Enable debug logging (same as --log-level=debug)." short:"v"`
	Version kong.VersionFlag `help:"Print version and exit."`

	Init cmd.Init `cmd:"" help:"Write the current flag values to the configuration file."`
	List cmd.List `cmd:"" help:"List the declarations that can be stamped."`

	Stamp cmd.Stamp `cmd:"" default:"withargs" help:"Stamp values into a source file (default)."`
}

// Run executes the cppstamp CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
//
// Arguments following [cmd.FrontEndFlag] are passed to the source parser and
// never interpreted as cppstamp flags.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		"version":            pkg.Name + " " + pkg.Version(),
		cmd.ConfigIdentifier: configFilePath + ".yaml",
		cmd.CacheIdentifier:  cacheDir(),

		cmd.PlaceholdersIdentifier: cmd.PlaceholderHelp(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	args, frontEnd := cmd.SplitFrontEndArgs(args)

	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+".json"),
		kong.Configuration(resolve, configFilePath+".yaml"),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithFrontEndArgs(ctx, frontEnd)

	cli.Log.start(ctx, cli.Verbose)

	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli.Globals)
}

package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hsiuhsiu/popdb-go/pkg/popdb"
	"github.com/hsiuhsiu/popdb-go/pkg/popdb/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Backend    string
	LibDir     string
	LibName    string
	SQLitePath string
	LogFormat  string
	Verbose    bool
}

// NewRootCommand creates the root command for the popdb CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "popdb",
		Short:         "Population lookups by postal code",
		Long:          "Drive the popdb native library: create a database, load the dataset and query it.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError(c.CommandPath(), err)
	})

	// Global flags
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "YAML configuration file")
	flags.StringVar(&opts.Backend, "backend", "", "backend (native|builtin|sqlite)")
	flags.StringVar(&opts.LibDir, "lib-dir", "", "directory holding the shared library")
	flags.StringVar(&opts.LibName, "lib-name", "", "base name of the shared library")
	flags.StringVar(&opts.SQLitePath, "sqlite-path", "", "database file for the sqlite backend")
	flags.StringVar(&opts.LogFormat, "log-format", "", "log format (console|json)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewQueryCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// Config merges the configuration file, if any, with the flags.
func (o *RootOptions) Config() (popdb.Config, error) {
	cfg := popdb.DefaultConfig()
	if o.ConfigPath != "" {
		var err error
		if cfg, err = popdb.LoadConfig(o.ConfigPath); err != nil {
			return popdb.Config{}, err
		}
	}
	if o.Backend != "" {
		cfg.Backend = o.Backend
	}
	if o.LibDir != "" {
		cfg.Library.Dir = o.LibDir
	}
	if o.LibName != "" {
		cfg.Library.Name = o.LibName
	}
	if o.SQLitePath != "" {
		cfg.SQLite.Path = o.SQLitePath
	}
	if o.LogFormat != "" {
		cfg.Log.Format = o.LogFormat
	}
	if o.Verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return popdb.Config{}, err
	}
	return cfg, nil
}

// openLibrary loads the configured backend with a zap logger attached. The
// returned function closes the library and flushes the logger.
func (o *RootOptions) openLibrary() (*popdb.Library, func(), error) {
	cfg, err := o.Config()
	if err != nil {
		return nil, nil, usageError("config", err)
	}

	z, err := logging.NewZapConfig(cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return nil, nil, usageError("logger", err)
	}
	cfg.Logger = logging.NewZap(z)

	lib, err := popdb.Open(cfg)
	if err != nil {
		_ = z.Sync()
		return nil, nil, usageError("open "+cfg.Backend+" backend", err)
	}

	cleanup := func() {
		if cerr := lib.Close(); cerr != nil {
			z.Warn("close error", zap.Error(cerr))
		}
		_ = z.Sync()
	}
	return lib, cleanup, nil
}

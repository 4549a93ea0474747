package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Lenostatos/Orinoco-2/internal/app"
	"github.com/Lenostatos/Orinoco-2/internal/hcl"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the CLI, e.g.
// ORINOCO_LOG_LEVEL.
const EnvPrefix = "ORINOCO"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) *ExitError {
	return &ExitError{Code: 2, Message: err.Error()}
}

func failure(err error) *ExitError {
	return &ExitError{Code: 1, Message: err.Error()}
}

// command carries state shared by all subcommands of one invocation.
type command struct {
	v    *viper.Viper
	outW io.Writer
	logW io.Writer
}

// Run executes the command line in args. Regular output goes to outW,
// logs and diagnostics to errW. Every returned error is an *ExitError.
func Run(ctx context.Context, args []string, outW, errW io.Writer) error {
	root := newRootCommand(outW, errW)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	// Anything cobra reports on its own is a usage problem.
	return usageError(err)
}

func newRootCommand(outW, errW io.Writer) *cobra.Command {
	c := &command{v: viper.New(), outW: outW, logW: errW}
	var configFile string

	root := &cobra.Command{
		Use:   "orinoco",
		Short: "Browse and call the node editor's function catalog",
		Long: `Orinoco exposes the function catalog of the node-graph editor: every
function a function node can hold, its aliases, inputs and output type.
Functions can be listed, described and called from the terminal, or served
over HTTP together with the editor's canvas state.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile == "" {
				return nil
			}
			c.v.SetConfigFile(configFile)
			if err := c.v.ReadInConfig(); err != nil {
				return usageError(fmt.Errorf("reading config: %w", err))
			}
			return nil
		},
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Path to a config file (yaml, json or toml).")
	flags.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.String("locale", "en", "BCP 47 locale for display strings, e.g. 'de'.")
	flags.String("timezone", "Local", "IANA time zone used by the date functions.")
	flags.String("modules-path", "", "Directory of .hcl manifests replacing the builtin ones.")
	flags.String("otlp-endpoint", "", "OTLP/gRPC endpoint for traces. Empty disables tracing.")

	c.bindFlags(flags)
	c.v.SetEnvPrefix(EnvPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	root.AddCommand(
		c.newFunctionsCommand(),
		c.newCategoriesCommand(),
		c.newDescribeCommand(),
		c.newCallCommand(),
		c.newServeCommand(),
	)
	return root
}

func (c *command) bindFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		// BindPFlag only fails for a nil flag.
		_ = c.v.BindPFlag(f.Name, f)
	})
}

// config resolves the application configuration from flags, environment
// and config file, in viper's precedence order.
func (c *command) config() (*app.Config, error) {
	cfg, err := app.NewConfig(app.Config{
		ModulesPath:  c.v.GetString("modules-path"),
		LogFormat:    c.v.GetString("log-format"),
		LogLevel:     c.v.GetString("log-level"),
		Locale:       c.v.GetString("locale"),
		Timezone:     c.v.GetString("timezone"),
		Port:         c.v.GetInt("port"),
		OTLPEndpoint: c.v.GetString("otlp-endpoint"),
	})
	if err != nil {
		return nil, usageError(err)
	}
	return cfg, nil
}

// newApp builds the application. The caller must Close it.
func (c *command) newApp() (*app.App, error) {
	cfg, err := c.config()
	if err != nil {
		return nil, err
	}
	return app.NewApp(c.logW, cfg, hcl.NewLoader()), nil
}

// Package cli is the llmtools command tree: the web server plus terminal
// counterparts of each dashboard page.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"llmtools/internal/config"
)

// Options are the persistent flags and process streams.
type Options struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
	Getenv     func(string) string
	Stdout     io.Writer
	Stderr     io.Writer
}

// env carries state resolved once per invocation.
type env struct {
	opts   *Options
	cfg    config.Config
	log    zerolog.Logger
	closer io.Closer
}

// errSilent signals a failure that was already reported to the user.
var errSilent = errors.New("silent failure")

// app builds the components; callers close it.
func (e *env) app() (*app, error) { return newApp(e.cfg, e.log) }

func buildRootCmdWith(o *Options) *cobra.Command {
	if o.Getenv == nil {
		o.Getenv = os.Getenv
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	e := &env{opts: o, log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "llmtools",
		Short:         "Operator tools for a local LLM serving stack",
		Long:          "Web dashboard and terminal tools for running engine commands, watching containers, browsing the model hub, estimating tokens and editing model configs.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(o.Stdout)
	root.SetErr(o.Stderr)

	// Persistent flags -> Options
	pf := root.PersistentFlags()
	pf.StringVarP(&o.ConfigPath, "config", "c", o.ConfigPath, "Config file (.yaml, .json or .toml)")
	pf.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level: debug|info|warn|error|off (defaults LLMTOOLS_LOG_LEVEL or info)")
	pf.StringVar(&o.LogFormat, "log-format", o.LogFormat, "Log format: console|json")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Resolve(o.ConfigPath, o.Getenv)
		if err != nil {
			return err
		}
		if o.LogLevel != "" {
			cfg.Log.Level = o.LogLevel
		}
		if o.LogFormat != "" {
			cfg.Log.Format = o.LogFormat
		}
		l, closer, err := newLogger(cfg.Log, o.Stderr)
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		e.cfg, e.log, e.closer = cfg, l, closer
		return nil
	}
	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if e.closer != nil {
			_ = e.closer.Close()
		}
	}

	root.AddCommand(
		serveCmd(e),
		psCmd(e),
		runCmd(e),
		lintCmd(e),
		tokensCmd(e),
		hubCmd(e),
		configsCmd(e),
	)
	return root
}

// Main runs the command tree with args and returns the process exit code.
func Main(ctx context.Context, args []string, o *Options) int {
	if o == nil {
		o = &Options{}
	}
	root := buildRootCmdWith(o)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errSilent) {
			fmt.Fprintln(o.Stderr, "error:", err)
		}
		return 1
	}
	return 0
}

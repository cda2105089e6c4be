// Package cli implements the stepviz command-line interface.
//
// Commands:
//   - list: print the visualizer catalog
//   - run:  play one visualizer in the terminal, paced by the playback session
//
// Settings come from an optional TOML file (--config) and flags; flags win.
// Logging goes to stderr via charmbracelet/log, --verbose switches to debug.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/config"
	"github.com/katalvlaran/stepviz/playback"
)

const appName = "stepviz"

const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the values shown by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds the state shared by every command.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	out   io.Writer
	sleep playback.Sleeper // nil keeps the session's timer
}

// New creates a CLI printing to out and logging to logw at level.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		Config: config.Default(),
		out:    out,
	}
}

// SetLogLevel changes the logger level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand builds the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          appName,
		Short:        "stepviz plays classic algorithms step by step",
		Long:         `stepviz runs graph, string, search and range-query algorithms and prints every intermediate step, paced like an animation.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				c.Config = cfg
				c.SetLogLevel(cfg.LogLevel())
			}
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			c.Logger.Debug("settings", "speed", c.Config.Playback.Speed, "level", c.Logger.GetLevel())

			return nil
		},
	}

	root.SetOut(c.out)
	root.SetVersionTemplate(appName + " {{.Version}}\ncommit: " + commit + "\nbuilt: " + date + "\n")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML settings file")

	root.AddCommand(c.listCommand())
	root.AddCommand(c.runCommand())

	return root
}

// Execute runs the CLI against os.Args.
func Execute(ctx context.Context) error {
	c := New(os.Stdout, os.Stderr, LogInfo)

	return c.RootCommand().ExecuteContext(ctx)
}

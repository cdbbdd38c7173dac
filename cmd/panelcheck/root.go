package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/grindlemire/panelcheck/internal/config"
	"github.com/grindlemire/panelcheck/internal/observability"
)

// flagKeys maps command-line flags to the config keys they override.
var flagKeys = map[string]string{
	"engine":     "run.engines",
	"slack":      "run.slack",
	"scale":      "run.scale",
	"scenarios":  "run.scenarios",
	"timeout":    "run.timeout",
	"metrics":    "run.metrics",
	"verbose":    "run.verbose",
	"log-level":  "logger.level",
	"log-format": "logger.format",
}

// app is the state shared by every command of one invocation.
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config

	log      *zap.Logger
	closeLog func() error
}

func (a *app) rootCmd() *cobra.Command {
	a.v = viper.New()
	a.log = zap.NewNop()

	root := &cobra.Command{
		Use:               "panelcheck",
		Short:             "Layout regression suite for star-sized grid, dock and wrap panels",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetVersionTemplate("{{printf \"%s\\n\" .Version}}")

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./panelcheck.yaml)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log format (console, json)")

	root.AddCommand(a.runCmd(), a.listCmd(), a.sweepCmd(), versionCmd())
	return root
}

// setup loads the configuration and builds the logger before any command
// runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}
	if err := config.Bind(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.FromViper(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log, a.closeLog = observability.New(cfg.Logger, zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr())))
	a.log.Debug("configuration loaded",
		zap.String("config_file", a.v.ConfigFileUsed()),
		zap.Strings("engines", cfg.Run.Engines))
	return nil
}

func (a *app) close() error {
	if a.closeLog == nil {
		return nil
	}
	return a.closeLog()
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "panelcheck %s\n", version)
			return err
		},
	}
}

// Command biomegrow grows hand-authored biome seed maps into large maps.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"biomegrow/internal/app"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "biomegrow",
		Short:         "Grow biome seed maps by repeated expansion and smoothing",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (yaml, json or toml)")
	root.AddCommand(
		newGenerateCmd(opts),
		newViewCmd(opts),
		newSweepCmd(opts),
		newNoiseCmd(opts),
	)
	return root
}

// setup loads cfg from fs, the config file and the environment, and returns
// the logger the command should use.
func (o *rootOptions) setup(cfg *app.Config, fs *pflag.FlagSet) (*slog.Logger, error) {
	if err := cfg.Load(fs, o.configFile); err != nil {
		slog.Error("config", "err", err)
		return nil, err
	}
	log, err := app.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		slog.Error("config", "err", err)
		return nil, err
	}
	return log, nil
}

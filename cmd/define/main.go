package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/define/internal/audio"
	"codeberg.org/snonux/define/internal/cli"
	"codeberg.org/snonux/define/internal/dictionary"
	"codeberg.org/snonux/define/internal/lookup"
	"codeberg.org/snonux/define/internal/thesaurus"
	"codeberg.org/snonux/define/internal/translation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Errors are part of the output; the exit status is always zero.
	execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

// execute runs one invocation and prints either the report or the error
// message to stdout.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) {
	// Create flags instance and the configuration it is bound to
	flags := cli.NewFlags()
	v := viper.New()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags, v)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(cli.NormalizeArgs(rootCmd, args))

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return cli.InitConfig(v, flags.CfgFile)
	}

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd.Context(), v, stdout, stderr, args, flags)
	}

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stdout, err)
	}
}

func runCommand(ctx context.Context, v *viper.Viper, stdout, stderr io.Writer, args []string, flags *cli.Flags) error {
	cfg, err := cli.LoadConfig(v)
	if err != nil {
		return err
	}

	logger := cli.NewLogger(cfg.LogLevel, cfg.LogFormat, stderr)

	agg, err := newAggregator(cfg, logger)
	if err != nil {
		return err
	}

	mode := flags.Mode()
	result, err := agg.Lookup(ctx, mode, lookup.JoinPhrase(args))
	if err != nil {
		return err
	}

	if out := lookup.Format(mode, result); out != "" {
		fmt.Fprintln(stdout, out)
	}
	return nil
}

// newAggregator wires the source clients described by cfg.
func newAggregator(cfg *cli.Config, logger *slog.Logger) (*lookup.Aggregator, error) {
	translator, err := translation.NewTranslator(cfg.Translation, logger)
	if err != nil {
		return nil, err
	}

	player := audio.NewPlayer(cfg.Player, cfg.Dictionary.Timeout, logger)
	definitions := dictionary.NewClient(cfg.Dictionary, player, logger)
	synonyms := thesaurus.NewClient(cfg.Thesaurus, logger)

	logger.Debug("sources configured",
		slog.String("translation", translator.Name()),
		slog.String("player", player.Name()),
	)

	return lookup.NewAggregator(definitions, synonyms, translator, cfg.DefaultSources, logger), nil
}

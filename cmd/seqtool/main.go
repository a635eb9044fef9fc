package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"go.ytsaurus.tech/library/go/collection/internal/app"
	"go.ytsaurus.tech/library/go/core/log"
	"go.ytsaurus.tech/library/go/core/xerrors"
)

var (
	flagConfigPath string
	flagInput      string
	flagLogLevel   string
	flagFormat     string
	flagStart      int
	flagEnd        int
)

var rootCmd = &cobra.Command{
	Use:   "seqtool",
	Short: "Sort, shuffle, reverse and slice ranges of YSON lists",
	Example: `
  # sort the first three elements by absolute value in descending order
  echo '[3; -7; 1; -2]' | seqtool sort --end 3 --key abs --desc

  # reproducibly shuffle a file
  seqtool shuffle --input list.yson --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to the yaml or toml config")
	rootCmd.PersistentFlags().StringVarP(&flagInput, "input", "i", "", "path to the input YSON list, stdin if empty")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level, overrides config")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "", "output format (text, binary), overrides config")
	rootCmd.PersistentFlags().IntVar(&flagStart, "start", 0, "first index of the range")
	rootCmd.PersistentFlags().IntVar(&flagEnd, "end", -1, "index past the end of the range, -1 for the list end")
}

// env is what every command needs to run.
type env struct {
	l      log.Logger
	app    *app.App
	values []any
}

func setup(cmd *cobra.Command) (*env, error) {
	config, err := app.LoadConfig(flagConfigPath)
	if err != nil {
		return nil, err
	}
	if flagLogLevel != "" {
		config.LogLevel = flagLogLevel
	}
	if flagFormat != "" {
		config.Format = flagFormat
		if err := config.Validate(); err != nil {
			return nil, err
		}
	}
	if seed, err := cmd.Flags().GetInt64("seed"); err == nil && cmd.Flags().Changed("seed") {
		config.Seed = &seed
	}

	l, err := app.NewLogger(config.LogLevel)
	if err != nil {
		return nil, err
	}

	var in io.Reader = os.Stdin
	if flagInput != "" {
		f, err := os.Open(flagInput)
		if err != nil {
			return nil, xerrors.Errorf("failed to open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	values, err := app.ReadList(in)
	if err != nil {
		return nil, err
	}
	l.Debug("input read", log.String("input", flagInput), log.Int("length", len(values)))

	return &env{l: l, app: app.NewApp(l, config), values: values}, nil
}

func (e *env) write(v any) error {
	config := e.app.Config()
	return app.WriteValue(os.Stdout, v, config.YSONFormat())
}

func selectedRange() app.Range {
	return app.Range{Start: flagStart, End: flagEnd}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

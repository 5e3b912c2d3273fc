// Package cli implements the jsontag command.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sirkon/jsontag/internal/annotator"
	"github.com/sirkon/jsontag/internal/config"
	"github.com/sirkon/jsontag/internal/report"
)

const (
	ConfigFlagName  = "config"
	KeyFlagName     = "key"
	LevelFlagName   = "loglevel"
	SummaryFlagName = "summary"
)

// Execute runs the command and exits with code 1 on error.
func Execute() {
	cmd := New()
	if err := cmd.Execute(); err != nil {
		logError(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func logError(w io.Writer, err error) {
	slog.New(slog.NewTextHandler(w, nil)).Error("jsontag failed", slog.String("err", err.Error()))
}

// New creates the jsontag command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jsontag [file]",
		Short: "Add json tags to struct fields",
		Long: `jsontag reads a Go source file with struct definitions and prints it to the
standard output with a json tag added to every field line.

The file defaults to the "input" value of the config, which defaults to types.go.
Field lines already having a tag get the json key appended into it, other field
lines get a new tag placed before a trailing comment.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	registerFlags(cmd.Flags())

	return cmd
}

func registerFlags(flags *pflag.FlagSet) {
	flags.String(ConfigFlagName, "", fmt.Sprintf("config file, %s is used if present", config.DefaultFile))
	flags.String(KeyFlagName, "", "tag key, overrides the config one")
	flags.String(LevelFlagName, slog.LevelWarn.String(), "logging level: debug, info, warn or error")
	flags.Bool(SummaryFlagName, false, "print processed lines to stderr, outcomes are set with the summary config value")
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	input := cfg.Input
	if len(args) > 0 {
		input = args[0]
	}
	logger.Debug("rewrite", slog.String("input", input))

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	a := annotator.New(cfg.Options()...)
	logger.Debug("annotator", slog.String("key", a.Key()), slog.Any("guards", a.Guards()))

	src := string(data)
	res := a.Document(src)

	var rep report.Reporter
	rep.Document(input, strings.Split(src, "\n"), res)
	rep.Log(logger)

	summary, err := cmd.Flags().GetBool(SummaryFlagName)
	if err != nil {
		return fmt.Errorf("get summary flag: %w", err)
	}
	if summary {
		if err := rep.PrintSummary(cmd.ErrOrStderr(), cfg.Summary...); err != nil {
			return fmt.Errorf("print summary: %w", err)
		}
	}

	if _, err := io.WriteString(cmd.OutOrStdout(), res.Text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString(ConfigFlagName)
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cmd.Flags().Changed(KeyFlagName) {
		key, err := cmd.Flags().GetString(KeyFlagName)
		if err != nil {
			return nil, fmt.Errorf("get key flag: %w", err)
		}
		cfg.Key = key
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("check key flag: %w", err)
		}
	}

	return cfg, nil
}

func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	raw, err := cmd.Flags().GetString(LevelFlagName)
	if err != nil {
		return nil, fmt.Errorf("get log level flag: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})), nil
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/rgonek/guide-block-parser/blockparser"
	"github.com/rgonek/guide-block-parser/internal/logging"
)

type app struct {
	v          *viper.Viper
	configFile string
	cfg        cliConfig
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	setDefaults(a.v)

	rootCmd := &cobra.Command{
		Use:   "guideparse",
		Short: "Parse tagged reading guides into typed content blocks",
		Long: `guideparse turns guide text with [TAG]...[/TAG] markers into an ordered
tree of typed content blocks.

Examples:
  guideparse parse guide.txt
  guideparse parse --format yaml --preset flat guide.txt
  cat guide.txt | guideparse audit
  guideparse preview guide.txt
  guideparse serve --addr :8080`,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.v, a.configFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Config file (default ./guideparse.yaml)")
	flags.String("preset", presetBalanced, "Preset: balanced|flat|lenient")
	flags.String("layout", "", "Output layout: sections|flat")
	flags.String("unknown-tags", "", "Unknown tag handling: skip|text")
	flags.Int("wpm", 0, "Words per minute for reading time")
	flags.StringP("format", "f", formatJSON, "Output format: json|yaml")
	flags.String("log-level", "info", "Log level: debug|info|warn|error")
	flags.String("log-format", "text", "Log format: text|json")

	_ = a.v.BindPFlag("preset", flags.Lookup("preset"))
	_ = a.v.BindPFlag("layout", flags.Lookup("layout"))
	_ = a.v.BindPFlag("unknown_tags", flags.Lookup("unknown-tags"))
	_ = a.v.BindPFlag("words_per_minute", flags.Lookup("wpm"))
	_ = a.v.BindPFlag("format", flags.Lookup("format"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))

	rootCmd.AddCommand(
		newParseCmd(a),
		newAuditCmd(a),
		newAssetsCmd(a),
		newPreviewCmd(a),
		newServeCmd(a),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) logger(w io.Writer) (*slog.Logger, error) {
	logger, err := logging.New(a.cfg.Log.Level, a.cfg.Log.Format, w)
	if err != nil {
		return nil, fmt.Errorf("invalid logging config: %w", err)
	}
	return logger, nil
}

func (a *app) newParser(logger *slog.Logger) (*blockparser.Parser, error) {
	cfg, err := resolveParserConfig(a.cfg)
	if err != nil {
		return nil, err
	}
	cfg.Logger = logger

	p, err := blockparser.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid parser config: %w", err)
	}
	return p, nil
}

// parse reads the input named by args and parses it with a logger writing
// to the command's error stream.
func (a *app) parse(cmd *cobra.Command, args []string) (blockparser.Result, error) {
	logger, err := a.logger(cmd.ErrOrStderr())
	if err != nil {
		return blockparser.Result{}, err
	}
	p, err := a.newParser(logger)
	if err != nil {
		return blockparser.Result{}, err
	}
	text, err := readInput(cmd, args)
	if err != nil {
		return blockparser.Result{}, err
	}

	result := p.Parse(text)
	for _, w := range result.Warnings {
		logger.Debug("parse warning", "type", w.Type, "tag", w.Tag, "line", w.Line, "message", w.Message)
	}
	return result, nil
}

// readInput reads the file named by the first argument, or stdin when no
// argument or "-" is given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}

func (a *app) write(cmd *cobra.Command, v any) error {
	out := cmd.OutOrStdout()
	switch a.cfg.Format {
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
}

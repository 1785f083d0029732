package main

import (
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/rgonek/guide-block-parser/assets"
	"github.com/rgonek/guide-block-parser/audit"
	"github.com/rgonek/guide-block-parser/internal/api"
	"github.com/rgonek/guide-block-parser/render"
)

var errAuditFailed = errors.New("guide did not pass the quality audit")

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a guide and print its block tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.parse(cmd, args)
			if err != nil {
				return err
			}
			return a.write(cmd, result)
		},
	}
}

func newAuditCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit [file]",
		Short: "Score a guide against the quality checklist",
		Long: `Score a guide against the quality checklist. The command exits with a
non-zero status when the score is below the passing threshold.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.parse(cmd, args)
			if err != nil {
				return err
			}
			report := audit.Run(result, audit.Config{MinWords: a.cfg.Audit.MinWords})
			if err := a.write(cmd, report); err != nil {
				return err
			}
			if !report.Passed {
				return fmt.Errorf("%w: score %.1f%%, need %.0f%%", errAuditFailed, report.Score, audit.PassingScore)
			}
			return nil
		},
	}
	cmd.Flags().Int("min-words", 0, "Minimum word count")
	_ = a.v.BindPFlag("audit.min_words", cmd.Flags().Lookup("min-words"))
	return cmd
}

func newAssetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "assets [file]",
		Short: "List external image URLs referenced by a guide",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.parse(cmd, args)
			if err != nil {
				return err
			}
			for _, url := range assets.Collect(result.Sections) {
				fmt.Fprintln(cmd.OutOrStdout(), url)
			}
			return nil
		},
	}
}

func newPreviewCmd(a *app) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Render a parsed guide as styled markdown in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.parse(cmd, args)
			if err != nil {
				return err
			}
			md := render.Markdown(result.Sections)
			if raw || strings.TrimSpace(md) == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(a.cfg.Preview.Width),
			)
			if err != nil {
				return fmt.Errorf("failed to create terminal renderer: %w", err)
			}
			out, err := renderer.Render(md)
			if err != nil {
				return fmt.Errorf("failed to render preview: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print markdown without terminal styling")
	cmd.Flags().Int("width", 80, "Word wrap width")
	_ = a.v.BindPFlag("preview.width", cmd.Flags().Lookup("width"))
	return cmd
}

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the parser over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			parser, err := a.newParser(logger)
			if err != nil {
				return err
			}

			srv := api.NewServer(parser, render.NewRenderer(render.NewCache(a.cfg.Render.CacheSize)), logger, api.Config{
				MaxBodyBytes:  a.cfg.Server.MaxBodyBytes,
				AuditMinWords: a.cfg.Audit.MinWords,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx, a.cfg.Server.Addr)
		},
	}
	cmd.Flags().String("addr", ":8080", "Listen address")
	cmd.Flags().Int64("max-body-bytes", 4<<20, "Maximum request body size")
	cmd.Flags().Int("cache-size", 256, "Render cache entries")
	_ = a.v.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	_ = a.v.BindPFlag("server.max_body_bytes", cmd.Flags().Lookup("max-body-bytes"))
	_ = a.v.BindPFlag("render.cache_size", cmd.Flags().Lookup("cache-size"))
	return cmd
}

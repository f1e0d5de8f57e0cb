// Package cli implements the smr command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/orgball2608/social-media-reader/internal/app"
	"github.com/orgball2608/social-media-reader/internal/reader"
	"github.com/orgball2608/social-media-reader/pkg/config"
	apperrors "github.com/orgball2608/social-media-reader/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// Version is set at build time via ldflags.
var Version = "dev"

type flags struct {
	paste      bool
	noVision   bool
	imagesOnly bool
	summarize  bool
	deep       bool
	videoFile  string
	prompt     string
	json       bool
	markdown   bool
	keepFiles  bool
	configPath string
	debug      bool
}

// ReaderFactory builds a reader for one invocation. The returned func releases it.
type ReaderFactory func(ctx context.Context, cfg *config.Config, debug bool) (reader.Client, func(), error)

// NewRootCommand wires the smr command tree around newReader.
func NewRootCommand(newReader ReaderFactory) *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "smr [url]",
		Short: "Read media and text from social media posts",
		Long: `smr extracts images, text and video content from Instagram, LinkedIn and video
platform posts and optionally describes them with a vision model.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f, newReader)
		},
	}

	fl := root.Flags()
	fl.BoolVar(&f.paste, "paste", false, "Read post text from stdin instead of fetching a URL")
	fl.BoolVar(&f.noVision, "no-vision", false, "Skip vision analysis")
	fl.BoolVar(&f.imagesOnly, "images-only", false, "Print image references only")
	fl.BoolVar(&f.summarize, "summarize", false, "Fall back to the summarize tool when scraping is blocked")
	fl.BoolVar(&f.deep, "deep", false, "Download videos for frame analysis and transcription")
	fl.StringVar(&f.videoFile, "video-file", "", "Analyze a local video file")
	fl.StringVarP(&f.prompt, "prompt", "p", "", "Custom prompt for the vision model")
	fl.BoolVarP(&f.json, "json", "j", false, "Output the result as JSON")
	fl.BoolVar(&f.markdown, "markdown", false, "Output Telegram MarkdownV2")
	fl.BoolVar(&f.keepFiles, "keep-files", false, "Keep downloaded media and frames")
	fl.StringVarP(&f.configPath, "config", "c", "", "Path to a TOML config file")
	fl.BoolVarP(&f.debug, "debug", "x", false, "Debug logging to stderr")
	root.MarkFlagsMutuallyExclusive("paste", "video-file")
	root.MarkFlagsMutuallyExclusive("json", "markdown")

	root.AddCommand(newVersionCommand(), newEnvCommand())
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "smr %s\n", Version)
		},
	}
}

func newEnvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List supported environment variables and their defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := config.Description()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), desc)
			return nil
		},
	}
}

// Execute runs smr with the process arguments and returns the exit code.
func Execute() int {
	root := NewRootCommand(FxReader)
	if err := root.ExecuteContext(context.Background()); err != nil {
		PrintError(root.ErrOrStderr(), err)
		return 1
	}
	return 0
}

// PrintError writes the failure and, when one is known, the next step to try.
func PrintError(w io.Writer, err error) {
	label, hint := "error: ", apperrors.Remedy(err)
	switch {
	case apperrors.IsExtractionFailure(err):
		label = "extraction failed: "
	case apperrors.IsAnalysisFailure(err):
		label = "analysis failed: "
		if hint == "" {
			hint = "the extraction above is complete; rerun with --no-vision to skip image analysis"
		}
	}

	red := color.New(color.FgRed, color.Bold)
	red.Fprint(w, label)
	fmt.Fprintln(w, err)
	if hint != "" {
		color.New(color.FgYellow).Fprint(w, "hint: ")
		fmt.Fprintln(w, hint)
	}
}

// FxReader starts a short-lived fx application and hands out its reader.
func FxReader(ctx context.Context, cfg *config.Config, debug bool) (reader.Client, func(), error) {
	var r reader.Client
	fxApp := fx.New(
		fx.Supply(cfg),
		app.Module,
		app.EventLogger(debug),
		fx.Populate(&r),
	)
	if err := fxApp.Start(ctx); err != nil {
		return nil, nil, fmt.Errorf("starting application: %w", err)
	}

	release := func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := fxApp.Stop(stopCtx); err != nil {
			fmt.Fprintf(os.Stderr, "stopping application: %v\n", err)
		}
	}
	return r, release, nil
}

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/orgball2608/social-media-reader/internal/domain"
	"github.com/orgball2608/social-media-reader/internal/reader"
	"github.com/orgball2608/social-media-reader/pkg/config"
	apperrors "github.com/orgball2608/social-media-reader/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// maxPasteBytes bounds what --paste reads from stdin.
const maxPasteBytes = 1 << 20

func run(cmd *cobra.Command, args []string, f *flags, newReader ReaderFactory) error {
	if len(args) == 0 && !f.paste && f.videoFile == "" {
		return apperrors.NewWithCode(apperrors.CodeInvalidInput, "a URL, --paste or --video-file is required")
	}
	if len(args) > 0 && (f.paste || f.videoFile != "") {
		return apperrors.NewWithCode(apperrors.CodeInvalidInput, "a URL cannot be combined with --paste or --video-file")
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if f.debug {
		cfg.App.LogLevel = "debug"
	}

	ctx := cmd.Context()
	rd, release, err := newReader(ctx, cfg, f.debug)
	if err != nil {
		return err
	}
	defer release()

	opts := reader.Options{
		Analyze:    !f.noVision,
		ImagesOnly: f.imagesOnly,
		Prompt:     f.prompt,
		Summarize:  f.summarize,
		Deep:       f.deep,
	}

	var res *domain.Result
	switch {
	case f.videoFile != "":
		res, err = rd.ProcessVideoFile(ctx, f.videoFile, opts)
	case f.paste:
		var text string
		text, err = readPaste(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		res, err = rd.ProcessPaste(ctx, text, opts)
	default:
		res, err = rd.ProcessURL(ctx, args[0], opts)
	}

	if dir := workDir(res); dir != "" {
		if f.keepFiles {
			fmt.Fprintf(cmd.ErrOrStderr(), "files kept in %s\n", dir)
		} else {
			defer os.RemoveAll(dir)
		}
	}

	// An analysis failure still leaves a usable extraction worth printing.
	if err != nil && !(apperrors.IsAnalysisFailure(err) && res != nil && res.Extraction != nil) {
		return err
	}
	if rerr := render(cmd.OutOrStdout(), res, outputFormat(f), f.imagesOnly); rerr != nil {
		return rerr
	}
	return err
}

func workDir(res *domain.Result) string {
	if res == nil || res.Extraction == nil {
		return ""
	}
	return res.Extraction.WorkDir
}

// readPaste reads stdin to EOF, prompting only when a person is typing.
func readPaste(in io.Reader, prompt io.Writer) (string, error) {
	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		fmt.Fprintln(prompt, "Paste the post text, then press Ctrl-D:")
	}

	raw, err := io.ReadAll(io.LimitReader(in, maxPasteBytes))
	if err != nil {
		return "", apperrors.WrapWithCode(err, apperrors.CodeInvalidInput, "read pasted text")
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return "", apperrors.NewWithCode(apperrors.CodeInvalidInput, "no text was pasted")
	}
	return text, nil
}

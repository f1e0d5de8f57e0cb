// Package ytdlp drives the yt-dlp command line tool.
package ytdlp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/orgball2608/social-media-reader/internal/command"
	"github.com/orgball2608/social-media-reader/internal/video"
	"github.com/orgball2608/social-media-reader/pkg/config"
	apperrors "github.com/orgball2608/social-media-reader/pkg/errors"
	"github.com/orgball2608/social-media-reader/pkg/logger"
	"go.uber.org/fx"
)

const (
	maxDescription = 1000
	outputTemplate = "%(title).50s.%(ext)s"
)

type info struct {
	Extractor      string  `json:"extractor"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Uploader       string  `json:"uploader"`
	UploaderURL    string  `json:"uploader_url"`
	Duration       float64 `json:"duration"`
	DurationString string  `json:"duration_string"`
	ViewCount      int64   `json:"view_count"`
	LikeCount      int64   `json:"like_count"`
	UploadDate     string  `json:"upload_date"`
	WebpageURL     string  `json:"webpage_url"`
	Thumbnail      string  `json:"thumbnail"`
	Thumbnails     []struct {
		URL string `json:"url"`
	} `json:"thumbnails"`
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
	Runner command.Runner
}

type Client struct {
	bin     string
	cookies string
	format  string
	runner  command.Runner
	logger  logger.Logger
}

func New(opts Opts) *Client {
	return &Client{
		bin:     opts.Config.Video.YtDlpBin,
		cookies: opts.Config.Video.Cookies,
		format:  opts.Config.Video.Format,
		runner:  opts.Runner,
		logger:  opts.Logger.WithComponent("yt-dlp"),
	}
}

var _ video.Downloader = (*Client)(nil)

func (c *Client) Metadata(ctx context.Context, url string) (*video.Metadata, error) {
	args := append(c.baseArgs(), "--dump-single-json", "--skip-download", url)

	out, err := c.runner.Run(ctx, c.bin, args...)
	if err != nil {
		return nil, downloadError(err, "could not read video metadata")
	}

	var i info
	if err := json.Unmarshal(out.Stdout, &i); err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeDownloadFailed, "yt-dlp returned unreadable metadata")
	}

	meta := &video.Metadata{
		Extractor:      i.Extractor,
		Title:          i.Title,
		Description:    truncate(i.Description, maxDescription),
		Uploader:       i.Uploader,
		UploaderURL:    i.UploaderURL,
		Duration:       i.Duration,
		DurationString: i.DurationString,
		ViewCount:      i.ViewCount,
		LikeCount:      i.LikeCount,
		UploadDate:     i.UploadDate,
		WebpageURL:     i.WebpageURL,
		Thumbnail:      i.Thumbnail,
	}
	for _, t := range i.Thumbnails {
		if t.URL != "" {
			meta.Thumbnails = append(meta.Thumbnails, t.URL)
		}
	}

	c.logger.Debug("Read video metadata", "extractor", meta.Extractor, "duration", meta.Duration)
	return meta, nil
}

func (c *Client) Download(ctx context.Context, url, dir string) (string, error) {
	args := append(c.baseArgs(),
		"--no-progress",
		"-f", c.format,
		"-o", filepath.Join(dir, outputTemplate),
		"--print", "after_move:filepath",
		url,
	)

	out, err := c.runner.Run(ctx, c.bin, args...)
	if err != nil {
		return "", downloadError(err, "video download failed")
	}

	if path := lastLine(string(out.Stdout)); path != "" {
		return path, nil
	}

	// Older yt-dlp builds ignore --print with after_move.
	path, err := newestFile(dir)
	if err != nil {
		return "", apperrors.WrapWithCode(err, apperrors.CodeDownloadFailed, "downloaded file not found")
	}
	return path, nil
}

func (c *Client) baseArgs() []string {
	args := []string{"--no-warnings", "--no-playlist"}
	if c.cookies != "" {
		args = append(args, "--cookies", c.cookies)
	}
	return args
}

func downloadError(err error, msg string) error {
	if apperrors.HasCode(err, apperrors.CodeToolUnavailable) {
		return err
	}
	return apperrors.WrapWithCode(err, apperrors.CodeDownloadFailed, msg)
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

func newestFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	type candidate struct {
		path string
		mod  int64
	}
	var files []candidate
	for _, e := range entries {
		if e.IsDir() || strings.HasSuffix(e.Name(), ".part") {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, candidate{filepath.Join(dir, e.Name()), fi.ModTime().UnixNano()})
	}
	if len(files) == 0 {
		return "", os.ErrNotExist
	}

	sort.Slice(files, func(i, j int) bool { return files[i].mod > files[j].mod })
	return files[0].path, nil
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

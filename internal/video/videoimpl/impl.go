package videoimpl

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/orgball2608/social-media-reader/internal/detect"
	"github.com/orgball2608/social-media-reader/internal/domain"
	"github.com/orgball2608/social-media-reader/internal/tags"
	"github.com/orgball2608/social-media-reader/internal/video"
	"github.com/orgball2608/social-media-reader/pkg/config"
	apperrors "github.com/orgball2608/social-media-reader/pkg/errors"
	"github.com/orgball2608/social-media-reader/pkg/logger"
	"go.uber.org/fx"
)

// minAudioBytes is the size below which a WAV file is treated as silent.
const minAudioBytes = 1000

type Opts struct {
	fx.In

	Config     *config.Config
	Logger     logger.Logger
	Downloader video.Downloader
	Media      video.MediaProcessor
	Local      video.Transcriber `name:"local"`
	Remote     video.Transcriber `name:"remote" optional:"true"`
}

type VideoImpl struct {
	downloader video.Downloader
	media      video.MediaProcessor
	local      video.Transcriber
	remote     video.Transcriber
	cfg        *config.Config
	logger     logger.Logger
}

func New(opts Opts) *VideoImpl {
	return &VideoImpl{
		downloader: opts.Downloader,
		media:      opts.Media,
		local:      opts.Local,
		remote:     opts.Remote,
		cfg:        opts.Config,
		logger:     opts.Logger.WithComponent("video"),
	}
}

var _ video.Client = (*VideoImpl)(nil)

func (v *VideoImpl) ProcessVideo(ctx context.Context, url string, deep bool) (*domain.ExtractionResult, error) {
	meta, err := v.downloader.Metadata(ctx, url)
	if err != nil {
		return nil, err
	}

	res := &domain.ExtractionResult{
		Platform:  detect.Detect(url),
		SourceURL: url,
		Method:    domain.MethodYtDlp,
		Images:    []string{},
		Text: domain.PostText{
			Author:   meta.Uploader,
			Headline: meta.Title,
			Body:     meta.Description,
			Hashtags: tags.Hashtags(meta.Description),
			Mentions: tags.Mentions(meta.Description),
		},
		Metadata: metadataMap(meta),
	}
	if thumb := meta.BestThumbnail(); thumb != "" {
		res.Images = append(res.Images, thumb)
	}

	if !deep {
		return res, nil
	}

	workDir, err := v.newWorkDir()
	if err != nil {
		return nil, err
	}
	res.WorkDir = workDir

	path, err := v.downloader.Download(ctx, url, workDir)
	if err != nil {
		return res, err
	}
	v.logger.Info("Downloaded video", "path", path)

	v.analyzeFile(ctx, path, workDir, meta.Duration, res)
	return res, nil
}

func (v *VideoImpl) ProcessVideoFile(ctx context.Context, path string) (*domain.ExtractionResult, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeInvalidInput, "video file not readable")
	}
	if fi.IsDir() {
		return nil, apperrors.NewWithCode(apperrors.CodeInvalidInput, path+" is a directory")
	}

	workDir, err := v.newWorkDir()
	if err != nil {
		return nil, err
	}

	res := &domain.ExtractionResult{
		Platform: domain.PlatformUnknown,
		Method:   domain.MethodFile,
		Images:   []string{},
		Metadata: map[string]any{
			domain.MetaVideoFile: path,
			domain.MetaTitle:     filepath.Base(path),
		},
		WorkDir: workDir,
	}

	v.analyzeFile(ctx, path, workDir, 0, res)
	return res, nil
}

// analyzeFile fills frames and transcript. Each step is best effort: a failure is
// logged and the remaining steps still run.
func (v *VideoImpl) analyzeFile(ctx context.Context, path, workDir string, knownDuration float64, res *domain.ExtractionResult) {
	duration := knownDuration
	if duration <= 0 {
		d, err := v.media.Duration(ctx, path)
		if err != nil {
			v.logger.Warn("Could not probe duration", "error", err)
		}
		duration = d
	}
	if duration > 0 {
		res.Metadata[domain.MetaDuration] = duration
	}

	interval := video.FrameInterval(duration, v.cfg.Video.FrameInterval, v.cfg.Video.MaxFrames)
	frames, err := v.media.ExtractFrames(ctx, path, filepath.Join(workDir, "frames"), interval, v.cfg.Video.MaxFrames)
	if err != nil {
		v.logger.Warn("Frame extraction failed", "error", err)
	}
	res.Metadata[domain.MetaFrameCount] = len(frames)
	res.Frames = video.SampleEvenly(frames, v.cfg.Video.AnalyzeFrames)

	audio, err := v.media.ExtractAudio(ctx, path, workDir)
	if err != nil {
		v.logger.Warn("Audio extraction failed", "error", err)
		return
	}
	res.Transcript = v.transcribe(ctx, audio)
}

func (v *VideoImpl) transcribe(ctx context.Context, audio string) string {
	fi, err := os.Stat(audio)
	if err != nil || fi.Size() < minAudioBytes {
		return video.SilentTranscript
	}

	if v.local != nil {
		text, err := v.local.Transcribe(ctx, audio)
		if err == nil && text != "" {
			return text
		}
		v.logger.Info("Local transcription unavailable, falling back to remote", "error", err)
	}

	if v.remote == nil {
		return ""
	}
	text, err := v.remote.Transcribe(ctx, audio)
	if err != nil {
		v.logger.Warn("Remote transcription failed", "error", err)
		return ""
	}
	return text
}

func (v *VideoImpl) newWorkDir() (string, error) {
	base := v.cfg.App.WorkDir
	if base == "" {
		base = os.TempDir()
	}
	dir := filepath.Join(base, "smr-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", apperrors.Wrap(err, "create work directory")
	}
	return dir, nil
}

func metadataMap(m *video.Metadata) map[string]any {
	out := map[string]any{
		domain.MetaExtractor:  m.Extractor,
		domain.MetaTitle:      m.Title,
		domain.MetaUploader:   m.Uploader,
		domain.MetaWebpageURL: m.WebpageURL,
	}
	if m.Description != "" {
		out[domain.MetaDescription] = m.Description
	}
	if m.UploaderURL != "" {
		out[domain.MetaUploaderURL] = m.UploaderURL
	}
	if m.Duration > 0 {
		out[domain.MetaDuration] = m.Duration
	}
	if m.DurationString != "" {
		out[domain.MetaDurationText] = m.DurationString
	}
	if m.ViewCount > 0 {
		out[domain.MetaViewCount] = m.ViewCount
	}
	if m.LikeCount > 0 {
		out[domain.MetaLikeCount] = m.LikeCount
	}
	if m.UploadDate != "" {
		out[domain.MetaUploadDate] = m.UploadDate
	}
	if thumb := m.BestThumbnail(); thumb != "" {
		out[domain.MetaThumbnail] = thumb
	}
	return out
}

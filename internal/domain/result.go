package domain

// Extraction methods recorded on a result.
const (
	MethodEmbed     = "embed"
	MethodOEmbed    = "oembed"
	MethodOpenGraph = "opengraph"
	MethodPaste     = "paste"
	MethodYtDlp     = "yt-dlp"
	MethodFile      = "file"
	MethodSummarize = "summarize"
)

// PostText holds the optional text fields shared by every extractor.
type PostText struct {
	Author   string   `json:"author,omitempty"`
	Headline string   `json:"headline,omitempty"`
	Body     string   `json:"body,omitempty"`
	Hashtags []string `json:"hashtags,omitempty"`
	Mentions []string `json:"mentions,omitempty"`
}

func (t PostText) Empty() bool {
	return t.Author == "" && t.Headline == "" && t.Body == "" && len(t.Hashtags) == 0
}

// ExtractionResult is produced once per extraction call and not mutated by consumers.
// Image URLs are signed and short-lived, so results are not worth caching.
type ExtractionResult struct {
	Platform  Platform       `json:"platform"`
	SourceURL string         `json:"source_url,omitempty"`
	Method    string         `json:"method,omitempty"`
	Images    []string       `json:"images"`
	Text      PostText       `json:"text"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	// Transcript is set by the video pipeline when audio was transcribed.
	Transcript string `json:"transcript,omitempty"`
	// Frames are local frame paths picked for analysis.
	Frames []string `json:"frames,omitempty"`
	// WorkDir holds downloaded media; the caller removes it.
	WorkDir string `json:"work_dir,omitempty"`
}

// IsCarousel reports whether the result holds more than one image.
func (r *ExtractionResult) IsCarousel() bool {
	if v, ok := r.Metadata[MetaIsCarousel].(bool); ok && v {
		return true
	}
	return len(r.Images) > 1
}

// ImagesOnly returns a copy stripped of every text and metadata field.
func (r *ExtractionResult) ImagesOnly() *ExtractionResult {
	return &ExtractionResult{
		Platform:  r.Platform,
		SourceURL: r.SourceURL,
		Method:    r.Method,
		Images:    append([]string(nil), r.Images...),
		WorkDir:   r.WorkDir,
	}
}

// AnalysisImages lists what should be sent to the vision model: frames when present, images otherwise.
func (r *ExtractionResult) AnalysisImages() []string {
	if len(r.Frames) > 0 {
		return r.Frames
	}
	return r.Images
}

// AnalysisResult is free text returned by the vision model.
type AnalysisResult struct {
	Text       string `json:"text"`
	Prompt     string `json:"prompt"`
	ImageCount int    `json:"image_count"`
}

// Result pairs an extraction with its optional analysis.
type Result struct {
	Extraction *ExtractionResult `json:"extraction"`
	Analysis   *AnalysisResult   `json:"analysis,omitempty"`
	// Warnings are non-fatal notes such as a skipped analysis.
	Warnings []string `json:"warnings,omitempty"`
}

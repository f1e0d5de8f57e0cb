package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/mitchellh/go-homedir"
)

const (
	// EnvConfigPath names the variable that points at an explicit config file.
	EnvConfigPath = "SMR_CONFIG"

	defaultConfigPath = "~/.config/social-media-reader/config.toml"
)

// OpenClawPaths are searched, in order, for a Gemini key when GEMINI_API_KEY is unset.
var OpenClawPaths = []string{
	"~/.openclaw/openclaw.json",
	"/data/.openclaw/openclaw.json",
}

type Config struct {
	App struct {
		Env       string `toml:"env" env:"APP_ENV" env-default:"development" env-description:"runtime environment (development, production)"`
		LogLevel  string `toml:"log_level" env:"LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error" env-description:"minimum log level"`
		SentryDSN string `toml:"sentry_dsn" env:"SENTRY_DSN" env-description:"sentry DSN; errors are reported when set"`
		WorkDir   string `toml:"work_dir" env:"SMR_WORK_DIR" env-description:"parent directory for video work dirs (default: system temp)"`
	} `toml:"app"`
	HTTP struct {
		Timeout time.Duration `toml:"timeout" env:"HTTP_TIMEOUT" env-default:"30s" validate:"gt=0" env-description:"timeout for page and oEmbed requests"`
	} `toml:"http"`
	Instagram struct {
		BaseURL   string `toml:"base_url" env:"INSTAGRAM_BASE_URL" env-default:"https://www.instagram.com" validate:"url" env-description:"instagram origin used to build embed URLs"`
		UserAgent string `toml:"user_agent" env:"INSTAGRAM_USER_AGENT" env-default:"curl/7.0" env-description:"client identity sent to the embed endpoint"`
	} `toml:"instagram"`
	LinkedIn struct {
		OEmbedURL          string `toml:"oembed_url" env:"LINKEDIN_OEMBED_URL" env-default:"https://www.linkedin.com/oembed" validate:"url" env-description:"linkedin oEmbed endpoint"`
		OpenGraphUserAgent string `toml:"opengraph_user_agent" env:"LINKEDIN_OG_USER_AGENT" env-default:"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)" env-description:"user agent for the OpenGraph fallback"`
		AuthorMaxLen       int    `toml:"author_max_len" env:"LINKEDIN_AUTHOR_MAX_LEN" env-default:"60" validate:"gt=0" env-description:"longest first line treated as an author name"`
		HeadlineMaxLen     int    `toml:"headline_max_len" env:"LINKEDIN_HEADLINE_MAX_LEN" env-default:"150" validate:"gt=0" env-description:"longest second line treated as a headline"`
	} `toml:"linkedin"`
	Video struct {
		YtDlpBin      string        `toml:"ytdlp_bin" env:"YTDLP_BIN" env-default:"yt-dlp" env-description:"yt-dlp executable"`
		Cookies       string        `toml:"cookies" env:"YTDLP_COOKIES" env-description:"netscape cookies file passed to yt-dlp"`
		Format        string        `toml:"format" env:"YTDLP_FORMAT" env-default:"best[filesize<100M]/best" env-description:"yt-dlp format selector"`
		FFmpegBin     string        `toml:"ffmpeg_bin" env:"FFMPEG_BIN" env-default:"ffmpeg" env-description:"ffmpeg executable"`
		FFprobeBin    string        `toml:"ffprobe_bin" env:"FFPROBE_BIN" env-default:"ffprobe" env-description:"ffprobe executable"`
		WhisperBin    string        `toml:"whisper_bin" env:"WHISPER_BIN" env-default:"whisper" env-description:"local whisper executable"`
		WhisperModel  string        `toml:"whisper_model" env:"WHISPER_MODEL" env-default:"base" env-description:"local whisper model"`
		WhisperLang   string        `toml:"whisper_language" env:"WHISPER_LANGUAGE" env-description:"force a transcription language"`
		FrameInterval time.Duration `toml:"frame_interval" env:"VIDEO_FRAME_INTERVAL" env-default:"5s" validate:"gt=0" env-description:"base spacing between extracted frames"`
		MaxFrames     int           `toml:"max_frames" env:"VIDEO_MAX_FRAMES" env-default:"20" validate:"gte=1" env-description:"upper bound on extracted frames"`
		AnalyzeFrames int           `toml:"analyze_frames" env:"VIDEO_ANALYZE_FRAMES" env-default:"8" validate:"gte=1" env-description:"frames sent to the vision model"`
	} `toml:"video"`
	Vision struct {
		APIKey      string        `toml:"api_key" env:"GEMINI_API_KEY" env-description:"gemini API key; analysis is skipped when empty"`
		BaseURL     string        `toml:"base_url" env:"GEMINI_BASE_URL" env-default:"https://generativelanguage.googleapis.com/" validate:"url" env-description:"gemini API origin"`
		APIVersion  string        `toml:"api_version" env:"GEMINI_API_VERSION" env-default:"v1beta" env-description:"gemini API version"`
		Model       string        `toml:"model" env:"GEMINI_MODEL" env-default:"gemini-2.0-flash" env-description:"model for image analysis"`
		AudioModel  string        `toml:"audio_model" env:"GEMINI_AUDIO_MODEL" env-default:"gemini-2.0-flash" env-description:"model for audio transcription"`
		Timeout     time.Duration `toml:"timeout" env:"VISION_TIMEOUT" env-default:"120s" validate:"gt=0" env-description:"per-request timeout"`
		MaxAttempts uint64        `toml:"max_attempts" env:"VISION_MAX_ATTEMPTS" env-default:"3" validate:"gte=1" env-description:"attempts on rate limiting, first call included"`
		BaseDelay   time.Duration `toml:"base_delay" env:"VISION_BASE_DELAY" env-default:"2s" validate:"gt=0" env-description:"first backoff delay"`
		MaxDelay    time.Duration `toml:"max_delay" env:"VISION_MAX_DELAY" env-default:"30s" validate:"gt=0" env-description:"backoff delay cap"`
		MaxImages   int           `toml:"max_images" env:"VISION_MAX_IMAGES" env-default:"10" validate:"gte=1" env-description:"carousel images sent per request"`
	} `toml:"vision"`
	Summarize struct {
		Bin     string        `toml:"bin" env:"SUMMARIZE_BIN" env-default:"summarize" env-description:"generic text extraction tool"`
		Timeout time.Duration `toml:"timeout" env:"SUMMARIZE_TIMEOUT" env-default:"60s" validate:"gt=0" env-description:"summarize run timeout"`
	} `toml:"summarize"`
}

type openClawFile struct {
	Models struct {
		Providers struct {
			Gemini struct {
				APIKey string `json:"apiKey"`
			} `json:"gemini"`
		} `json:"providers"`
	} `json:"models"`
}

// Load builds the configuration from defaults, an optional TOML file and the environment.
// An empty path falls back to SMR_CONFIG and then the per-user default location.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	file, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	if file != "" {
		err = cleanenv.ReadConfig(file, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		help, _ := cleanenv.GetDescription(cfg, nil)
		return nil, fmt.Errorf("failed to read configuration: %w\n%s", err, help)
	}

	if cfg.Vision.APIKey == "" {
		cfg.Vision.APIKey = openClawKey(OpenClawPaths)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Description lists every supported variable with its default.
func Description() (string, error) {
	return cleanenv.GetDescription(&Config{}, nil)
}

func resolvePath(path string) (string, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigPath)
		explicit = path != ""
	}
	if !explicit {
		path = defaultConfigPath
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expand config path %q: %w", path, err)
	}

	if _, err := os.Stat(expanded); err != nil {
		if explicit {
			return "", fmt.Errorf("config file %q: %w", expanded, err)
		}
		return "", nil
	}

	return filepath.Clean(expanded), nil
}

func openClawKey(paths []string) string {
	for _, p := range paths {
		expanded, err := homedir.Expand(p)
		if err != nil {
			continue
		}
		if _, err := os.Stat(expanded); err != nil {
			continue
		}

		var f openClawFile
		if err := cleanenv.ReadConfig(expanded, &f); err != nil {
			continue
		}
		if key := f.Models.Providers.Gemini.APIKey; key != "" {
			return key
		}
	}
	return ""
}

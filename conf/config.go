package conf

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
)

const (
	envConfigPath = "LOVEBRIDGE_CONFIG"
)

type Config struct {
	Http      Http      `toml:"http"`
	Redis     *Redis    `toml:"redis"`
	Auth      Auth      `toml:"auth"`
	Logging   Logging   `toml:"logging"`
	Speech    Speech    `toml:"speech"`
	Translate Translate `toml:"translate"`
	Heuristic Heuristic `toml:"heuristic"`
	Filter    Filter    `toml:"filter"`
	Usage     Usage     `toml:"usage"`
}

type Http struct {
	ListenAddress          string `toml:"listen_address"`
	MaxRequestBodySizeInMb int64  `toml:"max_request_body_size_in_mb"`
	CorsAllowOrigin        string `toml:"cors_allow_origin"`
}

type Redis struct {
	Address  string `toml:"address"`
	Username string `toml:"username"`
	Password string `toml:"password"`
}

type Auth struct {
	// Disabled turns off the caller secret check for the speech and
	// translate endpoints. The admin endpoint is always authenticated.
	Disabled bool `toml:"disabled"`
}

type Logging struct {
	LogLevel         string `toml:"log_level"`
	RequestLogEnable bool   `toml:"request_log_enable"`
}

type Speech struct {
	RequestsPerMinute    int    `toml:"requests_per_minute"`
	RequestsPerDay       int64  `toml:"requests_per_day"`
	PrimaryModel         string `toml:"primary_model"`
	PrimaryBaseUrl       string `toml:"primary_base_url"`
	SecondaryUrl         string `toml:"secondary_url"`
	UpstreamTimeoutInSec int    `toml:"upstream_timeout_in_sec"`
}

type Translate struct {
	RequestsPerMinute    int    `toml:"requests_per_minute"`
	RequestsPerDay       int64  `toml:"requests_per_day"`
	MaxTextLength        int    `toml:"max_text_length"`
	Model                string `toml:"model"`
	BaseUrl              string `toml:"base_url"`
	UpstreamTimeoutInSec int    `toml:"upstream_timeout_in_sec"`
}

type Heuristic struct {
	MediumLengthThreshold int      `toml:"medium_length_threshold"`
	LongLengthThreshold   int      `toml:"long_length_threshold"`
	SampleStride          int      `toml:"sample_stride"`
	ShortPhrases          []string `toml:"short_phrases"`
	MediumPhrases         []string `toml:"medium_phrases"`
	LongPhrases           []string `toml:"long_phrases"`
	DefaultPhrase         string   `toml:"default_phrase"`
}

type Filter struct {
	DenyPatterns []string `toml:"deny_patterns"`
}

type Usage struct {
	TranslationCost   float64 `toml:"translation_cost"`
	SpeechRequestCost float64 `toml:"speech_request_cost"`
}

func Default() Config {
	return Config{
		Http: Http{
			ListenAddress:          ":8080",
			MaxRequestBodySizeInMb: 8,
			CorsAllowOrigin:        "*",
		},
		Logging: Logging{
			LogLevel:         "info",
			RequestLogEnable: false,
		},
		Speech: Speech{
			RequestsPerMinute:    5,
			RequestsPerDay:       50,
			PrimaryModel:         "whisper-1",
			SecondaryUrl:         "https://api-inference.huggingface.co/models/openai/whisper-large-v3",
			UpstreamTimeoutInSec: 30,
		},
		Translate: Translate{
			RequestsPerMinute:    10,
			RequestsPerDay:       500,
			MaxTextLength:        500,
			Model:                "openai/gpt-4o-mini",
			BaseUrl:              "https://openrouter.ai/api/v1",
			UpstreamTimeoutInSec: 30,
		},
		Heuristic: Heuristic{
			MediumLengthThreshold: 30000,
			LongLengthThreshold:   80000,
			SampleStride:          1000,
			ShortPhrases: []string{
				"Hello!",
				"I love you",
				"好可愛",
				"ありがとう",
			},
			MediumPhrases: []string{
				"I was thinking about you today",
				"今日は本当にいい天気ですね",
				"我哋今晚食咩好呀?",
				"Can't wait to see you later",
			},
			LongPhrases: []string{
				"I just wanted to tell you how much today meant to me, thank you for everything",
				"今日一緒に過ごせて本当に楽しかった、また明日も会えるのが楽しみだよ",
				"我真係好開心可以同你一齊,希望我哋可以一直咁樣落去",
			},
			DefaultPhrase: "I couldn't quite catch that, could you say it again?",
		},
		Filter: Filter{
			DenyPatterns: []string{
				"hack",
				"exploit",
				"api key",
				"token",
				"password",
			},
		},
		Usage: Usage{
			TranslationCost:   0.0001,
			SpeechRequestCost: 0.001,
		},
	}
}

// Read returns the default configuration overridden by the TOML file at
// path. An empty path falls back to the LOVEBRIDGE_CONFIG environment
// variable; if neither is set the defaults are used as is.
func Read(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(envConfigPath)
	}
	if path != "" {
		_, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, errors.WithMessagef(err, "decode config file %s", path)
		}
	}

	err := cfg.Validate()
	if err != nil {
		return Config{}, errors.WithMessage(err, "invalid config")
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Http.ListenAddress == "" {
		return errors.New("http.listen_address is required")
	}
	if c.Http.MaxRequestBodySizeInMb <= 0 {
		return errors.New("http.max_request_body_size_in_mb must be positive")
	}
	if c.Redis != nil && c.Redis.Address == "" {
		return errors.New("redis.address is required when the redis section is present")
	}
	if c.Speech.RequestsPerMinute <= 0 || c.Speech.RequestsPerDay <= 0 {
		return errors.New("speech limits must be positive")
	}
	if c.Translate.RequestsPerMinute <= 0 || c.Translate.RequestsPerDay <= 0 {
		return errors.New("translate limits must be positive")
	}
	if c.Translate.MaxTextLength <= 0 {
		return errors.New("translate.max_text_length must be positive")
	}
	if c.Heuristic.MediumLengthThreshold <= 0 ||
		c.Heuristic.LongLengthThreshold <= c.Heuristic.MediumLengthThreshold {
		return errors.New("heuristic thresholds must be positive and increasing")
	}
	if c.Heuristic.DefaultPhrase == "" {
		return errors.New("heuristic.default_phrase is required")
	}
	_, err := c.Logging.Level()
	if err != nil {
		return err
	}
	return nil
}

func (l Logging) Level() (log.Level, error) {
	switch l.LogLevel {
	case "debug":
		return log.DebugLevel, nil
	case "info", "":
		return log.InfoLevel, nil
	case "error":
		return log.ErrorLevel, nil
	case "fatal":
		return log.FatalLevel, nil
	default:
		return 0, errors.Errorf("unknown log level '%s'", l.LogLevel)
	}
}

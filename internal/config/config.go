package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"MotivationGenerator/internal/llm"
	"MotivationGenerator/internal/ratelimit"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderMock   = "mock"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Logging   LoggingConfig   `yaml:"logging"`
	LLM       LLMConfig       `yaml:"llm"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	RoutePrefix     string        `yaml:"route_prefix"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type StorageConfig struct {
	DataDir string `yaml:"data_dir"`
}

type LoggingConfig struct {
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"`
}

type LLMConfig struct {
	Provider     string        `yaml:"provider"` // openai, gemini, mock
	APIKey       string        `yaml:"api_key"`
	GeminiAPIKey string        `yaml:"gemini_api_key"`
	BaseURL      string        `yaml:"base_url"`
	Model        string        `yaml:"model"`
	Temperature  float64       `yaml:"temperature"`
	MaxTokens    int           `yaml:"max_tokens"`
	Timeout      time.Duration `yaml:"timeout"`
	StartupCheck bool          `yaml:"startup_check"`
}

type RateLimitConfig struct {
	Interval        time.Duration `yaml:"interval"`
	IPRatePerSecond float64       `yaml:"ip_rate_per_second"`
	IPBurst         int           `yaml:"ip_burst"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			RoutePrefix:     "/motivation",
			ShutdownTimeout: 10 * time.Second,
		},
		Storage: StorageConfig{DataDir: "Inputs_Outputs"},
		Logging: LoggingConfig{Dir: "logs", Level: "info"},
		LLM: LLMConfig{
			Provider:    ProviderOpenAI,
			BaseURL:     llm.DefaultBaseURL,
			Model:       llm.DefaultModel,
			Temperature: llm.DefaultTemperature,
			MaxTokens:   llm.DefaultMaxTokens,
			Timeout:     llm.DefaultTimeout,
		},
		RateLimit: RateLimitConfig{
			Interval:        ratelimit.DefaultInterval,
			IPRatePerSecond: 5,
			IPBurst:         20,
		},
	}
}

// Load layers defaults, an optional YAML file, .env and the environment, in
// that order. path falls back to MOTIVATION_CONFIG.
func Load(path string) (*Config, error) {
	// .env는 없어도 됨, 이미 설정된 환경변수는 덮어쓰지 않음
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		path = os.Getenv("MOTIVATION_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var errs []error

	setString(&c.Server.Host, "HOST")
	errs = append(errs, setInt(&c.Server.Port, "PORT"))
	setString(&c.Server.RoutePrefix, "ROUTE_PREFIX")

	setString(&c.Storage.DataDir, "DATA_DIR")
	setString(&c.Logging.Dir, "LOG_DIR")
	setString(&c.Logging.Level, "LOG_LEVEL")

	setString(&c.LLM.Provider, "LLM_PROVIDER")
	setString(&c.LLM.APIKey, "OPENAI_API_KEY")
	setString(&c.LLM.GeminiAPIKey, "GEMINI_API_KEY")
	setString(&c.LLM.BaseURL, "OPENAI_BASE_URL")
	setString(&c.LLM.Model, "LLM_MODEL")
	errs = append(errs,
		setFloat(&c.LLM.Temperature, "LLM_TEMPERATURE"),
		setInt(&c.LLM.MaxTokens, "LLM_MAX_TOKENS"),
		setDuration(&c.LLM.Timeout, "LLM_TIMEOUT"),
		setBool(&c.LLM.StartupCheck, "LLM_STARTUP_CHECK"),
		setDuration(&c.RateLimit.Interval, "RATE_INTERVAL"),
		setFloat(&c.RateLimit.IPRatePerSecond, "IP_RATE_PER_SECOND"),
		setInt(&c.RateLimit.IPBurst, "IP_RATE_BURST"),
	)
	return errors.Join(errs...)
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Server.Port))
	}
	if c.RateLimit.Interval <= 0 {
		errs = append(errs, errors.New("rate limit interval must be positive"))
	}
	if c.Storage.DataDir == "" {
		errs = append(errs, errors.New("data dir must be set"))
	}
	switch c.LLM.Provider {
	case ProviderOpenAI:
		if c.LLM.APIKey == "" {
			errs = append(errs, errors.New("OPENAI_API_KEY is required for the openai provider"))
		}
	case ProviderGemini:
		if c.LLM.GeminiAPIKey == "" {
			errs = append(errs, errors.New("GEMINI_API_KEY is required for the gemini provider"))
		}
	case ProviderMock:
	default:
		errs = append(errs, fmt.Errorf("unknown LLM provider %q", c.LLM.Provider))
	}
	return errors.Join(errs...)
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func setFloat(dst *float64, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}

func setBool(dst *bool, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes":
		*dst = true
	case "0", "false", "no":
		*dst = false
	default:
		return fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return nil
}

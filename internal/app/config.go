package app

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config contains runtime configuration derived from the environment and an
// optional techdaily.yaml config file.
type Config struct {
	OpenAIKey  string `mapstructure:"openai_key"`
	NewsAPIKey string `mapstructure:"news_api_key"`

	// SiteDir is the git working tree the generated site lives in.
	SiteDir string `mapstructure:"site_dir"`

	Remote string `mapstructure:"remote"`
	Branch string `mapstructure:"branch"`

	AuthorName  string `mapstructure:"author_name"`
	AuthorEmail string `mapstructure:"author_email"`

	Model            string  `mapstructure:"model"`
	StyleProbability float64 `mapstructure:"style_probability"`
	IndexSize        int     `mapstructure:"index_size"`

	// Base URLs are overridable so tests can point clients at local servers.
	NewsBaseURL   string `mapstructure:"news_base_url"`
	OpenAIBaseURL string `mapstructure:"openai_base_url"`
}

// LoadConfig resolves configuration once at startup: defaults, then an
// optional config file, then TECHDAILY_-prefixed environment variables. The
// two API secrets keep their conventional unprefixed names.
func LoadConfig(cfgFile string) (Config, error) {
	v := viper.New()

	v.SetDefault("openai_key", "")
	v.SetDefault("news_api_key", "")
	v.SetDefault("site_dir", ".")
	v.SetDefault("remote", "origin")
	v.SetDefault("branch", "main")
	v.SetDefault("author_name", "TechDaily Bot")
	v.SetDefault("author_email", "bot@techdaily.example")
	v.SetDefault("model", "gpt-3.5-turbo")
	v.SetDefault("style_probability", 0.2)
	v.SetDefault("index_size", 10)
	v.SetDefault("news_base_url", "https://newsapi.org/v2")
	v.SetDefault("openai_base_url", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("techdaily")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("TECHDAILY")
	v.AutomaticEnv()
	_ = v.BindEnv("openai_key", "OPENAI_API_KEY")
	_ = v.BindEnv("news_api_key", "NEWS_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		// a missing config file is fine unless one was named explicitly
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgFile != "" {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	abs, err := filepath.Abs(cfg.SiteDir)
	if err != nil {
		return Config{}, fmt.Errorf("resolve site dir: %w", err)
	}
	cfg.SiteDir = abs

	return cfg, nil
}

// ValidateForRun checks the values the full pipeline depends on.
func (c Config) ValidateForRun() error {
	if c.OpenAIKey == "" {
		return fmt.Errorf("missing OPENAI_API_KEY environment variable")
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cheng762/coin-search/common"
)

// Config holds all configuration for coin-search
type Config struct {
	Server    ServerConfig
	CoinGecko CoinGeckoConfig
	Display   DisplayConfig
	Logging   LoggingConfig
}

// ServerConfig holds web server configuration
type ServerConfig struct {
	Port string
}

// CoinGeckoConfig holds market data provider configuration
type CoinGeckoConfig struct {
	BaseURL   string
	APIKey    string
	UserAgent string
}

// DisplayConfig holds number formatting configuration
type DisplayConfig struct {
	Locale string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// EnvPrefix 环境变量前缀，例如 COINSEARCH_COINGECKO_APIKEY
const EnvPrefix = "COINSEARCH"

// LoadConfig 读取默认值、可选的配置文件和环境变量。path 为空时只用默认值和环境变量。
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 检查 locale 和日志级别
func (c *Config) Validate() error {
	if _, err := common.ParseLocale(c.Display.Locale); err != nil {
		return fmt.Errorf("invalid display.locale %q: %w", c.Display.Locale, err)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	return nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")

	v.SetDefault("coingecko.baseURL", "https://api.coingecko.com/api/v3")
	v.SetDefault("coingecko.apiKey", "")
	v.SetDefault("coingecko.userAgent", "coin-search/1.0")

	v.SetDefault("display.locale", "en-US")

	v.SetDefault("logging.level", "info")
}

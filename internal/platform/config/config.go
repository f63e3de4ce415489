package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config es la configuración del proceso. Cada key se puede pisar por env
// con el mismo nombre en mayúsculas (db_dsn => DB_DSN).
type Config struct {
	Port      string `mapstructure:"port"`
	DBDSN     string `mapstructure:"db_dsn"`
	DBMigrate bool   `mapstructure:"db_migrate"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	AppName   string `mapstructure:"app_name"`

	TelegramBotToken string        `mapstructure:"telegram_bot_token"`
	TelegramAPIURL   string        `mapstructure:"telegram_api_url"`
	TelegramTimeout  time.Duration `mapstructure:"telegram_timeout"`

	NotifyWorkers   int           `mapstructure:"notify_workers"`
	NotifyQueueSize int           `mapstructure:"notify_queue_size"`
	NotifyTimeout   time.Duration `mapstructure:"notify_timeout"`

	TracingExporter string `mapstructure:"tracing_exporter"` // none | stdout | otlp
	TracingEndpoint string `mapstructure:"tracing_endpoint"`
}

// ConfigFileEnv apunta a un archivo opcional (yaml, json, toml).
const ConfigFileEnv = "SHELTER_CONFIG"

var keys = []string{
	"port", "db_dsn", "db_migrate",
	"log_level", "log_format", "app_name",
	"telegram_bot_token", "telegram_api_url", "telegram_timeout",
	"notify_workers", "notify_queue_size", "notify_timeout",
	"tracing_exporter", "tracing_endpoint",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("db_dsn", "")
	v.SetDefault("db_migrate", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("app_name", "pet-shelter")
	v.SetDefault("telegram_bot_token", "")
	v.SetDefault("telegram_api_url", "https://api.telegram.org")
	v.SetDefault("telegram_timeout", 5*time.Second)
	v.SetDefault("notify_workers", 4)
	v.SetDefault("notify_queue_size", 256)
	v.SetDefault("notify_timeout", 10*time.Second)
	v.SetDefault("tracing_exporter", "none")
	v.SetDefault("tracing_endpoint", "localhost:4317")
}

// Load lee defaults, el archivo de SHELTER_CONFIG (si está) y env.
func Load() (Config, error) {
	return LoadFile(os.Getenv(ConfigFileEnv))
}

// LoadFile es Load con un path explícito; path vacío => solo defaults y env.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AutomaticEnv()
	for _, k := range keys {
		if err := v.BindEnv(k, strings.ToUpper(k)); err != nil {
			return Config{}, fmt.Errorf("config: bind %s: %w", k, err)
		}
	}

	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.NotifyWorkers <= 0 {
		return fmt.Errorf("config: notify_workers must be > 0")
	}
	if c.NotifyQueueSize < 0 {
		return fmt.Errorf("config: notify_queue_size must be >= 0")
	}
	switch strings.ToLower(c.TracingExporter) {
	case "", "none", "stdout", "otlp":
	default:
		return fmt.Errorf("config: unknown tracing_exporter %q", c.TracingExporter)
	}
	return nil
}

// Addr devuelve ":PORT".
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}

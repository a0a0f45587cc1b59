package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	Kafka      KafkaConfig      `yaml:"kafka"`
	Auth       AuthConfig       `yaml:"auth"`
	Media      MediaConfig      `yaml:"media"`
	Logger     LoggerSettings   `yaml:"logger"`
	Pagination PaginationConfig `yaml:"pagination"`
}

type HTTPConfig struct {
	Address        string   `yaml:"address" validate:"required"`
	SwaggerDir     string   `yaml:"swagger_dir"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required,min=1,max=65535"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Name     string `yaml:"name" validate:"required"`
	SSLMode  string `yaml:"ssl_mode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	// WaitAttempts bounds the wait-for-db loop.
	WaitAttempts int `yaml:"wait_attempts"`
}

func (d DatabaseConfig) DSN() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, sslMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	// ListTTLSeconds is the lifetime of cached reference list pages.
	ListTTLSeconds int `yaml:"list_ttl_seconds"`
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	OrdersTopic        string   `yaml:"orders_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" validate:"required,min=16"`
	Issuer    string `yaml:"issuer"`
}

type MediaConfig struct {
	Root        string `yaml:"root" validate:"required"`
	URLPrefix   string `yaml:"url_prefix"`
	MaxUploadMB int    `yaml:"max_upload_mb" validate:"min=0,max=100"`
}

type PaginationConfig struct {
	DefaultLimit int `yaml:"default_limit" validate:"min=0"`
	MaxLimit     int `yaml:"max_limit" validate:"min=0"`
}

// LoadConfig reads a YAML file, expanding ${VAR} references from the
// environment, then applies defaults and validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Pagination.DefaultLimit == 0 {
		c.Pagination.DefaultLimit = 10
	}
	if c.Pagination.MaxLimit == 0 {
		c.Pagination.MaxLimit = 100
	}
	if c.Media.URLPrefix == "" {
		c.Media.URLPrefix = "/media/"
	}
	if c.Media.MaxUploadMB == 0 {
		c.Media.MaxUploadMB = 5
	}
	if c.Redis.ListTTLSeconds == 0 {
		c.Redis.ListTTLSeconds = 60
	}
	if c.Database.WaitAttempts == 0 {
		c.Database.WaitAttempts = 30
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = LogLevelInfo
	}
	if c.Logger.LogType == "" {
		c.Logger.LogType = LogTypeConsole
	}
}

// Validate checks struct tags and the cross-field rules of every section.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Pagination.DefaultLimit > c.Pagination.MaxLimit {
		return fmt.Errorf("invalid config: pagination default_limit %d exceeds max_limit %d", c.Pagination.DefaultLimit, c.Pagination.MaxLimit)
	}
	if c.Kafka.Enabled() && c.Kafka.OrdersTopic == "" {
		return fmt.Errorf("invalid config: kafka orders_topic is required when brokers are set")
	}
	return c.Logger.Validate()
}

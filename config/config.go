package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

type ServerConfig struct {
	Environment string `mapstructure:"environment"`
}

type ProbeConfig struct {
	Timeout     string `mapstructure:"timeout"`
	MaxAttempts int    `mapstructure:"max_attempts"`
	RetryDelay  string `mapstructure:"retry_delay"`
}

type EndpointConfig struct {
	Name string `mapstructure:"name"`
	URL  string `mapstructure:"url"`
}

type PersistConfig struct {
	Key  string `mapstructure:"key"`
	File string `mapstructure:"file"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Server    ServerConfig     `mapstructure:"server"`
	Probe     ProbeConfig      `mapstructure:"probe"`
	Endpoints []EndpointConfig `mapstructure:"endpoints"`
	Persist   PersistConfig    `mapstructure:"persist"`
	Priority  []string         `mapstructure:"priority"`
	Logging   LoggingConfig    `mapstructure:"logging"`
}

func Load() (*Config, error) {
	viper.SetDefault("server.environment", EnvDev)
	viper.SetDefault("probe.timeout", "5s")
	viper.SetDefault("probe.max_attempts", 5)
	viper.SetDefault("probe.retry_delay", "3s")
	viper.SetDefault("endpoints", []map[string]any{
		{"name": "backend", "url": "http://backend:8000/"},
		{"name": "htx_backend", "url": "http://htx_backend:8000/"},
		{"name": "localhost", "url": "http://localhost:8000/"},
		{"name": "0.0.0.0", "url": "http://0.0.0.0:8000/"},
	})
	viper.SetDefault("persist.key", "REACT_APP_BACKEND_URL")
	viper.SetDefault("persist.file", ".env")
	viper.SetDefault("priority", []string{"0.0.0.0", "htx_backend", "backend", "localhost"})
	viper.SetDefault("logging.level", LogLevelInfo)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Error("failed to read config file", slog.String("error", err.Error()))
			return nil, err
		}
		slog.Info("config file not found, using defaults and environment variables")
	} else {
		slog.Info("loaded config file", slog.String("file", viper.ConfigFileUsed()))
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		slog.Error("failed to unmarshal config", slog.String("error", err.Error()))
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Server,
			validation.Required,
			validation.By(func(value interface{}) error {
				sc, ok := value.(ServerConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a ServerConfig")
				}
				return validation.ValidateStruct(&sc,
					validation.Field(&sc.Environment,
						validation.Required,
						validation.In(EnvDev, EnvStaging, EnvProd),
					),
				)
			}),
		),
		validation.Field(&c.Logging,
			validation.Required,
			validation.By(func(value interface{}) error {
				lc, ok := value.(LoggingConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a LoggingConfig")
				}
				return validation.ValidateStruct(&lc,
					validation.Field(&lc.Level,
						validation.Required,
						validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError),
					),
				)
			}),
		),
		validation.Field(&c.Probe,
			validation.Required,
			validation.By(func(value interface{}) error {
				pc, ok := value.(ProbeConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a ProbeConfig")
				}
				return validation.ValidateStruct(&pc,
					validation.Field(&pc.Timeout,
						validation.Required,
						validation.By(validateDuration),
					),
					validation.Field(&pc.RetryDelay,
						validation.Required,
						validation.By(validateDuration),
					),
					validation.Field(&pc.MaxAttempts,
						validation.Required,
						validation.Min(1),
					),
				)
			}),
		),
		validation.Field(&c.Endpoints,
			validation.Required,
			validation.Length(1, 0),
			validation.Each(validation.By(validateEndpointConfig)),
			validation.By(validateUniqueNames),
		),
		validation.Field(&c.Persist,
			validation.Required,
			validation.By(func(value interface{}) error {
				pc, ok := value.(PersistConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a PersistConfig")
				}
				return validation.ValidateStruct(&pc,
					validation.Field(&pc.Key, validation.Required),
					validation.Field(&pc.File, validation.Required),
				)
			}),
		),
		validation.Field(&c.Priority,
			validation.Each(validation.Required),
		),
	)
}

func validateDuration(value interface{}) error {
	durationStr, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	if _, err := time.ParseDuration(durationStr); err != nil {
		return validation.NewError("validation_invalid_duration", "must be a valid duration (e.g., 2s, 5m, 1h)")
	}

	return nil
}

func validateEndpointConfig(value interface{}) error {
	ep, ok := value.(EndpointConfig)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be an EndpointConfig")
	}

	if ep.Name == "" {
		return validation.NewError("validation_empty_name", "endpoint name cannot be empty")
	}

	if ep.URL == "" {
		return validation.NewError("validation_empty_url", "endpoint URL cannot be empty")
	}

	parsedURL, err := url.Parse(ep.URL)
	if err != nil {
		return validation.NewError("validation_invalid_url", "must be a valid URL")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return validation.NewError("validation_invalid_scheme", "URL must use http or https scheme")
	}

	if parsedURL.Host == "" {
		return validation.NewError("validation_missing_host", "URL must have a host")
	}

	return nil
}

func validateUniqueNames(value interface{}) error {
	endpoints, ok := value.([]EndpointConfig)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a list of EndpointConfig")
	}

	seen := make(map[string]struct{}, len(endpoints))
	for _, ep := range endpoints {
		if _, dup := seen[ep.Name]; dup {
			return validation.NewError("validation_duplicate_name",
				fmt.Sprintf("duplicate endpoint name %q", ep.Name))
		}
		seen[ep.Name] = struct{}{}
	}

	return nil
}

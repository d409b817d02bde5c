package config

import (
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	MaxHyperperiod        int
	LogLevel              string
	LogFormat             string
	TracingExporter       string
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once. A missing file falls back to
// defaults; a malformed one does too, after logging the error.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		cfg, err := Load("")
		if err != nil {
			slog.Error("failed to read config, using defaults", "error", err)
		}
		config = cfg
	})

	return config
}

// Load reads the config file at path, or config.yaml from the working
// directory when path is empty. SCHEDSIM_* environment variables override
// file values. The returned config is always usable.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.periodic.max_hyperperiod", 1_000_000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("tracing.exporter", "none")

	v.SetEnvPrefix("schedsim")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}

	var readErr error
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			readErr = err
		}
	}

	cfg := &SchedulerConfig{}
	cfg.Port = v.GetInt("port")
	cfg.RoundRobinTimeQuantum = v.GetInt("scheduler.round_robin.time_quantum")
	cfg.MaxHyperperiod = v.GetInt("scheduler.periodic.max_hyperperiod")
	cfg.LogLevel = v.GetString("log.level")
	cfg.LogFormat = v.GetString("log.format")
	cfg.TracingExporter = v.GetString("tracing.exporter")
	if cfg.RoundRobinTimeQuantum <= 0 {
		cfg.RoundRobinTimeQuantum = 2
	}
	if cfg.MaxHyperperiod <= 0 {
		cfg.MaxHyperperiod = 1_000_000
	}

	return cfg, readErr
}

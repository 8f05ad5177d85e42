package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default names of the environment variables holding the provider key,
// in lookup order.
var DefaultAPIKeyEnvs = []string{"NEXT_PUBLIC_OPENAI_API_KEY", "OPENAI_API_KEY"}

type Config struct {
	// File is the config file that was read, empty when none was found.
	File   string
	Server ServerConfig
	LLM    LLMConfig
	Client ClientConfig
	Batch  BatchConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

type LLMConfig struct {
	Model       string
	BaseURL     string
	Temperature float64
	// APIKeyEnvs lists the environment variables consulted for the
	// provider key. The first non-empty one wins.
	APIKeyEnvs []string
}

type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type BatchConfig struct {
	Concurrency int
}

type LoggerConfig struct {
	Level string
	Env   string
	// Output is "stdout" or "stderr".
	Output string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "20s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.body_limit", 1024*1024)
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.api_key_envs", DefaultAPIKeyEnvs)
	v.SetDefault("client.base_url", "http://localhost:8090")
	v.SetDefault("client.timeout", "0s")
	v.SetDefault("batch.concurrency", 2)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.output", "stdout")
}

// LoadConfig reads config.yaml (optional), .env (optional) and the process
// environment. Nested keys map to upper-case env names, e.g. LLM_MODEL.
func LoadConfig() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("logger.env", "LOGGER_ENV", "ENV")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			BodyLimit:    v.GetInt("server.body_limit"),
		},
		LLM: LLMConfig{
			Model:       v.GetString("llm.model"),
			BaseURL:     v.GetString("llm.base_url"),
			Temperature: v.GetFloat64("llm.temperature"),
			APIKeyEnvs:  splitList(v.GetStringSlice("llm.api_key_envs")),
		},
		Client: ClientConfig{
			BaseURL: strings.TrimRight(v.GetString("client.base_url"), "/"),
			Timeout: v.GetDuration("client.timeout"),
		},
		Batch: BatchConfig{
			Concurrency: v.GetInt("batch.concurrency"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("logger.level"),
			Env:    v.GetString("logger.env"),
			Output: v.GetString("logger.output"),
		},
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		cfg.File, _ = filepath.Abs(configFile)
	}

	if len(cfg.LLM.APIKeyEnvs) == 0 {
		cfg.LLM.APIKeyEnvs = DefaultAPIKeyEnvs
	}

	return cfg, nil
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

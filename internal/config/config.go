package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	// PrintGame has no env-default: cleanenv would apply it over an explicit false.
	PrintGame bool    `yaml:"print-game" env:"PRINT_GAME"`
	Players   Players `yaml:"players"`
	Redis     Redis   `yaml:"redis"`
}

// Players selects who sits in each seat: "bot" or "human".
type Players struct {
	X string `yaml:"x" env:"PLAYER_X" env-default:"bot"`
	O string `yaml:"o" env:"PLAYER_O" env-default:"human"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"0s"`
}

// MustLoad - load all configurations, panics on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads the config file at path with environment overrides.
// A missing file is not an error: the environment and defaults are used instead.
func Load(path string) (*Config, error) {
	config := &Config{PrintGame: true}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

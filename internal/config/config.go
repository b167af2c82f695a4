package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ResultsDriverNone   = "none"
	ResultsDriverRedis  = "redis"
	ResultsDriverSQLite = "sqlite"
)

var (
	ErrInvalidBoardWidth    = errors.New("board width must be positive")
	ErrUnknownResultsDriver = errors.New("unknown results driver")
)

type Config struct {
	LogLevel   string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	BoardWidth int     `yaml:"board-width" env:"BOARD_WIDTH" env-default:"3"`
	Rules      string  `yaml:"rules" env:"RULES" env-default:"standard"`
	Results    Results `yaml:"results"`
	Redis      Redis   `yaml:"redis"`
}

// Results selects where finished games are recorded. The default keeps no history.
type Results struct {
	Driver     string `yaml:"driver" env:"RESULTS_DRIVER" env-default:"none"`
	SQLitePath string `yaml:"sqlite-path" env:"RESULTS_SQLITE_PATH" env-default:"results.db"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - loads config.yml at path, or only the environment when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if fileExists(path) {
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) validate() error {
	if that.BoardWidth <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBoardWidth, that.BoardWidth)
	}

	switch that.Results.Driver {
	case ResultsDriverNone, ResultsDriverRedis, ResultsDriverSQLite:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownResultsDriver, that.Results.Driver)
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}

	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}

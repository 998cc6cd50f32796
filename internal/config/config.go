package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var ErrInvalidBotMark = errors.New("bot mark must be X or O")

type Config struct {
	LogLevel   string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string  `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Redis      Redis   `yaml:"redis"`
	Session    Session `yaml:"session"`
	Bot        Bot     `yaml:"bot"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Session struct {
	TTL time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"1h"`
}

type Bot struct {
	// Mark - the computer's mark unless a game asks for another one.
	Mark string `yaml:"mark" env:"BOT_MARK" env-default:"O"`
	// MoveDelay - pause before the terminal front end reveals the computer's move.
	MoveDelay time.Duration `yaml:"move-delay" env:"BOT_MOVE_DELAY" env-default:"220ms"`
}

// MustLoad - load all configurations in config.yml file, environment only when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}

		if !config.Bot.ComputerMark().IsPlayer() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidBotMark, config.Bot.Mark)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if !config.Bot.ComputerMark().IsPlayer() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBotMark, config.Bot.Mark)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Bot) ComputerMark() tictactoe.Mark {
	return tictactoe.Mark(that.Mark)
}

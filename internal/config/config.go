package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// PathEnv - overrides the location of config.yml.
const PathEnv = "TICTACTOE_CONFIG"

const (
	ModeTUI     = "tui"
	ModeServer  = "server"
	ModeRecords = "records"
)

const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel       string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode           string        `yaml:"mode" env:"MODE" env-default:"tui"`
	BoardSize      int           `yaml:"board-size" env:"BOARD_SIZE" env-default:"3"`
	PlayerOne      string        `yaml:"player-one" env:"PLAYER_ONE" env-default:""`
	PlayerTwo      string        `yaml:"player-two" env:"PLAYER_TWO" env-default:""`
	AutoRestart    bool          `yaml:"auto-restart" env:"AUTO_RESTART"`
	EventLogPath   string        `yaml:"event-log-path" env:"EVENT_LOG_PATH" env-default:"tictactoe.log"`
	SnapshotPath   string        `yaml:"snapshot-path" env:"SNAPSHOT_PATH" env-default:"snapshots.txt"`
	PersistTimeout time.Duration `yaml:"persist-timeout" env:"PERSIST_TIMEOUT" env-default:"5s"`
	HTTPPort       string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort     string        `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Records        Records       `yaml:"records" env-prefix:"RECORDS_"`
	Redis          Redis         `yaml:"redis" env-prefix:"REDIS_"`
	Postgres       Postgres      `yaml:"postgres" env-prefix:"POSTGRES_"`
}

type Records struct {
	Backend    string `yaml:"backend" env:"BACKEND" env-default:"file"`
	FilePath   string `yaml:"file-path" env:"FILE_PATH" env-default:"records.csv"`
	SQLitePath string `yaml:"sqlite-path" env:"SQLITE_PATH" env-default:"records.db"`
	Top        int    `yaml:"top" env:"TOP" env-default:"10"`
}

type Redis struct {
	Host string `yaml:"host" env:"HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"PORT" env-default:"6379"`
}

type Postgres struct {
	Host     string `yaml:"host" env:"HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"PORT" env-default:"5432"`
	User     string `yaml:"user" env:"USER" env-default:"postgres"`
	Password string `yaml:"password" env:"PASSWORD" env-default:"postgres"`
	Database string `yaml:"database" env:"DATABASE" env-default:"postgres"`
	SSLMode  string `yaml:"ssl-mode" env:"SSL_MODE" env-default:"disable"`
}

// MustLoad - load all configurations in the config file, or from the environment when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	// cleanenv replaces zero values with env-default, so a default of true is set up front.
	config := &Config{AutoRestart: true}

	if override := os.Getenv(PathEnv); override != "" {
		path = override
	}

	var err error
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}

	if err != nil {
		return nil, err
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if err := entity.ValidateSize(that.BoardSize); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	switch that.Mode {
	case ModeTUI, ModeServer, ModeRecords:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, that.Mode)
	}

	switch that.Records.Backend {
	case BackendFile, BackendRedis, BackendSQLite, BackendPostgres:
	default:
		return fmt.Errorf("%w: unknown records backend %q", ErrInvalidConfig, that.Records.Backend)
	}

	if that.PersistTimeout <= 0 {
		return fmt.Errorf("%w: persist-timeout must be positive", ErrInvalidConfig)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		that.User, that.Password, that.Host, that.Port, that.Database, that.SSLMode)
}

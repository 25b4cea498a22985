package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-RoomOccupancy/internal/domain"
)

// Типы источников данных расписания
const (
	SourcePostgres = "postgres"
	SourceRemote   = "remote"
	SourceSQLDump  = "sqldump"
)

// DefaultMaxViewport предельная сторона плана этажа в пикселях
const DefaultMaxViewport = 4096

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Database  DatabaseConfig  `toml:"database"`
	Source    SourceConfig    `toml:"source"`
	Cache     CacheConfig     `toml:"cache"`
	Session   SessionConfig   `toml:"session"`
	Floorplan FloorplanConfig `toml:"floorplan"`
	Floors    []FloorConfig   `toml:"floors"`
}

// ServerConfig параметры HTTP-сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
	StaticDir       string `toml:"static_dir"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig подключение к реляционному хранилищу расписания
// Driver: "postgres" (lib/pq) или "pgx"
type DatabaseConfig struct {
	Driver          string `toml:"driver"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// SourceConfig откуда загружается набор данных
type SourceConfig struct {
	Kind          string `toml:"kind"`
	DumpFile      string `toml:"dump_file"`
	RemoteURL     string `toml:"remote_url"`
	RemoteToken   string `toml:"remote_token"`
	RemoteTimeout int    `toml:"remote_timeout"`
	RemoteRetries int    `toml:"remote_retries"`
}

// CacheConfig кэш набора данных в Redis (TTL в секундах)
type CacheConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Key      string `toml:"key"`
	TTL      int    `toml:"ttl"`
}

// SessionConfig проверка сессии, выданной провайдером входа
type SessionConfig struct {
	Enabled    bool   `toml:"enabled"`
	CookieName string `toml:"cookie_name"`
	Secret     string `toml:"secret"`
	LoginURL   string `toml:"login_url"`
}

// FloorplanConfig изображения этажей
// MaxViewport ограничивает запрошенную ширину и высоту плана в пикселях
type FloorplanConfig struct {
	ImagesDir   string `toml:"images_dir"`
	URLPrefix   string `toml:"url_prefix"`
	MaxViewport int    `toml:"max_viewport"`
}

// FloorConfig строка таблицы этажей
type FloorConfig struct {
	Floor  int    `toml:"floor"`
	Label  string `toml:"label"`
	Image  string `toml:"image"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Load читает конфигурацию из TOML-файла
// Секреты можно переопределить переменными окружения (в том числе из .env)
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        3000,
			ReadTimeout:     10,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			StaticDir:       "static",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "room-occupancy",
		},
		Database: DatabaseConfig{
			Driver:          "postgres",
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Source: SourceConfig{
			Kind:          SourcePostgres,
			RemoteTimeout: 10,
		},
		Cache: CacheConfig{
			Addr: "localhost:6379",
			Key:  "room-occupancy:dataset",
			TTL:  300,
		},
		Session: SessionConfig{
			CookieName: "session",
			LoginURL:   "/login.html",
		},
		Floorplan: FloorplanConfig{
			ImagesDir:   "static",
			URLPrefix:   "/floors/",
			MaxViewport: DefaultMaxViewport,
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		c.Session.Secret = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Cache.Password = v
	}
	if v := os.Getenv("REMOTE_TOKEN"); v != "" {
		c.Source.RemoteToken = v
	}
}

func (c *Config) applyDefaults() {
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Source.Kind == "" {
		c.Source.Kind = SourcePostgres
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "session"
	}
	if c.Floorplan.MaxViewport <= 0 {
		c.Floorplan.MaxViewport = DefaultMaxViewport
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	switch c.Source.Kind {
	case SourcePostgres:
	case SourceRemote:
		if c.Source.RemoteURL == "" {
			return fmt.Errorf("%w: source.remote_url is required for remote source", ErrInvalidConfig)
		}
	case SourceSQLDump:
		if c.Source.DumpFile == "" {
			return fmt.Errorf("%w: source.dump_file is required for sqldump source", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown source kind %q", ErrInvalidConfig, c.Source.Kind)
	}

	switch c.Database.Driver {
	case "postgres", "pgx":
	default:
		return fmt.Errorf("%w: unknown database driver %q", ErrInvalidConfig, c.Database.Driver)
	}

	if c.Session.Enabled && c.Session.Secret == "" {
		return fmt.Errorf("%w: session.secret is required when sessions are enabled", ErrInvalidConfig)
	}

	seen := make(map[int]struct{}, len(c.Floors))
	for _, f := range c.Floors {
		if _, ok := seen[f.Floor]; ok {
			return fmt.Errorf("%w: duplicate floor %d", ErrInvalidConfig, f.Floor)
		}
		if f.Width < 0 || f.Height < 0 {
			return fmt.Errorf("%w: negative size for floor %d", ErrInvalidConfig, f.Floor)
		}
		seen[f.Floor] = struct{}{}
	}

	return nil
}

// UsesDatabase returns true if the configured source needs a SQL connection
func (c *Config) UsesDatabase() bool {
	return c.Source.Kind == SourcePostgres
}

// FloorConfigs converts the floor table into domain values
func (c *Config) FloorConfigs() []domain.FloorConfig {
	floors := make([]domain.FloorConfig, 0, len(c.Floors))
	for _, f := range c.Floors {
		floors = append(floors, domain.FloorConfig{
			Floor:  f.Floor,
			Label:  f.Label,
			Image:  f.Image,
			Width:  f.Width,
			Height: f.Height,
		})
	}
	return floors
}

// Duration converts seconds from the config into time.Duration
func Duration(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

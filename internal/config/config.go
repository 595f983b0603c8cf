package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	// ErrReadConfig возвращается, если не удалось прочитать или разобрать файл
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается, если значения конфигурации некорректны
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config корневая конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Redis      RedisConfig      `toml:"redis"`
	Scheduling SchedulingConfig `toml:"scheduling"`
	Travel     TravelConfig     `toml:"travel"`
	RateLimit  RateLimitConfig  `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
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

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
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

// RateLimitConfig ограничение частоты публичных запросов на показ (по IP)
type RateLimitConfig struct {
	Enabled           bool `toml:"enabled"`
	RequestsPerMinute int  `toml:"requests_per_minute"`
	Burst             int  `toml:"burst"`
}

// RedisConfig настройки кэша слотов
type RedisConfig struct {
	Enabled         bool   `toml:"enabled"`
	Addr            string `toml:"addr"`
	Password        string `toml:"password"`
	DB              int    `toml:"db"`
	SlotsTTLSeconds int    `toml:"slots_ttl_seconds"`
}

// SchedulingConfig параметры движка подбора слотов (в минутах)
type SchedulingConfig struct {
	ViewingDurationMinutes int `toml:"viewing_duration_minutes"`
	TravelBufferMinutes    int `toml:"travel_buffer_minutes"`
	SlotStepMinutes        int `toml:"slot_step_minutes"`
	TightThresholdMinutes  int `toml:"tight_threshold_minutes"`
	SameDayLeadMinutes     int `toml:"same_day_lead_minutes"`
}

// TravelConfig параметры оценки времени в пути
type TravelConfig struct {
	AverageSpeedKmh        float64 `toml:"average_speed_kmh"`
	FixedCostMinutes       int     `toml:"fixed_cost_minutes"`
	RoundingUnitMinutes    int     `toml:"rounding_unit_minutes"`
	UnknownLocationMinutes int     `toml:"unknown_location_minutes"`
}

// Load читает конфигурацию из TOML файла, подставляет значения по умолчанию
// и переопределяет секреты из переменных окружения
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	cfg.applyDefaults()
	// .env не обязателен, переменные окружения процесса имеют приоритет
	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 10)
	setDefault(&c.Server.WriteTimeout, 10)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 10)

	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.MaxOpenConns, 25)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "viewing-service"
	}

	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	setDefault(&c.Redis.SlotsTTLSeconds, 300)

	setDefault(&c.RateLimit.RequestsPerMinute, 10)
	setDefault(&c.RateLimit.Burst, 5)

	setDefault(&c.Scheduling.ViewingDurationMinutes, 20)
	setDefault(&c.Scheduling.TravelBufferMinutes, 10)
	setDefault(&c.Scheduling.SlotStepMinutes, 30)
	setDefault(&c.Scheduling.TightThresholdMinutes, 20)
	setDefault(&c.Scheduling.SameDayLeadMinutes, 30)

	if c.Travel.AverageSpeedKmh == 0 {
		c.Travel.AverageSpeedKmh = 30
	}
	setDefault(&c.Travel.FixedCostMinutes, 5)
	setDefault(&c.Travel.RoundingUnitMinutes, 5)
	setDefault(&c.Travel.UnknownLocationMinutes, 30)
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		return fmt.Errorf("%w: database.port=%d", ErrInvalidConfig, c.Database.Port)
	}

	positive := []struct {
		name  string
		value int
	}{
		{"scheduling.viewing_duration_minutes", c.Scheduling.ViewingDurationMinutes},
		{"scheduling.slot_step_minutes", c.Scheduling.SlotStepMinutes},
		{"travel.rounding_unit_minutes", c.Travel.RoundingUnitMinutes},
		{"rate_limit.requests_per_minute", c.RateLimit.RequestsPerMinute},
		{"rate_limit.burst", c.RateLimit.Burst},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, p.name, p.value)
		}
	}

	nonNegative := []struct {
		name  string
		value int
	}{
		{"scheduling.travel_buffer_minutes", c.Scheduling.TravelBufferMinutes},
		{"scheduling.tight_threshold_minutes", c.Scheduling.TightThresholdMinutes},
		{"scheduling.same_day_lead_minutes", c.Scheduling.SameDayLeadMinutes},
		{"travel.fixed_cost_minutes", c.Travel.FixedCostMinutes},
		{"travel.unknown_location_minutes", c.Travel.UnknownLocationMinutes},
		{"redis.slots_ttl_seconds", c.Redis.SlotsTTLSeconds},
	}
	for _, p := range nonNegative {
		if p.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidConfig, p.name, p.value)
		}
	}

	if c.Travel.AverageSpeedKmh <= 0 {
		return fmt.Errorf("%w: travel.average_speed_kmh must be positive, got %v", ErrInvalidConfig, c.Travel.AverageSpeedKmh)
	}

	return nil
}

func setDefault(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

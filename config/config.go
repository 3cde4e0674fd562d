package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// MinJWTSecretLen is the shortest accepted HS256 signing secret.
const MinJWTSecretLen = 32

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Storage  StorageConfig
	Postgres PostgresConfig
	Redis    RedisConfig

	// Catalog
	Pagination PaginationConfig

	// Security
	Auth   AuthConfig
	Access AccessConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	RateLimitPerSec float64
	RateLimitBurst  int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type StorageConfig struct {
	Driver string
}

type PostgresConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	AutoMigrate     bool
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

type PaginationConfig struct {
	DefaultPage int
	DefaultSize int
	MaxSize     int
}

type AuthConfig struct {
	Realm       string
	JWTSecret   string
	JWTIssuer   string
	AccessTTL   time.Duration
	BcryptCost  int
	CacheSize   int
	CacheTTL    time.Duration
	UseDatabase bool
	Users       []UserConfig
}

// UserConfig seeds an in-memory user. Password may be plain text or a bcrypt hash.
type UserConfig struct {
	Name     string   `mapstructure:"name"`
	Username string   `mapstructure:"username"`
	Password string   `mapstructure:"password"`
	Roles    []string `mapstructure:"roles"`
}

type AccessConfig struct {
	Rules []AccessRule
}

// AccessRule grants paths under Prefix to principals holding Role.
// An empty Role admits any authenticated principal.
type AccessRule struct {
	Prefix string `mapstructure:"prefix"`
	Role   string `mapstructure:"role"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ReadTimeout = v.GetDuration("http_server.read_timeout")
	cfg.HTTPServer.WriteTimeout = v.GetDuration("http_server.write_timeout")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.HTTPServer.RateLimitPerSec = v.GetFloat64("http_server.rate_limit_per_sec")
	cfg.HTTPServer.RateLimitBurst = v.GetInt("http_server.rate_limit_burst")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Storage
	cfg.Storage.Driver = strings.ToLower(v.GetString("storage.driver"))
	cfg.Postgres.DSN = v.GetString("postgres.dsn")
	if dsn := v.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxConns = v.GetInt32("postgres.max_conns")
	cfg.Postgres.MinConns = v.GetInt32("postgres.min_conns")
	cfg.Postgres.MaxConnLifetime = v.GetDuration("postgres.max_conn_lifetime")
	cfg.Postgres.MaxConnIdleTime = v.GetDuration("postgres.max_conn_idle_time")
	cfg.Postgres.AutoMigrate = v.GetBool("postgres.auto_migrate")
	cfg.Redis.Addr = v.GetString("redis.addr")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")
	cfg.Redis.KeyPrefix = v.GetString("redis.key_prefix")

	// Catalog
	cfg.Pagination.DefaultPage = v.GetInt("pagination.default_page")
	cfg.Pagination.DefaultSize = v.GetInt("pagination.default_size")
	cfg.Pagination.MaxSize = v.GetInt("pagination.max_size")

	// Security
	cfg.Auth.Realm = v.GetString("auth.realm")
	cfg.Auth.JWTSecret = v.GetString("auth.jwt_secret")
	cfg.Auth.JWTIssuer = v.GetString("auth.jwt_issuer")
	cfg.Auth.AccessTTL = v.GetDuration("auth.access_ttl")
	cfg.Auth.BcryptCost = v.GetInt("auth.bcrypt_cost")
	cfg.Auth.CacheSize = v.GetInt("auth.cache_size")
	cfg.Auth.CacheTTL = v.GetDuration("auth.cache_ttl")
	cfg.Auth.UseDatabase = v.GetBool("auth.use_database")
	if err := v.UnmarshalKey("auth.users", &cfg.Auth.Users); err != nil {
		return nil, fmt.Errorf("error decoding auth.users: %w", err)
	}
	if err := v.UnmarshalKey("access.rules", &cfg.Access.Rules); err != nil {
		return nil, fmt.Errorf("error decoding access.rules: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints that defaults cannot express.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("postgres.dsn is required when storage.driver is %q", DriverPostgres)
		}
	case DriverRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required when storage.driver is %q", DriverRedis)
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}

	if c.Auth.UseDatabase && c.Storage.Driver != DriverPostgres {
		return fmt.Errorf("auth.use_database requires storage.driver %q", DriverPostgres)
	}
	if len(c.Auth.JWTSecret) < MinJWTSecretLen {
		return fmt.Errorf("auth.jwt_secret must be at least %d bytes", MinJWTSecretLen)
	}
	if strings.Contains(strings.ToLower(c.Auth.JWTSecret), "change-me") {
		return fmt.Errorf("auth.jwt_secret is a placeholder; set AUTH_JWT_SECRET")
	}
	if c.Pagination.DefaultSize <= 0 || c.Pagination.MaxSize < c.Pagination.DefaultSize {
		return fmt.Errorf("pagination: default_size must be positive and not above max_size")
	}
	for i, u := range c.Auth.Users {
		if u.Username == "" || u.Password == "" {
			return fmt.Errorf("auth.users[%d]: username and password are required", i)
		}
	}
	for i, r := range c.Access.Rules {
		if !strings.HasPrefix(r.Prefix, "/") {
			return fmt.Errorf("access.rules[%d]: prefix must start with /", i)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.read_timeout", "10s")
	v.SetDefault("http_server.write_timeout", "30s")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("http_server.rate_limit_per_sec", 0)
	v.SetDefault("http_server.rate_limit_burst", 20)
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("storage.driver", DriverMemory)
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 2)
	v.SetDefault("postgres.max_conn_lifetime", "1h")
	v.SetDefault("postgres.max_conn_idle_time", "30m")
	v.SetDefault("postgres.auto_migrate", true)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "anime-catalog")

	v.SetDefault("pagination.default_page", 0)
	v.SetDefault("pagination.default_size", 5)
	v.SetDefault("pagination.max_size", 2000)

	v.SetDefault("auth.realm", "anime-catalog")
	v.SetDefault("auth.jwt_issuer", "anime-catalog")
	v.SetDefault("auth.access_ttl", "1h")
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("auth.cache_size", 256)
	v.SetDefault("auth.cache_ttl", "5m")
	v.SetDefault("auth.use_database", false)
	v.SetDefault("auth.users", []map[string]any{
		{"name": "Albert", "username": "albert", "password": "1234", "roles": []string{"ADMIN", "USER"}},
	})

	v.SetDefault("access.rules", []map[string]any{
		{"prefix": "/animes/admin", "role": "ADMIN"},
		{"prefix": "/animes", "role": ""},
	})
}

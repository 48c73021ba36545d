package config

import (
	"net/netip"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	AccessLog AccessLogConfig `yaml:"accesslog"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// AccessLogConfig holds access log service settings.
type AccessLogConfig struct {
	// DefaultRemoteOriginRaw is the origin recorded when a request does
	// not carry one, and the origin cooldown checks fall back to.
	DefaultRemoteOriginRaw string `yaml:"default_remote_origin" env:"ACCESSLOG_DEFAULT_REMOTE_ORIGIN" env-default:"127.0.0.1"`

	// Retention is how long dated entries are kept before pruning.
	Retention time.Duration `yaml:"retention" env:"ACCESSLOG_RETENTION" env-default:"2160h"`

	// DefaultRemoteOrigin is parsed from DefaultRemoteOriginRaw during validation.
	DefaultRemoteOrigin netip.Addr `yaml:"-" env:"-"`
}

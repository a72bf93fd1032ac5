package cmd

import (
	"time"

	"foodly/internal/adapters/out/postgres"
)

type Config struct {
	HTTPPort        string
	DBDriver        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	SQLitePath      string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	StalenessWindow time.Duration
	ReaperSchedule  string
	SeedMenu        bool
	LogLevel        string
}

// ConnectionSettings returns the database part of the configuration.
func (c Config) ConnectionSettings() postgres.ConnectionSettings {
	return postgres.ConnectionSettings{
		Driver:     c.DBDriver,
		Host:       c.DBHost,
		Port:       c.DBPort,
		User:       c.DBUser,
		Password:   c.DBPassword,
		Name:       c.DBName,
		SslMode:    c.DBSslMode,
		SQLitePath: c.SQLitePath,
	}
}

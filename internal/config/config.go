// Package config loads runtime settings for both services from the
// environment (and an optional .env file) using viper.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Todo store backends.
const (
	TodoStoreMongo  = "mongo"
	TodoStoreBadger = "badger"
	TodoStoreMemory = "memory"
)

// Relational drivers for the contact store.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is built once at startup and handed to every component that needs it.
type Config struct {
	TodoPort    string `mapstructure:"TODO_PORT" validate:"required"`
	ContactPort string `mapstructure:"CONTACT_PORT" validate:"required"`

	TodoStore       string `mapstructure:"TODO_STORE" validate:"oneof=mongo badger memory"`
	MongoURI        string `mapstructure:"MONGO_URI" validate:"required_if=TodoStore mongo"`
	MongoDatabase   string `mapstructure:"MONGO_DATABASE" validate:"required_if=TodoStore mongo"`
	MongoCollection string `mapstructure:"MONGO_COLLECTION" validate:"required_if=TodoStore mongo"`
	BadgerPath      string `mapstructure:"BADGER_PATH"`

	DatabaseDriver       string `mapstructure:"DATABASE_DRIVER" validate:"oneof=mysql postgres sqlite"`
	DatabaseDSN          string `mapstructure:"DATABASE_DSN" validate:"required"`
	DatabaseMaxOpenConns int    `mapstructure:"DATABASE_MAX_OPEN_CONNS" validate:"gte=1"`
	DatabaseMaxIdleConns int    `mapstructure:"DATABASE_MAX_IDLE_CONNS" validate:"gte=0"`

	RabbitMQURL   string `mapstructure:"RABBITMQ_URL"`
	AuthJWTSecret string `mapstructure:"AUTH_JWT_SECRET"`
	StaticDir     string `mapstructure:"STATIC_DIR"`

	LogLevel  string `mapstructure:"LOG_LEVEL" validate:"oneof=trace debug info warn error"`
	LogPretty bool   `mapstructure:"LOG_PRETTY"`
}

// SetDefaults registers every known key on v. AutomaticEnv only resolves
// keys viper already knows about, so each field needs a default here.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("TODO_PORT", ":8000")
	v.SetDefault("CONTACT_PORT", ":8001")

	v.SetDefault("TODO_STORE", TodoStoreMongo)
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "todo_db")
	v.SetDefault("MONGO_COLLECTION", "todo_collection")
	v.SetDefault("BADGER_PATH", "")

	v.SetDefault("DATABASE_DRIVER", DriverMySQL)
	v.SetDefault("DATABASE_DSN", "root:root@tcp(localhost:3306)/contact_db?charset=utf8mb4&parseTime=True&loc=Local")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)

	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("AUTH_JWT_SECRET", "")
	v.SetDefault("STATIC_DIR", "HTML")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()

	return FromViper(v)
}

// FromViper decodes and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

package config

import (
	"fmt"
	"reflect"
	"strings"

	"schema-engine/core/auth"
	"schema-engine/core/database"
	"schema-engine/core/logger"
	"schema-engine/core/reconcile"
	"schema-engine/core/server"
	"schema-engine/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the entity graph store database.
	Database database.Config `mapstructure:"database"`
	// Engine holds reconcile engine and bulk sync settings.
	Engine reconcile.Config `mapstructure:"engine"`
	// Auth holds the user allow-list.
	Auth auth.Config `mapstructure:"auth"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. ENGINE_SYNC_WORKERS -> engine.sync_workers)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validate reports every setting the engine cannot start with.
func (c *Config) validate() error {
	var err error
	switch c.Database.Driver {
	case database.DriverMySQL, database.DriverPostgres, database.DriverSQLite:
	default:
		err = multierr.Append(err, fmt.Errorf("database.driver: unsupported driver %q", c.Database.Driver))
	}
	if c.Engine.SyncWorkers < 1 {
		err = multierr.Append(err, fmt.Errorf("engine.sync_workers: must be at least 1, got %d", c.Engine.SyncWorkers))
	}
	if c.Server.UserHeader == "" {
		err = multierr.Append(err, fmt.Errorf("server.user_header: must not be empty"))
	}
	return err
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
// Slice defaults are comma separated.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}

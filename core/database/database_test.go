package database

import (
	"testing"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         DriverMySQL,
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "metadata",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported database driver")
		assert.Nil(t, db)
	})

	t.Run("SQLite In Memory", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
		assert.NoError(t, err)
		assert.NotNil(t, db)
	})
}

func TestDSN_PasswordSpecialCharacters(t *testing.T) {
	passwords := []string{"plain", "p@ss:w/rd", "with space", `it's\here`, "100%?&="}

	for _, password := range passwords {
		cfg := Config{Host: "db.local", Port: 3306, User: "svc", Password: password, Name: "metadata"}

		t.Run("MySQL/"+password, func(t *testing.T) {
			parsed, err := mysqldriver.ParseDSN(mysqlDSN(cfg, 5))
			require.NoError(t, err)
			assert.Equal(t, password, parsed.Passwd)
			assert.Equal(t, "svc", parsed.User)
			assert.Equal(t, "db.local:3306", parsed.Addr)
			assert.Equal(t, "metadata", parsed.DBName)
			assert.True(t, parsed.ParseTime)
			assert.Equal(t, 5*time.Second, parsed.Timeout)
		})

		t.Run("Postgres/"+password, func(t *testing.T) {
			pgCfg := cfg
			pgCfg.Port = 5432
			parsed, err := pgconn.ParseConfig(postgresDSN(pgCfg, 5))
			require.NoError(t, err)
			assert.Equal(t, password, parsed.Password)
			assert.Equal(t, "svc", parsed.User)
			assert.Equal(t, "db.local", parsed.Host)
			assert.Equal(t, uint16(5432), parsed.Port)
			assert.Equal(t, "metadata", parsed.Database)
		})
	}
}

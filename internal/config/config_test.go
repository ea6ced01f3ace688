package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSQLiteConfig() *Config {
	return &Config{
		App:      AppConfig{Name: "fenats", Env: "test", Port: 8080, PublicBaseURL: "https://fenats.cl"},
		Database: DatabaseConfig{Driver: DriverSQLite, SQLitePath: "test.db"},
		JWT:      JWTConfig{Secret: "0123456789abcdef0123456789abcdef"},
		Import:   ImportConfig{MaxFileSize: 1 << 20},
	}
}

func TestValidate_SQLite(t *testing.T) {
	cfg := validSQLiteConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_OracleRequiresConnectionFields(t *testing.T) {
	cfg := validSQLiteConfig()
	cfg.Database.Driver = DriverOracle

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_HOST")
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := validSQLiteConfig()
	cfg.App.Port = 0
	cfg.JWT.Secret = "short"
	cfg.Database.Driver = "mysql"
	cfg.Admin.Email = "root@fenats.cl"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "puerto")
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "mysql")
	assert.Contains(t, err.Error(), "ADMIN_SEED")
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/fenats.db")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("PUBLIC_BASE_URL", "https://fenats.cl/")
	t.Setenv("IMPORT_MAX_FILE_SIZE", "2048")

	cfg, err := Load("unit-test-missing-file")
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, int64(2048), cfg.Import.MaxFileSize)
	assert.Equal(t, "https://fenats.cl/verify/abc", cfg.VerifyURL("abc"))
}

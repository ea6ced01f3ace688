package database

import (
	"fmt"
	"log/slog"

	"github.com/cokeke26/fenats/internal/config"
	"github.com/cokeke26/fenats/internal/model"

	"gorm.io/gorm"
)

// Models lists every persisted entity in creation order (FK dependencies first).
func Models() []interface{} {
	return []interface{}{
		&model.Admin{},
		&model.Member{},
	}
}

// Migrate drops and recreates all tables when DB_AUTO_MIGRATE is enabled.
// Otherwise SQLite files get missing tables created in place and Oracle
// schemas are left to the DBA.
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsAutoMigrate {
		if cfg.Database.Driver == config.DriverSQLite {
			return AutoMigrate(db)
		}
		slog.Info("migración deshabilitada", "auto_migrate", false, "env", cfg.App.Env)
		return nil
	}

	if cfg.IsProduction() {
		return fmt.Errorf("DB_AUTO_MIGRATE=true no está permitido en producción")
	}

	slog.Warn("migración iniciada: todas las tablas serán eliminadas y recreadas",
		"auto_migrate", true, "env", cfg.App.Env,
	)

	models := Models()
	// Drop in reverse dependency order
	for i := len(models) - 1; i >= 0; i-- {
		m := models[i]
		if !db.Migrator().HasTable(m) {
			continue
		}
		if err := db.Migrator().DropTable(m); err != nil {
			slog.Debug("drop table failed", "model", fmt.Sprintf("%T", m), "error", err)
		} else {
			slog.Debug("table dropped", "model", fmt.Sprintf("%T", m))
		}
	}

	if err := AutoMigrate(db); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	slog.Info("migración completada")
	return nil
}

// AutoMigrate creates missing tables and columns without dropping anything.
func AutoMigrate(db *gorm.DB) error {
	for _, m := range Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("%T migration: %w", m, err)
		}
		slog.Debug("table migrated", "model", fmt.Sprintf("%T", m))
	}
	return nil
}

package models

import (
	"fmt"
	"log/slog"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Database struct {
	GormDB *gorm.DB
}

// Connect opens the database once at process start. The returned handle is
// passed to the middleware and controllers explicitly; nothing in the
// request path reaches for a package-level connection.
func Connect(databaseURL string) (*Database, error) {
	gormLogger := slogGorm.New(
		slogGorm.WithHandler(slog.Default().Handler()),
		slogGorm.SetLogLevel(slogGorm.DefaultLogType, slog.LevelDebug),
	)

	database, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := &Database{GormDB: database}
	if err := db.Migrate(); err != nil {
		return nil, err
	}
	return db, nil
}

func (db *Database) Migrate() error {
	return db.GormDB.AutoMigrate(
		&User{},
		&Policy{},
		&Application{},
		&AgentRequest{},
		&Payment{},
		&Blog{},
		&Review{},
		&NewsletterSubscription{},
	)
}

func (db *Database) Close() error {
	sqlDB, err := db.GormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

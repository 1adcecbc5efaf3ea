package db

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	gormModels "apexive/pilotlog/internal/models/gorm"
)

var ORM *gorm.DB

// InitPostgresORM opens the postgres-backed gorm handle.
func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	ORM = db
	log.Println("Connected to Postgres via GORM")
	return db, nil
}

// InitSQLiteORM opens a file-backed sqlite gorm handle, used for local
// single-binary runs of the import/export commands.
func InitSQLiteORM(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}

	ORM = db
	log.Printf("Opened SQLite database at %s", path)
	return db, nil
}

// AutoMigrate creates or updates the schema for every persisted entity.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&gormModels.Aircraft{},
		&gormModels.Flight{},
		&gormModels.ImagePic{},
		&gormModels.LimitRules{},
		&gormModels.Query{},
		&gormModels.QueryBuild{},
		&gormModels.Pilot{},
		&gormModels.Qualification{},
		&gormModels.SettingConfig{},
		&gormModels.Airfield{},
	)
}

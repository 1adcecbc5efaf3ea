package main

import (
	"context"
	"flag"
	"log"
	"os"

	gormlib "gorm.io/gorm"

	"apexive/pilotlog/internal/config"
	"apexive/pilotlog/internal/db"
	"apexive/pilotlog/internal/db/repositories"
	"apexive/pilotlog/internal/importer"
	"apexive/pilotlog/internal/logging"
)

func main() {
	inputPath := flag.String("input", "", "path to the logbook backup JSON file")
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("❌ -input is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	orm, err := openORM(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(orm); err != nil {
		log.Fatalf("❌ Failed to migrate schema: %v", err)
	}

	f, err := os.Open(*inputPath)
	if err != nil {
		log.Fatalf("❌ Failed to open input file: %v", err)
	}
	defer f.Close()

	engine := importer.NewEngine(repositories.NewSet(orm), nil)

	summary, err := engine.Run(context.Background(), f)
	if err != nil {
		logging.Error("Import aborted", "error", err.Error())
		os.Exit(1)
	}

	logging.Info("Import finished",
		"created", summary.Created,
		"updated", summary.Updated,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"unknown_tables", summary.Unknown,
	)
}

func openORM(cfg *config.Config) (*gormlib.DB, error) {
	if cfg.DBDriver == "sqlite" {
		return db.InitSQLiteORM(cfg.SQLitePath)
	}
	return db.InitPostgresORM(cfg.PostgresDSN())
}

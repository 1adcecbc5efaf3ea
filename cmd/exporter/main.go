package main

import (
	"context"
	"flag"
	"log"

	gormlib "gorm.io/gorm"

	"apexive/pilotlog/internal/config"
	"apexive/pilotlog/internal/db"
	"apexive/pilotlog/internal/db/repositories"
	"apexive/pilotlog/internal/exporter"
	"apexive/pilotlog/internal/logging"
)

func main() {
	aircraftPath := flag.String("aircraft", "aircraft.csv", "output path for the aircraft CSV")
	flightPath := flag.String("flights", "flights.csv", "output path for the flight CSV")
	flag.Parse()

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

	svc := exporter.NewService(repositories.NewSet(orm))

	if err := svc.ExportAll(context.Background(), *aircraftPath, *flightPath); err != nil {
		log.Fatalf("❌ Export failed: %v", err)
	}
}

func openORM(cfg *config.Config) (*gormlib.DB, error) {
	if cfg.DBDriver == "sqlite" {
		return db.InitSQLiteORM(cfg.SQLitePath)
	}
	return db.InitPostgresORM(cfg.PostgresDSN())
}

package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"apexive/pilotlog/internal/common"
	"apexive/pilotlog/internal/config"
	"apexive/pilotlog/internal/db"
	"apexive/pilotlog/internal/db/repositories"
	"apexive/pilotlog/internal/logging"
	"apexive/pilotlog/internal/metrics"
	"apexive/pilotlog/internal/routes"
)

// @title Pilotlog API
// @version 1.0
// @description Logbook backup import, image records and export stats.
// @host localhost:8080
// @BasePath /
func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Pilotlog starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// Connect to DB with sqlx (health check and stats)
	if err := db.InitPostgres(cfg.PostgresDSN()); err != nil {
		logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
		log.Fatalf("❌ Failed to connect to Postgres (sqlx): %v", err)
	}
	logging.Info("Connected to Postgres (sqlx)")

	// Connect to DB with GORM
	orm, err := db.InitPostgresORM(cfg.PostgresDSN())
	if err != nil {
		logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
		log.Fatalf("❌ Failed to connect to Postgres (GORM): %v", err)
	}
	logging.Info("Connected to Postgres (GORM)")

	if err := db.AutoMigrate(orm); err != nil {
		log.Fatalf("❌ Failed to migrate schema: %v", err)
	}

	repos := repositories.NewSet(orm)

	var cache common.CacheInterface
	if cfg.CacheBackend == "redis" {
		redisCache, err := common.NewRedisCacheService(cfg.RedisAddr(), cfg.RedisPassword)
		if err != nil {
			log.Fatalf("❌ Failed to connect to Redis: %v", err)
		}
		cache = redisCache
		logging.Info("Connected to Redis cache", "addr", cfg.RedisAddr())
	} else {
		cache = common.NewCacheService(60, 600)
		logging.Info("Using in-memory cache")
	}
	defer cache.Close()

	metricsReg := metrics.NewRegistry()
	upSince := time.Now()

	router := routes.RegisterRoutes(cfg, repos, cache, metricsReg, upSince)

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	addr := fmt.Sprintf(":%d", cfg.Port)
	logging.Info("Server starting",
		"port", cfg.Port,
		"environment", cfg.AppEnv,
	)

	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}

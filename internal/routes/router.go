package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"apexive/pilotlog/internal/api"
	"apexive/pilotlog/internal/common"
	"apexive/pilotlog/internal/config"
	"apexive/pilotlog/internal/db"
	"apexive/pilotlog/internal/db/repositories"
	"apexive/pilotlog/internal/importer"
	"apexive/pilotlog/internal/logging"
	"apexive/pilotlog/internal/metrics"
	"apexive/pilotlog/internal/middleware"
)

// RegisterRoutes builds the full HTTP surface: the health check, the image
// REST endpoints, the import and stats endpoints. Mutating routes sit behind
// the bearer-token group.
func RegisterRoutes(cfg *config.Config, repos *repositories.Set, cache common.CacheInterface, metricsReg *metrics.Registry, upSince time.Time) http.Handler {

	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	engine := importer.NewEngine(repos, metricsReg)
	statsRepo := repositories.NewStatsRepository(db.DB)

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Get("/stats", api.StatsHandler(statsRepo))

		v1.Get("/images", api.ListImagesHandler(repos.ImagePic, cache))
		v1.Get("/images/uploaded-and-downloaded", api.TransferredImagesHandler(repos.ImagePic))
		v1.Get("/images/recent", api.RecentImagesHandler(repos.ImagePic))
		v1.Get("/images/{id}", api.GetImageHandler(repos.ImagePic))

		// Mutating routes require a bearer token.
		v1.Group(func(protected chi.Router) {
			protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))

			protected.Post("/import", api.ImportHandler(engine))
			protected.Post("/images", api.CreateImageHandler(repos.ImagePic, cache))
			protected.Put("/images/{id}", api.UpdateImageHandler(repos.ImagePic, cache))
		})
	})

	return r
}

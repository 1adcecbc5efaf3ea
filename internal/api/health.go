package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"apexive/pilotlog/internal/models/dtos"
)

// HealthCheckHandler handles GET /healthCheck
//
// @Summary Health check
// @Description Verifies the server and its database are running.
// @Tags Misc
// @Success 200 {object} dtos.HealthCheckResponse
// @Router /healthCheck [get]
func HealthCheckHandler(db *sqlx.DB, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		services := make(map[string]dtos.ServiceStatus)

		dbStatus := "ok"
		dbDetails := "Database Connected"
		if err := db.Ping(); err != nil {
			dbStatus = "down"
			dbDetails = err.Error()
		}
		services["database"] = dtos.ServiceStatus{
			Status:  dbStatus,
			Details: dbDetails,
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		uptime := time.Since(upSince).Round(time.Second).String()

		resp := dtos.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			Uptime:   uptime,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

package api

import (
	"net/http"
	"time"

	"apexive/pilotlog/internal/common"
	"apexive/pilotlog/internal/db/repositories"
)

// StatsHandler godoc
// @Summary      Per-table row counts
// @Tags         Misc
// @Produce      json
// @Success      200 {object} dtos.APIResponse
// @Failure      500 {object} dtos.APIResponse
// @Router       /api/v1/stats [get]
func StatsHandler(repo *repositories.StatsRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		counts, err := repo.TableCounts(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to gather stats")
			return
		}

		common.RespondSuccess(w, initTime, "Stats retrieved", counts)
	}
}

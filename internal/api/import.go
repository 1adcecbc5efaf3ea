package api

import (
	"net/http"
	"time"

	"apexive/pilotlog/internal/common"
	"apexive/pilotlog/internal/importer"
	"apexive/pilotlog/internal/models/dtos"
)

// ImportHandler godoc
// @Summary      Import a logbook backup
// @Description  Runs the record reconciliation engine over the JSON backup in the request body.
// @Tags         Import
// @Accept       json
// @Produce      json
// @Success      200     {object} dtos.APIResponse
// @Failure      400,500 {object} dtos.APIResponse
// @Router       /api/v1/import [post]
func ImportHandler(engine *importer.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		summary, err := engine.Run(r.Context(), r.Body)
		if err != nil {
			common.RespondError(w, initTime, err, "Import failed", http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Import completed", summaryResponse(summary))
	}
}

func summaryResponse(s *importer.Summary) dtos.ImportSummaryResponse {
	return dtos.ImportSummaryResponse{
		Created: s.Created,
		Updated: s.Updated,
		Skipped: s.Skipped,
		Failed:  s.Failed,
		Unknown: s.Unknown,
	}
}

package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"apexive/pilotlog/internal/db/repositories"
	"apexive/pilotlog/internal/logging"
	"apexive/pilotlog/internal/metrics"
)

// Outcome classifies what one record import did to the store.
type Outcome int

const (
	// OutcomeCreated means a new row was inserted.
	OutcomeCreated Outcome = iota
	// OutcomeUpdated means an existing row was fully replaced.
	OutcomeUpdated
	// OutcomeSkipped means the record was rejected with a diagnostic and no
	// store mutation happened.
	OutcomeSkipped
)

// tableImporter is the per-table import contract. Implementations decode the
// record's meta payload and upsert by their entity's merge key. A returned
// error marks the record failed; the run continues either way.
type tableImporter interface {
	Import(ctx context.Context, rec *RawRecord) (Outcome, error)
}

// Summary aggregates one import run.
type Summary struct {
	Created int
	Updated int
	Skipped int
	Failed  int
	Unknown int
}

// Engine routes raw records to per-table importers. The table registry is a
// closed set; unknown tags are reported and skipped, never dispatched by
// reflection.
type Engine struct {
	importers map[string]tableImporter
	metrics   *metrics.Registry
}

// NewEngine wires the full table registry over the repository set. The
// metrics registry may be nil when no scrape endpoint exists (CLI runs).
func NewEngine(repos *repositories.Set, reg *metrics.Registry) *Engine {
	return &Engine{
		metrics: reg,
		importers: map[string]tableImporter{
			"aircraft":      &aircraftImporter{aircraft: repos.Aircraft, flights: repos.Flight},
			"flight":        &flightImporter{flights: repos.Flight},
			"imagepic":      &imagePicImporter{images: repos.ImagePic},
			"limitrules":    &limitRulesImporter{rules: repos.LimitRules},
			"myquery":       &queryImporter{queries: repos.Query},
			"myquerybuild":  &queryBuildImporter{builds: repos.QueryBuild},
			"pilot":         &pilotImporter{pilots: repos.Pilot},
			"qualification": &qualificationImporter{qualifications: repos.Qualification},
			"settingconfig": &settingConfigImporter{configs: repos.SettingConfig},
			"airfield":      &airfieldImporter{airfields: repos.Airfield},
		},
	}
}

// Run reads one backup document and processes its records strictly in input
// order. A malformed document or a record without the table discriminator is
// fatal; everything else degrades to per-record diagnostics.
func (e *Engine) Run(ctx context.Context, r io.Reader) (*Summary, error) {
	start := time.Now()

	data, err := io.ReadAll(r)
	if err != nil {
		e.observeRun("failed")
		return nil, fmt.Errorf("failed to read import document: %w", err)
	}

	var records []RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		e.observeRun("failed")
		return nil, fmt.Errorf("invalid import document: %w", err)
	}

	summary := &Summary{}
	for i := range records {
		rec := &records[i]

		if rec.Table == "" {
			e.observeRun("failed")
			return summary, fmt.Errorf("record %d is missing the table field", i)
		}

		table := strings.ToLower(rec.Table)
		imp, ok := e.importers[table]
		if !ok {
			logging.Warn("No importer for table", "table", rec.Table)
			summary.Unknown++
			e.observeRecord(table, "unknown")
			continue
		}

		outcome, err := imp.Import(ctx, rec)
		if err != nil {
			logging.Warn("Record import failed",
				"table", table,
				"guid", rec.GUID,
				"error", err.Error(),
			)
			summary.Failed++
			e.observeRecord(table, "failed")
			continue
		}

		switch outcome {
		case OutcomeCreated:
			summary.Created++
			e.observeRecord(table, "created")
		case OutcomeUpdated:
			summary.Updated++
			e.observeRecord(table, "updated")
		default:
			summary.Skipped++
			e.observeRecord(table, "skipped")
		}
	}

	logging.Info("Import run finished",
		"created", summary.Created,
		"updated", summary.Updated,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"unknown_tables", summary.Unknown,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	e.observeRun("ok")
	if e.metrics != nil {
		e.metrics.ImportRunDuration.Observe(time.Since(start).Seconds())
	}

	return summary, nil
}

func (e *Engine) observeRecord(table, outcome string) {
	if e.metrics == nil {
		return
	}
	e.metrics.RecordsProcessedTotal.WithLabelValues(table, outcome).Inc()
}

func (e *Engine) observeRun(status string) {
	if e.metrics == nil {
		return
	}
	e.metrics.ImportRunsTotal.WithLabelValues(status).Inc()
}

package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"apexive/pilotlog/internal/models/dtos"
)

// statsTables is the closed set of tables the stats endpoint reports on.
var statsTables = []string{
	"aircraft",
	"flights",
	"image_pics",
	"limit_rules",
	"queries",
	"query_builds",
	"pilots",
	"qualifications",
	"setting_configs",
	"airfields",
}

// StatsRepository answers per-table row counts over the raw sqlx handle.
type StatsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// TableCounts returns one row count per entity table.
func (r *StatsRepository) TableCounts(ctx context.Context) ([]dtos.TableCount, error) {
	counts := make([]dtos.TableCount, 0, len(statsTables))

	for _, table := range statsTables {
		var count int64
		// Table names come from the fixed list above, never from input.
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
		if err := r.db.GetContext(ctx, &count, query); err != nil {
			return nil, fmt.Errorf("failed to count rows in %s: %w", table, err)
		}
		counts = append(counts, dtos.TableCount{Table: table, Rows: count})
	}

	return counts, nil
}

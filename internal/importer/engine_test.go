package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	gormlib "gorm.io/gorm"

	"apexive/pilotlog/internal/db"
	"apexive/pilotlog/internal/db/repositories"
)

// Setup test database
func setupTestDB(t *testing.T) *gormlib.DB {
	t.Helper()

	conn, err := gormlib.Open(sqlite.Open(":memory:"), &gormlib.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(conn); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return conn
}

func newTestEngine(t *testing.T) (*Engine, *repositories.Set) {
	t.Helper()
	repos := repositories.NewSet(setupTestDB(t))
	return NewEngine(repos, nil), repos
}

const aircraftCessnaDoc = `[
	{
		"table": "aircraft",
		"guid": "11111111-1111-1111-1111-111111111111",
		"user_id": 1,
		"platform": 1,
		"_modified": 100,
		"meta": {"Make": "Cessna", "Model": "172", "Complex": false}
	}
]`

func TestEngineImportsAircraft(t *testing.T) {
	engine, repos := newTestEngine(t)
	ctx := context.Background()

	summary, err := engine.Run(ctx, strings.NewReader(aircraftCessnaDoc))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Created != 1 || summary.Updated != 0 || summary.Skipped != 0 || summary.Failed != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	rows, err := repos.Aircraft.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 aircraft, got %d", len(rows))
	}

	got := rows[0]
	if got.Make != "Cessna" || got.Model != "172" {
		t.Errorf("aircraft fields = %s/%s, want Cessna/172", got.Make, got.Model)
	}
	if got.Complex {
		t.Error("Complex should be false")
	}
	// Unspecified meta fields stay at their defaults.
	if got.Seats != 0 || got.Active || got.Reference != "" {
		t.Errorf("unspecified fields not at defaults: %+v", got)
	}
	if got.UserID != 1 || got.Platform != 1 || got.Modified != 100 {
		t.Errorf("envelope fields wrong: %+v", got)
	}
}

func TestEngineReimportIsIdempotent(t *testing.T) {
	engine, repos := newTestEngine(t)
	ctx := context.Background()

	if _, err := engine.Run(ctx, strings.NewReader(aircraftCessnaDoc)); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	summary, err := engine.Run(ctx, strings.NewReader(aircraftCessnaDoc))
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if summary.Created != 0 || summary.Updated != 1 {
		t.Fatalf("re-import summary = %+v, want one update", summary)
	}

	rows, _ := repos.Aircraft.ListAll(ctx)
	if len(rows) != 1 {
		t.Fatalf("expected 1 aircraft after re-import, got %d", len(rows))
	}
	if rows[0].Make != "Cessna" {
		t.Errorf("re-import changed fields: %+v", rows[0])
	}
}

func TestEngineReimportReplacesFields(t *testing.T) {
	engine, repos := newTestEngine(t)
	ctx := context.Background()

	if _, err := engine.Run(ctx, strings.NewReader(aircraftCessnaDoc)); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	updated := strings.Replace(aircraftCessnaDoc, `"Model": "172"`, `"Model": "182"`, 1)
	if _, err := engine.Run(ctx, strings.NewReader(updated)); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	rows, _ := repos.Aircraft.ListAll(ctx)
	if len(rows) != 1 || rows[0].Model != "182" {
		t.Fatalf("expected model replaced to 182, got %+v", rows)
	}
}

func TestEngineUnknownTable(t *testing.T) {
	engine, repos := newTestEngine(t)

	doc := `[{"table": "spaceship", "guid": "11111111-1111-1111-1111-111111111111", "meta": {}}]`
	summary, err := engine.Run(context.Background(), strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Unknown != 1 || summary.Created != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	rows, _ := repos.Aircraft.ListAll(context.Background())
	if len(rows) != 0 {
		t.Error("unknown table must not mutate the store")
	}
}

func TestEngineTableTagIsCaseInsensitive(t *testing.T) {
	engine, repos := newTestEngine(t)

	doc := strings.Replace(aircraftCessnaDoc, `"table": "aircraft"`, `"table": "Aircraft"`, 1)
	summary, err := engine.Run(context.Background(), strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Created != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	rows, _ := repos.Aircraft.ListAll(context.Background())
	if len(rows) != 1 {
		t.Fatal("mixed-case table tag must still dispatch")
	}
}

func TestEngineInvalidGUIDSkipsRecord(t *testing.T) {
	engine, repos := newTestEngine(t)

	doc := `[{"table": "flight", "guid": "not-a-guid", "user_id": 1, "platform": 1, "_modified": 5, "meta": {}}]`
	summary, err := engine.Run(context.Background(), strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Skipped != 1 || summary.Created != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	flights, _ := repos.Flight.ListAllWithAircraft(context.Background())
	if len(flights) != 0 {
		t.Error("record with invalid guid must not reach the store")
	}
}

func TestEngineMissingTableIsFatal(t *testing.T) {
	engine, _ := newTestEngine(t)

	doc := `[{"guid": "11111111-1111-1111-1111-111111111111", "meta": {}}]`
	if _, err := engine.Run(context.Background(), strings.NewReader(doc)); err == nil {
		t.Fatal("missing table discriminator must abort the run")
	}
}

func TestEngineMalformedDocumentIsFatal(t *testing.T) {
	engine, _ := newTestEngine(t)

	if _, err := engine.Run(context.Background(), strings.NewReader(`{"not": "an array"`)); err == nil {
		t.Fatal("malformed document must abort the run")
	}
}

func TestEngineLinksFlightToAircraft(t *testing.T) {
	engine, repos := newTestEngine(t)
	ctx := context.Background()

	// The producing app reuses one identifier across table kinds; the flight
	// arrives first, then the aircraft import re-resolves the link.
	doc := `[
		{
			"table": "flight",
			"guid": "22222222-2222-2222-2222-222222222222",
			"user_id": 1, "platform": 1, "_modified": 10,
			"meta": {"Route": "KSFO-KLAX", "minTOTAL": "2.5"}
		},
		{
			"table": "aircraft",
			"guid": "22222222-2222-2222-2222-222222222222",
			"user_id": 1, "platform": 1, "_modified": 10,
			"meta": {"Make": "Piper", "Model": "PA-28"}
		}
	]`

	summary, err := engine.Run(ctx, strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Created != 2 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	flights, err := repos.Flight.ListAllWithAircraft(ctx)
	if err != nil {
		t.Fatalf("ListAllWithAircraft failed: %v", err)
	}
	if len(flights) != 1 {
		t.Fatalf("expected 1 flight, got %d", len(flights))
	}

	flight := flights[0]
	if flight.AircraftID == nil {
		t.Fatal("flight should be linked to the imported aircraft")
	}
	if flight.Aircraft == nil || flight.Aircraft.Make != "Piper" {
		t.Errorf("linked aircraft not resolved: %+v", flight.Aircraft)
	}
}

func TestEngineFlightReimportKeepsAircraftLink(t *testing.T) {
	engine, repos := newTestEngine(t)
	ctx := context.Background()

	doc := `[
		{
			"table": "flight",
			"guid": "22222222-2222-2222-2222-222222222222",
			"user_id": 1, "platform": 1, "_modified": 10,
			"meta": {"minTOTAL": "2.5"}
		},
		{
			"table": "aircraft",
			"guid": "22222222-2222-2222-2222-222222222222",
			"user_id": 1, "platform": 1, "_modified": 10,
			"meta": {"Make": "Piper"}
		},
		{
			"table": "flight",
			"guid": "22222222-2222-2222-2222-222222222222",
			"user_id": 1, "platform": 1, "_modified": 20,
			"meta": {"minTOTAL": "3.0"}
		}
	]`

	if _, err := engine.Run(ctx, strings.NewReader(doc)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	flights, _ := repos.Flight.ListAllWithAircraft(ctx)
	if len(flights) != 1 {
		t.Fatalf("expected 1 flight, got %d", len(flights))
	}
	if flights[0].AircraftID == nil {
		t.Error("flight re-import must preserve the aircraft link")
	}
	if !flights[0].TotalTime.Equal(decimal.NewFromFloat(3.0)) {
		t.Errorf("flight re-import did not replace fields: total=%s", flights[0].TotalTime)
	}
}

func TestEngineSettingConfigNumericGUID(t *testing.T) {
	engine, repos := newTestEngine(t)
	ctx := context.Background()

	doc := `[{
		"table": "settingconfig",
		"guid": "683",
		"user_id": 1, "platform": 1, "_modified": 10,
		"meta": {"ConfigCode": 683, "Name": "night_mode", "Group": "display", "Data": "1"}
	}]`

	summary, err := engine.Run(ctx, strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Created != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	// Deterministic derivation: the same numeric id merges on re-import.
	summary, err = engine.Run(ctx, strings.NewReader(doc))
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if summary.Created != 0 || summary.Updated != 1 {
		t.Fatalf("numeric-guid re-import summary = %+v, want one update", summary)
	}

	configs, err := repos.SettingConfig.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(configs) != 1 {
		t.Fatalf("expected 1 setting config row, got %d", len(configs))
	}
	if configs[0].Name != "night_mode" || configs[0].Group != "display" {
		t.Errorf("setting config fields wrong: %+v", configs[0])
	}
}

func TestEngineMixedDocumentOrderPreserved(t *testing.T) {
	engine, repos := newTestEngine(t)
	ctx := context.Background()

	// Two states of the same pilot in one document: last write wins.
	doc := `[
		{
			"table": "pilot",
			"guid": "33333333-3333-3333-3333-333333333333",
			"user_id": 1, "platform": 1, "_modified": 10,
			"meta": {"PilotName": "A. Early"}
		},
		{
			"table": "pilot",
			"guid": "33333333-3333-3333-3333-333333333333",
			"user_id": 1, "platform": 1, "_modified": 20,
			"meta": {"PilotName": "A. Late"}
		}
	]`

	summary, err := engine.Run(ctx, strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Created != 1 || summary.Updated != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	pilots, err := repos.Pilot.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(pilots) != 1 || pilots[0].PilotName != "A. Late" {
		t.Fatalf("expected last write to win, got %+v", pilots)
	}
}

package sqlite

import (
	"testing"
	"time"

	"slotter/pkg/application/dto"
	"slotter/pkg/domain/entities"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.Migrate(); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	return store
}

func TestStore_LoadInputs(t *testing.T) {
	store := openTestStore(t)

	mustExec(t, store, `INSERT INTO location_master (location_code, aisle, bay_number, slot_type) VALUES
		('A01-03-01', 'A01', '03', 'SHELF-S'),
		('A01-03-02', 'A01', '03', 'SHELF-M')`)
	mustExec(t, store, `INSERT INTO article_master (article_number, pick_location) VALUES ('100001', 'A01-03-01')`)
	mustExec(t, store, `INSERT INTO demand_events (article_number, location_code, picked_at, quantity, order_ref) VALUES
		('100001', 'A01-03-01', '2024-05-10 14:30:00', 2, 'ORD-1'),
		('100002', 'A01-03-02', 'garbage', 1, 'ORD-2')`)

	locations, err := store.LoadLocations()
	if err != nil {
		t.Fatalf("LoadLocations failed: %v", err)
	}
	if len(locations) != 2 || locations[0].Code != "A01-03-01" {
		t.Error("Unexpected location master rows")
	}

	articles, err := store.LoadArticles()
	if err != nil {
		t.Fatalf("LoadArticles failed: %v", err)
	}
	if len(articles) != 1 || articles[0].Article != "100001" {
		t.Error("Unexpected article master rows")
	}

	demands, err := store.LoadDemands()
	if err != nil {
		t.Fatalf("LoadDemands failed: %v", err)
	}
	if len(demands) != 2 {
		t.Fatalf("Expected 2 demand events, got %d", len(demands))
	}
	if !demands[0].PickedAt.Equal(time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)) {
		t.Errorf("Unexpected picked_at: %v", demands[0].PickedAt)
	}
	if !demands[1].PickedAt.IsZero() {
		t.Error("Expected unparsable picked_at to load as zero time")
	}
}

func TestStore_SaveResult_Roundtrip(t *testing.T) {
	store := openTestStore(t)

	result := &dto.SlottingResult{
		Bays: []*entities.Bay{
			{
				Code:   "A01-03",
				Layout: []entities.SizeClass{entities.Small, entities.Medium},
				Inventory: map[entities.SizeClass]int{
					entities.Small:  1,
					entities.Medium: 1,
				},
				Composition: []entities.SlotTypeCount{
					{SlotType: "SHELF-S", Count: 1},
					{SlotType: "SHELF-M", Count: 1},
				},
				Provenance: entities.FromMaster,
			},
		},
		Assignments: []entities.AllocationRecord{
			{Article: "100001", BayCode: "A01-03", SizeClass: entities.Small, SourceLocation: "A01-03-01", BayProvenance: entities.FromMaster},
		},
		Overflows: []entities.OverflowRecord{
			{Article: "100002", BayCode: "A01-03", SizeClass: entities.Small, SourceLocation: "A01-03-01", Reason: entities.ReasonCapacityExhausted},
		},
		LocationAudit: []dto.LocationAuditEntry{
			{Code: "A01-03-01", BayCode: "A01-03", SizeClass: "Small", Provenance: "FromMaster"},
		},
		Findings: []entities.Finding{
			{Scope: "demand", Severity: entities.Warning, Category: "pair_overflowed", Count: 1, Samples: []string{"100002@A01-03"}},
		},
	}

	if err := store.SaveResult(result); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}

	var layout string
	if err := store.db.Get(&layout, `SELECT layout FROM slotting_bays WHERE bay_code = 'A01-03'`); err != nil {
		t.Fatalf("failed to read bay layout: %v", err)
	}
	if layout != "0.25,0.5" {
		t.Errorf("Expected layout rendered as weights, got %q", layout)
	}

	var assignments int
	if err := store.db.Get(&assignments, `SELECT COUNT(*) FROM slotting_assignments`); err != nil {
		t.Fatalf("failed to count assignments: %v", err)
	}
	if assignments != 1 {
		t.Errorf("Expected 1 assignment row, got %d", assignments)
	}

	var reason string
	if err := store.db.Get(&reason, `SELECT reason FROM slotting_overflows`); err != nil {
		t.Fatalf("failed to read overflow reason: %v", err)
	}
	if reason != entities.ReasonCapacityExhausted {
		t.Errorf("Unexpected overflow reason %q", reason)
	}

	// Saving again must replace, not duplicate
	if err := store.SaveResult(result); err != nil {
		t.Fatalf("second SaveResult failed: %v", err)
	}
	if err := store.db.Get(&assignments, `SELECT COUNT(*) FROM slotting_assignments`); err != nil {
		t.Fatalf("failed to count assignments: %v", err)
	}
	if assignments != 1 {
		t.Errorf("Expected replacement on save, got %d rows", assignments)
	}
}

func mustExec(t *testing.T, store *Store, query string) {
	t.Helper()
	if _, err := store.db.Exec(query); err != nil {
		t.Fatalf("exec failed: %v", err)
	}
}

package slotting

import (
	"testing"

	"slotter/pkg/domain/entities"
)

func TestResolveLocations_SeedsFromMaster(t *testing.T) {
	result := ResolveLocations(buildSmallWarehouse(), nil, nil)

	if result.Index.Len() != 4 {
		t.Fatalf("Expected 4 resolved locations, got %d", result.Index.Len())
	}

	loc, ok := result.Index.Get("A01-03-01")
	if !ok {
		t.Fatal("Expected A01-03-01 to resolve")
	}
	if loc.BayCode != "A01-03" {
		t.Errorf("Expected bay A01-03, got %s", loc.BayCode)
	}
	if loc.SizeClass != entities.Small {
		t.Errorf("Expected Small, got %s", loc.SizeClass)
	}
	if loc.Provenance != entities.FromMaster {
		t.Errorf("Expected FromMaster, got %s", loc.Provenance)
	}
}

func TestResolveLocations_EmptySlotTypeClassifiesAsLarge(t *testing.T) {
	masters := []*entities.MasterLocation{
		{Code: "C03-01-01", Aisle: "C03", BayNumber: "01", SlotType: ""},
	}

	result := ResolveLocations(masters, nil, nil)

	loc, _ := result.Index.Get("C03-01-01")
	if loc.SizeClass != entities.Large {
		t.Errorf("Expected Large for missing slot type, got %s", loc.SizeClass)
	}
	if loc.SlotType != "UNKNOWN" {
		t.Errorf("Expected UNKNOWN slot type, got %s", loc.SlotType)
	}
}

func TestResolveLocations_ArticleCrossCheck(t *testing.T) {
	articles := []*entities.ArticleRecord{
		{Article: "100001", PickLocation: "A01-03-01"},
		{Article: "100002", PickLocation: "X99-01-01"},
		{Article: "100003", PickLocation: "X99-01-01"},
	}

	result := ResolveLocations(buildSmallWarehouse(), articles, nil)

	if len(result.UnknownArticleLocations) != 1 {
		t.Fatalf("Expected 1 unknown article location, got %d", len(result.UnknownArticleLocations))
	}
	if result.UnknownArticleLocations[0] != "X99-01-01" {
		t.Errorf("Unexpected unknown location: %s", result.UnknownArticleLocations[0])
	}

	// The cross-check never creates entries
	if _, ok := result.Index.Get("X99-01-01"); ok {
		t.Error("Expected article cross-check not to synthesize locations")
	}
}

func TestResolveLocations_SynthesizesDemandOnlyCodes(t *testing.T) {
	events := []*entities.DemandEvent{
		demandAt("100001", "Z99-14-02", 0),
		demandAt("100002", "Z99-14-02", 1),
	}

	result := ResolveLocations(buildSmallWarehouse(), nil, events)

	loc, ok := result.Index.Get("Z99-14-02")
	if !ok {
		t.Fatal("Expected synthesized location for Z99-14-02")
	}
	if loc.BayCode != "Z99-14" {
		t.Errorf("Expected derived bay Z99-14, got %s", loc.BayCode)
	}
	if loc.SizeClass != entities.Large {
		t.Errorf("Expected synthesized class Large, got %s", loc.SizeClass)
	}
	if loc.Provenance != entities.Synthesized {
		t.Errorf("Expected Synthesized, got %s", loc.Provenance)
	}

	// Idempotent: two events, one synthesized entry
	if result.Index.Len() != 5 {
		t.Errorf("Expected 5 locations, got %d", result.Index.Len())
	}
}

func TestResolveLocations_UnroutableCodeDropped(t *testing.T) {
	events := []*entities.DemandEvent{
		demandAt("100001", "NOSEPARATOR", 0),
		demandAt("100002", "NOSEPARATOR", 1),
	}

	result := ResolveLocations(buildSmallWarehouse(), nil, events)

	if _, ok := result.Index.Get("NOSEPARATOR"); ok {
		t.Error("Expected unroutable code not to synthesize")
	}
	if len(result.UnroutableCodes) != 1 || result.UnroutableCodes[0] != "NOSEPARATOR" {
		t.Errorf("Expected NOSEPARATOR reported once, got %v", result.UnroutableCodes)
	}
}

func TestResolveLocations_PreservesObservationOrder(t *testing.T) {
	events := []*entities.DemandEvent{
		demandAt("100001", "Z99-14-02", 0),
	}

	result := ResolveLocations(buildSmallWarehouse(), nil, events)

	codes := result.Index.Codes()
	if len(codes) != 5 {
		t.Fatalf("Expected 5 codes, got %d", len(codes))
	}
	if codes[0] != "A01-03-01" || codes[4] != "Z99-14-02" {
		t.Errorf("Expected master order then synthesized order, got %v", codes)
	}
}

func TestDeriveBayCode(t *testing.T) {
	tests := []struct {
		code     string
		expected string
		ok       bool
	}{
		{"Z99-14-02", "Z99-14", true},
		{"A01-03", "A01-03", true},
		{"NOSEPARATOR", "", false},
		{"A01-", "", false},
		{"-03-01", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := deriveBayCode(tt.code)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("deriveBayCode(%q) = (%q, %v), expected (%q, %v)", tt.code, got, ok, tt.expected, tt.ok)
		}
	}
}

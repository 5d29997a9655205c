package slotting

import (
	"testing"

	"slotter/pkg/domain/entities"
)

func TestBuildBayInventories_LayoutAndInventory(t *testing.T) {
	resolved := ResolveLocations(buildSmallWarehouse(), nil, nil)
	bays := BuildBayInventories(resolved.Index)

	if len(bays) != 2 {
		t.Fatalf("Expected 2 bays, got %d", len(bays))
	}

	bay := bays["A01-03"]
	if bay == nil {
		t.Fatal("Expected bay A01-03")
	}

	expectedLayout := []entities.SizeClass{entities.Small, entities.Small, entities.Medium}
	if len(bay.Layout) != len(expectedLayout) {
		t.Fatalf("Expected layout of %d slots, got %d", len(expectedLayout), len(bay.Layout))
	}
	for i, class := range expectedLayout {
		if bay.Layout[i] != class {
			t.Errorf("Layout[%d] = %s, expected %s", i, bay.Layout[i], class)
		}
	}

	if bay.Inventory[entities.Small] != 2 || bay.Inventory[entities.Medium] != 1 || bay.Inventory[entities.Large] != 0 {
		t.Errorf("Unexpected inventory: %v", bay.Inventory)
	}
	if !bay.Conserved() {
		t.Error("Expected sum(inventory) == len(layout)")
	}
	if bay.Provenance != entities.FromMaster {
		t.Errorf("Expected FromMaster bay, got %s", bay.Provenance)
	}
}

func TestBuildBayInventories_SynthesizedBay(t *testing.T) {
	events := []*entities.DemandEvent{demandAt("100001", "Z99-14-02", 0)}
	resolved := ResolveLocations(buildSmallWarehouse(), nil, events)
	bays := BuildBayInventories(resolved.Index)

	bay := bays["Z99-14"]
	if bay == nil {
		t.Fatal("Expected synthesized bay Z99-14")
	}
	if bay.Provenance != entities.Synthesized {
		t.Errorf("Expected Synthesized bay, got %s", bay.Provenance)
	}
	if bay.TotalSlots() != 1 || bay.Inventory[entities.Large] != 1 {
		t.Errorf("Expected single Large slot, got %v", bay.Inventory)
	}
}

func TestBuildBayInventories_CompositionSignature(t *testing.T) {
	masters := []*entities.MasterLocation{
		{Code: "A01-03-01", Aisle: "A01", BayNumber: "03", SlotType: "SHELF-S"},
		{Code: "A01-03-02", Aisle: "A01", BayNumber: "03", SlotType: "SHELF-S"},
		{Code: "A01-03-03", Aisle: "A01", BayNumber: "03", SlotType: "PALLET"},
		{Code: "A01-03-04", Aisle: "A01", BayNumber: "03", SlotType: "BIN-M"},
	}

	resolved := ResolveLocations(masters, nil, nil)
	bays := BuildBayInventories(resolved.Index)

	composition := bays["A01-03"].Composition
	if len(composition) != 3 {
		t.Fatalf("Expected 3 signature entries, got %d", len(composition))
	}
	if composition[0].SlotType != "SHELF-S" || composition[0].Count != 2 {
		t.Errorf("Expected SHELF-S x2 first, got %+v", composition[0])
	}
	// Ties sort by code for deterministic reporting
	if composition[1].SlotType != "BIN-M" || composition[2].SlotType != "PALLET" {
		t.Errorf("Expected tie-break by slot type code, got %+v", composition[1:])
	}
}

func TestSortedBays(t *testing.T) {
	resolved := ResolveLocations(buildSmallWarehouse(), nil, nil)
	sorted := SortedBays(BuildBayInventories(resolved.Index))

	if len(sorted) != 2 {
		t.Fatalf("Expected 2 bays, got %d", len(sorted))
	}
	if sorted[0].Code != "A01-03" || sorted[1].Code != "B02-07" {
		t.Errorf("Expected bays sorted by code, got %s, %s", sorted[0].Code, sorted[1].Code)
	}
}

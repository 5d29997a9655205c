package entities

import "testing"

func TestBay_TotalSlots(t *testing.T) {
	bay := &Bay{
		Code:   "A01-03",
		Layout: []SizeClass{Small, Small, Medium, Large},
		Inventory: map[SizeClass]int{
			Small:  2,
			Medium: 1,
			Large:  1,
		},
	}

	if bay.TotalSlots() != 4 {
		t.Errorf("Expected 4 total slots, got %d", bay.TotalSlots())
	}

	if !bay.Conserved() {
		t.Error("Expected inventory to match layout length")
	}
}

func TestBay_Conserved_Mismatch(t *testing.T) {
	bay := &Bay{
		Code:      "A01-03",
		Layout:    []SizeClass{Small, Small},
		Inventory: map[SizeClass]int{Small: 3},
	}

	if bay.Conserved() {
		t.Error("Expected conservation check to fail for mismatched inventory")
	}
}

package entities

import "testing"

func TestMasterLocation_BayCode(t *testing.T) {
	master := MasterLocation{
		Code:      "A01-03-02",
		Aisle:     "A01",
		BayNumber: "03",
		SlotType:  "SHELF-M",
	}

	if master.BayCode() != "A01-03" {
		t.Errorf("Expected bay code A01-03, got %s", master.BayCode())
	}
}

func TestNewLocation(t *testing.T) {
	loc, err := NewLocation("A01-03-02", "A01-03", Medium, "SHELF-M", FromMaster)
	if err != nil {
		t.Fatalf("NewLocation failed: %v", err)
	}

	if loc.Code != "A01-03-02" || loc.BayCode != "A01-03" {
		t.Error("Unexpected location fields")
	}
	if loc.Provenance != FromMaster {
		t.Errorf("Expected FromMaster provenance, got %s", loc.Provenance)
	}
}

func TestNewLocation_Validation(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		bayCode string
		class   SizeClass
	}{
		{"empty_code", "", "A01-03", Small},
		{"empty_bay", "A01-03-02", "", Small},
		{"invalid_class", "A01-03-02", "A01-03", SizeClass(99)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLocation(tt.code, tt.bayCode, tt.class, "SHELF-S", FromMaster); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

package entities

import "testing"

func TestSizeClass_Weight(t *testing.T) {
	tests := []struct {
		class    SizeClass
		expected string
	}{
		{Small, "0.25"},
		{Medium, "0.5"},
		{Large, "1"},
	}

	for _, tt := range tests {
		if got := tt.class.Weight().String(); got != tt.expected {
			t.Errorf("Weight() for %s = %s, expected %s", tt.class, got, tt.expected)
		}
	}
}

func TestSizeClass_Valid(t *testing.T) {
	for _, class := range []SizeClass{Small, Medium, Large} {
		if !class.Valid() {
			t.Errorf("Expected %s to be valid", class)
		}
	}

	if SizeClass(99).Valid() {
		t.Error("Expected out-of-range size class to be invalid")
	}
}

func TestSizeClass_String(t *testing.T) {
	if Small.String() != "Small" || Medium.String() != "Medium" || Large.String() != "Large" {
		t.Error("Unexpected size class names")
	}
	if SizeClass(42).String() != "Unknown" {
		t.Error("Expected Unknown for undefined size class")
	}
}

func TestProvenance_String(t *testing.T) {
	if FromMaster.String() != "FromMaster" {
		t.Errorf("Expected FromMaster, got %s", FromMaster.String())
	}
	if Synthesized.String() != "Synthesized" {
		t.Errorf("Expected Synthesized, got %s", Synthesized.String())
	}
}

package size_classifier

import (
	"testing"

	"slotter/pkg/domain/entities"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		slotType string
		expected entities.SizeClass
	}{
		{"SHELF-S", entities.Small},
		{"BIN-S", entities.Small},
		{"TRAY", entities.Small},
		{"SHELF-M", entities.Medium},
		{"HALF-RACK", entities.Medium},
		{"SHELF-L", entities.Large},
		{"PALLET", entities.Large},
		{"RACK", entities.Large},
	}

	for _, tt := range tests {
		t.Run(tt.slotType, func(t *testing.T) {
			if got := Classify(tt.slotType); got != tt.expected {
				t.Errorf("Classify(%s) = %s, expected %s", tt.slotType, got, tt.expected)
			}
		})
	}
}

func TestClassify_UnknownDefaultsToLarge(t *testing.T) {
	for _, slotType := range []string{"", "UNKNOWN", "MEZZANINE", "???"} {
		if got := Classify(slotType); got != entities.Large {
			t.Errorf("Classify(%q) = %s, expected Large", slotType, got)
		}
	}
}

func TestClassify_NormalizesInput(t *testing.T) {
	if Classify("  shelf-m ") != entities.Medium {
		t.Error("Expected classification to trim and upper-case the code")
	}
}

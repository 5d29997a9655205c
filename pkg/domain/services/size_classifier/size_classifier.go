package size_classifier

import (
	"strings"

	"slotter/pkg/domain/entities"
)

// slotTypeClasses maps raw slot-type codes from the location master to
// standardized size classes. The table is fixed and total: codes absent
// from it classify as Large, so an unrecognized slot never loses capacity.
var slotTypeClasses = map[string]entities.SizeClass{
	"SHELF-S":   entities.Small,
	"BIN-S":     entities.Small,
	"TRAY":      entities.Small,
	"SHELF-M":   entities.Medium,
	"BIN-M":     entities.Medium,
	"HALF-RACK": entities.Medium,
	"SHELF-L":   entities.Large,
	"RACK":      entities.Large,
	"PALLET":    entities.Large,
}

// Classify resolves a raw slot-type code to a size class. Pure function,
// no error path.
func Classify(slotType string) entities.SizeClass {
	if class, ok := slotTypeClasses[strings.ToUpper(strings.TrimSpace(slotType))]; ok {
		return class
	}
	return entities.Large
}

package slotting

import (
	"sort"

	"slotter/pkg/domain/entities"
)

// BuildBayInventories groups resolved locations by bay code and produces
// one Bay per code. The capacity layout lists the member size classes in
// first-observed location order; the inventory counts members per class.
// The layout is immutable once built.
func BuildBayInventories(index *LocationIndex) map[string]*entities.Bay {
	bays := make(map[string]*entities.Bay)
	slotTypes := make(map[string]map[string]int)

	for _, code := range index.Codes() {
		loc, _ := index.Get(code)

		bay, exists := bays[loc.BayCode]
		if !exists {
			bay = &entities.Bay{
				Code:       loc.BayCode,
				Inventory:  make(map[entities.SizeClass]int),
				Provenance: entities.Synthesized,
			}
			bays[loc.BayCode] = bay
			slotTypes[loc.BayCode] = make(map[string]int)
		}

		bay.Layout = append(bay.Layout, loc.SizeClass)
		bay.Inventory[loc.SizeClass]++
		slotTypes[loc.BayCode][loc.SlotType]++

		// A bay is synthesized only while every member slot is
		if loc.Provenance == entities.FromMaster {
			bay.Provenance = entities.FromMaster
		}
	}

	for code, bay := range bays {
		bay.Composition = compositionSignature(slotTypes[code])
	}

	return bays
}

// compositionSignature renders per-slot-type counts sorted by count
// descending, ties broken by code. Reporting only; allocation never reads it.
func compositionSignature(counts map[string]int) []entities.SlotTypeCount {
	signature := make([]entities.SlotTypeCount, 0, len(counts))
	for slotType, count := range counts {
		signature = append(signature, entities.SlotTypeCount{SlotType: slotType, Count: count})
	}

	sort.Slice(signature, func(i, j int) bool {
		if signature[i].Count != signature[j].Count {
			return signature[i].Count > signature[j].Count
		}
		return signature[i].SlotType < signature[j].SlotType
	})

	return signature
}

// SortedBays returns the bays as a slice ordered by bay code, the order
// used for reporting and persistence
func SortedBays(bays map[string]*entities.Bay) []*entities.Bay {
	sorted := make([]*entities.Bay, 0, len(bays))
	for _, bay := range bays {
		sorted = append(sorted, bay)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Code < sorted[j].Code
	})
	return sorted
}

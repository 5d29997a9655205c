package entities

// SlotTypeCount is one element of a bay's composition signature
type SlotTypeCount struct {
	SlotType string
	Count    int
}

// Bay represents a physical storage unit composed of one or more slots.
// The layout is frozen once built and is never recomputed mid-allocation.
type Bay struct {
	Code        string
	Layout      []SizeClass
	Inventory   map[SizeClass]int
	Composition []SlotTypeCount
	Provenance  Provenance
}

// TotalSlots returns the number of physical slots in the bay
func (b *Bay) TotalSlots() int {
	total := 0
	for _, count := range b.Inventory {
		total += count
	}
	return total
}

// Conserved reports whether the inventory counts match the capacity layout,
// i.e. sum(inventory) == len(layout)
func (b *Bay) Conserved() bool {
	return b.TotalSlots() == len(b.Layout)
}

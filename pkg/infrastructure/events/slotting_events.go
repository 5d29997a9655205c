package events

// Run-audit event types emitted by the slotting pipeline
const (
	TypeRunStarted          = "RunStarted"
	TypeLocationsResolved   = "LocationsResolved"
	TypeBaysBuilt           = "BaysBuilt"
	TypeAllocationCompleted = "AllocationCompleted"
	TypeValidationCompleted = "ValidationCompleted"
)

// RunStartedData carries the input sizes of a run
type RunStartedData struct {
	Locations int
	Articles  int
	Demands   int
}

// LocationsResolvedData carries the resolver outcome
type LocationsResolvedData struct {
	Resolved   int
	Unroutable int
}

// BaysBuiltData carries the bay inventory count
type BaysBuiltData struct {
	Bays int
}

// AllocationCompletedData carries the allocation pass totals
type AllocationCompletedData struct {
	Allocated  int
	Overflowed int
}

// ValidationCompletedData carries the validation report size
type ValidationCompletedData struct {
	Findings int
}

func NewRunStarted(locations, articles, demands int) Event {
	return NewEvent(TypeRunStarted, RunStream, RunStartedData{
		Locations: locations,
		Articles:  articles,
		Demands:   demands,
	})
}

func NewLocationsResolved(resolved, unroutable int) Event {
	return NewEvent(TypeLocationsResolved, RunStream, LocationsResolvedData{
		Resolved:   resolved,
		Unroutable: unroutable,
	})
}

func NewBaysBuilt(bays int) Event {
	return NewEvent(TypeBaysBuilt, RunStream, BaysBuiltData{Bays: bays})
}

func NewAllocationCompleted(allocated, overflowed int) Event {
	return NewEvent(TypeAllocationCompleted, RunStream, AllocationCompletedData{
		Allocated:  allocated,
		Overflowed: overflowed,
	})
}

func NewValidationCompleted(findings int) Event {
	return NewEvent(TypeValidationCompleted, RunStream, ValidationCompletedData{
		Findings: findings,
	})
}

package dto

import "slotter/pkg/domain/entities"

// LocationAuditEntry is one row of the location mapping audit:
// raw code -> bay code -> provenance, for traceability
type LocationAuditEntry struct {
	Code       string `json:"code"`
	BayCode    string `json:"bay_code"`
	SizeClass  string `json:"size_class"`
	Provenance string `json:"provenance"`
}

// RunStats summarizes what happened to the demand stream during one run
type RunStats struct {
	TotalEvents      int `json:"total_events"`
	ConsideredEvents int `json:"considered_events"`
	CappedEvents     int `json:"capped_events"`
	UnroutableSkips  int `json:"unroutable_skips"`
	ServedSkips      int `json:"served_skips"`
	Allocated        int `json:"allocated"`
	Overflowed       int `json:"overflowed"`
}

// SlottingResult contains the complete output of a slotting run
type SlottingResult struct {
	Bays          []*entities.Bay
	Assignments   []entities.AllocationRecord
	Overflows     []entities.OverflowRecord
	LocationAudit []LocationAuditEntry
	Findings      []entities.Finding
	Stats         RunStats
}

// Ready reports whether the run produced no blocking findings
func (r *SlottingResult) Ready() bool {
	for _, f := range r.Findings {
		if f.Severity == entities.Error {
			return false
		}
	}
	return true
}

package slotting

import (
	"sort"

	"slotter/pkg/domain/entities"
)

// AllocationStats tallies what happened to every considered event
type AllocationStats struct {
	TotalEvents      int
	ConsideredEvents int
	CappedEvents     int
	UnroutableSkips  int
	ServedSkips      int
	Allocated        int
	Overflowed       int
}

// AllocationOutcome contains the complete output of one allocation pass
type AllocationOutcome struct {
	Assignments []entities.AllocationRecord
	Overflows   []entities.OverflowRecord

	// Considered holds the events the engine actually scanned, in scan
	// order: sorted by recency descending and capped at maxEvents.
	Considered []*entities.DemandEvent

	Stats AllocationStats
}

type usageKey struct {
	bayCode string
	class   entities.SizeClass
}

type servedKey struct {
	article entities.ArticleNumber
	bayCode string
}

// Allocate runs one deterministic greedy first-fit pass over the demand
// stream. Events are served most recent first; ties keep input order.
// Usage counters are scoped per (bay, size class) and start at zero, so a
// produced assignment set can never exceed a bay's inventory.
func Allocate(events []*entities.DemandEvent, index *LocationIndex, bays map[string]*entities.Bay, maxEvents int) *AllocationOutcome {
	outcome := &AllocationOutcome{
		Stats: AllocationStats{TotalEvents: len(events)},
	}

	sorted := make([]*entities.DemandEvent, len(events))
	copy(sorted, events)

	// Most recent first; a zero PickedAt (unparsable date) sorts oldest.
	// The sort is stable so repeated runs produce identical output.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PickedAt.After(sorted[j].PickedAt)
	})

	if maxEvents > 0 && len(sorted) > maxEvents {
		outcome.Stats.CappedEvents = len(sorted) - maxEvents
		sorted = sorted[:maxEvents]
	}

	outcome.Considered = sorted
	outcome.Stats.ConsideredEvents = len(sorted)

	usage := make(map[usageKey]int)
	served := make(map[servedKey]bool)

	for _, event := range sorted {
		loc, ok := index.Get(event.LocationCode)
		if !ok {
			// Unroutable: the event never had a valid bay to target
			outcome.Stats.UnroutableSkips++
			continue
		}

		bay, ok := bays[loc.BayCode]
		if !ok {
			outcome.Stats.UnroutableSkips++
			continue
		}

		dedup := servedKey{article: event.Article, bayCode: loc.BayCode}
		if served[dedup] {
			// Already served for this article/bay; absorbed silently
			outcome.Stats.ServedSkips++
			continue
		}

		use := usageKey{bayCode: loc.BayCode, class: loc.SizeClass}
		if usage[use] < bay.Inventory[loc.SizeClass] {
			outcome.Assignments = append(outcome.Assignments, entities.AllocationRecord{
				Article:        event.Article,
				BayCode:        loc.BayCode,
				SizeClass:      loc.SizeClass,
				SourceLocation: loc.Code,
				BayProvenance:  bay.Provenance,
			})
			usage[use]++
			served[dedup] = true
			outcome.Stats.Allocated++
		} else {
			outcome.Overflows = append(outcome.Overflows, entities.OverflowRecord{
				Article:        event.Article,
				BayCode:        loc.BayCode,
				SizeClass:      loc.SizeClass,
				SourceLocation: loc.Code,
				PickedAt:       event.PickedAt,
				Reason:         entities.ReasonCapacityExhausted,
			})
			outcome.Stats.Overflowed++
		}
	}

	return outcome
}

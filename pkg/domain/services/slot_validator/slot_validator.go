package slot_validator

import (
	"fmt"
	"sort"

	"slotter/pkg/domain/entities"
)

// Validate runs the fixed battery of consistency checks over the produced
// entities. Every check runs independently; a failing check never stops the
// later ones. Findings appear in check order with deterministic samples.
func Validate(
	bays []*entities.Bay,
	allocations []entities.AllocationRecord,
	overflows []entities.OverflowRecord,
	events []*entities.DemandEvent,
	locations map[string]*entities.Location,
) []entities.Finding {
	var findings []entities.Finding

	bayCodes := make(map[string]bool)
	for _, bay := range bays {
		bayCodes[bay.Code] = true
	}

	findings = appendFinding(findings, checkEventLocations(events, locations, bayCodes))
	findings = appendFinding(findings, checkAllocationDemand(allocations, overflows, events)...)
	findings = appendFinding(findings, checkAllocationBays(allocations, bayCodes))
	findings = appendFinding(findings, checkPairCompleteness(allocations, overflows, events, locations)...)
	findings = appendFinding(findings, checkBayLayouts(bays))
	findings = appendFinding(findings, checkAllocationClasses(allocations))
	findings = appendFinding(findings, checkDuplicateKeys(bays, allocations)...)
	findings = appendFinding(findings, checkSynthesizedReferences(events, locations, bayCodes))
	findings = appendFinding(findings, checkCapacityInvariant(bays, allocations))

	return findings
}

// HasBlocking reports whether any finding carries Error severity
func HasBlocking(findings []entities.Finding) bool {
	for _, f := range findings {
		if f.Severity == entities.Error {
			return true
		}
	}
	return false
}

func appendFinding(findings []entities.Finding, more ...*entities.Finding) []entities.Finding {
	for _, f := range more {
		if f != nil && f.Count > 0 {
			findings = append(findings, *f)
		}
	}
	return findings
}

func newFinding(scope string, severity entities.Severity, category string, keys map[string]bool) *entities.Finding {
	if len(keys) == 0 {
		return nil
	}

	sorted := make([]string, 0, len(keys))
	for key := range keys {
		sorted = append(sorted, key)
	}
	sort.Strings(sorted)

	if len(sorted) > entities.MaxFindingSamples {
		sorted = sorted[:entities.MaxFindingSamples]
	}

	return &entities.Finding{
		Scope:    scope,
		Severity: severity,
		Category: category,
		Count:    len(keys),
		Samples:  sorted,
	}
}

// Check 1: every demand event's location resolves to a known bay
func checkEventLocations(events []*entities.DemandEvent, locations map[string]*entities.Location, bayCodes map[string]bool) *entities.Finding {
	offenders := make(map[string]bool)
	for _, event := range events {
		loc, ok := locations[event.LocationCode]
		if !ok || !bayCodes[loc.BayCode] {
			offenders[event.LocationCode] = true
		}
	}
	return newFinding("demand", entities.Error, "event_location_unresolved", offenders)
}

// Check 2: no allocation without originating demand; articles present only
// in overflow are expected and reported as a warning
func checkAllocationDemand(allocations []entities.AllocationRecord, overflows []entities.OverflowRecord, events []*entities.DemandEvent) []*entities.Finding {
	demanded := make(map[entities.ArticleNumber]bool)
	for _, event := range events {
		demanded[event.Article] = true
	}

	phantom := make(map[string]bool)
	allocated := make(map[entities.ArticleNumber]bool)
	for _, alloc := range allocations {
		allocated[alloc.Article] = true
		if !demanded[alloc.Article] {
			phantom[string(alloc.Article)] = true
		}
	}

	overflowOnly := make(map[string]bool)
	for _, overflow := range overflows {
		if !allocated[overflow.Article] {
			overflowOnly[string(overflow.Article)] = true
		}
	}

	return []*entities.Finding{
		newFinding("allocation", entities.Error, "allocation_without_demand", phantom),
		newFinding("allocation", entities.Warning, "article_only_overflowed", overflowOnly),
	}
}

// Check 3: every allocation's bay exists in the bay set
func checkAllocationBays(allocations []entities.AllocationRecord, bayCodes map[string]bool) *entities.Finding {
	offenders := make(map[string]bool)
	for _, alloc := range allocations {
		if !bayCodes[alloc.BayCode] {
			offenders[alloc.BayCode] = true
		}
	}
	return newFinding("allocation", entities.Error, "allocation_bay_missing", offenders)
}

// Check 4: every (article, bay) pair appearing in demand also appears in
// the assignments or the overflow log; no event vanishes silently
func checkPairCompleteness(
	allocations []entities.AllocationRecord,
	overflows []entities.OverflowRecord,
	events []*entities.DemandEvent,
	locations map[string]*entities.Location,
) []*entities.Finding {
	allocPairs := make(map[string]bool)
	for _, alloc := range allocations {
		allocPairs[pairKey(alloc.Article, alloc.BayCode)] = true
	}

	overflowPairs := make(map[string]bool)
	for _, overflow := range overflows {
		overflowPairs[pairKey(overflow.Article, overflow.BayCode)] = true
	}

	overflowOnly := make(map[string]bool)
	vanished := make(map[string]bool)
	for _, event := range events {
		loc, ok := locations[event.LocationCode]
		if !ok {
			continue // covered by check 1
		}
		key := pairKey(event.Article, loc.BayCode)
		switch {
		case allocPairs[key]:
		case overflowPairs[key]:
			overflowOnly[key] = true
		default:
			vanished[key] = true
		}
	}

	return []*entities.Finding{
		newFinding("demand", entities.Warning, "pair_overflowed", overflowOnly),
		newFinding("demand", entities.Error, "pair_unaccounted", vanished),
	}
}

// Check 5: every bay layout contains only the three defined size classes
func checkBayLayouts(bays []*entities.Bay) *entities.Finding {
	offenders := make(map[string]bool)
	for _, bay := range bays {
		for _, class := range bay.Layout {
			if !class.Valid() {
				offenders[bay.Code] = true
			}
		}
	}
	return newFinding("bay", entities.Error, "layout_class_undefined", offenders)
}

// Check 6: every allocation's size class is one of the defined classes
func checkAllocationClasses(allocations []entities.AllocationRecord) *entities.Finding {
	offenders := make(map[string]bool)
	for _, alloc := range allocations {
		if !alloc.SizeClass.Valid() {
			offenders[pairKey(alloc.Article, alloc.BayCode)] = true
		}
	}
	return newFinding("allocation", entities.Warning, "allocation_class_undefined", offenders)
}

// Check 7: no duplicate primary keys in the bay set or the assignment set
func checkDuplicateKeys(bays []*entities.Bay, allocations []entities.AllocationRecord) []*entities.Finding {
	seenBays := make(map[string]bool)
	dupBays := make(map[string]bool)
	for _, bay := range bays {
		if seenBays[bay.Code] {
			dupBays[bay.Code] = true
		}
		seenBays[bay.Code] = true
	}

	seenPairs := make(map[string]bool)
	dupPairs := make(map[string]bool)
	for _, alloc := range allocations {
		key := pairKey(alloc.Article, alloc.BayCode)
		if seenPairs[key] {
			dupPairs[key] = true
		}
		seenPairs[key] = true
	}

	return []*entities.Finding{
		newFinding("bay", entities.Error, "duplicate_bay_code", dupBays),
		newFinding("allocation", entities.Error, "duplicate_allocation_pair", dupPairs),
	}
}

// Check 8: every synthesized location referenced by a demand event backs an
// actual bay entry
func checkSynthesizedReferences(events []*entities.DemandEvent, locations map[string]*entities.Location, bayCodes map[string]bool) *entities.Finding {
	offenders := make(map[string]bool)
	for _, event := range events {
		loc, ok := locations[event.LocationCode]
		if !ok || loc.Provenance != entities.Synthesized {
			continue
		}
		if !bayCodes[loc.BayCode] {
			offenders[loc.Code] = true
		}
	}
	return newFinding("location", entities.Warning, "synthesized_reference_dangling", offenders)
}

// Check 9: capacity invariant. A violation here means the allocator itself
// is broken; the algorithm makes it structurally impossible.
func checkCapacityInvariant(bays []*entities.Bay, allocations []entities.AllocationRecord) *entities.Finding {
	type bayClass struct {
		bayCode string
		class   entities.SizeClass
	}

	used := make(map[bayClass]int)
	for _, alloc := range allocations {
		used[bayClass{alloc.BayCode, alloc.SizeClass}]++
	}

	inventories := make(map[bayClass]int)
	for _, bay := range bays {
		for class, count := range bay.Inventory {
			inventories[bayClass{bay.Code, class}] = count
		}
	}

	offenders := make(map[string]bool)
	for key, count := range used {
		if count > inventories[key] {
			offenders[key.bayCode] = true
		}
	}
	return newFinding("bay", entities.Error, "capacity_exceeded", offenders)
}

func pairKey(article entities.ArticleNumber, bayCode string) string {
	return fmt.Sprintf("%s@%s", article, bayCode)
}

package slotting

import (
	"context"
	"fmt"

	"slotter/pkg/application/dto"
	"slotter/pkg/domain/entities"
	"slotter/pkg/domain/repositories"
	"slotter/pkg/domain/services/slot_validator"
	"slotter/pkg/infrastructure/events"
)

// Service orchestrates the slotting pipeline: resolve locations, build bay
// inventories, allocate the demand stream, then validate the output. Each
// stage owns what it builds and hands it to the next stage read-only.
type Service struct {
	maxEvents  int
	eventStore events.EventStore
}

// NewService creates a slotting service. maxEvents caps how many demand
// events (after the recency sort) one run considers; 0 means no cap.
func NewService(maxEvents int) *Service {
	return &Service{maxEvents: maxEvents}
}

// NewServiceWithEvents creates a slotting service that appends run-audit
// events to the given store
func NewServiceWithEvents(maxEvents int, store events.EventStore) *Service {
	return &Service{maxEvents: maxEvents, eventStore: store}
}

// Run executes the full pipeline against repository-backed inputs
func (s *Service) Run(
	ctx context.Context,
	locationRepo repositories.LocationRepository,
	articleRepo repositories.ArticleRepository,
	demandRepo repositories.DemandRepository,
) (*dto.SlottingResult, error) {
	masters, err := locationRepo.GetLocations()
	if err != nil {
		return nil, fmt.Errorf("failed to get location master: %w", err)
	}

	articles, err := articleRepo.GetArticles()
	if err != nil {
		return nil, fmt.Errorf("failed to get article master: %w", err)
	}

	demands, err := demandRepo.GetDemands()
	if err != nil {
		return nil, fmt.Errorf("failed to get demand events: %w", err)
	}

	return s.RunOnData(ctx, masters, articles, demands)
}

// RunOnData executes the full pipeline against in-memory inputs
func (s *Service) RunOnData(
	ctx context.Context,
	masters []*entities.MasterLocation,
	articles []*entities.ArticleRecord,
	demands []*entities.DemandEvent,
) (*dto.SlottingResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.record(events.NewRunStarted(len(masters), len(articles), len(demands)))

	resolved := ResolveLocations(masters, articles, demands)
	s.record(events.NewLocationsResolved(resolved.Index.Len(), len(resolved.UnroutableCodes)))

	bays := BuildBayInventories(resolved.Index)
	s.record(events.NewBaysBuilt(len(bays)))

	outcome := Allocate(demands, resolved.Index, bays, s.maxEvents)
	s.record(events.NewAllocationCompleted(outcome.Stats.Allocated, outcome.Stats.Overflowed))

	sortedBays := SortedBays(bays)

	// The validator sees exactly the events the engine considered, so the
	// hard cap never surfaces as vanished demand.
	findings := resolverFindings(resolved)
	findings = append(findings, slot_validator.Validate(
		sortedBays,
		outcome.Assignments,
		outcome.Overflows,
		outcome.Considered,
		resolved.Index.Mapping(),
	)...)
	s.record(events.NewValidationCompleted(len(findings)))

	return &dto.SlottingResult{
		Bays:          sortedBays,
		Assignments:   outcome.Assignments,
		Overflows:     outcome.Overflows,
		LocationAudit: locationAudit(resolved.Index),
		Findings:      findings,
		Stats: dto.RunStats{
			TotalEvents:      outcome.Stats.TotalEvents,
			ConsideredEvents: outcome.Stats.ConsideredEvents,
			CappedEvents:     outcome.Stats.CappedEvents,
			UnroutableSkips:  outcome.Stats.UnroutableSkips,
			ServedSkips:      outcome.Stats.ServedSkips,
			Allocated:        outcome.Stats.Allocated,
			Overflowed:       outcome.Stats.Overflowed,
		},
	}, nil
}

func (s *Service) record(event events.Event) {
	if s.eventStore == nil {
		return
	}
	// Run-audit events are best effort; a full store never fails the run
	_ = s.eventStore.AppendEvent(events.RunStream, event)
}

// resolverFindings turns the resolver's data-quality observations into
// report findings ahead of the fixed validator battery
func resolverFindings(resolved *ResolveResult) []entities.Finding {
	var findings []entities.Finding

	if n := len(resolved.UnknownArticleLocations); n > 0 {
		findings = append(findings, entities.Finding{
			Scope:    "resolver",
			Severity: entities.Warning,
			Category: "article_location_unknown",
			Count:    n,
			Samples:  sampleKeys(resolved.UnknownArticleLocations),
		})
	}

	if n := len(resolved.UnroutableCodes); n > 0 {
		findings = append(findings, entities.Finding{
			Scope:    "resolver",
			Severity: entities.Warning,
			Category: "location_code_unroutable",
			Count:    n,
			Samples:  sampleKeys(resolved.UnroutableCodes),
		})
	}

	return findings
}

func sampleKeys(keys []string) []string {
	if len(keys) > entities.MaxFindingSamples {
		keys = keys[:entities.MaxFindingSamples]
	}
	samples := make([]string, len(keys))
	copy(samples, keys)
	return samples
}

func locationAudit(index *LocationIndex) []dto.LocationAuditEntry {
	audit := make([]dto.LocationAuditEntry, 0, index.Len())
	for _, code := range index.Codes() {
		loc, _ := index.Get(code)
		audit = append(audit, dto.LocationAuditEntry{
			Code:       loc.Code,
			BayCode:    loc.BayCode,
			SizeClass:  loc.SizeClass.String(),
			Provenance: loc.Provenance.String(),
		})
	}
	return audit
}

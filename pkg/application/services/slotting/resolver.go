package slotting

import (
	"strings"

	"slotter/pkg/domain/entities"
	"slotter/pkg/domain/services/size_classifier"
)

// LocationIndex holds the resolved rawCode -> Location mapping while
// preserving the order in which codes were first observed (master order,
// then synthesized order). The builder depends on that order for bay layouts.
type LocationIndex struct {
	byCode map[string]*entities.Location
	order  []string
}

// NewLocationIndex creates an empty location index
func NewLocationIndex() *LocationIndex {
	return &LocationIndex{
		byCode: make(map[string]*entities.Location),
	}
}

// Add inserts a location unless its code is already present
func (idx *LocationIndex) Add(loc *entities.Location) {
	if _, exists := idx.byCode[loc.Code]; exists {
		return
	}
	idx.byCode[loc.Code] = loc
	idx.order = append(idx.order, loc.Code)
}

// Get returns the location for a raw code
func (idx *LocationIndex) Get(code string) (*entities.Location, bool) {
	loc, ok := idx.byCode[code]
	return loc, ok
}

// Codes returns all raw codes in first-observed order
func (idx *LocationIndex) Codes() []string {
	return idx.order
}

// Mapping returns the underlying rawCode -> Location map
func (idx *LocationIndex) Mapping() map[string]*entities.Location {
	return idx.byCode
}

// Len returns the number of resolved locations
func (idx *LocationIndex) Len() int {
	return len(idx.order)
}

// ResolveResult contains the resolved location mapping plus the
// data-quality observations made while reconciling the three sources
type ResolveResult struct {
	Index *LocationIndex

	// UnknownArticleLocations lists article-master pick locations absent
	// from the mapping. Reported, never synthesized.
	UnknownArticleLocations []string

	// UnroutableCodes lists demand-event location codes that could not be
	// decomposed into a bay-code shape and were excluded from synthesis.
	UnroutableCodes []string
}

// ResolveLocations reconciles the location master, the article master and
// the demand stream into a single location mapping. Demand-only codes are
// synthesized exactly once with size class Large and provenance Synthesized.
func ResolveLocations(masters []*entities.MasterLocation, articles []*entities.ArticleRecord, events []*entities.DemandEvent) *ResolveResult {
	result := &ResolveResult{
		Index: NewLocationIndex(),
	}

	// Seed from the location master
	for _, master := range masters {
		slotType := master.SlotType
		if slotType == "" {
			slotType = "UNKNOWN"
		}
		result.Index.Add(&entities.Location{
			Code:       master.Code,
			BayCode:    master.BayCode(),
			SizeClass:  size_classifier.Classify(slotType),
			SlotType:   slotType,
			Provenance: entities.FromMaster,
		})
	}

	// Cross-check the article master. Missing pick locations are a
	// data-quality observation, not grounds for synthesis.
	seenUnknown := make(map[string]bool)
	for _, article := range articles {
		if article.PickLocation == "" {
			continue
		}
		if _, ok := result.Index.Get(article.PickLocation); !ok && !seenUnknown[article.PickLocation] {
			seenUnknown[article.PickLocation] = true
			result.UnknownArticleLocations = append(result.UnknownArticleLocations, article.PickLocation)
		}
	}

	// Synthesize placeholders for codes seen only in demand events
	seenUnroutable := make(map[string]bool)
	for _, event := range events {
		code := event.LocationCode
		if code == "" {
			continue
		}
		if _, ok := result.Index.Get(code); ok {
			continue
		}

		bayCode, ok := deriveBayCode(code)
		if !ok {
			if !seenUnroutable[code] {
				seenUnroutable[code] = true
				result.UnroutableCodes = append(result.UnroutableCodes, code)
			}
			continue
		}

		result.Index.Add(&entities.Location{
			Code:       code,
			BayCode:    bayCode,
			SizeClass:  entities.Large,
			SlotType:   "UNKNOWN",
			Provenance: entities.Synthesized,
		})
	}

	return result
}

// deriveBayCode extracts the aisle and bay-number segments from a raw
// location code, e.g. "Z99-14-02" -> "Z99-14". Codes without a separator
// have no bay-code shape and cannot be routed.
func deriveBayCode(code string) (string, bool) {
	parts := strings.Split(code, "-")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", false
	}
	return parts[0] + "-" + parts[1], true
}

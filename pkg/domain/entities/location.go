package entities

import "fmt"

// ArticleNumber represents a unique article identifier
type ArticleNumber string

// MasterLocation represents one row of the warehouse location master
type MasterLocation struct {
	Code      string
	Aisle     string
	BayNumber string
	SlotType  string
}

// BayCode renders the composite aisle/bay-number key as a single code
func (m MasterLocation) BayCode() string {
	return fmt.Sprintf("%s-%s", m.Aisle, m.BayNumber)
}

// ArticleRecord represents one row of the article master. The pick
// location is used only for the resolver cross-check, never for allocation.
type ArticleRecord struct {
	Article      ArticleNumber
	PickLocation string
}

// Location represents one physical storage position inside a bay
type Location struct {
	Code       string
	BayCode    string
	SizeClass  SizeClass
	SlotType   string
	Provenance Provenance
}

// NewLocation creates a validated Location
func NewLocation(code, bayCode string, class SizeClass, slotType string, provenance Provenance) (*Location, error) {
	if code == "" {
		return nil, fmt.Errorf("location code cannot be empty")
	}
	if bayCode == "" {
		return nil, fmt.Errorf("bay code cannot be empty for location %s", code)
	}
	if !class.Valid() {
		return nil, fmt.Errorf("invalid size class %d for location %s", class, code)
	}

	return &Location{
		Code:       code,
		BayCode:    bayCode,
		SizeClass:  class,
		SlotType:   slotType,
		Provenance: provenance,
	}, nil
}

package memory

import (
	"slotter/pkg/domain/entities"
	"slotter/pkg/domain/repositories"
)

// LocationRepository provides in-memory location master storage
type LocationRepository struct {
	locations []*entities.MasterLocation
}

// NewLocationRepository creates a new in-memory location repository
func NewLocationRepository() *LocationRepository {
	return &LocationRepository{
		locations: []*entities.MasterLocation{},
	}
}

// Verify interface compliance
var _ repositories.LocationRepository = (*LocationRepository)(nil)

// LoadLocations loads location master rows into the repository
func (r *LocationRepository) LoadLocations(locations []*entities.MasterLocation) error {
	r.locations = append(r.locations, locations...)
	return nil
}

// GetLocations returns all location master rows in load order
func (r *LocationRepository) GetLocations() ([]*entities.MasterLocation, error) {
	return r.locations, nil
}

package repositories

import "slotter/pkg/domain/entities"

// LocationRepository provides access to location master data
type LocationRepository interface {
	GetLocations() ([]*entities.MasterLocation, error)
	LoadLocations(locations []*entities.MasterLocation) error
}

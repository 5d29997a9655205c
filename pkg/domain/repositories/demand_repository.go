package repositories

import "slotter/pkg/domain/entities"

// DemandRepository provides access to the historical demand stream
type DemandRepository interface {
	GetDemands() ([]*entities.DemandEvent, error)
	LoadDemands(demands []*entities.DemandEvent) error
}

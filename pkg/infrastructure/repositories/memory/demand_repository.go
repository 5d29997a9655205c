package memory

import (
	"slotter/pkg/domain/entities"
	"slotter/pkg/domain/repositories"
)

// DemandRepository provides in-memory demand event storage
type DemandRepository struct {
	demands []*entities.DemandEvent
}

// NewDemandRepository creates a new in-memory demand repository
func NewDemandRepository() *DemandRepository {
	return &DemandRepository{
		demands: []*entities.DemandEvent{},
	}
}

// Verify interface compliance
var _ repositories.DemandRepository = (*DemandRepository)(nil)

// LoadDemands loads demand events into the repository
func (r *DemandRepository) LoadDemands(demands []*entities.DemandEvent) error {
	r.demands = append(r.demands, demands...)
	return nil
}

// GetDemands returns all demand events in input order. Ordering matters:
// the engine's stable sort breaks recency ties by this order.
func (r *DemandRepository) GetDemands() ([]*entities.DemandEvent, error) {
	return r.demands, nil
}

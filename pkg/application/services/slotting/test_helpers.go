package slotting

import (
	"time"

	"slotter/pkg/domain/entities"
)

// buildSmallWarehouse returns a fixture with two master bays:
// A01-03 with layout [Small, Small, Medium] and B02-07 with a single Large
// slot. Used across the engine and service tests.
func buildSmallWarehouse() []*entities.MasterLocation {
	return []*entities.MasterLocation{
		{Code: "A01-03-01", Aisle: "A01", BayNumber: "03", SlotType: "SHELF-S"},
		{Code: "A01-03-02", Aisle: "A01", BayNumber: "03", SlotType: "SHELF-S"},
		{Code: "A01-03-03", Aisle: "A01", BayNumber: "03", SlotType: "SHELF-M"},
		{Code: "B02-07-01", Aisle: "B02", BayNumber: "07", SlotType: "PALLET"},
	}
}

// demandAt builds one demand event; day counts from a fixed base date so
// tests can express recency as simple integers
func demandAt(article entities.ArticleNumber, locationCode string, day int) *entities.DemandEvent {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &entities.DemandEvent{
		Article:      article,
		LocationCode: locationCode,
		PickedAt:     base.AddDate(0, 0, day),
		Quantity:     1,
		OrderRef:     "TEST",
	}
}

// undatedDemand builds a demand event whose source date was unparsable
func undatedDemand(article entities.ArticleNumber, locationCode string) *entities.DemandEvent {
	return &entities.DemandEvent{
		Article:      article,
		LocationCode: locationCode,
		Quantity:     1,
		OrderRef:     "TEST",
	}
}

package entities

import "time"

// DemandEvent represents one historical pick. Events are read-only;
// a zero PickedAt means the source date was unparsable and the event
// sorts as the oldest possible value.
type DemandEvent struct {
	Article      ArticleNumber
	LocationCode string
	PickedAt     time.Time
	Quantity     int64
	OrderRef     string
}

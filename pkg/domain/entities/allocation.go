package entities

import "time"

// ReasonCapacityExhausted is the reason recorded on every overflow
const ReasonCapacityExhausted = "capacity exhausted"

// AllocationRecord represents one article->bay assignment. At most one
// record exists per (article, bay) pair.
type AllocationRecord struct {
	Article        ArticleNumber
	BayCode        string
	SizeClass      SizeClass
	SourceLocation string
	BayProvenance  Provenance
}

// OverflowRecord represents a demand event that could not be allocated
// because its target bay/size had no remaining capacity. Overflow is an
// expected terminal state, not an error.
type OverflowRecord struct {
	Article        ArticleNumber
	BayCode        string
	SizeClass      SizeClass
	SourceLocation string
	PickedAt       time.Time
	Reason         string
}

package entities

import "github.com/shopspring/decimal"

// SizeClass represents a standardized slot capacity category
type SizeClass int

const (
	Small SizeClass = iota
	Medium
	Large
)

// Weight returns the external capacity weight of a size class.
// Weights are for rendering only; allocation compares classes by identity.
func (s SizeClass) Weight() decimal.Decimal {
	switch s {
	case Small:
		return decimal.NewFromFloat(0.25)
	case Medium:
		return decimal.NewFromFloat(0.50)
	case Large:
		return decimal.NewFromInt(1)
	default:
		return decimal.Zero
	}
}

// Valid reports whether the size class is one of the three defined classes
func (s SizeClass) Valid() bool {
	return s == Small || s == Medium || s == Large
}

// String method for SizeClass enum
func (s SizeClass) String() string {
	switch s {
	case Small:
		return "Small"
	case Medium:
		return "Medium"
	case Large:
		return "Large"
	default:
		return "Unknown"
	}
}

// Provenance records whether a location came from the location master
// or was synthesized from demand data
type Provenance int

const (
	FromMaster Provenance = iota
	Synthesized
)

// String method for Provenance enum
func (p Provenance) String() string {
	switch p {
	case FromMaster:
		return "FromMaster"
	case Synthesized:
		return "Synthesized"
	default:
		return "Unknown"
	}
}

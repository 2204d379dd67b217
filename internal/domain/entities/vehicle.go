package entities

import "strconv"

// SizeSource tells where a resolved square footage came from.
type SizeSource string

const (
	SizeSourceExact              SizeSource = "exact"
	SizeSourcePattern            SizeSource = "pattern"
	SizeSourceCommercialFallback SizeSource = "commercial_fallback"
	SizeSourceGenericFallback    SizeSource = "generic_fallback"
	SizeSourceDefaultFallback    SizeSource = "default_fallback"
)

// RequiresReview reports whether quotes priced from this source need a human
// to confirm the vehicle size.
func (s SizeSource) RequiresReview() bool {
	return s == SizeSourceCommercialFallback || s == SizeSourceDefaultFallback
}

// VehicleSize is one row of the vehicle_dimensions reference table.
// YearStart/YearEnd are inclusive; nil means unbounded. Rank keeps the table
// order once rows live in an unordered store.
type VehicleSize struct {
	Rank      int     `json:"rank,omitempty" yaml:"-" dynamodbav:"rank"`
	Make      string  `json:"make" yaml:"make" dynamodbav:"make"`
	Model     string  `json:"model" yaml:"model" dynamodbav:"model"`
	YearStart *int    `json:"year_start,omitempty" yaml:"year_start,omitempty" dynamodbav:"year_start,omitempty"`
	YearEnd   *int    `json:"year_end,omitempty" yaml:"year_end,omitempty" dynamodbav:"year_end,omitempty"`
	SideSqft  float64 `json:"side_sqft" yaml:"side_sqft" dynamodbav:"side_sqft"`
	BackSqft  float64 `json:"back_sqft" yaml:"back_sqft" dynamodbav:"back_sqft"`
	HoodSqft  float64 `json:"hood_sqft" yaml:"hood_sqft" dynamodbav:"hood_sqft"`
	RoofSqft  float64 `json:"roof_sqft" yaml:"roof_sqft" dynamodbav:"roof_sqft"`
	TotalSqft float64 `json:"total_sqft" yaml:"total_sqft" dynamodbav:"total_sqft"`
}

// CoversYear reports whether year falls inside the entry's range. An unknown
// year (0) matches every entry.
func (v VehicleSize) CoversYear(year int) bool {
	if year <= 0 {
		return true
	}
	if v.YearStart != nil && year < *v.YearStart {
		return false
	}
	if v.YearEnd != nil && year > *v.YearEnd {
		return false
	}
	return true
}

// ResolvedSize is the output of the vehicle size resolver.
type ResolvedSize struct {
	Sqft        float64    `json:"sqft"`
	Source      SizeSource `json:"source"`
	NeedsReview bool       `json:"needs_review"`
	Category    string     `json:"category,omitempty"`
	MatchedKey  string     `json:"matched_key,omitempty"`
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

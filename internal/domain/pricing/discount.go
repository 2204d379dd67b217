package pricing

import "strconv"

// VolumeTier is a fleet discount shown to customers in the quote email.
type VolumeTier struct {
	MinVehicles     int     `json:"min_vehicles"`
	MaxVehicles     int     `json:"max_vehicles,omitempty"`
	DiscountPercent float64 `json:"discount_percent"`
}

// Label renders "5-9 vehicles" or "25+ vehicles".
func (t VolumeTier) Label() string {
	if t.MaxVehicles <= 0 {
		return itoa(t.MinVehicles) + "+ vehicles"
	}
	return itoa(t.MinVehicles) + "-" + itoa(t.MaxVehicles) + " vehicles"
}

// DefaultVolumeTiers are display-only reference tiers.
func DefaultVolumeTiers() []VolumeTier {
	return []VolumeTier{
		{MinVehicles: 3, MaxVehicles: 4, DiscountPercent: 5},
		{MinVehicles: 5, MaxVehicles: 9, DiscountPercent: 10},
		{MinVehicles: 10, MaxVehicles: 24, DiscountPercent: 15},
		{MinVehicles: 25, DiscountPercent: 20},
	}
}

// ApplyVolumeDiscount is the place a fleet discount would be applied to a
// material cost. The tiers are advertised in quote emails but are not applied
// to quoted totals, so this returns materialCost unchanged until pricing
// decides otherwise.
func ApplyVolumeDiscount(materialCost float64, vehicleCount int, tiers []VolumeTier) float64 {
	_ = vehicleCount
	_ = tiers
	return materialCost
}

func itoa(v int) string { return strconv.Itoa(v) }

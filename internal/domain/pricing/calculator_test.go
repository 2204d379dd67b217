package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculator_ProductPriority(t *testing.T) {
	c := NewCalculator(DefaultPriceTable())

	cases := []struct {
		productType string
		rate        float64
		name        string
	}{
		{"3M Contour Cut", 6.92, "3M Contour Cut Graphics"},
		{"contour cut decals", 6.32, "Avery Contour Cut Graphics"},
		{"3M printed wrap", 6.32, "3M IJ180Cv3 Printed Wrap"},
		{"window perf", 5.32, "Window Perf 50/50"},
		{"Perforated film", 5.32, "Window Perf 50/50"},
		{"avery", 5.27, "Avery MPI 1105 Printed Wrap"},
		{"", 5.27, "Avery MPI 1105 Printed Wrap"},
		{"chrome delete", 5.27, "Avery MPI 1105 Printed Wrap"},
	}
	for _, tc := range cases {
		got := c.CalculateQuickQuote(100, tc.productType)
		assert.Equal(t, tc.rate, got.PricePerSqft, tc.productType)
		assert.Equal(t, tc.name, got.ProductName, tc.productType)
	}
}

func TestCalculator_MaterialCostRounding(t *testing.T) {
	c := NewCalculator(DefaultPriceTable())

	got := c.CalculateQuickQuote(300, "avery")
	assert.InDelta(t, 1581.00, got.MaterialCost, 0.0001)

	got = c.CalculateQuickQuote(123.456, "avery")
	assert.Equal(t, Round2(123.456*5.27), got.MaterialCost)
	assert.InDelta(t, 650.61, got.MaterialCost, 0.0001)
}

func TestCalculator_Deterministic(t *testing.T) {
	c := NewCalculator(DefaultPriceTable())
	first := c.CalculateQuickQuote(275, "3m")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.CalculateQuickQuote(275, "3m"))
	}
}

func TestCalculator_CustomTable(t *testing.T) {
	c := NewCalculator(PriceTable{
		Rules:   []PriceRule{{ProductName: "Gold", PricePerSqft: 10, AllOf: []string{"gold"}}},
		Default: PriceRule{ProductName: "Basic", PricePerSqft: 1},
	})
	assert.Equal(t, 100.0, c.CalculateQuickQuote(10, "GOLD leaf").MaterialCost)
	assert.Equal(t, 10.0, c.CalculateQuickQuote(10, "silver").MaterialCost)
}

func TestApplyVolumeDiscount_IsNoOp(t *testing.T) {
	tiers := DefaultVolumeTiers()
	for _, n := range []int{1, 3, 5, 10, 100} {
		assert.Equal(t, 1581.0, ApplyVolumeDiscount(1581, n, tiers))
	}
}

func TestVolumeTier_Label(t *testing.T) {
	assert.Equal(t, "5-9 vehicles", VolumeTier{MinVehicles: 5, MaxVehicles: 9}.Label())
	assert.Equal(t, "25+ vehicles", VolumeTier{MinVehicles: 25}.Label())
}

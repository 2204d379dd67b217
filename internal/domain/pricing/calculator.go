package pricing

import (
	"math"
	"strings"
)

// PriceRule selects a per-square-foot rate when every AllOf keyword and at
// least one AnyOf keyword (if any are listed) appear in the product type.
type PriceRule struct {
	ProductName  string
	PricePerSqft float64
	AllOf        []string
	AnyOf        []string
}

func (r PriceRule) matches(productType string) bool {
	for _, k := range r.AllOf {
		if !strings.Contains(productType, k) {
			return false
		}
	}
	if len(r.AnyOf) == 0 {
		return len(r.AllOf) > 0
	}
	for _, k := range r.AnyOf {
		if strings.Contains(productType, k) {
			return true
		}
	}
	return false
}

// PriceTable is an ordered rule list plus the default product.
type PriceTable struct {
	Rules   []PriceRule
	Default PriceRule
}

// DefaultPriceTable is the wholesale material price list.
func DefaultPriceTable() PriceTable {
	return PriceTable{
		Rules: []PriceRule{
			{ProductName: "3M Contour Cut Graphics", PricePerSqft: 6.92, AllOf: []string{"contour", "3m"}},
			{ProductName: "Avery Contour Cut Graphics", PricePerSqft: 6.32, AllOf: []string{"contour"}},
			{ProductName: "3M IJ180Cv3 Printed Wrap", PricePerSqft: 6.32, AllOf: []string{"3m"}},
			{ProductName: "Window Perf 50/50", PricePerSqft: 5.32, AnyOf: []string{"window", "perf"}},
		},
		Default: PriceRule{ProductName: "Avery MPI 1105 Printed Wrap", PricePerSqft: 5.27},
	}
}

// QuickQuote is the material-only price for an area.
type QuickQuote struct {
	MaterialCost float64 `json:"material_cost"`
	PricePerSqft float64 `json:"price_per_sqft"`
	ProductName  string  `json:"product_name"`
}

// Calculator prices an area against a PriceTable. It has no side effects.
type Calculator struct {
	table PriceTable
}

func NewCalculator(table PriceTable) *Calculator {
	return &Calculator{table: table}
}

// Rule returns the rule that applies to productType.
func (c *Calculator) Rule(productType string) PriceRule {
	pt := strings.ToLower(strings.TrimSpace(productType))
	if pt != "" {
		for _, r := range c.table.Rules {
			if r.matches(pt) {
				return r
			}
		}
	}
	return c.table.Default
}

// CalculateQuickQuote returns round(sqft × rate, 2). There is no labor and no
// markup in this number.
func (c *Calculator) CalculateQuickQuote(sqft float64, productType string) QuickQuote {
	r := c.Rule(productType)
	return QuickQuote{
		MaterialCost: Round2(sqft * r.PricePerSqft),
		PricePerSqft: r.PricePerSqft,
		ProductName:  r.ProductName,
	}
}

// Round2 rounds half away from zero to cents.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

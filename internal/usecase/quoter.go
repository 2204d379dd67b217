package usecase

import (
	"strings"

	"wrapcommand/internal/domain/entities"
	"wrapcommand/internal/domain/pricing"
	"wrapcommand/internal/infrastructure/metrics"
)

// QuoteInput is what a caller knows about the customer and the job.
type QuoteInput struct {
	Customer    entities.Customer
	Vehicle     entities.Vehicle
	ProductType string
	// ProductID is catalog provenance; it is stored on the pricing but does
	// not change the rate.
	ProductID   string
	ProductName string
	// ProductPrice, when positive, is a catalog price per square foot that
	// replaces the price-table rate.
	ProductPrice float64
}

// Quoter runs resolve -> price -> discount for one vehicle. It has no I/O.
type Quoter struct {
	resolver   *pricing.Resolver
	calculator *pricing.Calculator
	tiers      []pricing.VolumeTier
}

func NewQuoter(resolver *pricing.Resolver, calculator *pricing.Calculator, tiers []pricing.VolumeTier) *Quoter {
	return &Quoter{resolver: resolver, calculator: calculator, tiers: tiers}
}

func (q *Quoter) Price(in QuoteInput) entities.Pricing {
	size := q.resolver.Resolve(pricing.SizeQuery{Make: in.Vehicle.Make, Model: in.Vehicle.Model, Year: in.Vehicle.Year})
	metrics.SizeResolutions.WithLabelValues(string(size.Source)).Inc()

	quick := q.calculator.CalculateQuickQuote(size.Sqft, in.ProductType)
	if in.ProductPrice > 0 {
		quick.PricePerSqft = in.ProductPrice
		quick.MaterialCost = pricing.Round2(size.Sqft * in.ProductPrice)
		if name := strings.TrimSpace(in.ProductName); name != "" {
			quick.ProductName = name
		}
	}

	material := pricing.ApplyVolumeDiscount(quick.MaterialCost, 1, q.tiers)

	return entities.Pricing{
		ProductType:    in.ProductType,
		ProductID:      strings.TrimSpace(in.ProductID),
		ProductName:    quick.ProductName,
		Sqft:           size.Sqft,
		SqftSource:     size.Source,
		NeedsReview:    size.NeedsReview,
		SizeCategory:   size.Category,
		SizeMatchedKey: size.MatchedKey,
		PricePerSqft:   quick.PricePerSqft,
		MaterialCost:   material,
		LaborCost:      0,
		Margin:         0,
		TotalPrice:     material,
	}
}

package pricing

import (
	"regexp"
	"strings"

	"wrapcommand/internal/domain/entities"
)

// DefaultFallbackSqft is used when nothing else recognizes the vehicle.
const DefaultFallbackSqft = 275

// SizeQuery is the resolver input. Year 0 means unknown.
type SizeQuery struct {
	Make  string
	Model string
	Year  int
}

func (q SizeQuery) text() string {
	return strings.ToLower(strings.TrimSpace(q.Make + " " + q.Model))
}

// Strategy is one step of the resolution chain. Resolve reports false when
// the strategy has no opinion and the next one should run.
type Strategy interface {
	Name() string
	Resolve(q SizeQuery) (entities.ResolvedSize, bool)
}

// CategoryRule maps a regex to a fixed area.
type CategoryRule struct {
	Category string
	Pattern  *regexp.Regexp
	Sqft     float64
}

// CommercialRules are checked before GenericRules so that a heavy-duty
// designator wins over a plain truck token.
var CommercialRules = []CategoryRule{
	{Category: "hd_truck", Pattern: regexp.MustCompile(`(^|\D)(4500|5500|6500)(\D|$)`), Sqft: 300},
	{Category: "box_truck", Pattern: regexp.MustCompile(`cab ?over|\bbox\b|box ?truck|\bcube\b|\bnpr\b|\bnqr\b|\bnrr\b|\bhino\b|\bisuzu\b|\bfuso\b|freightliner|\binternational\b|kenworth|peterbilt`), Sqft: 450},
	{Category: "commercial_van", Pattern: regexp.MustCompile(`\bvan\b|sprinter|transit|promaster|\bexpress\b|savana|\bnv\d{3,4}\b|metris|econoline|e-?series|cargo`), Sqft: 400},
	{Category: "chassis_cab", Pattern: regexp.MustCompile(`chassis|flat ?bed|\bdump\b|utility|stake ?bed|service body`), Sqft: 250},
}

// GenericRules give lower estimates that do not need review.
var GenericRules = []CategoryRule{
	{Category: "truck", Pattern: regexp.MustCompile(`truck|pickup|crew ?cab|(extended|regular|double|quad) cab`), Sqft: 250},
	{Category: "suv", Pattern: regexp.MustCompile(`\bsuv\b|crossover|sport utility`), Sqft: 225},
}

// ExactMatch looks the normalized model up in the vehicle table.
type ExactMatch struct{ Table *VehicleTable }

func (ExactMatch) Name() string { return "exact" }

func (s ExactMatch) Resolve(q SizeQuery) (entities.ResolvedSize, bool) {
	e, ok := s.Table.lookup(q.Make, q.Model, q.Year)
	if !ok {
		return entities.ResolvedSize{}, false
	}
	return entities.ResolvedSize{Sqft: e.TotalSqft, Source: entities.SizeSourceExact, MatchedKey: e.Make + " " + e.Model}, true
}

// SubstringMatch takes the first table key contained in the input, or
// containing it.
type SubstringMatch struct{ Table *VehicleTable }

func (SubstringMatch) Name() string { return "pattern" }

func (s SubstringMatch) Resolve(q SizeQuery) (entities.ResolvedSize, bool) {
	e, ok := s.Table.scan(q.Model, q.Year)
	if !ok {
		return entities.ResolvedSize{}, false
	}
	return entities.ResolvedSize{Sqft: e.TotalSqft, Source: entities.SizeSourcePattern, MatchedKey: e.Make + " " + e.Model}, true
}

// CommercialRegexMatch classifies commercial vehicles. Results need review.
type CommercialRegexMatch struct{ Rules []CategoryRule }

func (CommercialRegexMatch) Name() string { return "commercial_fallback" }

func (s CommercialRegexMatch) Resolve(q SizeQuery) (entities.ResolvedSize, bool) {
	return matchCategory(s.Rules, q, entities.SizeSourceCommercialFallback)
}

// GenericRegexMatch classifies generic trucks and SUVs.
type GenericRegexMatch struct{ Rules []CategoryRule }

func (GenericRegexMatch) Name() string { return "generic_fallback" }

func (s GenericRegexMatch) Resolve(q SizeQuery) (entities.ResolvedSize, bool) {
	return matchCategory(s.Rules, q, entities.SizeSourceGenericFallback)
}

// DefaultFallback always answers.
type DefaultFallback struct{ Sqft float64 }

func (DefaultFallback) Name() string { return "default_fallback" }

func (s DefaultFallback) Resolve(SizeQuery) (entities.ResolvedSize, bool) {
	sqft := s.Sqft
	if sqft <= 0 {
		sqft = DefaultFallbackSqft
	}
	return entities.ResolvedSize{Sqft: sqft, Source: entities.SizeSourceDefaultFallback, NeedsReview: true}, true
}

func matchCategory(rules []CategoryRule, q SizeQuery, source entities.SizeSource) (entities.ResolvedSize, bool) {
	text := q.text()
	if text == "" {
		return entities.ResolvedSize{}, false
	}
	for _, r := range rules {
		if r.Sqft > 0 && r.Pattern.MatchString(text) {
			return entities.ResolvedSize{
				Sqft:        r.Sqft,
				Source:      source,
				NeedsReview: source.RequiresReview(),
				Category:    r.Category,
			}, true
		}
	}
	return entities.ResolvedSize{}, false
}

// Resolver runs strategies in order and returns the first answer.
type Resolver struct {
	strategies []Strategy
}

// NewResolver builds the standard chain over the given table.
func NewResolver(table *VehicleTable) *Resolver {
	return NewResolverWithStrategies(
		ExactMatch{Table: table},
		SubstringMatch{Table: table},
		CommercialRegexMatch{Rules: CommercialRules},
		GenericRegexMatch{Rules: GenericRules},
		DefaultFallback{Sqft: DefaultFallbackSqft},
	)
}

// NewResolverWithStrategies builds a custom chain. A DefaultFallback is
// appended so the chain always answers.
func NewResolverWithStrategies(strategies ...Strategy) *Resolver {
	out := make([]Strategy, 0, len(strategies)+1)
	out = append(out, strategies...)
	if len(out) == 0 {
		out = append(out, DefaultFallback{})
	} else if _, ok := out[len(out)-1].(DefaultFallback); !ok {
		out = append(out, DefaultFallback{})
	}
	return &Resolver{strategies: out}
}

// Strategies returns the names of the chain in evaluation order.
func (r *Resolver) Strategies() []string {
	names := make([]string, 0, len(r.strategies))
	for _, s := range r.strategies {
		names = append(names, s.Name())
	}
	return names
}

// Resolve never fails and never returns a non-positive area.
func (r *Resolver) Resolve(q SizeQuery) entities.ResolvedSize {
	for _, s := range r.strategies {
		res, ok := s.Resolve(q)
		if !ok || res.Sqft <= 0 {
			continue
		}
		res.NeedsReview = res.Source.RequiresReview()
		return res
	}
	res, _ := DefaultFallback{}.Resolve(q)
	return res
}

package pricing

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"wrapcommand/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

//go:embed vehicles.yaml
var defaultVehiclesYAML []byte

var whitespaceRe = regexp.MustCompile(`\s+`)

// VehicleTable is an immutable, ordered view over the vehicle reference data.
// Build it once and share it; it is safe for concurrent reads.
type VehicleTable struct {
	entries []entities.VehicleSize
	compact []string
	index   map[string][]int
}

// NewVehicleTable indexes entries in the given order. Entries without a model
// or with a non-positive total are skipped.
func NewVehicleTable(entries []entities.VehicleSize) *VehicleTable {
	t := &VehicleTable{index: map[string][]int{}}
	for _, e := range entries {
		if strings.TrimSpace(e.Model) == "" || e.TotalSqft <= 0 {
			continue
		}
		pos := len(t.entries)
		t.entries = append(t.entries, e)
		t.compact = append(t.compact, compactKey(e.Model))
		for _, k := range uniqueVariants(e.Model) {
			t.index[k] = append(t.index[k], pos)
		}
	}
	return t
}

// DefaultVehicleTable returns the table built from the embedded reference file.
func DefaultVehicleTable() (*VehicleTable, error) {
	return ParseVehicleTable(defaultVehiclesYAML)
}

// ParseVehicleTable decodes a YAML list of vehicle sizes.
func ParseVehicleTable(raw []byte) (*VehicleTable, error) {
	entries, err := ParseVehicleEntries(raw)
	if err != nil {
		return nil, err
	}
	return NewVehicleTable(entries), nil
}

// ParseVehicleEntries decodes rows without indexing them, in file order.
func ParseVehicleEntries(raw []byte) ([]entities.VehicleSize, error) {
	var entries []entities.VehicleSize
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode vehicle table: %w", err)
	}
	return entries, nil
}

// DefaultVehicleEntries returns the embedded reference rows, for seeding the
// vehicle_dimensions table.
func DefaultVehicleEntries() ([]entities.VehicleSize, error) {
	return ParseVehicleEntries(defaultVehiclesYAML)
}

func (t *VehicleTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Entries returns a copy of the rows in table order.
func (t *VehicleTable) Entries() []entities.VehicleSize {
	if t == nil {
		return nil
	}
	out := make([]entities.VehicleSize, len(t.entries))
	copy(out, t.entries)
	return out
}

// lookup returns the first indexed entry for any of the model's variants that
// covers the year, preferring rows from the same make.
func (t *VehicleTable) lookup(vehicleMake, model string, year int) (entities.VehicleSize, bool) {
	if t == nil {
		return entities.VehicleSize{}, false
	}
	var fallback *entities.VehicleSize
	for _, k := range modelVariants(model) {
		for _, pos := range t.index[k] {
			e := t.entries[pos]
			if !e.CoversYear(year) {
				continue
			}
			if vehicleMake == "" || strings.EqualFold(strings.TrimSpace(vehicleMake), e.Make) {
				return e, true
			}
			if fallback == nil {
				fallback = &t.entries[pos]
			}
		}
	}
	if fallback != nil {
		return *fallback, true
	}
	return entities.VehicleSize{}, false
}

// scan returns the first entry, in table order, whose compact model contains
// the input or is contained by it.
func (t *VehicleTable) scan(model string, year int) (entities.VehicleSize, bool) {
	if t == nil {
		return entities.VehicleSize{}, false
	}
	in := compactKey(model)
	if in == "" {
		return entities.VehicleSize{}, false
	}
	for i, key := range t.compact {
		if !t.entries[i].CoversYear(year) {
			continue
		}
		if strings.Contains(in, key) || (len(in) >= minReverseMatchLen && strings.Contains(key, in)) {
			return t.entries[i], true
		}
	}
	return entities.VehicleSize{}, false
}

// minReverseMatchLen keeps one- and two-letter inputs from matching every key
// that happens to contain them.
const minReverseMatchLen = 3

// modelVariants returns the single-spaced, no-space and hyphen-normalized
// forms of a model string.
func modelVariants(model string) []string {
	spaced := strings.TrimSpace(whitespaceRe.ReplaceAllString(strings.ToLower(model), " "))
	if spaced == "" {
		return nil
	}
	noSpace := strings.ReplaceAll(spaced, " ", "")
	hyphen := strings.ReplaceAll(noSpace, "-", "")
	return []string{noSpace, spaced, hyphen}
}

func uniqueVariants(model string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, 3)
	for _, v := range modelVariants(model) {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func compactKey(model string) string {
	v := modelVariants(model)
	if len(v) == 0 {
		return ""
	}
	return v[2]
}

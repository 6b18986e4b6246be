package entity

// DefaultPriceCeiling mirrors the storefront slider maximum; a range of
// [0, DefaultPriceCeiling] counts as "no price filter".
const DefaultPriceCeiling = 1000

// FilterState is the value object driving inventory derivation. It is
// replaced wholesale on every change, never mutated field by field.
// Expansion always holds the expansion id, not a display name; names are
// resolved at render time only.
type FilterState struct {
	CardType    string     `json:"card_type" query:"card_type"`
	Rarity      string     `json:"rarity" query:"rarity"`
	Condition   string     `json:"condition" query:"condition"`
	Expansion   string     `json:"expansion" query:"expansion"`
	Language    string     `json:"language" query:"language"`
	PriceRange  [2]float64 `json:"price_range"`
	ReverseOnly bool       `json:"reverse_only" query:"reverse_only"`
}

// DefaultFilterState returns the all-empty state the storefront starts
// with and resets to.
func DefaultFilterState() FilterState {
	return FilterState{
		PriceRange: [2]float64{0, DefaultPriceCeiling},
	}
}

// Normalize enforces the FilterState invariants at construction time so
// the engine never sees a malformed range: bounds are non-negative and
// low <= high.
func (f FilterState) Normalize() FilterState {
	if f.PriceRange[0] < 0 {
		f.PriceRange[0] = 0
	}
	if f.PriceRange[1] < 0 {
		f.PriceRange[1] = 0
	}
	if f.PriceRange[0] > f.PriceRange[1] {
		f.PriceRange[0], f.PriceRange[1] = f.PriceRange[1], f.PriceRange[0]
	}
	return f
}

// ActiveCount reports how many filters differ from their defaults, for
// the storefront's filter badge.
func (f FilterState) ActiveCount() int {
	count := 0
	if f.CardType != "" {
		count++
	}
	if f.Rarity != "" {
		count++
	}
	if f.Condition != "" {
		count++
	}
	if f.Expansion != "" {
		count++
	}
	if f.Language != "" {
		count++
	}
	if f.ReverseOnly {
		count++
	}
	if f.PriceRange[0] > 0 || f.PriceRange[1] < DefaultPriceCeiling {
		count++
	}
	return count
}

// SortOption orders the filtered inventory.
type SortOption string

const (
	SortNone       SortOption = ""
	SortNameAsc    SortOption = "name-asc"
	SortNameDesc   SortOption = "name-desc"
	SortNumberAsc  SortOption = "number-asc"
	SortNumberDesc SortOption = "number-desc"
)

// Valid reports whether s is one of the known sort options.
func (s SortOption) Valid() bool {
	switch s {
	case SortNone, SortNameAsc, SortNameDesc, SortNumberAsc, SortNumberDesc:
		return true
	}
	return false
}

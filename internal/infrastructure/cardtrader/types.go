package cardtrader

import (
	"fmt"
	"strconv"
)

// Product is one listing in the products export. Prices arrive in cents;
// properties_hash carries the game-specific attributes.
type Product struct {
	ID             int64            `json:"id"`
	NameEN         string           `json:"name_en"`
	PriceCents     int64            `json:"price_cents"`
	BlueprintID    int              `json:"blueprint_id"`
	Quantity       int              `json:"quantity"`
	Expansion      ProductExpansion `json:"expansion"`
	PropertiesHash Properties       `json:"properties_hash"`
}

type ProductExpansion struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Properties is the subset of properties_hash the storefront uses.
// CollectorNumber is sometimes a JSON number, sometimes a string like
// "TG12", so it decodes loosely.
type Properties struct {
	Condition       string      `json:"condition"`
	PokemonRarity   string      `json:"pokemon_rarity"`
	CollectorNumber interface{} `json:"collector_number"`
	PokemonLanguage string      `json:"pokemon_language"`
	PokemonReverse  bool        `json:"pokemon_reverse"`
}

// CollectorNumberString normalizes the loose collector_number field to a
// string, empty when absent.
func (p Properties) CollectorNumberString() string {
	switch v := p.CollectorNumber.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Expansion is one entry in the expansions export.
type Expansion struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

package entity

import "strings"

// CardType is derived from the English card name; CardTrader does not
// expose it as a structured field.
const (
	CardTypePokemon = "Pokémon"
	CardTypeTrainer = "Dresseur"
	CardTypeEnergy  = "Énergie"
)

// ConditionUnspecified is the sentinel used when the marketplace listing
// carries no condition.
const ConditionUnspecified = "Non spécifiée"

var Conditions = []string{"Mint", "Near Mint", "Excellent", "Good", "Light Played", "Played", "Poor"}

// Card is a single marketplace listing. It is immutable once fetched;
// every visible view of the inventory is derived by non-destructive
// filtering and sorting, never by mutating the source slice.
type Card struct {
	ID              string  `json:"id" firestore:"id"`
	NameEN          string  `json:"name_en" firestore:"nameEn"`
	NameFR          string  `json:"name_fr,omitempty" firestore:"nameFr,omitempty"`
	Price           float64 `json:"price" firestore:"price"`
	ImageURL        string  `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	Condition       string  `json:"condition" firestore:"condition"`
	Expansion       string  `json:"expansion" firestore:"expansion"`
	ExpansionID     string  `json:"expansion_id" firestore:"expansionId"`
	Rarity          string  `json:"rarity,omitempty" firestore:"rarity,omitempty"`
	BlueprintID     int     `json:"blueprint_id,omitempty" firestore:"blueprintId,omitempty"`
	Quantity        int     `json:"quantity" firestore:"quantity"`
	CollectorNumber string  `json:"collector_number,omitempty" firestore:"collectorNumber,omitempty"`
	Language        string  `json:"language" firestore:"language"`
	IsReverse       bool    `json:"is_reverse" firestore:"isReverse"`
}

// Type classifies the card from name substrings: "Energy" and "Trainer"
// listings are always named that way in the CardTrader export.
func (c Card) Type() string {
	if strings.Contains(c.NameEN, "Energy") {
		return CardTypeEnergy
	}
	if strings.Contains(c.NameEN, "Trainer") {
		return CardTypeTrainer
	}
	return CardTypePokemon
}

// DisplayName prefers the French name when one was resolved.
func (c Card) DisplayName() string {
	if c.NameFR != "" {
		return c.NameFR
	}
	return c.NameEN
}

var languageLabels = map[string]string{
	"en": "Anglais",
	"fr": "Français",
	"de": "Allemand",
	"es": "Espagnol",
	"it": "Italien",
	"pt": "Portugais",
	"jp": "Japonais",
	"ko": "Coréen",
	"cn": "Chinois",
	"ru": "Russe",
}

// LanguageLabel returns the French label for a language code; unknown
// codes display as their uppercase form.
func LanguageLabel(code string) string {
	if code == "" {
		return ""
	}
	if label, ok := languageLabels[code]; ok {
		return label
	}
	return strings.ToUpper(code)
}

// Series is a named release set from the TCGdex catalog.
type Series struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	CardCount   int    `json:"cardCount,omitempty"`
}

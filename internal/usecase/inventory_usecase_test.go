package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cardplanet/internal/domain/entity"
)

func sampleInventory() []entity.Card {
	return []entity.Card{
		{ID: "a", NameEN: "Pikachu", NameFR: "Pikachu", Price: 10, ExpansionID: "base1", Expansion: "Set de Base", Condition: "Mint", Language: "en", Quantity: 3, CollectorNumber: "25"},
		{ID: "b", NameEN: "Charizard", NameFR: "Dracaufeu", Price: 120, ExpansionID: "base1", Expansion: "Set de Base", Condition: "Near Mint", Language: "fr", Quantity: 1, CollectorNumber: "4", Rarity: "Holo Rare"},
		{ID: "c", NameEN: "Fire Energy", Price: 0.5, ExpansionID: "swsh1", Expansion: "Épée et Bouclier", Condition: "Excellent", Language: "en", Quantity: 10, CollectorNumber: ""},
		{ID: "d", NameEN: "Boss Trainer", Price: 3, ExpansionID: "swsh1", Expansion: "Épée et Bouclier", Condition: "Good", Language: "jp", Quantity: 2, CollectorNumber: "TG12", IsReverse: true},
		{ID: "e", NameEN: "Eevee", NameFR: "Évoli", Price: 8, ExpansionID: "swsh1", Expansion: "Épée et Bouclier", Condition: "Mint", Language: "en", Quantity: 5, CollectorNumber: "11"},
	}
}

func TestDeriveVisibleInventoryIdentity(t *testing.T) {
	inventory := sampleInventory()

	result := DeriveVisibleInventory(inventory, entity.DefaultFilterState(), entity.SortNone, "")

	assert.Equal(t, inventory, result)
}

func TestDeriveVisibleInventoryDoesNotMutateInput(t *testing.T) {
	inventory := sampleInventory()
	original := make([]entity.Card, len(inventory))
	copy(original, inventory)

	DeriveVisibleInventory(inventory, entity.DefaultFilterState(), entity.SortNameDesc, "pika")

	assert.Equal(t, original, inventory)
}

func TestDeriveVisibleInventoryIdempotent(t *testing.T) {
	inventory := sampleInventory()
	filters := entity.DefaultFilterState()
	filters.Expansion = "swsh1"

	first := DeriveVisibleInventory(inventory, filters, entity.SortNameAsc, "")
	second := DeriveVisibleInventory(inventory, filters, entity.SortNameAsc, "")

	assert.Equal(t, first, second)
}

func TestFilterByExpansionID(t *testing.T) {
	filters := entity.DefaultFilterState()
	filters.Expansion = "base1"

	result := DeriveVisibleInventory(sampleInventory(), filters, entity.SortNone, "")

	assert.Len(t, result, 2)
	for _, card := range result {
		assert.Equal(t, "base1", card.ExpansionID)
	}
}

func TestFilterByCardType(t *testing.T) {
	inventory := sampleInventory()

	filters := entity.DefaultFilterState()
	filters.CardType = entity.CardTypeEnergy
	result := DeriveVisibleInventory(inventory, filters, entity.SortNone, "")
	assert.Len(t, result, 1)
	assert.Equal(t, "c", result[0].ID)

	filters.CardType = entity.CardTypeTrainer
	result = DeriveVisibleInventory(inventory, filters, entity.SortNone, "")
	assert.Len(t, result, 1)
	assert.Equal(t, "d", result[0].ID)

	filters.CardType = entity.CardTypePokemon
	result = DeriveVisibleInventory(inventory, filters, entity.SortNone, "")
	assert.Len(t, result, 3)
}

func TestFilterByPriceRange(t *testing.T) {
	filters := entity.DefaultFilterState()
	filters.PriceRange = [2]float64{1, 20}

	result := DeriveVisibleInventory(sampleInventory(), filters, entity.SortNone, "")

	assert.NotEmpty(t, result)
	for _, card := range result {
		assert.GreaterOrEqual(t, card.Price, 1.0)
		assert.LessOrEqual(t, card.Price, 20.0)
	}
}

func TestFilterPriceRangeBoundsInclusive(t *testing.T) {
	filters := entity.DefaultFilterState()
	filters.PriceRange = [2]float64{10, 120}

	result := DeriveVisibleInventory(sampleInventory(), filters, entity.SortNone, "")

	ids := make([]string, 0, len(result))
	for _, card := range result {
		ids = append(ids, card.ID)
	}
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestFilterInvertedPriceRangeIsNormalized(t *testing.T) {
	filters := entity.DefaultFilterState()
	filters.PriceRange = [2]float64{20, 1}

	result := DeriveVisibleInventory(sampleInventory(), filters, entity.SortNone, "")

	for _, card := range result {
		assert.GreaterOrEqual(t, card.Price, 1.0)
		assert.LessOrEqual(t, card.Price, 20.0)
	}
}

func TestFilterReverseOnly(t *testing.T) {
	filters := entity.DefaultFilterState()
	filters.ReverseOnly = true

	result := DeriveVisibleInventory(sampleInventory(), filters, entity.SortNone, "")

	assert.Len(t, result, 1)
	assert.Equal(t, "d", result[0].ID)
}

func TestFilterByLanguage(t *testing.T) {
	filters := entity.DefaultFilterState()
	filters.Language = "jp"

	result := DeriveVisibleInventory(sampleInventory(), filters, entity.SortNone, "")

	assert.Len(t, result, 1)
	assert.Equal(t, "d", result[0].ID)
}

func TestSearchMatchesEitherName(t *testing.T) {
	inventory := sampleInventory()

	result := DeriveVisibleInventory(inventory, entity.DefaultFilterState(), entity.SortNone, "dracau")
	assert.Len(t, result, 1)
	assert.Equal(t, "b", result[0].ID)

	result = DeriveVisibleInventory(inventory, entity.DefaultFilterState(), entity.SortNone, "CHARIZARD")
	assert.Len(t, result, 1)
	assert.Equal(t, "b", result[0].ID)
}

func TestScenarioExpansionAndPriceRange(t *testing.T) {
	inventory := []entity.Card{
		{ID: "a", Price: 10, ExpansionID: "Base", Condition: "Mint", Language: "en", Quantity: 3},
	}

	filters := entity.DefaultFilterState()
	filters.Expansion = "Base"
	filters.PriceRange = [2]float64{0, 100}

	result := DeriveVisibleInventory(inventory, filters, entity.SortNone, "")
	assert.Len(t, result, 1)
	assert.Equal(t, "a", result[0].ID)

	filters.PriceRange = [2]float64{20, 100}
	result = DeriveVisibleInventory(inventory, filters, entity.SortNone, "")
	assert.Empty(t, result)
}

func TestSortByName(t *testing.T) {
	result := DeriveVisibleInventory(sampleInventory(), entity.DefaultFilterState(), entity.SortNameAsc, "")

	names := make([]string, 0, len(result))
	for _, card := range result {
		names = append(names, card.DisplayName())
	}
	assert.Equal(t, []string{"Boss Trainer", "Dracaufeu", "Évoli", "Fire Energy", "Pikachu"}, names)

	result = DeriveVisibleInventory(sampleInventory(), entity.DefaultFilterState(), entity.SortNameDesc, "")
	assert.Equal(t, "Pikachu", result[0].DisplayName())
}

func TestSortByCollectorNumber(t *testing.T) {
	result := DeriveVisibleInventory(sampleInventory(), entity.DefaultFilterState(), entity.SortNumberAsc, "")

	ids := make([]string, 0, len(result))
	for _, card := range result {
		ids = append(ids, card.ID)
	}
	// Numbered cards first in numeric order, then the unknown bucket
	// ("" and "TG12") in input order.
	assert.Equal(t, []string{"b", "e", "a", "c", "d"}, ids)

	result = DeriveVisibleInventory(sampleInventory(), entity.DefaultFilterState(), entity.SortNumberDesc, "")
	ids = ids[:0]
	for _, card := range result {
		ids = append(ids, card.ID)
	}
	assert.Equal(t, []string{"a", "e", "b", "c", "d"}, ids)
}

func TestSortStabilityForEqualNumbers(t *testing.T) {
	inventory := []entity.Card{
		{ID: "x", CollectorNumber: "7"},
		{ID: "y", CollectorNumber: ""},
		{ID: "z", CollectorNumber: "7"},
		{ID: "w", CollectorNumber: "bad"},
	}

	result := DeriveVisibleInventory(inventory, entity.DefaultFilterState(), entity.SortNumberAsc, "")

	ids := make([]string, 0, len(result))
	for _, card := range result {
		ids = append(ids, card.ID)
	}
	assert.Equal(t, []string{"x", "z", "y", "w"}, ids)
}

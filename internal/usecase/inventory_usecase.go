package usecase

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"cardplanet/internal/domain/entity"
)

// InventoryUseCase exposes the visible-inventory derivation over the
// catalog snapshot.
type InventoryUseCase struct {
	catalog *CatalogUseCase
}

func NewInventoryUseCase(catalog *CatalogUseCase) *InventoryUseCase {
	return &InventoryUseCase{catalog: catalog}
}

// Visible returns the filtered, ordered inventory for the given filter
// state, sort option and search text.
func (uc *InventoryUseCase) Visible(ctx context.Context, filters entity.FilterState, sortOption entity.SortOption, search string) ([]entity.Card, error) {
	cards, err := uc.catalog.Inventory(ctx)
	if err != nil {
		return nil, err
	}
	return DeriveVisibleInventory(cards, filters, sortOption, search), nil
}

// DeriveVisibleInventory derives the visible subset of the inventory and
// its order. It is a pure function: the input slice is never mutated,
// filters are a conjunction of independent predicates (each a no-op at
// its default value), and sorting is stable.
func DeriveVisibleInventory(cards []entity.Card, filters entity.FilterState, sortOption entity.SortOption, search string) []entity.Card {
	filters = filters.Normalize()
	search = strings.ToLower(strings.TrimSpace(search))

	visible := make([]entity.Card, 0, len(cards))
	for _, card := range cards {
		if matches(card, filters, search) {
			visible = append(visible, card)
		}
	}

	sortCards(visible, sortOption)
	return visible
}

func matches(card entity.Card, filters entity.FilterState, search string) bool {
	// Expansion filters match on the id; display names are not stable
	// across translations.
	if filters.Expansion != "" && card.ExpansionID != filters.Expansion {
		return false
	}
	if filters.CardType != "" && !matchesCardType(card, filters.CardType) {
		return false
	}
	if filters.Rarity != "" && card.Rarity != filters.Rarity {
		return false
	}
	if filters.Condition != "" && card.Condition != filters.Condition {
		return false
	}
	if filters.Language != "" && card.Language != filters.Language {
		return false
	}
	if filters.ReverseOnly && !card.IsReverse {
		return false
	}
	if card.Price < filters.PriceRange[0] || card.Price > filters.PriceRange[1] {
		return false
	}
	if search != "" {
		if !strings.Contains(strings.ToLower(card.NameEN), search) &&
			!(card.NameFR != "" && strings.Contains(strings.ToLower(card.NameFR), search)) {
			return false
		}
	}
	return true
}

func matchesCardType(card entity.Card, cardType string) bool {
	switch cardType {
	case entity.CardTypePokemon, entity.CardTypeTrainer, entity.CardTypeEnergy:
		return card.Type() == cardType
	default:
		// Unknown filter values never constrain.
		return true
	}
}

func sortCards(cards []entity.Card, sortOption entity.SortOption) {
	switch sortOption {
	case entity.SortNameAsc, entity.SortNameDesc:
		// Collators are not safe for concurrent use; build one per call.
		collator := collate.New(language.French, collate.Loose)
		sort.SliceStable(cards, func(i, j int) bool {
			cmp := collator.CompareString(cards[i].DisplayName(), cards[j].DisplayName())
			if sortOption == entity.SortNameDesc {
				return cmp > 0
			}
			return cmp < 0
		})
	case entity.SortNumberAsc, entity.SortNumberDesc:
		sort.SliceStable(cards, func(i, j int) bool {
			return numberLess(cards[i], cards[j], sortOption == entity.SortNumberDesc)
		})
	}
	// SortNone preserves input order.
}

// numberLess orders by parsed collector number. Cards with a missing or
// non-numeric number form a distinct bucket that always sorts after the
// numbered cards, in both directions, keeping their relative input order.
func numberLess(a, b entity.Card, desc bool) bool {
	av, aok := collectorNumber(a)
	bv, bok := collectorNumber(b)

	if aok && bok {
		if desc {
			return av > bv
		}
		return av < bv
	}
	return aok && !bok
}

func collectorNumber(card entity.Card) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(card.CollectorNumber))
	if err != nil {
		return 0, false
	}
	return n, true
}

package usecase

import (
	"context"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"sync"

	"cardplanet/internal/domain/entity"
	"cardplanet/internal/domain/service"
	"cardplanet/internal/infrastructure/cache"
	"cardplanet/internal/infrastructure/cardtrader"
	"cardplanet/internal/infrastructure/pokeapi"
	"cardplanet/internal/infrastructure/tcgdex"
	"cardplanet/pkg/errors"
	"cardplanet/pkg/logger"
)

const (
	inventoryCacheKey  = "catalog:inventory"
	expansionsCacheKey = "catalog:expansions"
	seriesCacheKey     = "catalog:series"

	recentSeriesCount = 12
)

// CatalogUseCase fetches and normalizes the marketplace catalog. Every
// remote failure degrades to empty or untranslated values; nothing here
// surfaces a fetch failure to the storefront as a hard error.
type CatalogUseCase struct {
	cardTrader *cardtrader.Client
	tcgdex     *tcgdex.Client
	pokeAPI    *pokeapi.Client
	resolver   *service.NameResolver
	cache      *cache.CatalogCache

	mu sync.Mutex
}

func NewCatalogUseCase(
	cardTraderClient *cardtrader.Client,
	tcgdexClient *tcgdex.Client,
	pokeAPIClient *pokeapi.Client,
	resolver *service.NameResolver,
	catalogCache *cache.CatalogCache,
) *CatalogUseCase {
	return &CatalogUseCase{
		cardTrader: cardTraderClient,
		tcgdex:     tcgdexClient,
		pokeAPI:    pokeAPIClient,
		resolver:   resolver,
		cache:      catalogCache,
	}
}

// Series returns the French set catalog, empty on failure.
func (uc *CatalogUseCase) Series(ctx context.Context) ([]entity.Series, error) {
	var series []entity.Series
	if err := uc.cache.GetJSON(ctx, seriesCacheKey, &series); err == nil {
		return series, nil
	}

	series, err := uc.tcgdex.Sets(ctx)
	if err != nil {
		logger.LogFetchError("tcgdex", "sets", err)
		return []entity.Series{}, nil
	}

	uc.cache.SetJSON(ctx, seriesCacheKey, series)
	return series, nil
}

// SeriesView applies the home-page search and tab selection: "recent"
// keeps the latest releases, "popular" samples the catalog.
func (uc *CatalogUseCase) SeriesView(ctx context.Context, search, tab string) ([]entity.Series, error) {
	series, err := uc.Series(ctx)
	if err != nil {
		return nil, err
	}

	if search != "" {
		needle := strings.ToLower(search)
		filtered := make([]entity.Series, 0, len(series))
		for _, s := range series {
			if strings.Contains(strings.ToLower(s.Name), needle) {
				filtered = append(filtered, s)
			}
		}
		series = filtered
	}

	switch tab {
	case "recent":
		dated := make([]entity.Series, 0, len(series))
		for _, s := range series {
			if s.ReleaseDate != "" {
				dated = append(dated, s)
			}
		}
		sort.SliceStable(dated, func(i, j int) bool {
			return dated[i].ReleaseDate > dated[j].ReleaseDate
		})
		if len(dated) > recentSeriesCount {
			dated = dated[:recentSeriesCount]
		}
		series = dated
	case "popular":
		shuffled := make([]entity.Series, len(series))
		copy(shuffled, series)
		rand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		if len(shuffled) > recentSeriesCount {
			shuffled = shuffled[:recentSeriesCount]
		}
		series = shuffled
	}

	return series, nil
}

// Expansions maps expansion ids to display names, French where a
// translation exists, the marketplace name otherwise.
func (uc *CatalogUseCase) Expansions(ctx context.Context) (map[string]string, error) {
	var expansionMap map[string]string
	if err := uc.cache.GetJSON(ctx, expansionsCacheKey, &expansionMap); err == nil {
		return expansionMap, nil
	}

	expansions, err := uc.cardTrader.Expansions(ctx)
	if err != nil {
		logger.LogFetchError("cardtrader", "expansions", err)
		return map[string]string{}, nil
	}

	uc.populateResolver(ctx)

	expansionMap = make(map[string]string, len(expansions))
	for _, exp := range expansions {
		name := uc.resolver.Resolve(ctx, exp.ID)
		if name == exp.ID && exp.Name != "" {
			// No translation found; fall back to the marketplace name
			// rather than the raw id.
			name = exp.Name
		}
		expansionMap[exp.ID] = name
	}

	uc.cache.SetJSON(ctx, expansionsCacheKey, expansionMap)
	return expansionMap, nil
}

// Inventory returns the normalized inventory: prices in euros, defaults
// applied, expansion and card names resolved. Empty on fetch failure.
func (uc *CatalogUseCase) Inventory(ctx context.Context) ([]entity.Card, error) {
	var cards []entity.Card
	if err := uc.cache.GetJSON(ctx, inventoryCacheKey, &cards); err == nil {
		return cards, nil
	}

	products, err := uc.cardTrader.Products(ctx)
	if err != nil {
		logger.LogFetchError("cardtrader", "products", err)
		return []entity.Card{}, nil
	}

	expansionMap, err := uc.Expansions(ctx)
	if err != nil {
		return nil, err
	}

	frenchNames := make(map[string]string)
	cards = make([]entity.Card, 0, len(products))
	for _, product := range products {
		cards = append(cards, uc.normalize(ctx, product, expansionMap, frenchNames))
	}

	uc.cache.SetJSON(ctx, inventoryCacheKey, cards)
	return cards, nil
}

// CardByID finds one listing in the current inventory snapshot.
func (uc *CatalogUseCase) CardByID(ctx context.Context, id string) (*entity.Card, error) {
	cards, err := uc.Inventory(ctx)
	if err != nil {
		return nil, err
	}
	for i := range cards {
		if cards[i].ID == id {
			return &cards[i], nil
		}
	}
	return nil, errors.NotFound("Card", nil)
}

func (uc *CatalogUseCase) normalize(ctx context.Context, product cardtrader.Product, expansionMap map[string]string, frenchNames map[string]string) entity.Card {
	props := product.PropertiesHash

	condition := props.Condition
	if condition == "" {
		condition = entity.ConditionUnspecified
	}

	quantity := product.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	language := props.PokemonLanguage
	if language == "" {
		language = "en"
	}

	expansionName := expansionMap[product.Expansion.ID]
	if expansionName == "" {
		expansionName = product.Expansion.ID
	}

	return entity.Card{
		ID:              strconv.FormatInt(product.ID, 10),
		NameEN:          product.NameEN,
		NameFR:          uc.frenchCardName(ctx, product.NameEN, frenchNames),
		Price:           float64(product.PriceCents) / 100,
		ImageURL:        cardtrader.ImageURL(product.BlueprintID),
		Condition:       condition,
		Expansion:       expansionName,
		ExpansionID:     product.Expansion.ID,
		Rarity:          props.PokemonRarity,
		BlueprintID:     product.BlueprintID,
		Quantity:        quantity,
		CollectorNumber: props.CollectorNumberString(),
		Language:        language,
		IsReverse:       props.PokemonReverse,
	}
}

// frenchCardName resolves the localized card name, memoized per fetch so
// repeated listings of the same species cost one lookup.
func (uc *CatalogUseCase) frenchCardName(ctx context.Context, nameEN string, memo map[string]string) string {
	key := strings.ToLower(nameEN)
	if name, ok := memo[key]; ok {
		return name
	}

	name, err := uc.pokeAPI.SpeciesName(ctx, key)
	if err != nil {
		logger.LogFetchError("pokeapi", key, err)
		name = nameEN
	}
	if name == key {
		// Untranslated; keep the original casing.
		name = nameEN
	}

	memo[key] = name
	return name
}

// populateResolver lazily fills the translation cache from the bulk set
// list. Failures leave the cache empty; the resolver falls through to
// its remaining steps.
func (uc *CatalogUseCase) populateResolver(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.resolver.Cache().Len() > 0 {
		return
	}

	sets, err := uc.tcgdex.Sets(ctx)
	if err != nil {
		logger.LogFetchError("tcgdex", "sets", err)
		return
	}
	uc.resolver.Populate(sets)
}

package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"cardplanet/internal/adapter/api"
	"cardplanet/internal/adapter/api/handler"
	"cardplanet/internal/adapter/api/router"
	"cardplanet/internal/adapter/repository"
	"cardplanet/internal/domain/service"
	"cardplanet/internal/infrastructure/cache"
	"cardplanet/internal/infrastructure/cardtrader"
	"cardplanet/internal/infrastructure/pokeapi"
	"cardplanet/internal/infrastructure/tcgdex"
	"cardplanet/internal/infrastructure/websocket"
	"cardplanet/internal/usecase"
	"cardplanet/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	cartDB, err := repository.OpenCartDB(cfg.CartDatabasePath)
	if err != nil {
		log.Fatalf("Failed to open cart database: %v", err)
	}
	defer cartDB.Close()

	catalogCache := cache.NewCatalogCache(ctx, cfg.RedisAddr, cfg.CatalogCacheTTL)
	defer catalogCache.Close()

	cardTraderClient := cardtrader.NewClient(cfg.CardTraderBaseURL, cfg.CardTraderToken)
	tcgdexClient := tcgdex.NewClient(cfg.TCGdexBaseURL)
	pokeAPIClient := pokeapi.NewClient(cfg.PokeAPIBaseURL)

	resolver := service.NewNameResolver(service.NewTranslationCache(), tcgdexClient)

	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	cartRepo := repository.NewSQLiteCartRepository(cartDB)

	hub := websocket.NewHub()
	hub.Start(ctx)

	catalogUseCase := usecase.NewCatalogUseCase(cardTraderClient, tcgdexClient, pokeAPIClient, resolver, catalogCache)
	inventoryUseCase := usecase.NewInventoryUseCase(catalogUseCase)
	cartUseCase := usecase.NewCartUseCase(cartRepo, catalogUseCase, hub)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, cartRepo, hub)

	handler.Setup(catalogUseCase, inventoryUseCase, cartUseCase, orderUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	router.Setup(e)
	router.SetupEventRouter(e, handler.NewEventHandler(hub))

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

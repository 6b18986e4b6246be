package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string

	FirebaseProject string

	CardTraderBaseURL string
	CardTraderToken   string
	TCGdexBaseURL     string
	PokeAPIBaseURL    string

	RedisAddr        string
	CatalogCacheTTL  time.Duration
	CartDatabasePath string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),

		CardTraderBaseURL: getEnv("CARDTRADER_BASE_URL", "https://api.cardtrader.com/api/v2"),
		CardTraderToken:   getEnv("CARDTRADER_TOKEN", ""),
		TCGdexBaseURL:     getEnv("TCGDEX_BASE_URL", "https://api.tcgdex.net/v2"),
		PokeAPIBaseURL:    getEnv("POKEAPI_BASE_URL", "https://pokeapi.co/api/v2"),

		RedisAddr:        getEnv("REDIS_ADDR", ""),
		CatalogCacheTTL:  time.Duration(getEnvAsInt64("CATALOG_CACHE_TTL_SECONDS", 300)) * time.Second,
		CartDatabasePath: getEnv("CART_DB_PATH", "./cardplanet.db"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// devJWTSecret is only used when ENVIRONMENT is development or test.
const devJWTSecret = "mados-dev-secret"

type Config struct {
	ServerPort  string `validate:"required,numeric"`
	Environment string `validate:"required,oneof=development staging production test"`
	JWTSecret   string `validate:"required"`
	JWTExpiry   int64  `validate:"gt=0"`

	// Seed dataset the in-memory state starts from.
	SeedSource      string `validate:"oneof=embedded file firestore"`
	SeedFile        string `validate:"required_if=SeedSource file"`
	FirebaseProject string `validate:"required_if=SeedSource firestore"`
	ServiceAccount  string

	GeminiAPIKey string
	GeminiModel  string `validate:"required"`

	ReviewProximityMeters float64 `validate:"gte=0"`
	MessagesPerMinute     int     `validate:"gt=0"`
	RequestsPerMinute     int     `validate:"gt=0"`
}

func Load() (*Config, error) {
	godotenv.Load()

	environment := getEnv("ENVIRONMENT", "development")
	jwtSecret := ""
	if environment == "development" || environment == "test" {
		jwtSecret = devJWTSecret
	}

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		Environment: environment,
		JWTSecret:   getEnv("JWT_SECRET", jwtSecret),
		JWTExpiry:   getEnvAsInt64("JWT_EXPIRY", 24*60*60), // 24 hours

		SeedSource:      getEnv("SEED_SOURCE", "embedded"),
		SeedFile:        getEnv("SEED_FILE", ""),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		ServiceAccount:  getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", ""),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		ReviewProximityMeters: getEnvAsFloat64("REVIEW_PROXIMITY_METERS", 20),
		MessagesPerMinute:     int(getEnvAsInt64("MESSAGE_RATE_PER_MINUTE", 10)),
		RequestsPerMinute:     int(getEnvAsInt64("REQUEST_RATE_PER_MINUTE", 120)),
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
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

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		floatValue, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return floatValue
		}
	}
	return defaultValue
}

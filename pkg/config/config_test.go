package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("SEED_SOURCE", "embedded")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, float64(20), cfg.ReviewProximityMeters)
	assert.Equal(t, 10, cfg.MessagesPerMinute)
	assert.Equal(t, 120, cfg.RequestsPerMinute)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadRejectsFirestoreSeedWithoutProject(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("SEED_SOURCE", "firestore")
	t.Setenv("FIREBASE_PROJECT_ID", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadFallsBackOnMalformedNumbers(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("SEED_SOURCE", "embedded")
	t.Setenv("JWT_EXPIRY", "soon")
	t.Setenv("REVIEW_PROXIMITY_METERS", "near")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(24*60*60), cfg.JWTExpiry)
	assert.Equal(t, float64(20), cfg.ReviewProximityMeters)
}

func TestLoadRequiresJWTSecretOutsideDevelopment(t *testing.T) {
	t.Setenv("SEED_SOURCE", "embedded")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "s3cret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.JWTSecret)

	t.Setenv("ENVIRONMENT", "test")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
}

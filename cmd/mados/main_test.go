package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mados/pkg/config"
)

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "0 m", formatDistance(0))
	assert.Equal(t, "999 m", formatDistance(999.4))
	assert.Equal(t, "1.5 km", formatDistance(1500))
}

func TestRunNearby(t *testing.T) {
	cfg = &config.Config{SeedSource: "embedded"}
	t.Cleanup(func() { cfg = nil })

	nearbyLat, nearbyLon = -7.2575, 112.7521

	var out bytes.Buffer
	nearbyCmd.SetOut(&out)
	nearbyCmd.SetContext(context.Background())

	require.NoError(t, runNearby(nearbyCmd, nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "DISTANCE")
	assert.Contains(t, lines[1], "Warung Makan Pak Agus")
	assert.Contains(t, lines[1], "0 m")
	assert.Contains(t, lines[2], "Kopi'in Aja")
	assert.Contains(t, lines[2], "km")
}

func TestRunNearby_InvalidPosition(t *testing.T) {
	cfg = &config.Config{SeedSource: "embedded"}
	t.Cleanup(func() { cfg = nil })

	nearbyLat, nearbyLon = 91, 0
	nearbyCmd.SetContext(context.Background())

	assert.Error(t, runNearby(nearbyCmd, nil))
}

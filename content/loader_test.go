package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `{
  "surfaces": [
    {"name": "asphalt", "friction": 1, "speed": 1, "handling": 1},
    {"name": "grass", "friction": 0.7, "speed": 0.6, "handling": 0.8, "offroad": true}
  ],
  "boosts": [
    {"name": "mini", "duration": 0.8, "acceleration": 10, "maxSpeed": 4},
    {"name": "pad", "duration": 1.5, "acceleration": 14, "maxSpeed": 8}
  ],
  "karts": [
    {
      "name": "standard",
      "acceleration": [[0, 14], [1, 2]],
      "turningRate": [[0, 0.6], [1, 1.1]],
      "friction": [[0, 0.9], [1, 0.55]],
      "maxSpeed": 22,
      "minThrottle": 0.1,
      "gravity": 24,
      "drag": 0.9,
      "rotationCorrection": 2.2,
      "rotationSmoothing": 0.45,
      "maxTilt": 0.7,
      "groundDistance": 0.35,
      "suspensionTravel": 0.25,
      "suspensionLength": 0.45,
      "wheelOffsets": [[-0.55, 0, 0.7], [0.55, 0, 0.7], [-0.55, 0, -0.7], [0.55, 0, -0.7]],
      "collisionSize": [1.4, 0.9, 2],
      "collisionOffset": [0, 0.45, 0],
      "drift": {
        "sideAcceleration": 16,
        "forwardFactor": 0.35,
        "maxSteeringOffset": 0.65,
        "minSpeed": 6,
        "minSidewaysSpeed": 1.5,
        "maxAirTime": 0.5,
        "maxNoSteerTime": 0.35,
        "maxOppositeSteerTime": 0.25
      },
      "driftBoost": {
        "thresholds": [1, 2],
        "levels": ["mini", "pad"]
      }
    }
  ]
}`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kartsim.cfg.json"), []byte(body), 0644))
	return dir
}

func TestLoad(t *testing.T) {
	lib, err := Load(writeConfig(t, testConfig), zerolog.Nop())
	require.NoError(t, err)

	grass, ok := lib.Surface("grass")
	require.True(t, ok)
	assert.True(t, grass.Offroad)
	assert.InDelta(t, 0.7, float64(grass.Friction), 1e-6)

	stats, ok := lib.Stats("standard")
	require.True(t, ok)
	assert.InDelta(t, 22, float64(stats.MaxSpeed), 1e-6)
	assert.InDelta(t, 14, float64(stats.Acceleration.Evaluate(0)), 1e-6)
	assert.Equal(t, float32(-0.55), stats.WheelOffsets[0].X())

	// Drift boost levels resolve to the shared registered configs.
	require.Len(t, stats.DriftBoost.Levels, 2)
	mini, _ := lib.Boost("mini")
	assert.Same(t, mini, stats.DriftBoost.Levels[0])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir(), zerolog.Nop())
	assert.Error(t, err)
}

func TestLoadUnknownBoostReference(t *testing.T) {
	body := `{
  "karts": [{
    "name": "broken",
    "acceleration": [[0, 1]],
    "turningRate": [[0, 1]],
    "friction": [[0, 1]],
    "maxSpeed": 10,
    "rotationSmoothing": 0.4,
    "groundDistance": 0.3,
    "suspensionLength": 0.4,
    "wheelOffsets": [[0,0,0],[0,0,0],[0,0,0],[0,0,0]],
    "collisionSize": [1,1,1],
    "collisionOffset": [0,0,0],
    "drift": {"minSpeed": 6},
    "driftBoost": {"thresholds": [1], "levels": ["ghost"]}
  }]
}`
	_, err := Load(writeConfig(t, body), zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown boost")
}

func TestLoadRejectsBadWheelOffsets(t *testing.T) {
	body := `{
  "karts": [{
    "name": "broken",
    "acceleration": [[0, 1]],
    "turningRate": [[0, 1]],
    "friction": [[0, 1]],
    "maxSpeed": 10,
    "wheelOffsets": [[0,0,0]],
    "collisionSize": [1,1,1],
    "collisionOffset": [0,0,0]
  }]
}`
	_, err := Load(writeConfig(t, body), zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wheel offsets")
}

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func ptr[T any](v T) *T {
	return &v
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and no layers.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder(context.Background())
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.layers)
	assert.NotNil(t, b.log)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no layers returns a
// zero-value Config.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder(context.Background()).build()
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned with a zero config, even if layers were collected.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder(context.Background()).withDefaults()
	b.err = assert.AnError

	cfg, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, Config{}, cfg)
}

// TestBuild_LaterLayerWins verifies field-by-field override order.
func TestBuild_LaterLayerWins(t *testing.T) {
	b := newConfigBuilder(context.Background())
	b.layers = append(b.layers,
		&layer{Mode: ptr("happy mode"), Area: ptr("Taipei")},
		&layer{Mode: ptr("production")},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Mode)
	assert.Equal(t, "Taipei", cfg.Area)
}

// TestBuild_ZeroValueOverrides verifies that an explicit zero in a higher
// layer replaces a non-zero lower value.
func TestBuild_ZeroValueOverrides(t *testing.T) {
	b := newConfigBuilder(context.Background())
	b.layers = append(b.layers,
		&layer{Zone: ptr[int32](8), Port: ptr[uint16](8000)},
		&layer{Zone: ptr[int32](0)},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, int32(0), cfg.Zone)
	assert.Equal(t, uint16(8000), cfg.Port)
}

// TestBuild_DoesNotMutateLayers verifies that merging leaves the source
// layers untouched.
func TestBuild_DoesNotMutateLayers(t *testing.T) {
	low := &layer{Area: ptr("Taipei")}
	high := &layer{Area: ptr("Tokyo")}

	b := newConfigBuilder(context.Background())
	b.layers = append(b.layers, low, high)

	_, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "Taipei", *low.Area)
	assert.Equal(t, "Tokyo", *high.Area)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder(context.Background())
	assert.Same(t, b, b.withDefaults())
}

func TestWithDefaults_ResolvesToDefaults(t *testing.T) {
	cfg, err := newConfigBuilder(context.Background()).withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder(context.Background())
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_AppendsOneLayer(t *testing.T) {
	clearEnvVars(t)

	b := newConfigBuilder(context.Background())
	b.withEnv()
	assert.Len(t, b.layers, 1)
	assert.NoError(t, b.err)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"MEOW_PORT": "not-a-port"})

	b := newConfigBuilder(context.Background())
	b.withEnv()

	assert.Empty(t, b.layers)
	assert.ErrorIs(t, b.err, ErrParsingEnv)
}

// ── withFiles ─────────────────────────────────────────────────────────────────

func TestWithFiles_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder(context.Background())
	assert.Same(t, b, b.withFiles())
}

func TestWithFiles_SkipsMissingFiles(t *testing.T) {
	b := newConfigBuilder(context.Background())
	b.withFiles(filepath.Join(t.TempDir(), "nope.json"), filepath.Join(t.TempDir(), "nope2.json"))

	assert.NoError(t, b.err)
	assert.Empty(t, b.layers)
}

func TestWithFiles_AppendsInOrder(t *testing.T) {
	first := writeTempJSONConfig(t, `{"mode": "production"}`)
	second := writeTempJSONConfig(t, `{"mode": "happy mode", "area": "Osaka"}`)

	b := newConfigBuilder(context.Background())
	b.withFiles(first, second)

	require.NoError(t, b.err)
	require.Len(t, b.layers, 2)
	assert.Equal(t, "production", *b.layers[0].Mode)
	assert.Equal(t, "Osaka", *b.layers[1].Area)
}

func TestWithFiles_SetsErrorOnMalformedFile(t *testing.T) {
	bad := writeTempJSONConfig(t, `{not valid json`)

	b := newConfigBuilder(context.Background())
	b.withFiles(bad)

	assert.ErrorIs(t, b.err, ErrDecodingConfigFile)
	assert.Empty(t, b.layers)
}

// TestBuild_FailsWholeLoadOnAnyError verifies that one bad source prevents
// a partially merged config from being returned.
func TestBuild_FailsWholeLoadOnAnyError(t *testing.T) {
	good := writeTempJSONConfig(t, `{"area": "Osaka"}`)
	bad := writeTempJSONConfig(t, `{"zone": "eight"}`)
	clearEnvVars(t)

	cfg, err := newConfigBuilder(context.Background()).
		withDefaults().
		withFiles(good, bad).
		withEnv().
		build()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecodingConfigFile)
	assert.Equal(t, Config{}, cfg)
}

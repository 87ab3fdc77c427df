package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridoc-io/veridoc/internal/ensemble"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	return dir
}

func TestLoad_ReadsProjectFile(t *testing.T) {
	dir := writeConfig(t, "veridoc.yml", `
tier: premium
enrichment: true
specialistTimeout: 45s
weights:
  vision: 0.5
extraSpecialists:
  - accessibility
evaluators:
  brand: http://brand-eval.internal:8080
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "premium", cfg.Tier)
	assert.True(t, cfg.Enrichment)

	engineCfg, err := cfg.EngineConfig()
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, engineCfg.SpecialistTimeout)
	assert.InDelta(t, 0.5, engineCfg.Weights[ensemble.KindVision], 1e-9)
	assert.InDelta(t, 0.15, engineCfg.Weights[ensemble.KindLayout], 1e-9,
		"unlisted weights keep their defaults")
	assert.Equal(t, []ensemble.SpecialistKind{ensemble.KindAccessibility}, engineCfg.ExtraSpecialists)

	evals, err := cfg.RemoteEvaluators()
	require.NoError(t, err)
	assert.Equal(t, "http://brand-eval.internal:8080", evals[ensemble.KindBrand])
}

func TestLoad_YamlExtensionAlsoAccepted(t *testing.T) {
	dir := writeConfig(t, "veridoc.yaml", "tier: fast\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "fast", cfg.Tier)
}

func TestLoad_MissingFileFallsBackToDefault(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "balanced", cfg.Tier)
	assert.False(t, cfg.Enrichment)

	engineCfg, err := cfg.EngineConfig()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, engineCfg.SpecialistTimeout)
}

func TestLoad_MalformedYaml(t *testing.T) {
	dir := writeConfig(t, "veridoc.yml", "tier: [unclosed\n")

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestEngineConfig_BadDuration(t *testing.T) {
	cfg := &ProjectConfig{SpecialistTimeout: "soon"}
	_, err := cfg.EngineConfig()
	assert.Error(t, err)
}

func TestEngineConfig_UnknownWeightKind(t *testing.T) {
	cfg := &ProjectConfig{Weights: map[string]float64{"telepathy": 0.5}}
	_, err := cfg.EngineConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telepathy")
}

func TestEngineConfig_NegativeWeight(t *testing.T) {
	cfg := &ProjectConfig{Weights: map[string]float64{"vision": -0.1}}
	_, err := cfg.EngineConfig()
	assert.Error(t, err)
}

func TestRemoteEvaluators_UnknownKind(t *testing.T) {
	cfg := &ProjectConfig{Evaluators: map[string]string{"telepathy": "http://x"}}
	_, err := cfg.RemoteEvaluators()
	assert.Error(t, err)
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridoc-io/veridoc/internal/ensemble"
)

func writePage(t *testing.T, dir, name string) {
	t.Helper()
	data := bytes.Repeat([]byte{0x89}, 4096)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func TestLoadDocument_SortedAndNumbered(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "page-02.png")
	writePage(t, dir, "page-01.png")
	writePage(t, dir, "page-03.jpg")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	doc, err := loadDocument(dir, []string{"title=deck", "language=en"})
	require.NoError(t, err)

	require.Len(t, doc.Pages, 3)
	assert.Equal(t, 1, doc.Pages[0].Number)
	assert.Contains(t, doc.Pages[0].Path, "page-01.png")
	assert.Equal(t, 3, doc.Pages[2].Number)
	assert.Contains(t, doc.Pages[2].Path, "page-03.jpg")
	assert.Equal(t, "deck", doc.Metadata["title"])
}

func TestLoadDocument_MultiDigitPagesKeepDocumentOrder(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "page-10.png")
	writePage(t, dir, "page-2.png")
	writePage(t, dir, "page-1.png")

	doc, err := loadDocument(dir, nil)
	require.NoError(t, err)

	require.Len(t, doc.Pages, 3)
	assert.Contains(t, doc.Pages[0].Path, "page-1.png")
	assert.Contains(t, doc.Pages[1].Path, "page-2.png")
	assert.Contains(t, doc.Pages[2].Path, "page-10.png")
}

func TestNaturalLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"page-2.png", "page-10.png", true},
		{"page-10.png", "page-2.png", false},
		{"page-02.png", "page-2.png", true},
		{"a.png", "b.png", true},
		{"page-1.png", "page-1.png", false},
		{"page-1.jpg", "page-1.png", true},
		{"9.png", "10.png", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, naturalLess(tt.a, tt.b), "%s < %s", tt.a, tt.b)
	}
}

func TestLoadDocument_EmptyDir(t *testing.T) {
	_, err := loadDocument(t.TempDir(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no page images")
}

func TestLoadDocument_BadMetadata(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "p1.png")

	_, err := loadDocument(dir, []string{"title"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key=value")
}

func TestBuildEngine_DefaultsWhenNoConfig(t *testing.T) {
	engine, cfg, tier, err := buildEngine(t.TempDir(), "", newLogger(false))
	require.NoError(t, err)
	defer engine.Close()

	assert.Equal(t, "balanced", tier)
	assert.False(t, cfg.Enrichment)
}

func TestBuildEngine_FlagOverridesProfileTier(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "veridoc.yml"), []byte("tier: premium\n"), 0o644))

	engine, _, tier, err := buildEngine(dir, "fast", newLogger(false))
	require.NoError(t, err)
	defer engine.Close()

	assert.Equal(t, "fast", tier)
}

func TestValidateEndToEnd(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "p1.png")
	writePage(t, dir, "p2.png")

	engine, _, tier, err := buildEngine(dir, "fast", newLogger(false))
	require.NoError(t, err)
	defer engine.Close()

	doc, err := loadDocument(dir, []string{"title=deck", "language=en"})
	require.NoError(t, err)

	report := engine.Validate(t.Context(), doc, tier)
	require.NotNil(t, report)
	assert.Equal(t, "fast", report.Tier)
	assert.Equal(t, ensemble.StatusPass, report.Verdict.Status)
}

package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kanjoflow/kanjo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTables(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadTablesOverridesBusiness(t *testing.T) {
	path := writeTables(t, `
business:
  - type: cafe
    keywords: ["コメダ", "珈琲"]
  - type: restaurant
    keywords: ["食堂"]
`)

	tables, err := LoadTables(path)
	require.NoError(t, err)

	require.Len(t, tables.Business, 2)
	assert.Equal(t, model.BusinessCafe, tables.Business[0].Type)
	assert.Equal(t, []string{"コメダ", "珈琲"}, tables.Business[0].Keywords)
	assert.Equal(t, model.BusinessRestaurant, tables.Business[1].Type)

	// Absent sections keep the defaults.
	defaults := DefaultTables()
	assert.Equal(t, defaults.Alcohol, tables.Alcohol)
	assert.Equal(t, defaults.Items, tables.Items)
}

func TestLoadTablesFileOrderIsTieBreakOrder(t *testing.T) {
	path := writeTables(t, `
business:
  - type: fastfood
    keywords: ["バーガー"]
  - type: cafe
    keywords: ["バーガーカフェ"]
`)

	tables, err := LoadTables(path)
	require.NoError(t, err)

	// Both entries score one hit; the earlier file entry wins the tie.
	extractor := NewExtractor(tables)
	info := extractor.Extract(&model.OCRResult{Vendor: "バーガーカフェ"})
	assert.Equal(t, model.BusinessFastFood, info.BusinessType)
}

func TestLoadTablesRejectsUnknownBusinessType(t *testing.T) {
	path := writeTables(t, `
business:
  - type: spaceport
    keywords: ["宇宙"]
`)

	_, err := LoadTables(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spaceport")
}

func TestLoadTablesMissingFile(t *testing.T) {
	_, err := LoadTables(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadTablesAlcoholOverride(t *testing.T) {
	path := writeTables(t, `
alcohol: ["ホッピー"]
`)

	tables, err := LoadTables(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ホッピー"}, tables.Alcohol)
	assert.NotEmpty(t, tables.Business)
}

package common

import (
	"os"
	"path/filepath"
	"testing"

	"hylin/einvoice-csv/internal/logging"
	"hylin/einvoice-csv/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteStatsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.csv")
	breakdown := []models.CategoryStat{
		{Category: models.CategoryBeverages, Amount: decimal.NewFromInt(160), Count: 2, Percentage: 76.19},
		{Category: models.CategorySnacks, Amount: decimal.NewFromInt(50), Count: 1, Percentage: 23.81},
	}

	err := WriteStatsCSV(&breakdown, path, ',', &logging.MockLogger{})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "分類")
	assert.Contains(t, content, models.CategoryBeverages)
	assert.Contains(t, content, "160")
}

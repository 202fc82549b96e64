package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sales-analytics/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEnriched() []models.EnrichedTransaction {
	rating := 4.5
	return []models.EnrichedTransaction{
		{
			Transaction: models.Transaction{
				TransactionID: "T001",
				Date:          "2024-12-01",
				ProductID:     "P1",
				ProductName:   "Laptop",
				Quantity:      2,
				UnitPrice:     decimal.NewFromInt(45000),
				CustomerID:    "C001",
				Region:        "North",
			},
			CatalogCategory: "electronics",
			CatalogBrand:    "Acme",
			CatalogRating:   &rating,
			CatalogMatched:  true,
		},
		{
			Transaction: models.Transaction{
				TransactionID: "T002",
				Date:          "2024-12-02",
				ProductID:     "P999",
				ProductName:   "Mouse",
				Quantity:      10,
				UnitPrice:     decimal.NewFromInt(1500),
				CustomerID:    "C002",
				Region:        "South",
			},
		},
	}
}

func TestWriteEnrichedCSV(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "data", "enriched_sales_data.txt")

	err := WriteEnrichedCSV(sampleEnriched(), outFile)
	require.NoError(t, err)

	raw, err := os.ReadFile(outFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3, "Header plus one line per record")

	header := lines[0]
	assert.True(t, strings.HasPrefix(header, "TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region"),
		"Header must start with the eight transaction fields, got %q", header)
	assert.Contains(t, header, "CatalogCategory")
	assert.Contains(t, header, "CatalogMatched")

	assert.Contains(t, lines[1], "T001|2024-12-01|P1|Laptop|2|45000|C001|North")
	assert.Contains(t, lines[1], "electronics")
	assert.Contains(t, lines[1], "true")

	assert.Contains(t, lines[2], "T002")
	assert.Contains(t, lines[2], "false")
}

func TestWriteEnrichedCSV_NilRecords(t *testing.T) {
	err := WriteEnrichedCSV(nil, filepath.Join(t.TempDir(), "out.txt"))
	assert.Error(t, err)
}

func TestWriteEnrichedCSV_EmptyRecords(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "out.txt")
	err := WriteEnrichedCSV([]models.EnrichedTransaction{}, outFile)
	require.NoError(t, err)

	raw, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "TransactionID", "Even an empty run writes the header")
}

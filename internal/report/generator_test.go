package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"sales-analytics/internal/analytics"
	"sales-analytics/internal/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testData() Data {
	return Data{
		GeneratedAt:    time.Date(2024, 12, 20, 10, 30, 0, 0, time.UTC),
		CurrencySymbol: "₹",
		TotalRevenue:   decimal.NewFromInt(160000),
		Regions: []analytics.RegionStat{
			{Region: "North", TotalSales: decimal.NewFromInt(103000), TransactionCount: 3, Percentage: decimal.NewFromFloat(64.38)},
			{Region: "West", TotalSales: decimal.NewFromInt(45000), TransactionCount: 1, Percentage: decimal.NewFromFloat(28.13)},
		},
		PeakDay: &analytics.DailyStat{
			Date:             "2024-12-01",
			Revenue:          decimal.NewFromInt(92500),
			TransactionCount: 2,
			UniqueCustomers:  1,
		},
		Summary: validator.Summary{TotalInput: 6, InvalidCount: 1, FinalCount: 5},
	}
}

func TestGenerate(t *testing.T) {
	content := NewGenerator(nil).Generate(testData())

	assert.Contains(t, content, "SALES ANALYTICS REPORT")
	assert.Contains(t, content, "Generated: 2024-12-20 10:30:00")
	assert.Contains(t, content, "Total Revenue: ₹160,000.00", "Revenue should carry grouping separators")
	assert.Contains(t, content, "5 valid | 1 invalid | 5 reported")
	assert.Contains(t, content, "REGION PERFORMANCE:")
	assert.Contains(t, content, "₹103,000")
	assert.Contains(t, content, "Peak Sales Day: 2024-12-01 (₹92,500.00, 2 transactions)")

	// Regions appear in sales-descending order.
	north := strings.Index(content, "North")
	west := strings.Index(content, "West")
	require.True(t, north >= 0 && west >= 0)
	assert.Less(t, north, west)
}

func TestGenerate_OptionalSections(t *testing.T) {
	data := testData()
	data.PeakDay = nil
	content := NewGenerator(nil).Generate(data)
	assert.NotContains(t, content, "Peak Sales Day")
	assert.NotContains(t, content, "TOP PRODUCTS")
	assert.NotContains(t, content, "CUSTOMER ANALYSIS")

	data.TopProducts = []analytics.ProductStat{
		{ProductName: "Headphones", TotalQuantity: 7, TotalRevenue: decimal.NewFromInt(10500)},
	}
	data.Customers = []analytics.CustomerStat{
		{
			CustomerID:     "C001",
			TotalSpent:     decimal.NewFromInt(92500),
			PurchaseCount:  2,
			AvgOrderValue:  decimal.NewFromInt(46250),
			ProductsBought: []string{"Laptop", "Mouse"},
		},
	}
	content = NewGenerator(nil).Generate(data)
	assert.Contains(t, content, "TOP PRODUCTS BY QUANTITY:")
	assert.Contains(t, content, "Headphones")
	assert.Contains(t, content, "CUSTOMER ANALYSIS:")
	assert.Contains(t, content, "Laptop, Mouse")
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output", "sales_report.txt")

	err := NewGenerator(nil).Write(testData(), path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "SALES ANALYTICS REPORT")
}

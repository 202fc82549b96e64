// Package analytics computes descriptive statistics over validated sales
// transactions. Every function here is pure: input slices are never mutated
// and identical input produces identical output.
package analytics

import (
	"sort"

	"sales-analytics/internal/models"

	"github.com/shopspring/decimal"
)

// RegionStat aggregates sales for one region.
type RegionStat struct {
	Region           string
	TotalSales       decimal.Decimal
	TransactionCount int
	// Percentage of total revenue, rounded to 2 decimal places. Zero when
	// total revenue is zero.
	Percentage decimal.Decimal
}

// DailyStat aggregates sales for one date.
type DailyStat struct {
	Date             string
	Revenue          decimal.Decimal
	TransactionCount int
	UniqueCustomers  int
}

// ProductStat aggregates quantity and revenue for one product name.
type ProductStat struct {
	ProductName   string
	TotalQuantity int
	TotalRevenue  decimal.Decimal
}

// CustomerStat aggregates purchase behaviour for one customer.
type CustomerStat struct {
	CustomerID     string
	TotalSpent     decimal.Decimal
	PurchaseCount  int
	AvgOrderValue  decimal.Decimal
	ProductsBought []string
}

// TotalRevenue returns the sum of line amounts over all transactions.
// It is zero for an empty input.
func TotalRevenue(transactions []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		total = total.Add(tx.LineAmount())
	}
	return total
}

// RegionStatistics returns per-region totals ordered by total sales
// descending. Ties keep the order in which the regions were first
// encountered. Percentages are zero when total revenue is zero.
func RegionStatistics(transactions []models.Transaction) []RegionStat {
	totalRevenue := TotalRevenue(transactions)

	byRegion := make(map[string]*RegionStat)
	var order []string
	for _, tx := range transactions {
		stat, ok := byRegion[tx.Region]
		if !ok {
			stat = &RegionStat{Region: tx.Region, TotalSales: decimal.Zero}
			byRegion[tx.Region] = stat
			order = append(order, tx.Region)
		}
		stat.TotalSales = stat.TotalSales.Add(tx.LineAmount())
		stat.TransactionCount++
	}

	hundred := decimal.NewFromInt(100)
	stats := make([]RegionStat, 0, len(order))
	for _, region := range order {
		stat := *byRegion[region]
		if totalRevenue.IsPositive() {
			stat.Percentage = stat.TotalSales.Div(totalRevenue).Mul(hundred).Round(2)
		}
		stats = append(stats, stat)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSales.GreaterThan(stats[j].TotalSales)
	})
	return stats
}

// DailyTrend returns per-date revenue, transaction counts, and distinct
// customer counts, ordered by date ascending (lexical ISO order).
func DailyTrend(transactions []models.Transaction) []DailyStat {
	type dayAccum struct {
		revenue   decimal.Decimal
		count     int
		customers map[string]bool
	}

	byDate := make(map[string]*dayAccum)
	var dates []string
	for _, tx := range transactions {
		accum, ok := byDate[tx.Date]
		if !ok {
			accum = &dayAccum{revenue: decimal.Zero, customers: make(map[string]bool)}
			byDate[tx.Date] = accum
			dates = append(dates, tx.Date)
		}
		accum.revenue = accum.revenue.Add(tx.LineAmount())
		accum.count++
		accum.customers[tx.CustomerID] = true
	}

	sort.Strings(dates)

	trend := make([]DailyStat, 0, len(dates))
	for _, date := range dates {
		accum := byDate[date]
		trend = append(trend, DailyStat{
			Date:             date,
			Revenue:          accum.revenue,
			TransactionCount: accum.count,
			UniqueCustomers:  len(accum.customers),
		})
	}
	return trend
}

// productTotals aggregates quantity and revenue per product name, preserving
// first-encounter order.
func productTotals(transactions []models.Transaction) []ProductStat {
	byName := make(map[string]*ProductStat)
	var order []string
	for _, tx := range transactions {
		stat, ok := byName[tx.ProductName]
		if !ok {
			stat = &ProductStat{ProductName: tx.ProductName, TotalRevenue: decimal.Zero}
			byName[tx.ProductName] = stat
			order = append(order, tx.ProductName)
		}
		stat.TotalQuantity += tx.Quantity
		stat.TotalRevenue = stat.TotalRevenue.Add(tx.LineAmount())
	}

	stats := make([]ProductStat, 0, len(order))
	for _, name := range order {
		stats = append(stats, *byName[name])
	}
	return stats
}

// TopProducts returns the n products with the highest total quantity sold,
// quantity descending with stable ties.
func TopProducts(transactions []models.Transaction, n int) []ProductStat {
	stats := productTotals(transactions)
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalQuantity > stats[j].TotalQuantity
	})
	if n < len(stats) {
		stats = stats[:n]
	}
	return stats
}

// LowPerformingProducts returns every product whose total quantity is
// strictly below threshold, ordered by quantity ascending.
func LowPerformingProducts(transactions []models.Transaction, threshold int) []ProductStat {
	all := productTotals(transactions)
	var low []ProductStat
	for _, stat := range all {
		if stat.TotalQuantity < threshold {
			low = append(low, stat)
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		return low[i].TotalQuantity < low[j].TotalQuantity
	})
	return low
}

// CustomerAnalysis returns per-customer spend statistics ordered by total
// spent descending. ProductsBought lists the distinct product names bought
// by the customer, sorted alphabetically.
func CustomerAnalysis(transactions []models.Transaction) []CustomerStat {
	type custAccum struct {
		spent    decimal.Decimal
		count    int
		products map[string]bool
	}

	byCustomer := make(map[string]*custAccum)
	var order []string
	for _, tx := range transactions {
		accum, ok := byCustomer[tx.CustomerID]
		if !ok {
			accum = &custAccum{spent: decimal.Zero, products: make(map[string]bool)}
			byCustomer[tx.CustomerID] = accum
			order = append(order, tx.CustomerID)
		}
		accum.spent = accum.spent.Add(tx.LineAmount())
		accum.count++
		accum.products[tx.ProductName] = true
	}

	stats := make([]CustomerStat, 0, len(order))
	for _, customerID := range order {
		accum := byCustomer[customerID]

		products := make([]string, 0, len(accum.products))
		for name := range accum.products {
			products = append(products, name)
		}
		sort.Strings(products)

		stats = append(stats, CustomerStat{
			CustomerID:     customerID,
			TotalSpent:     accum.spent,
			PurchaseCount:  accum.count,
			AvgOrderValue:  accum.spent.Div(decimal.NewFromInt(int64(accum.count))).Round(2),
			ProductsBought: products,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSpent.GreaterThan(stats[j].TotalSpent)
	})
	return stats
}

// PeakSalesDay returns the date with the highest revenue from the daily
// trend, or nil for an empty input. Ties keep the first maximum found in
// date-ascending order.
func PeakSalesDay(transactions []models.Transaction) *DailyStat {
	trend := DailyTrend(transactions)
	if len(trend) == 0 {
		return nil
	}

	peak := trend[0]
	for _, day := range trend[1:] {
		if day.Revenue.GreaterThan(peak.Revenue) {
			peak = day
		}
	}
	return &peak
}

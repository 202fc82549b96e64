// Package report renders the human-readable sales report.
package report

import (
	"fmt"
	"strings"
	"time"

	"sales-analytics/internal/analytics"
	"sales-analytics/internal/fileutils"
	"sales-analytics/internal/validator"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const bannerWidth = 45

// Data carries everything the report renders.
type Data struct {
	GeneratedAt    time.Time
	CurrencySymbol string
	TotalRevenue   decimal.Decimal
	Regions        []analytics.RegionStat
	Trend          []analytics.DailyStat
	TopProducts    []analytics.ProductStat
	LowProducts    []analytics.ProductStat
	Customers      []analytics.CustomerStat
	PeakDay        *analytics.DailyStat
	Summary        validator.Summary
}

// Generator renders and writes sales reports.
type Generator struct {
	logger  *logrus.Logger
	printer *message.Printer
}

// NewGenerator creates a report generator.
func NewGenerator(logger *logrus.Logger) *Generator {
	if logger == nil {
		logger = logrus.New()
	}
	return &Generator{
		logger:  logger,
		printer: message.NewPrinter(language.English),
	}
}

// Generate renders the report as text.
func (g *Generator) Generate(data Data) string {
	var b strings.Builder

	banner := strings.Repeat("=", bannerWidth)
	b.WriteString(banner + "\n")
	b.WriteString("    SALES ANALYTICS REPORT\n")
	b.WriteString(banner + "\n")
	fmt.Fprintf(&b, "Generated: %s\n", data.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Total Revenue: %s%s\n",
		data.CurrencySymbol, g.groupedFixed(data.TotalRevenue, 2))
	fmt.Fprintf(&b, "Transactions: %d valid | %d invalid | %d reported\n",
		data.Summary.TotalInput-data.Summary.InvalidCount,
		data.Summary.InvalidCount,
		data.Summary.FinalCount)

	b.WriteString("\nREGION PERFORMANCE:\n")
	for _, region := range data.Regions {
		fmt.Fprintf(&b, "%-10s: %s%s (%s%%)\n",
			region.Region,
			data.CurrencySymbol,
			g.groupedFixed(region.TotalSales, 0),
			region.Percentage.StringFixed(2))
	}

	if len(data.Trend) > 0 {
		b.WriteString("\nDAILY TREND:\n")
		for _, day := range data.Trend {
			fmt.Fprintf(&b, "%s: %s%s (%d transactions, %d customers)\n",
				day.Date,
				data.CurrencySymbol,
				g.groupedFixed(day.Revenue, 2),
				day.TransactionCount,
				day.UniqueCustomers)
		}
	}

	if data.PeakDay != nil {
		fmt.Fprintf(&b, "\nPeak Sales Day: %s (%s%s, %d transactions)\n",
			data.PeakDay.Date,
			data.CurrencySymbol,
			g.groupedFixed(data.PeakDay.Revenue, 2),
			data.PeakDay.TransactionCount)
	}

	if len(data.TopProducts) > 0 {
		b.WriteString("\nTOP PRODUCTS BY QUANTITY:\n")
		for i, product := range data.TopProducts {
			fmt.Fprintf(&b, "%d. %-20s qty %d, %s%s\n",
				i+1,
				product.ProductName,
				product.TotalQuantity,
				data.CurrencySymbol,
				g.groupedFixed(product.TotalRevenue, 2))
		}
	}

	if len(data.LowProducts) > 0 {
		b.WriteString("\nLOW PERFORMING PRODUCTS:\n")
		for _, product := range data.LowProducts {
			fmt.Fprintf(&b, "%-20s qty %d, %s%s\n",
				product.ProductName,
				product.TotalQuantity,
				data.CurrencySymbol,
				g.groupedFixed(product.TotalRevenue, 2))
		}
	}

	if len(data.Customers) > 0 {
		b.WriteString("\nCUSTOMER ANALYSIS:\n")
		for _, customer := range data.Customers {
			fmt.Fprintf(&b, "%-10s: spent %s%s over %d purchases (avg %s%s): %s\n",
				customer.CustomerID,
				data.CurrencySymbol,
				g.groupedFixed(customer.TotalSpent, 2),
				customer.PurchaseCount,
				data.CurrencySymbol,
				customer.AvgOrderValue.StringFixed(2),
				strings.Join(customer.ProductsBought, ", "))
		}
	}

	return b.String()
}

// Write renders the report and writes it to path.
func (g *Generator) Write(data Data, path string) error {
	content := g.Generate(data)
	if err := fileutils.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	g.logger.WithField("file", path).Info("Wrote sales report")
	return nil
}

// groupedFixed formats a decimal with thousands separators and the given
// number of decimal places.
func (g *Generator) groupedFixed(d decimal.Decimal, places int) string {
	value, _ := d.Round(int32(places)).Float64()
	format := fmt.Sprintf("%%.%df", places)
	return g.printer.Sprintf(format, value)
}

// Package analyze runs the full sales pipeline: read, parse, validate,
// filter, aggregate, enrich, and write the report and enriched data file.
package analyze

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sales-analytics/cmd/root"
	"sales-analytics/internal/analytics"
	"sales-analytics/internal/catalog"
	"sales-analytics/internal/common"
	"sales-analytics/internal/config"
	"sales-analytics/internal/logging"
	"sales-analytics/internal/models"
	"sales-analytics/internal/pipeerror"
	"sales-analytics/internal/reader"
	"sales-analytics/internal/report"
	"sales-analytics/internal/salesparser"
	"sales-analytics/internal/store"
	"sales-analytics/internal/validator"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	regionFlag    string
	minAmountFlag string
	maxAmountFlag string
	topFlag       int
	thresholdFlag int
	noEnrichFlag  bool
	interactive   bool
)

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a sales data file",
	Long:  `Analyze a delimited sales data file and write a text report plus an enriched data file.`,
	Run:   analyzeFunc,
}

func init() {
	Cmd.Flags().StringVar(&regionFlag, "region", "", "Keep only transactions from this region")
	Cmd.Flags().StringVar(&minAmountFlag, "min-amount", "", "Keep only transactions with line amount >= this value")
	Cmd.Flags().StringVar(&maxAmountFlag, "max-amount", "", "Keep only transactions with line amount <= this value")
	Cmd.Flags().IntVar(&topFlag, "top", 0, "Number of top products to report (default from configuration)")
	Cmd.Flags().IntVar(&thresholdFlag, "threshold", -1, "Low-performing quantity threshold (default from configuration)")
	Cmd.Flags().BoolVar(&noEnrichFlag, "no-enrich", false, "Skip the product catalog lookup")
	Cmd.Flags().BoolVar(&interactive, "interactive", false, "Prompt for an optional region filter")
}

func analyzeFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	cfg := root.Cfg

	input := root.SharedFlags.Input
	if input == "" {
		logger.Fatal("Input file is required (use --input)")
	}

	// 1. Read raw lines. Missing files and undecodable files degrade to an
	// empty run rather than aborting.
	lines, err := reader.ReadLines(input, logger)
	if err != nil {
		var notFound *pipeerror.NotFoundError
		var decode *pipeerror.DecodeError
		if errors.As(err, &notFound) || errors.As(err, &decode) {
			logger.WithError(err).Error("Continuing with no records")
			lines = nil
		} else {
			logger.WithError(err).Fatal("Failed to read input file")
		}
	}

	// 2. Parse.
	parser := salesparser.New(cfg.Delimiter(), cfg.Input.CurrencySymbol, logger)
	transactions, unparseable := parser.Parse(lines)

	// 3. Validate and filter.
	opts, err := buildFilterOptions(transactions, logger)
	if err != nil {
		logger.WithError(err).Fatal("Invalid filter options")
	}
	valid, invalid, summary := validator.ValidateAndFilter(transactions, opts, logger)
	logger.Info("Validation summary",
		logging.Field{Key: logging.FieldCount, Value: summary.FinalCount},
		logging.Field{Key: logging.FieldInvalid, Value: invalid},
		logging.Field{Key: logging.FieldUnparseable, Value: unparseable})

	// 4. Aggregate.
	topN := topFlag
	if topN <= 0 {
		topN = cfg.Analysis.TopProducts
	}
	threshold := thresholdFlag
	if threshold < 0 {
		threshold = cfg.Analysis.LowThreshold
	}

	// 5. Enrich.
	mapping := fetchMapping(cfg, logger)
	enriched := catalog.Enrich(valid, mapping, logger)

	// 6. Write outputs. Failures here are fatal: an unwritable output path is
	// a caller problem, not a degradable pipeline condition.
	outDir := root.SharedFlags.Output
	if outDir == "" {
		outDir = cfg.Output.Directory
	}

	if err := common.WriteEnrichedCSV(enriched, filepath.Join(outDir, cfg.Output.EnrichedFile)); err != nil {
		logger.WithError(err).Fatal("Failed to write enriched data file")
	}

	data := report.Data{
		GeneratedAt:    time.Now(),
		CurrencySymbol: cfg.Input.CurrencySymbol,
		TotalRevenue:   analytics.TotalRevenue(valid),
		Regions:        analytics.RegionStatistics(valid),
		Trend:          analytics.DailyTrend(valid),
		TopProducts:    analytics.TopProducts(valid, topN),
		LowProducts:    analytics.LowPerformingProducts(valid, threshold),
		Customers:      analytics.CustomerAnalysis(valid),
		PeakDay:        analytics.PeakSalesDay(valid),
		Summary:        summary,
	}
	generator := report.NewGenerator(root.Log)
	if err := generator.Write(data, filepath.Join(outDir, cfg.Output.ReportFile)); err != nil {
		logger.WithError(err).Fatal("Failed to write report")
	}

	root.Log.Info("Sales analysis completed successfully!")
}

// buildFilterOptions assembles the optional filters from flags, prompting for
// a region when --interactive is set and no region flag was given.
func buildFilterOptions(transactions []models.Transaction, logger logging.Logger) (validator.FilterOptions, error) {
	opts := validator.FilterOptions{Region: regionFlag}

	if minAmountFlag != "" {
		min, err := decimal.NewFromString(minAmountFlag)
		if err != nil {
			return opts, fmt.Errorf("invalid --min-amount %q: %w", minAmountFlag, err)
		}
		opts.MinAmount = &min
	}
	if maxAmountFlag != "" {
		max, err := decimal.NewFromString(maxAmountFlag)
		if err != nil {
			return opts, fmt.Errorf("invalid --max-amount %q: %w", maxAmountFlag, err)
		}
		opts.MaxAmount = &max
	}

	if interactive && opts.Region == "" {
		opts.Region = promptRegion(transactions)
	}

	if opts.Region != "" {
		logger.Info("Applying region filter",
			logging.Field{Key: logging.FieldRegion, Value: opts.Region})
	}
	return opts, nil
}

// promptRegion shows the available regions and amount range, then reads an
// optional region choice from stdin. An empty answer applies no filter.
func promptRegion(transactions []models.Transaction) string {
	regions := validator.Regions(transactions)
	fmt.Printf("Available regions: %s\n", strings.Join(regions, ", "))
	if min, max, ok := validator.AmountRange(transactions); ok {
		fmt.Printf("Amount range: %s - %s\n", min.StringFixed(0), max.StringFixed(0))
	}
	fmt.Print("Enter region to filter by (blank for all): ")

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

// fetchMapping retrieves the product catalog mapping: live fetch first, then
// the YAML cache, then an empty mapping. A successful fetch refreshes the
// cache.
func fetchMapping(cfg *config.Config, logger logging.Logger) catalog.Mapping {
	if noEnrichFlag {
		logger.Info("Catalog enrichment skipped")
		return catalog.Mapping{}
	}

	timeout := time.Duration(cfg.Catalog.TimeoutSeconds) * time.Second
	client := catalog.NewClient(cfg.Catalog.BaseURL, timeout, cfg.Catalog.Limit, logger)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	mapping, err := client.FetchProducts(ctx)
	if err == nil {
		if cfg.Catalog.CacheFile != "" {
			if err := store.NewCatalogStore(cfg.Catalog.CacheFile).Save(mapping); err != nil {
				logger.WithError(err).Warn("Failed to refresh catalog cache")
			}
		}
		return mapping
	}

	logger.WithError(err).Warn("Catalog unavailable, trying cache")
	if cfg.Catalog.CacheFile != "" {
		if cached, cacheErr := store.NewCatalogStore(cfg.Catalog.CacheFile).Load(); cacheErr == nil {
			return cached
		}
	}

	logger.Warn("No catalog data available, all records will be unmatched")
	return catalog.Mapping{}
}

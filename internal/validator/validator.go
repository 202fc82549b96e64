// Package validator applies the business validation rules to parsed
// transactions and the optional region and amount-range filters that follow
// them.
package validator

import (
	"sort"
	"strings"

	"sales-analytics/internal/logging"
	"sales-analytics/internal/models"
	"sales-analytics/internal/pipeerror"

	"github.com/shopspring/decimal"
)

// FilterOptions carries the optional post-validation filters. A nil bound
// leaves that side of the amount range open; an empty Region disables the
// region filter.
type FilterOptions struct {
	Region    string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}

// Summary reports the counts produced by a validate-and-filter pass. The
// AfterRegion and AfterAmount counts are informational only.
type Summary struct {
	TotalInput   int
	InvalidCount int
	AfterRegion  int
	AfterAmount  int
	FinalCount   int
}

// Validate checks a single transaction against the business rules and
// returns a *pipeerror.InvalidRecordError naming the first rule that fails,
// or nil when the transaction is valid.
func Validate(tx models.Transaction) error {
	fail := func(rule string) error {
		return &pipeerror.InvalidRecordError{TransactionID: tx.TransactionID, Rule: rule}
	}

	if tx.Quantity <= 0 {
		return fail("quantity must be positive")
	}
	if !tx.UnitPrice.IsPositive() {
		return fail("unit price must be positive")
	}
	// The prefix checks below already reject empty ID fields, but the
	// non-empty rule is kept as an explicit defensive check for every field.
	if anyFieldEmpty(tx) {
		return fail("all fields must be non-empty")
	}
	if !strings.HasPrefix(tx.TransactionID, models.TransactionIDPrefix) {
		return fail("transaction id must start with " + models.TransactionIDPrefix)
	}
	if !strings.HasPrefix(tx.ProductID, models.ProductIDPrefix) {
		return fail("product id must start with " + models.ProductIDPrefix)
	}
	if !strings.HasPrefix(tx.CustomerID, models.CustomerIDPrefix) {
		return fail("customer id must start with " + models.CustomerIDPrefix)
	}
	return nil
}

// anyFieldEmpty reports whether any field of the transaction is empty or zero.
func anyFieldEmpty(tx models.Transaction) bool {
	return tx.TransactionID == "" || tx.Date == "" || tx.ProductID == "" ||
		tx.ProductName == "" || tx.Quantity == 0 || tx.UnitPrice.IsZero() ||
		tx.CustomerID == "" || tx.Region == ""
}

// Partition splits transactions into valid records and an invalid count.
// Invalid records are dropped from further processing.
func Partition(transactions []models.Transaction, logger logging.Logger) ([]models.Transaction, int) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	valid := make([]models.Transaction, 0, len(transactions))
	invalid := 0
	for _, tx := range transactions {
		if err := Validate(tx); err != nil {
			invalid++
			logger.Debug("Rejecting invalid transaction",
				logging.Field{Key: logging.FieldTransactionID, Value: tx.TransactionID},
				logging.Field{Key: logging.FieldReason, Value: err.Error()})
			continue
		}
		valid = append(valid, tx)
	}

	logger.Info("Validated transactions",
		logging.Field{Key: logging.FieldCount, Value: len(valid)},
		logging.Field{Key: logging.FieldInvalid, Value: invalid})
	return valid, invalid
}

// ValidateAndFilter partitions transactions into valid and invalid, then
// applies the optional region filter followed by the inclusive amount-range
// filter. It returns the filtered records, the invalid count, and a summary
// of all counts.
func ValidateAndFilter(transactions []models.Transaction, opts FilterOptions, logger logging.Logger) ([]models.Transaction, int, Summary) {
	valid, invalid := Partition(transactions, logger)

	summary := Summary{
		TotalInput:   len(transactions),
		InvalidCount: invalid,
	}

	filtered := valid
	if opts.Region != "" {
		kept := make([]models.Transaction, 0, len(filtered))
		for _, tx := range filtered {
			if tx.Region == opts.Region {
				kept = append(kept, tx)
			}
		}
		filtered = kept
	}
	summary.AfterRegion = len(filtered)

	if opts.MinAmount != nil || opts.MaxAmount != nil {
		kept := make([]models.Transaction, 0, len(filtered))
		for _, tx := range filtered {
			amount := tx.LineAmount()
			if opts.MinAmount != nil && amount.LessThan(*opts.MinAmount) {
				continue
			}
			if opts.MaxAmount != nil && amount.GreaterThan(*opts.MaxAmount) {
				continue
			}
			kept = append(kept, tx)
		}
		filtered = kept
	}
	summary.AfterAmount = len(filtered)
	summary.FinalCount = len(filtered)

	return filtered, invalid, summary
}

// Regions returns the distinct regions present in the transactions, sorted
// alphabetically.
func Regions(transactions []models.Transaction) []string {
	seen := make(map[string]bool)
	var regions []string
	for _, tx := range transactions {
		if !seen[tx.Region] {
			seen[tx.Region] = true
			regions = append(regions, tx.Region)
		}
	}
	sort.Strings(regions)
	return regions
}

// AmountRange returns the minimum and maximum line amounts present in the
// transactions. The third return value is false for an empty input.
func AmountRange(transactions []models.Transaction) (decimal.Decimal, decimal.Decimal, bool) {
	if len(transactions) == 0 {
		return decimal.Zero, decimal.Zero, false
	}

	min := transactions[0].LineAmount()
	max := min
	for _, tx := range transactions[1:] {
		amount := tx.LineAmount()
		if amount.LessThan(min) {
			min = amount
		}
		if amount.GreaterThan(max) {
			max = amount
		}
	}
	return min, max, true
}

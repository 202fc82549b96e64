// Package currencyutils provides amount cleanup helpers used by the parser.
package currencyutils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// StandardizeAmount strips thousands separators and an optional currency
// symbol from a raw amount string so it can be parsed as a number.
// "₹1,500.00" becomes "1500.00".
func StandardizeAmount(amountStr, currencySymbol string) string {
	cleaned := strings.TrimSpace(amountStr)
	if currencySymbol != "" {
		cleaned = strings.ReplaceAll(cleaned, currencySymbol, "")
	}
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	return strings.TrimSpace(cleaned)
}

// ParseAmount parses a raw price string into a decimal after cleanup.
func ParseAmount(amountStr, currencySymbol string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr, currencySymbol)
	if standardized == "" {
		return decimal.Zero, fmt.Errorf("empty amount string")
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// ParseQuantity parses a raw quantity string into an integer after stripping
// thousands separators ("1,500" becomes 1500).
func ParseQuantity(qtyStr string) (int, error) {
	standardized := StandardizeAmount(qtyStr, "")
	if standardized == "" {
		return 0, fmt.Errorf("empty quantity string")
	}

	qty, err := strconv.Atoi(standardized)
	if err != nil {
		return 0, fmt.Errorf("failed to parse quantity '%s': %w", qtyStr, err)
	}
	return qty, nil
}

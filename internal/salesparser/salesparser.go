// Package salesparser turns raw delimited data lines into typed sales
// transactions. Lines that cannot become a transaction (wrong field count,
// numeric conversion failure after cleanup) are counted as unparseable and
// excluded from every downstream count; they are never classified as invalid.
package salesparser

import (
	"strings"

	"sales-analytics/internal/currencyutils"
	"sales-analytics/internal/logging"
	"sales-analytics/internal/models"
	"sales-analytics/internal/pipeerror"
)

// malformed builds the error recorded for a discarded row.
func malformed(line, field, reason string, err error) error {
	return &pipeerror.MalformedRowError{Line: line, Field: field, Reason: reason, Err: err}
}

// Parser converts raw lines into transactions using a configured field
// delimiter and currency symbol.
type Parser struct {
	delimiter      string
	currencySymbol string
	log            logging.Logger
}

// New creates a Parser for the given field delimiter and currency symbol.
func New(delimiter rune, currencySymbol string, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Parser{
		delimiter:      string(delimiter),
		currencySymbol: currencySymbol,
		log:            logger,
	}
}

// Parse transforms raw lines into transactions, preserving input order.
// The second return value is the number of unparseable lines discarded.
func (p *Parser) Parse(lines []string) ([]models.Transaction, int) {
	transactions := make([]models.Transaction, 0, len(lines))
	unparseable := 0

	for _, line := range lines {
		tx, err := p.parseLine(line)
		if err != nil {
			unparseable++
			p.log.Debug("Discarding unparseable line",
				logging.Field{Key: logging.FieldReason, Value: err.Error()})
			continue
		}
		transactions = append(transactions, tx)
	}

	p.log.Info("Parsed sales data lines",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
		logging.Field{Key: logging.FieldUnparseable, Value: unparseable})
	return transactions, unparseable
}

// parseLine splits and cleans a single raw line. Any failure returns a
// *pipeerror.MalformedRowError describing the discarded row.
func (p *Parser) parseLine(line string) (models.Transaction, error) {
	parts := strings.Split(line, p.delimiter)
	if len(parts) != models.FieldCount {
		return models.Transaction{}, malformed(line, "", "wrong field count", nil)
	}

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	quantity, err := currencyutils.ParseQuantity(parts[4])
	if err != nil {
		return models.Transaction{}, malformed(line, "Quantity", "numeric conversion failed", err)
	}

	unitPrice, err := currencyutils.ParseAmount(parts[5], p.currencySymbol)
	if err != nil {
		return models.Transaction{}, malformed(line, "UnitPrice", "numeric conversion failed", err)
	}

	return models.Transaction{
		TransactionID: parts[0],
		Date:          parts[1],
		ProductID:     parts[2],
		// Embedded comma separators are stripped from the name so they
		// cannot corrupt downstream delimited output.
		ProductName: strings.ReplaceAll(parts[3], ",", ""),
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		CustomerID:  parts[6],
		Region:      parts[7],
	}, nil
}

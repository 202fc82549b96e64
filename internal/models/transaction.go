// Package models defines the transaction record types shared by the sales
// pipeline components.
package models

import (
	"github.com/shopspring/decimal"
)

// ID prefix conventions enforced during validation.
const (
	TransactionIDPrefix = "T"
	ProductIDPrefix     = "P"
	CustomerIDPrefix    = "C"
)

// FieldCount is the exact number of delimited fields a raw data line must
// carry to be parseable.
const FieldCount = 8

// Transaction represents a single parsed sales transaction. The field set is
// closed and known ahead of time; enrichment attributes live on
// EnrichedTransaction.
type Transaction struct {
	TransactionID string          `csv:"TransactionID"`
	Date          string          `csv:"Date"`
	ProductID     string          `csv:"ProductID"`
	ProductName   string          `csv:"ProductName"`
	Quantity      int             `csv:"Quantity"`
	UnitPrice     decimal.Decimal `csv:"UnitPrice"`
	CustomerID    string          `csv:"CustomerID"`
	Region        string          `csv:"Region"`
}

// LineAmount returns the derived amount of the transaction: quantity times
// unit price.
func (t Transaction) LineAmount() decimal.Decimal {
	return t.UnitPrice.Mul(decimal.NewFromInt(int64(t.Quantity)))
}

// EnrichedTransaction extends Transaction with catalog attributes attached by
// the enricher. Catalog fields stay empty and Matched stays false when the
// product has no catalog entry.
type EnrichedTransaction struct {
	Transaction
	CatalogCategory string   `csv:"CatalogCategory"`
	CatalogBrand    string   `csv:"CatalogBrand"`
	CatalogRating   *float64 `csv:"CatalogRating"`
	CatalogMatched  bool     `csv:"CatalogMatched"`
}

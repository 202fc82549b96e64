package catalog

import (
	"regexp"
	"strconv"

	"sales-analytics/internal/logging"
	"sales-analytics/internal/models"
)

// digitRun matches the first contiguous run of digits anywhere in a product id.
var digitRun = regexp.MustCompile(`\d+`)

// ExtractNumericID extracts the numeric catalog id embedded in a product id
// ("P1" yields 1). The second return value is false when the product id
// carries no digits.
func ExtractNumericID(productID string) (int, bool) {
	match := digitRun.FindString(productID)
	if match == "" {
		return 0, false
	}
	id, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Enrich attaches catalog attributes to each transaction by numeric
// product-id lookup against the mapping. Transactions with no extractable id
// or no catalog entry are marked unmatched with absent attributes.
// Enrichment never mutates the input transactions or their validity.
func Enrich(transactions []models.Transaction, mapping Mapping, logger logging.Logger) []models.EnrichedTransaction {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	enriched := make([]models.EnrichedTransaction, 0, len(transactions))
	matched := 0
	for _, tx := range transactions {
		record := models.EnrichedTransaction{Transaction: tx}

		if id, ok := ExtractNumericID(tx.ProductID); ok {
			if product, found := mapping[id]; found {
				rating := product.Rating
				record.CatalogCategory = product.Category
				record.CatalogBrand = product.Brand
				record.CatalogRating = &rating
				record.CatalogMatched = true
				matched++
			}
		}

		if !record.CatalogMatched {
			logger.Debug("No catalog match for product",
				logging.Field{Key: logging.FieldProductID, Value: tx.ProductID})
		}
		enriched = append(enriched, record)
	}

	logger.Info("Enriched transactions",
		logging.Field{Key: logging.FieldMatched, Value: matched},
		logging.Field{Key: logging.FieldCount, Value: len(enriched)})
	return enriched
}

package pipeerror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Path: "sales_data.txt"}
	assert.Contains(t, err.Error(), "sales_data.txt")
}

func TestDecodeError(t *testing.T) {
	err := &DecodeError{Path: "sales_data.txt", Encodings: []string{"utf-8", "iso-8859-1"}}
	assert.Contains(t, err.Error(), "sales_data.txt")
	assert.Contains(t, err.Error(), "utf-8")
}

func TestMalformedRowError(t *testing.T) {
	cause := fmt.Errorf("strconv failure")
	err := &MalformedRowError{
		Line:   "T001|bad",
		Field:  "Quantity",
		Reason: "numeric conversion failed",
		Err:    cause,
	}
	assert.Contains(t, err.Error(), "Quantity")
	assert.Equal(t, cause, errors.Unwrap(err))

	noField := &MalformedRowError{Line: "T001", Reason: "wrong field count"}
	assert.Contains(t, noField.Error(), "wrong field count")
}

func TestInvalidRecordError(t *testing.T) {
	err := &InvalidRecordError{TransactionID: "B999", Rule: "transaction id must start with T"}
	assert.Contains(t, err.Error(), "B999")
	assert.Contains(t, err.Error(), "must start with T")
}

func TestCatalogUnavailableError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := &CatalogUnavailableError{URL: "https://dummyjson.com/products", Err: cause}
	assert.Contains(t, err.Error(), "dummyjson.com")
	assert.Equal(t, cause, errors.Unwrap(err))

	// Works through errors.As from a wrapped chain.
	wrapped := fmt.Errorf("fetch failed: %w", err)
	var target *CatalogUnavailableError
	assert.True(t, errors.As(wrapped, &target))
}

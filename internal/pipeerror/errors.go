// Package pipeerror defines the error taxonomy for the sales pipeline.
// Every error kind here is recoverable: the owning component reports it,
// degrades to an empty or reduced result, and the run continues.
package pipeerror

import "fmt"

// NotFoundError indicates the input file does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("input file not found: %s", e.Path)
}

// DecodeError indicates that none of the attempted text encodings could
// decode the input file.
type DecodeError struct {
	Path      string
	Encodings []string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to decode %s with any of %v", e.Path, e.Encodings)
}

// MalformedRowError indicates a raw line that cannot become a transaction:
// wrong field count or a numeric field that fails conversion after cleanup.
// Rows failing this way are counted as unparseable, never as invalid.
type MalformedRowError struct {
	Line   string
	Field  string
	Reason string
	Err    error
}

func (e *MalformedRowError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed row: field %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("malformed row: %s", e.Reason)
}

func (e *MalformedRowError) Unwrap() error {
	return e.Err
}

// InvalidRecordError indicates a parsed transaction that fails a business
// validation rule. Invalid records are counted and excluded from aggregation.
type InvalidRecordError struct {
	TransactionID string
	Rule          string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid transaction %s: %s", e.TransactionID, e.Rule)
}

// CatalogUnavailableError indicates the product catalog could not be fetched
// or its payload could not be decoded. The enricher degrades to an empty
// mapping and marks every record unmatched.
type CatalogUnavailableError struct {
	URL string
	Err error
}

func (e *CatalogUnavailableError) Error() string {
	return fmt.Sprintf("product catalog unavailable at %s: %v", e.URL, e.Err)
}

func (e *CatalogUnavailableError) Unwrap() error {
	return e.Err
}

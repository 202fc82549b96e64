package logging

// Standardized field names for structured logging. These constants keep the
// pipeline's log output consistent and easy to filter.
const (
	FieldFile          = "file_path"
	FieldCount         = "count"
	FieldRegion        = "region"
	FieldTransactionID = "transaction_id"
	FieldProductID     = "product_id"
	FieldCustomerID    = "customer_id"
	FieldReason        = "reason"
	FieldOperation     = "operation"
	FieldDelimiter     = "delimiter"
	FieldEncoding      = "encoding"
	FieldURL           = "url"
	FieldInputFile     = "input_file"
	FieldOutputFile    = "output_file"
	FieldInvalid       = "invalid_count"
	FieldUnparseable   = "unparseable_count"
	FieldMatched       = "matched_count"
)

package logging

// Standardized field names for structured logging. Keeping these in one
// place makes batch logs easy to filter on.
const (
	FieldSender      = "sender"
	FieldDirection   = "direction"
	FieldAmount      = "amount"
	FieldAccount     = "account"
	FieldMerchant    = "merchant"
	FieldCategory    = "category"
	FieldFingerprint = "fingerprint"
	FieldReason      = "reason"
	FieldCount       = "count"
	FieldFile        = "file_path"
)

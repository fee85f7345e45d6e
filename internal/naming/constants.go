package naming

// ============================================================================
// Configuration Schema Constants
// ============================================================================

// SchemaShorthandOverlay is the schema identifier for shorthand overlay files
const SchemaShorthandOverlay = "shorthand-overlay"

// ============================================================================
// Table Names
// ============================================================================

// Table names as used in overlay files
const (
	TableItems              = "items"
	TableBaseClasses        = "baseClasses"
	TableHandbookCategories = "handbookCategories"
	TableTraders            = "traders"
	TableCurrencies         = "currencies"
	TableBotTypes           = "botTypes"
	TableInventorySlots     = "inventorySlots"
)

// ============================================================================
// Error Messages
// ============================================================================

// Error context messages for wrapped errors during overlay loading
const (
	ErrContextFailedToParseConfig = "failed to parse config %s"
	ErrContextFailedToDecodeData  = "failed to decode data for %s"
)

// Configuration validation error messages
const (
	ErrMsgMissingVersionField = "%s missing version field"
	ErrMsgInvalidSchema       = "invalid schema in %s: expected '%s', got '%s'"
	ErrMsgUnknownTable        = "unknown shorthand table '%s' in %s"
)

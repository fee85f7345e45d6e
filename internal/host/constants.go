package host

// Error messages
const (
	ErrMsgLoadDatabaseFailed = "failed to load database export: %w"
	ErrMsgSaveDatabaseFailed = "failed to save database export: %w"
	ErrFmtSourceNotFound     = "%w: clone source '%s' for item '%s'"
	ErrFmtItemRegistered     = "%w: '%s'"
	ErrFmtCloneSourceFailed  = "failed to copy clone source '%s': %w"
	ErrFmtOverrideFailed     = "failed to apply override '%s' to item '%s': %w"
)

// Log messages
const (
	LogMsgDatabaseLoaded = "Database export loaded"
	LogMsgDatabaseSaved  = "Database export saved"
	LogMsgItemCreated    = "Created item from clone"
	LogMsgNoLocaleText   = "No locale text for language"
)

// Locale key format: item id, a space, then the field suffix
const LocaleKeyFormat = "%s %s"

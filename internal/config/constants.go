package config

const (
	// Configuration file paths
	ConfigPathModConfig = "config/config.yaml"
	ConfigPathItemsDir  = "db/Items"
	ConfigPathDatabase  = "db/database.json"
)

// Environment variable names
const (
	EnvModConfig        = "MOD_CONFIG"
	EnvModName          = "MOD_NAME"
	EnvItemsDir         = "ITEMS_DIR"
	EnvExcludePattern   = "EXCLUDE_PATTERN"
	EnvDatabasePath     = "DATABASE_PATH"
	EnvOutputPath       = "OUTPUT_PATH"
	EnvShorthandOverlay = "SHORTHAND_OVERLAY"
	EnvMetricsFile      = "METRICS_FILE"
	EnvSchemaCheck      = "SCHEMA_CHECK"
	EnvDebug            = "DEBUG"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvEnvironment      = "ENVIRONMENT"
	EnvVersion          = "VERSION"
)

// Defaults
const (
	DefaultModName        = "WTT-RexProdigy"
	DefaultExcludePattern = "BaseItemReplacement"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultEnvironment    = "dev"
	DefaultVersion        = "dev"
)

// Error messages
const (
	ErrMsgReadConfigFailed  = "reading config %s: %w"
	ErrMsgParseConfigFailed = "parsing config %s: %w"
	ErrMsgInvalidBool       = "invalid %s value: %w"
)

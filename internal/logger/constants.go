package logger

// Log Level String Values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Defaults before the mod config is read
const (
	DefaultServiceName = "WTT-RexProdigy"
	DefaultVersion     = "dev"
)

// Environment String Values
const (
	EnvironmentDev     = "dev"
	EnvironmentRelease = "release"
)

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRunID       = "run_id"
)

package logger

// Level names accepted in Config.Level
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Format names accepted in Config.Format
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultServiceName = "itemctl"
	DefaultVersion     = "dev"
)

// Environment names with special handling
const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
)

// Log attribute keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyTraceID     = "trace_id"
	AttrKeyComponent   = "component"
)

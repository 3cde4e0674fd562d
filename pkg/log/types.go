package log

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error, dpanic, panic, fatal
	Mode         string // production or development
	Encoding     string // json or console
	ColorEnabled bool
}

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

const fieldRequestID = "request_id"

type requestIDKey struct{}

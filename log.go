package zlutf

import "github.com/rs/zerolog"

// Logger is the package-level structured logger. It defaults to a no-op
// sink so importing this package produces no output on its own; callers
// that want visibility into decode/encode error observations call
// SetLogger.
var Logger zerolog.Logger = zerolog.Nop()

// SetLogger replaces the package-level logger.
func SetLogger(l zerolog.Logger) {
	Logger = l
}

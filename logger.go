package iconic

import "go.uber.org/zap"

// logger is shared by every Scene and Element. It defaults to a no-op logger
// so the library is silent unless the host opts in.
var logger = zap.NewNop()

// SetLogger replaces the package logger. Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *zap.Logger {
	return logger
}

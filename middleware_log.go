package injectable

import "github.com/xraph/go-utils/log"

// LoggingMiddleware writes every container operation to a structured logger.
// Resolutions are logged at debug level; overrides rejected for a type
// mismatch are logged as warnings.
type LoggingMiddleware struct {
	logger log.Logger
}

// NewLoggingMiddleware creates logging middleware. A nil logger discards output.
func NewLoggingMiddleware(logger log.Logger) *LoggingMiddleware {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &LoggingMiddleware{logger: logger}
}

// OnRegister implements Middleware.
func (m *LoggingMiddleware) OnRegister(key Key) {
	m.logger.Info("service override registered", log.String("service", key.String()))
}

// OnUnregister implements Middleware.
func (m *LoggingMiddleware) OnUnregister(key Key) {
	m.logger.Info("service override removed", log.String("service", key.String()))
}

// OnReset implements Middleware.
func (m *LoggingMiddleware) OnReset() {
	m.logger.Info("service overrides reset")
}

// OnResolve implements Middleware.
func (m *LoggingMiddleware) OnResolve(event ResolveEvent) {
	fields := []log.Field{
		log.String("service", event.Key.String()),
		log.String("source", string(event.Source)),
	}
	if event.Path != "" {
		fields = append(fields, log.String("path", event.Path))
	}

	if event.Err != nil {
		m.logger.Warn("service override ignored", append(fields, log.Error(event.Err))...)
		return
	}

	m.logger.Debug("service resolved", fields...)
}

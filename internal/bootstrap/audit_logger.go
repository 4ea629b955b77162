package bootstrap

import "go.uber.org/zap"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]string
}

type AuditLogger interface {
	Record(entry AuditLog)
}

type zapAuditLogger struct {
	logger *zap.Logger
}

// NewZapAuditLogger writes audit entries through the shared zap logger
// under a dedicated name, so they can be routed separately downstream.
func NewZapAuditLogger(logger *zap.Logger) AuditLogger {
	return &zapAuditLogger{logger: logger.Named("audit")}
}

func (l *zapAuditLogger) Record(entry AuditLog) {
	fields := make([]zap.Field, 0, len(entry.Meta)+1)
	fields = append(fields, zap.String("action", entry.Action))
	for k, v := range entry.Meta {
		fields = append(fields, zap.String(k, v))
	}
	l.logger.Info(entry.Message, fields...)
}

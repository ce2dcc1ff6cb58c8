// Package audit emits structured records for mutating provisioning
// operations.
//
// Purpose:
//
//	Record every create, update and delete issued against the
//	provisioning API with command, parameters (masked where sensitive),
//	outcome and duration. Records go to stderr as structured logs so
//	they can be shipped to an aggregation system alongside the regular
//	log stream.
package audit

import (
	"strings"
	"time"

	"go.uber.org/zap"
)

// Operation describes one mutating command invocation.
type Operation struct {
	Type       string
	Command    string
	Parameters map[string]string
	Outcome    string
	Duration   time.Duration
	Err        error
}

// Logger writes audit records through a zap logger.
type Logger struct {
	log *zap.Logger
}

// NewLogger wraps log for audit output. A nil log disables auditing.
func NewLogger(log *zap.Logger) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logger{log: log.Named("audit")}
}

// Record emits a single audit entry for op.
func (l *Logger) Record(op Operation) {
	fields := []zap.Field{
		zap.String("operation", op.Type),
		zap.String("command", op.Command),
		zap.String("outcome", op.Outcome),
	}
	if len(op.Parameters) > 0 {
		fields = append(fields, zap.Any("parameters", maskParameters(op.Parameters)))
	}
	if op.Duration > 0 {
		fields = append(fields, zap.Duration("duration", op.Duration))
	}
	if op.Err != nil {
		fields = append(fields, zap.String("error", op.Err.Error()))
	}
	l.log.Info("privileged operation", fields...)
}

var sensitiveParams = []string{"token", "password", "secret", "credential"}

func maskParameters(params map[string]string) map[string]string {
	masked := make(map[string]string, len(params))
	for k, v := range params {
		if isSensitive(k) {
			masked[k] = maskValue(v)
		} else {
			masked[k] = v
		}
	}
	return masked
}

func isSensitive(key string) bool {
	lower := strings.ToLower(key)
	for _, s := range sensitiveParams {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// maskValue keeps only the last four characters of a secret.
func maskValue(s string) string {
	if len(s) <= 4 {
		return "***"
	}
	return "***" + s[len(s)-4:]
}

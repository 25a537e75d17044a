package core

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chriso345/decorum/internal/logging"
)

// Notifier receives diagnostic emissions from policies. Emissions never
// change the result of the operation that produced them.
type Notifier interface {
	Notify(level zapcore.Level, message string)
}

// NotifierFunc adapts a function into a Notifier.
type NotifierFunc func(level zapcore.Level, message string)

// Notify calls the underlying function.
func (fn NotifierFunc) Notify(level zapcore.Level, message string) {
	fn(level, message)
}

// LogNotifier forwards emissions to a zap logger.
type LogNotifier struct {
	Logger *zap.Logger
}

// Notify writes message at level. A nil logger drops the message.
func (n LogNotifier) Notify(level zapcore.Level, message string) {
	if n.Logger == nil {
		return
	}
	if ce := n.Logger.Check(level, message); ce != nil {
		ce.Write()
	}
}

var defaultNotifier Notifier = LogNotifier{Logger: logging.Console()}

// DefaultNotifier returns the notifier used by types defined without WithNotifier.
func DefaultNotifier() Notifier { return defaultNotifier }

// SetDefaultNotifier replaces the package default and returns the previous one.
// Types already built keep the notifier they were built with.
func SetDefaultNotifier(n Notifier) Notifier {
	prev := defaultNotifier
	if n == nil {
		n = NotifierFunc(func(zapcore.Level, string) {})
	}
	defaultNotifier = n
	return prev
}

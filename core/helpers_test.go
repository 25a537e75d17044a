package core

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// observed returns a notifier that records every emission.
func observed() (Notifier, *observer.ObservedLogs) {
	obs, logs := observer.New(zapcore.DebugLevel)
	return LogNotifier{Logger: zap.New(obs)}, logs
}

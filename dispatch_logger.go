package main

import (
	"go.uber.org/zap"

	"github.com/apstndb/chemopt/internal/option"
)

func newDispatchLogger() (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.DisableCaller = true
	return config.Build()
}

// dispatchObserver adapts zap logger to the registry observer.
// Failed operations are logged at warn level, the rest at debug level.
func dispatchObserver(l *zap.Logger) option.Observer {
	return func(e option.Event) {
		fields := []zap.Field{
			zap.String("name", e.Name),
			zap.Stringer("kind", e.Kind),
		}
		if e.Value != "" {
			fields = append(fields, zap.String("value", e.Value))
		}

		if e.Err != nil {
			l.Warn(e.Op.String(), append(fields, zap.Error(e.Err))...)
			return
		}
		l.Debug(e.Op.String(), fields...)
	}
}

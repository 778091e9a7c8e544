package main

import (
	"fmt"

	"github.com/turtacn/BioTriage/internal/infrastructure/logging"
	"github.com/turtacn/BioTriage/internal/intelligence/common"
)

// kvLogger adapts the Field-based logging.Logger to the sugared key/value
// interface the intelligence layer expects.
type kvLogger struct {
	l logging.Logger
}

func newKVLogger(l logging.Logger) common.Logger {
	return &kvLogger{l: l}
}

func kvToFields(keysAndValues []interface{}) []logging.Field {
	fields := make([]logging.Field, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", keysAndValues[i])
		}
		fields = append(fields, logging.Any(key, keysAndValues[i+1]))
	}
	return fields
}

func (k *kvLogger) Debug(msg string, keysAndValues ...interface{}) {
	k.l.Debug(msg, kvToFields(keysAndValues)...)
}

func (k *kvLogger) Info(msg string, keysAndValues ...interface{}) {
	k.l.Info(msg, kvToFields(keysAndValues)...)
}

func (k *kvLogger) Warn(msg string, keysAndValues ...interface{}) {
	k.l.Warn(msg, kvToFields(keysAndValues)...)
}

func (k *kvLogger) Error(msg string, keysAndValues ...interface{}) {
	k.l.Error(msg, kvToFields(keysAndValues)...)
}

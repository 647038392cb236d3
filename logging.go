package redpool

import (
	logging "github.com/ipfs/go-log/v2"

	"github.com/efritz/redpool/iface"
)

type (
	// Logger is an interface to the logger the client writes to.
	Logger = iface.Logger

	defaultLogger struct {
		log *logging.ZapEventLogger
	}

	nilLogger struct{}
)

// NilLogger is a logger which discards all messages.
var NilLogger = NewNilLogger()

var log = logging.Logger("redpool")

// NewNilLogger creates a logger which discards all messages.
func NewNilLogger() Logger {
	return &nilLogger{}
}

func newDefaultLogger() Logger {
	return &defaultLogger{log: log}
}

// Pool and client messages are chatty (one per borrow), so they are
// written at debug level.
func (l *defaultLogger) Printf(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}

func (l *nilLogger) Printf(format string, args ...interface{}) {
}

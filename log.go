package mvc

import (
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

// Logger is the leveled logger the package reports through. It is satisfied
// by commonlog.Logger.
type Logger interface {
	Errorf(format string, values ...any)
	Warningf(format string, values ...any)
	Infof(format string, values ...any)
	Debugf(format string, values ...any)
}

var logger Logger = commonlog.GetLogger("mvc")

// SetLogger replaces the package logger. Pass nil to restore the default.
func SetLogger(l Logger) {
	if l == nil {
		l = commonlog.GetLogger("mvc")
	}
	logger = l
}

package mvc

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes a configuration error.
type ErrorKind uint8

const (
	KindUnknown    ErrorKind = iota // unclassified
	KindLayout                      // missing, unreadable or invalid layout
	KindWorkspace                   // no hosting workspace
	KindController                  // controller could not be spawned or attached
	KindCommands                    // command manager could not be spawned
)

func (k ErrorKind) String() string {
	switch k {
	case KindLayout:
		return "layout"
	case KindWorkspace:
		return "workspace"
	case KindController:
		return "controller"
	case KindCommands:
		return "commands"
	default:
		return "unknown"
	}
}

var (
	// ErrNoLayout is reported when a view returns an empty layout file.
	ErrNoLayout = errors.New("no layout file")
	// ErrNoWorkspace is reported when a view is initialized without a workspace.
	ErrNoWorkspace = errors.New("workspace unavailable")
	// ErrNoParentRoot is reported when a subview's parent has no layout root.
	ErrNoParentRoot = errors.New("parent view has no layout root")
	// ErrNoController is reported when a view's controller factory returns nil.
	ErrNoController = errors.New("invalid controller type")
	// ErrNoCommands is reported when a view's command manager factory returns nil.
	ErrNoCommands = errors.New("invalid command manager type")
)

// ConfigError records why construction of a view or controller stopped.
// It is logged at error severity where it happens and kept for inspection;
// it is never returned up the call chain.
type ConfigError struct {
	// Op is the operation that failed (e.g. "InitView").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// reportError logs err at error severity and returns it.
func reportError(op string, kind ErrorKind, err error) *ConfigError {
	ce := &ConfigError{Op: op, Kind: kind, Err: err}
	logger.Errorf("%s", ce.Error())
	return ce
}

package diag

import (
	"errors"
	"fmt"
)

// Category sentinels, matched with errors.Is against any *Error of the
// corresponding code range.
var (
	ErrSchema        = errors.New("schema error")
	ErrNameCollision = errors.New("name collision")
	ErrEmit          = errors.New("emit error")
	ErrIO            = errors.New("io error")
	ErrConfig        = errors.New("config error")
)

// Error is a generation failure tagged with a Code.
type Error struct {
	Code Code
	Path string // file the error refers to, if any
	Msg  string
	Err  error
}

// Errorf builds an *Error with a formatted message.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Wrap tags err with code and the path it concerns.
func Wrap(code Code, path string, err error) *Error {
	return &Error{Code: code, Path: path, Err: err}
}

// At returns a copy of e pointing at path.
func (e *Error) At(path string) *Error {
	cp := *e
	cp.Path = path
	return &cp
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Code.Title()
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Code.ID(), msg)
	}
	return fmt.Sprintf("%s: %s", e.Code.ID(), msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the category sentinel of e.Code.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrSchema:
		return e.Code >= 1000 && e.Code < 2000
	case ErrNameCollision:
		return e.Code >= 2000 && e.Code < 3000
	case ErrEmit:
		return e.Code >= 3000 && e.Code < 4000 && e.Code != OutputIO
	case ErrIO:
		return e.Code == OutputIO || e.Code == ManifestIO || e.Code == SchemaRead
	case ErrConfig:
		return e.Code >= 5000 && e.Code < 6000
	}
	return false
}

// CodeOf extracts the Code of the first *Error in err's chain.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return UnknownCode
}

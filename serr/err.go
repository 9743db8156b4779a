// The serr package defines the error codes returned by the event
// operations and by the process-tree snapshot.
package serr

import (
	"errors"
	"fmt"
)

type Terror uint32

const (
	TErrNoerror Terror = iota
	TErrNotfound
	TErrNospace
	TErrInterrupted
	TErrInval
	TErrError // to propagate non-sigma errors
)

func (err Terror) String() string {
	switch err {
	case TErrNoerror:
		return "no error"
	case TErrNotfound:
		return "not found"
	case TErrNospace:
		return "no space"
	case TErrInterrupted:
		return "interrupted"
	case TErrInval:
		return "invalid argument"
	case TErrError:
		return "Non-sigma error"
	default:
		return "unknown error"
	}
}

type Err struct {
	ErrCode Terror
	Obj     string
	Err     error
}

func NewErr(code Terror, obj interface{}) *Err {
	return &Err{
		ErrCode: code,
		Obj:     fmt.Sprintf("%v", obj),
	}
}

// NewErrError wraps a non-sigma error, e.g., one from the OS.
func NewErrError(error error) *Err {
	return &Err{
		ErrCode: TErrError,
		Err:     error,
	}
}

func (err *Err) Code() Terror {
	return err.ErrCode
}

func (err *Err) Unwrap() error {
	return err.Err
}

func (err *Err) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("{Err: %q Obj: %q (%v)}", err.ErrCode, err.Obj, err.Err)
	}
	return fmt.Sprintf("{Err: %q Obj: %q}", err.ErrCode, err.Obj)
}

func (err *Err) String() string {
	return err.Error()
}

func IsErrCode(error error, code Terror) bool {
	var err *Err
	if errors.As(error, &err) {
		return err.ErrCode == code
	}
	return false
}

// Errors that a caller may recover from by trying again later.
func IsErrorRetryOK(error error) bool {
	return IsErrCode(error, TErrNospace)
}

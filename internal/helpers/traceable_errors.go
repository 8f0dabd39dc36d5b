package helpers

import (
	"strings"

	"github.com/ztrue/tracerr"
)

// Error carries one or more errors, each with the stack trace captured where
// it was created or wrapped. The zero value means "no error".
type Error struct {
	errs []tracerr.Error
}

var NilError = Error{nil}

func (e Error) IsNil() bool {
	return IsNil(e)
}

func (e Error) HasError() bool {
	return !IsNil(e)
}

func IsNil(err error) bool {
	if traceableErr, ok := err.(Error); ok {
		return traceableErr.First() == nil
	}
	if traceableErr, ok := err.(*Error); ok {
		return traceableErr == nil || traceableErr.First() == nil
	}
	return err == nil
}

func (e Error) Error() string {
	result := []string{}
	for _, err := range e.errs {
		result = append(result, Indent(tracerr.Sprint(err), ".  "))
	}
	return strings.Join(result, "\n")
}

// String includes a few lines of source around each frame; useful when a
// command line tool dies.
func (e Error) String() string {
	result := ""
	for _, err := range e.errs {
		result += "-------------------------------------------------------------------------------\n"
		result += tracerr.SprintSource(err, 3) + "\n"
	}
	return result
}

func (e Error) Message() string {
	return strings.Join(MapSlice(e.errs, func(err tracerr.Error) string {
		return err.Error()
	}), "; ")
}

func (e Error) First() tracerr.Error {
	if len(e.errs) == 0 {
		return nil
	}
	return e.errs[0]
}

func (e Error) NumErrors() int {
	return len(FilterSlice(e.errs, func(err tracerr.Error) bool {
		return err != nil
	}))
}

func Wrap(err error) Error {
	if err == nil {
		return NilError
	}
	if traceableErr, ok := err.(Error); ok {
		return traceableErr
	}
	return Error{[]tracerr.Error{tracerr.Wrap(err)}}
}

func WrapReturn[T any](x T, err error) (T, Error) {
	return x, Wrap(err)
}

func Errorf(format string, args ...interface{}) Error {
	return Error{[]tracerr.Error{tracerr.Errorf(format, args...)}}
}

func Join(others ...Error) Error {
	others = FilterSlice(others, func(err Error) bool {
		return !IsNil(err)
	})
	if len(others) == 0 {
		return NilError
	}
	if len(others) == 1 {
		return others[0]
	}

	result := Error{}
	for _, o := range others {
		result.errs = append(result.errs, o.errs...)
	}
	return result
}

// ErrorRef accumulates errors across deferred callbacks and recursive calls.
// Pass it by pointer.
type ErrorRef struct {
	err Error
}

func (ref *ErrorRef) Add(err Error) {
	ref.err = Join(ref.err, err)
}

func (ref *ErrorRef) HasError() bool {
	return ref.err.HasError()
}

func (ref *ErrorRef) NumErrors() int {
	return ref.err.NumErrors()
}

func (ref *ErrorRef) Error() Error {
	return ref.err
}

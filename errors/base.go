package errors

import (
	goerrors "errors"
	"fmt"
)

type Error interface {
	error
	New(args ...any) BaseError
	IsEqual(err error) bool
}

type BaseError struct {
	Code    int    `json:"code"`
	Name    string `json:"name"`
	Message string `json:"message"`

	messageFormat string
}

func (e BaseError) Error() string {
	return e.Message
}

// New returns a copy of the registered error with its message formatted from args.
func (e BaseError) New(args ...any) BaseError {

	e.Message = fmt.Sprintf(e.messageFormat, args...)
	return e
}

func (e BaseError) IsEqual(err error) bool {

	asserted, ok := TryAssertError(err)
	if !ok {
		return false
	}

	return asserted.Code == e.Code
}

func (e BaseError) IsNil() bool {
	return e.Code == 0 && e.Name == "" && e.Message == ""
}

func TryAssertError(err error) (BaseError, bool) {

	var asserted BaseError
	ok := goerrors.As(err, &asserted)
	return asserted, ok
}

func IsError(err error, expectedError BaseError) bool {

	asserted, ok := TryAssertError(err)
	if !ok {
		return false
	}

	return asserted.Code == expectedError.Code && asserted.Message == expectedError.Message
}

func new(errorCode int, name string, messageFormat string) Error {

	return BaseError{Code: errorCode, Name: name, messageFormat: messageFormat}
}

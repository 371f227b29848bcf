package transfer

import (
	"fmt"

	"github.com/snaghq/snag/internal/engine"
)

// errPrefix opens every rendered transfer error.
const errPrefix = "transfer"

// Error is the single failure type the package returns. The message is
// always present; the engine status code is present only when the
// failure came out of a native engine call. Purely local failures, such
// as operating on an emptied client, carry no code.
type Error struct {
	msg     string
	code    engine.Status
	hasCode bool
}

// newError builds a message-only Error for local failures.
func newError(format string, args ...interface{}) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// newCodeError builds an Error carrying an engine status code.
func newCodeError(code engine.Status, format string, args ...interface{}) *Error {
	return &Error{msg: fmt.Sprintf(format, args...), code: code, hasCode: true}
}

// Error renders "transfer: <message>" and appends
// ", error code = <code>" when a status code is present.
func (e *Error) Error() string {
	if !e.hasCode {
		return fmt.Sprintf("%s: %s", errPrefix, e.msg)
	}
	return fmt.Sprintf("%s: %s, error code = %d", errPrefix, e.msg, e.code)
}

// Message returns the failure description without prefix or code.
func (e *Error) Message() string {
	return e.msg
}

// Code returns the engine status code and whether one is present.
func (e *Error) Code() (int, bool) {
	return int(e.code), e.hasCode
}

// status is the typed counterpart of Code for use inside the module.
func (e *Error) status() (engine.Status, bool) {
	return e.code, e.hasCode
}

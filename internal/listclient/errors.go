package listclient

import "fmt"

// Error provides constant error strings to the driver functions.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
// Rule of thumb, all errors start with a small letter and end with no full stop.
const (
	ErrUnexpectedStatus = Error("unexpected status from listserver")
)

func statusError(code int, body []byte) error {
	return fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, code, body)
}

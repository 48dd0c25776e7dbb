package dll

// Error provides constant error strings to the driver functions.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
// Rule of thumb, all errors start with a small letter and end with no full stop.
const (
	// ErrListAllocation is fatal, the list container couldn't be created.
	ErrListAllocation = Error("failed to allocate memory for list")
	// ErrNodeAllocation is recoverable, the list is left as it was.
	ErrNodeAllocation  = Error("failed to allocate memory for new node")
	ErrListDestroyed   = Error("list has been destroyed")
	ErrBrokenInvariant = Error("list invariant broken")
)

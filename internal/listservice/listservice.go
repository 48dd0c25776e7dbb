package listservice

import "github.com/oklog/ulid"

// ListService describes a service that maintains a set of named
// linked lists. The lists themselves are single-owner structures,
// the service serialises every operation on them.
type ListService interface {
	// Create allocates a new empty list and returns its ID.
	Create() (ulid.ULID, error)
	// Insert adds the value at the head of the list.
	Insert(id ulid.ULID, value string) error
	// Find checks whether the value is stored in the list.
	Find(id ulid.ULID, value string) (bool, error)
	// Delete removes the first occurrence of the value from the list.
	// It returns false without an error if the value isn't stored.
	Delete(id ulid.ULID, value string) (bool, error)
	// Contents returns the values of the list from head to tail.
	Contents(id ulid.ULID) ([]string, error)
	// Render returns the printable form of the list.
	Render(id ulid.ULID) (string, error)
	// Destroy tears the list down and forgets its ID.
	Destroy(id ulid.ULID) error
	// Lists returns the IDs of every live list, oldest first.
	Lists() []ulid.ULID
}

// Config describes the configuration for the listservice to run on.
type Config interface {
	// IP provides the IP address where the server is intended to run.
	IP() string
	// Port provides the port where the server is supposed to run.
	Port() string
}

package listclient

import "github.com/oklog/ulid"

// Client describes a client that can be used to interact with
// the strlist listservice over HTTP.
//
// Every call maps onto a single list operation on the server, so
// the list semantics (head insertion, first-match find and delete,
// no-op deletes) are the server's.
type Client interface {
	// Create asks the server for a new empty list.
	Create() (ulid.ULID, error)
	// Insert adds a value at the head of the list.
	Insert(id ulid.ULID, value string) error
	// Find reports whether the value is stored in the list.
	Find(id ulid.ULID, value string) (bool, error)
	// Delete removes the first occurrence of the value. It returns
	// false if the value wasn't stored.
	Delete(id ulid.ULID, value string) (bool, error)
	// Contents returns the values of the list from head to tail
	// along with the printable form of the list.
	Contents(id ulid.ULID) ([]string, string, error)
	// Destroy tears the list down on the server.
	Destroy(id ulid.ULID) error
}

// Config describes where the listserver the client talks to runs.
type Config interface {
	// IP provides the address of the server, including the scheme.
	IP() string
	// Port provides the port the server listens on.
	Port() string
}

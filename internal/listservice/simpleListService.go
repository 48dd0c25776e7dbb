package listservice

import (
	"io"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/SystemBuilders/strlist/internal/dll"
	"github.com/oklog/ulid"
	"github.com/rs/zerolog"
)

// SafeListMap is the listserver's data structure.
type SafeListMap struct {
	ListMap map[ulid.ULID]*dll.DoublyLinkedList
	Mutex   sync.Mutex
}

var _ Config = (*SimpleConfig)(nil)

// SimpleConfig implements Config.
type SimpleConfig struct {
	IPAddr   string
	PortAddr string
	// MaxNodes caps the size of every list created by the service.
	MaxNodes int
}

// IP returns the IP address from SimpleConfig
func (scfg *SimpleConfig) IP() string {
	return scfg.IPAddr
}

// Port returns the port from SimpleConfig.
func (scfg *SimpleConfig) Port() string {
	return scfg.PortAddr
}

// NewSimpleConfig returns a new simple configuration
func NewSimpleConfig(IPAddr, PortAddr string, maxNodes int) *SimpleConfig {
	return &SimpleConfig{
		IPAddr:   IPAddr,
		PortAddr: PortAddr,
		MaxNodes: maxNodes,
	}
}

// ValueRequest is a struct used by the client to
// communicate a value to the HTTP server.
type ValueRequest struct {
	Value string `json:"Value"`
}

// CreateRes is the response to a create request.
type CreateRes struct {
	ID string `json:"ID"`
}

// FindRes is the response to a find request.
type FindRes struct {
	Found bool `json:"Found"`
}

// DeleteRes is the response to a delete request.
type DeleteRes struct {
	Deleted bool `json:"Deleted"`
}

// ContentsRes is the response to a contents request.
type ContentsRes struct {
	Values   []string `json:"Values"`
	Rendered string   `json:"Rendered"`
}

var _ ListService = (*SimpleListService)(nil)

// SimpleListService is a list service that implements ListService.
// It uses a golang map to keep the lists by ID, guarded by a single
// mutex that wraps every operation, and has an in-built logger.
type SimpleListService struct {
	log      zerolog.Logger
	listMap  *SafeListMap
	maxNodes int
	entropy  io.Reader
}

// NewSimpleListService creates and returns a new list service ready to use.
func NewSimpleListService(log zerolog.Logger, maxNodes int) *SimpleListService {
	safeListMap := &SafeListMap{
		ListMap: make(map[ulid.ULID]*dll.DoublyLinkedList),
	}
	return &SimpleListService{
		log:      log,
		listMap:  safeListMap,
		maxNodes: maxNodes,
		entropy:  ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// Create allocates a new list and registers it under a fresh ID.
func (ls *SimpleListService) Create() (ulid.ULID, error) {
	ls.listMap.Mutex.Lock()
	defer ls.listMap.Mutex.Unlock()

	list, err := dll.New(dll.Config{MaxNodes: ls.maxNodes, Log: &ls.log})
	if err != nil {
		ls.
			log.
			Error().
			Err(err).
			Msg("can't create list")
		return ulid.ULID{}, err
	}
	id, err := ulid.New(ulid.Timestamp(time.Now()), ls.entropy)
	if err != nil {
		return ulid.ULID{}, err
	}
	ls.listMap.ListMap[id] = list
	ls.
		log.
		Debug().
		Str("list", id.String()).
		Msg("created")
	return id, nil
}

// Insert adds a value at the head of the list.
func (ls *SimpleListService) Insert(id ulid.ULID, value string) error {
	ls.listMap.Mutex.Lock()
	defer ls.listMap.Mutex.Unlock()

	list, err := ls.get(id)
	if err != nil {
		return err
	}
	return list.Insert(value)
}

// Find reports whether the value is stored in the list.
func (ls *SimpleListService) Find(id ulid.ULID, value string) (bool, error) {
	ls.listMap.Mutex.Lock()
	defer ls.listMap.Mutex.Unlock()

	list, err := ls.get(id)
	if err != nil {
		return false, err
	}
	_, ok := list.Find(value)
	return ok, nil
}

// Delete removes the first occurrence of value from the list.
func (ls *SimpleListService) Delete(id ulid.ULID, value string) (bool, error) {
	ls.listMap.Mutex.Lock()
	defer ls.listMap.Mutex.Unlock()

	list, err := ls.get(id)
	if err != nil {
		return false, err
	}
	return list.Delete(value)
}

// Contents returns a snapshot of the list from head to tail.
func (ls *SimpleListService) Contents(id ulid.ULID) ([]string, error) {
	ls.listMap.Mutex.Lock()
	defer ls.listMap.Mutex.Unlock()

	list, err := ls.get(id)
	if err != nil {
		return nil, err
	}
	return list.Values(), nil
}

// Render returns the printable form of the list.
func (ls *SimpleListService) Render(id ulid.ULID) (string, error) {
	ls.listMap.Mutex.Lock()
	defer ls.listMap.Mutex.Unlock()

	list, err := ls.get(id)
	if err != nil {
		return "", err
	}
	return list.String(), nil
}

// Destroy tears the list down and removes it from the service.
func (ls *SimpleListService) Destroy(id ulid.ULID) error {
	ls.listMap.Mutex.Lock()
	defer ls.listMap.Mutex.Unlock()

	list, err := ls.get(id)
	if err != nil {
		return err
	}
	delete(ls.listMap.ListMap, id)
	if err := list.Destroy(); err != nil {
		return err
	}
	ls.
		log.
		Debug().
		Str("list", id.String()).
		Msg("destroyed")
	return nil
}

// Lists returns the IDs of every live list, oldest first.
func (ls *SimpleListService) Lists() []ulid.ULID {
	ls.listMap.Mutex.Lock()
	defer ls.listMap.Mutex.Unlock()

	ids := make([]ulid.ULID, 0, len(ls.listMap.ListMap))
	for id := range ls.listMap.ListMap {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].Compare(ids[j]) < 0
	})
	return ids
}

func (ls *SimpleListService) get(id ulid.ULID) (*dll.DoublyLinkedList, error) {
	list, ok := ls.listMap.ListMap[id]
	if !ok {
		ls.
			log.
			Debug().
			Str("list", id.String()).
			Msg("list not found")
		return nil, ErrListNotFound
	}
	return list, nil
}

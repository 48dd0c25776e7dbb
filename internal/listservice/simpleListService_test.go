package listservice

import (
	"os"
	"sync"
	"testing"

	"github.com/SystemBuilders/strlist/internal/dll"
	"github.com/oklog/ulid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(maxNodes int) *SimpleListService {
	log := zerolog.New(os.Stdout).With().Logger().Level(zerolog.Disabled)
	return NewSimpleListService(log, maxNodes)
}

func TestCreateInsertDelete(t *testing.T) {
	ls := newService(0)

	id, err := ls.Create()
	require.NoError(t, err)

	for _, v := range []string{"Apple", "Banana", "Cherry", "Date"} {
		require.NoError(t, ls.Insert(id, v))
	}
	got, err := ls.Contents(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Cherry", "Banana", "Apple"}, got)

	found, err := ls.Find(id, "Banana")
	require.NoError(t, err)
	assert.True(t, found)
	found, err = ls.Find(id, "Grape")
	require.NoError(t, err)
	assert.False(t, found)

	deleted, err := ls.Delete(id, "Cherry")
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = ls.Delete(id, "Grape")
	require.NoError(t, err)
	assert.False(t, deleted)

	rendered, err := ls.Render(id)
	require.NoError(t, err)
	assert.Equal(t, `List contents: ["Date" "Banana" "Apple" ]`, rendered)

	require.NoError(t, ls.Destroy(id))
	assert.Empty(t, ls.Lists())
	assert.ErrorIs(t, ls.Destroy(id), ErrListNotFound)
}

func TestUnknownList(t *testing.T) {
	ls := newService(0)
	id := ulid.MustNew(1, nil)

	assert.ErrorIs(t, ls.Insert(id, "a"), ErrListNotFound)
	_, err := ls.Find(id, "a")
	assert.ErrorIs(t, err, ErrListNotFound)
	_, err = ls.Delete(id, "a")
	assert.ErrorIs(t, err, ErrListNotFound)
	_, err = ls.Contents(id)
	assert.ErrorIs(t, err, ErrListNotFound)
	_, err = ls.Render(id)
	assert.ErrorIs(t, err, ErrListNotFound)
}

func TestListsAreIndependent(t *testing.T) {
	ls := newService(0)
	a, err := ls.Create()
	require.NoError(t, err)
	b, err := ls.Create()
	require.NoError(t, err)
	assert.Equal(t, []ulid.ULID{a, b}, ls.Lists())

	require.NoError(t, ls.Insert(a, "x"))
	got, err := ls.Contents(b)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCapacity(t *testing.T) {
	ls := newService(1)
	id, err := ls.Create()
	require.NoError(t, err)
	require.NoError(t, ls.Insert(id, "a"))
	assert.ErrorIs(t, ls.Insert(id, "b"), dll.ErrNodeAllocation)

	bad := newService(-1)
	_, err = bad.Create()
	assert.ErrorIs(t, err, dll.ErrListAllocation)
	assert.Empty(t, bad.Lists())
}

func TestConcurrentInserts(t *testing.T) {
	ls := newService(0)
	id, err := ls.Create()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.NoError(t, ls.Insert(id, "v"))
			}
		}()
	}
	wg.Wait()

	got, err := ls.Contents(id)
	require.NoError(t, err)
	assert.Len(t, got, 800)
}

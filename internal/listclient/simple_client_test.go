package listclient

import (
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/SystemBuilders/strlist/internal/listservice"
	"github.com/SystemBuilders/strlist/internal/routing"
	"github.com/gorilla/mux"
	"github.com/oklog/ulid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, maxNodes int) *SimpleClient {
	t.Helper()
	log := zerolog.New(os.Stdout).With().Logger().Level(zerolog.Disabled)
	ls := listservice.NewSimpleListService(log, maxNodes)
	server := httptest.NewServer(routing.SetupRouting(ls, mux.NewRouter()))
	t.Cleanup(server.Close)

	u, err := url.Parse(server.URL)
	require.NoError(t, err)
	scfg := NewSimpleConfig("http://"+u.Hostname(), u.Port())
	return NewSimpleClient(scfg)
}

func TestWalkthrough(t *testing.T) {
	sc := startServer(t, 0)

	id, err := sc.Create()
	require.NoError(t, err)

	for _, v := range []string{"Apple", "Banana", "Cherry", "Date"} {
		require.NoError(t, sc.Insert(id, v))
	}
	values, rendered, err := sc.Contents(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Cherry", "Banana", "Apple"}, values)
	assert.Equal(t, `List contents: ["Date" "Cherry" "Banana" "Apple" ]`, rendered)

	found, err := sc.Find(id, "Banana")
	require.NoError(t, err)
	assert.True(t, found)
	found, err = sc.Find(id, "Grape")
	require.NoError(t, err)
	assert.False(t, found)

	steps := []struct {
		value   string
		deleted bool
		want    []string
	}{
		{"Cherry", true, []string{"Date", "Banana", "Apple"}},
		{"Date", true, []string{"Banana", "Apple"}},
		{"Apple", true, []string{"Banana"}},
		{"Grape", false, []string{"Banana"}},
		{"Banana", true, []string{}},
	}
	for _, step := range steps {
		deleted, err := sc.Delete(id, step.value)
		require.NoError(t, err)
		assert.Equal(t, step.deleted, deleted, step.value)
		values, _, err := sc.Contents(id)
		require.NoError(t, err)
		assert.Equal(t, step.want, values, step.value)
	}

	_, rendered, err = sc.Contents(id)
	require.NoError(t, err)
	assert.Equal(t, "List is empty.", rendered)

	require.NoError(t, sc.Destroy(id))
	_, _, err = sc.Contents(id)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestClientErrors(t *testing.T) {
	sc := startServer(t, 1)

	err := sc.Insert(ulid.MustNew(1, nil), "a")
	assert.ErrorIs(t, err, ErrUnexpectedStatus)

	id, err := sc.Create()
	require.NoError(t, err)
	require.NoError(t, sc.Insert(id, "a"))
	err = sc.Insert(id, "b")
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "507")
}

func TestSimpleConfig(t *testing.T) {
	var cfg Config = NewSimpleConfig("http://127.0.0.1", "1234")
	assert.Equal(t, "http://127.0.0.1", cfg.IP())
	assert.Equal(t, "1234", cfg.Port())
}

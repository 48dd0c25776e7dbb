package node

import (
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/SystemBuilders/strlist/internal/listservice"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckValidPort(t *testing.T) {
	tests := []struct {
		port    string
		wantErr bool
	}{
		{"1234", false},
		{"0", false},
		{"65535", false},
		{"65536", true},
		{"-1", true},
		{"http", true},
	}
	for _, tt := range tests {
		t.Run(tt.port, func(t *testing.T) {
			err := checkValidPort(tt.port)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	log := zerolog.New(os.Stdout).With().Logger().Level(zerolog.Disabled)
	ls := listservice.NewSimpleListService(log, 0)

	_, err := NewServer(ls, listservice.NewSimpleConfig("127.0.0.1", "99999", 0))
	assert.Error(t, err)

	server, err := NewServer(ls, listservice.NewSimpleConfig("127.0.0.1", "1234", 0))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:1234", server.Addr)

	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/lists", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, ls.Lists(), 1)
}

func TestServeDrainsBeforeReturning(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	router := http.NewServeMux()
	router.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		w.Write([]byte("done"))
	})
	server := &http.Server{Handler: router}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	interruptChan := make(chan os.Signal, 1)
	served := make(chan error, 1)
	go func() {
		served <- serve(server, ln, interruptChan, zerolog.Nop())
	}()

	status := make(chan int, 1)
	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/slow")
		if err != nil {
			status <- 0
			return
		}
		resp.Body.Close()
		status <- resp.StatusCode
	}()

	<-entered
	interruptChan <- os.Interrupt

	select {
	case err := <-served:
		t.Fatalf("serve returned before the request drained: %v", err)
	case <-time.After(200 * time.Millisecond):
	}

	close(release)
	assert.Equal(t, http.StatusOK, <-status)
	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("serve didn't return after the drain")
	}
}

func TestServeReturnsListenerErrors(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, ln.Close())

	server := &http.Server{Handler: http.NewServeMux()}
	err = serve(server, ln, make(chan os.Signal), zerolog.Nop())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, http.ErrServerClosed)
}

func TestStartRejectsBusyPort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	ls := listservice.NewSimpleListService(zerolog.Nop(), 0)
	err = Start(ls, listservice.NewSimpleConfig("127.0.0.1", port, 0), zerolog.Nop())
	assert.Error(t, err)
}

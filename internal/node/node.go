package node

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/SystemBuilders/strlist/internal/listservice"
	"github.com/SystemBuilders/strlist/internal/routing"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// shutdownTimeout bounds how long in-flight requests get to finish.
const shutdownTimeout = time.Second * 10

// NewServer sets up the routes of the list service on a http server
// bound to the address in the config.
func NewServer(ls listservice.ListService, cfg listservice.Config) (*http.Server, error) {
	if err := checkValidPort(cfg.Port()); err != nil {
		return nil, err
	}

	router := mux.NewRouter()

	router = routing.SetupRouting(ls, router)

	return &http.Server{
		Handler: router,
		Addr:    cfg.IP() + ":" + cfg.Port(),
	}, nil
}

// Start begins the node's operation as a http server. It returns
// once the server was shut down on ^C and every in-flight request
// was served.
func Start(ls listservice.ListService, cfg listservice.Config, log zerolog.Logger) error {
	server, err := NewServer(ls, cfg)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return err
	}

	interruptChan := make(chan os.Signal, 1)
	signal.Notify(interruptChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interruptChan)

	return serve(server, ln, interruptChan, log)
}

// serve runs the server on ln until a signal arrives on interruptChan
// and waits for the shutdown to drain before returning.
func serve(server *http.Server, ln net.Listener, interruptChan <-chan os.Signal, log zerolog.Logger) error {
	quit := make(chan struct{})
	done := make(chan struct{})
	go gracefulShutdown(server, interruptChan, quit, done, log)

	log.Info().Str("addr", ln.Addr().String()).Msg("starting server")
	err := server.Serve(ln)
	if !errors.Is(err, http.ErrServerClosed) {
		close(quit)
		<-done
		return err
	}
	<-done
	return nil
}

// gracefulShutdown shuts down the server on getting a ^C signal.
// done is closed once Shutdown has returned, or straight away when
// quit is closed because the server stopped on its own.
func gracefulShutdown(server *http.Server, interruptChan <-chan os.Signal, quit <-chan struct{}, done chan<- struct{}, log zerolog.Logger) {
	defer close(done)

	// Block until we receive our signal.
	select {
	case <-interruptChan:
	case <-quit:
		return
	}

	// Create a deadline to wait for currently serving items.
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}

	log.Info().Msg("shutting down")
}

func checkValidPort(port string) error {
	portInt, err := strconv.Atoi(port)
	if err != nil {
		return err
	}
	if portInt < 0 || portInt > 65535 {
		return errors.New("port number must be between 0 and 65535")
	}
	return nil
}

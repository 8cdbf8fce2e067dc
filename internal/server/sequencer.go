package server

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/MKhiriev/go-admin-dashboard/internal/config"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
)

// Sequencer connects to the database and, only after that succeeded, starts
// the HTTP server. It runs once.
type Sequencer struct {
	connect ConnectFunc
	routes  RoutesFunc
	listen  ListenFunc

	port          int
	serverCfg     config.Server
	exitOnFailure bool

	logger *logger.Logger

	mu        sync.Mutex
	started   bool
	state     State
	addr      net.Addr
	listening chan struct{}
}

func NewSequencer(connect ConnectFunc, routes RoutesFunc, cfg *config.StructuredConfig, logger *logger.Logger) *Sequencer {
	serverCfg := cfg.Server
	if serverCfg.ShutdownTimeout <= 0 {
		serverCfg.ShutdownTimeout = config.DefaultShutdownTimeout
	}

	return &Sequencer{
		connect:       connect,
		routes:        routes,
		listen:        net.Listen,
		port:          serverCfg.ListenPort(),
		serverCfg:     serverCfg,
		exitOnFailure: cfg.App.ExitOnStartupFailure,
		logger:        logger,
		state:         StateNotConnected,
		listening:     make(chan struct{}),
	}
}

// Run makes the single connection attempt and serves until ctx is done.
//
// When the connection fails the error is logged once and no listener is
// opened. Run then waits for ctx and returns nil, or returns
// [ErrStartupConnection] right away if exiting on failure is configured.
func (s *Sequencer) Run(ctx context.Context) error {
	if err := s.start(); err != nil {
		return err
	}

	db, err := s.connect(ctx)
	if err != nil {
		s.setState(StateFailed)
		s.logger.Error().Msgf("%v did not connect", err)

		if s.exitOnFailure {
			return fmt.Errorf("%w: %w", ErrStartupConnection, err)
		}
		<-ctx.Done()
		return nil
	}
	s.setState(StateConnected)
	defer s.closeDatabase(ctx, db)

	handler, err := s.routes(db)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingRoutes, err)
	}

	listener, err := s.listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrListening, err)
	}

	srv := newHTTPServer(handler, s.serverCfg, s.logger)
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(listener)
	}()

	s.markListening(listener.Addr())
	s.logger.Info().Msgf("Server Listening on port: %d", s.port)

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		return fmt.Errorf("error serving HTTP: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.serverCfg.ShutdownTimeout)
	defer cancel()
	srv.Shutdown(shutdownCtx)

	if err := <-serveErr; err != nil {
		return fmt.Errorf("error serving HTTP: %w", err)
	}
	s.logger.Info().Msg("server shut down gracefully")

	return nil
}

// State returns the current step of the sequence.
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Addr returns the address of the open listener, or nil before listening.
func (s *Sequencer) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Listening is closed once the listener accepts connections.
func (s *Sequencer) Listening() <-chan struct{} {
	return s.listening
}

func (s *Sequencer) start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return errSequencerStarted
	}
	s.started = true
	return nil
}

func (s *Sequencer) setState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

func (s *Sequencer) markListening(addr net.Addr) {
	s.mu.Lock()
	s.state = StateListening
	s.addr = addr
	s.mu.Unlock()

	close(s.listening)
}

func (s *Sequencer) closeDatabase(ctx context.Context, db Database) {
	closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.serverCfg.ShutdownTimeout)
	defer cancel()

	if err := db.Close(closeCtx); err != nil {
		s.logger.Err(err).Str("func", "*Sequencer.closeDatabase").Msg("error closing database")
		return
	}
	s.logger.Info().Msg("database connection closed")
}

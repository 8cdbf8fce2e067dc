package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-admin-dashboard/internal/config"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/store"
	"github.com/MKhiriev/go-admin-dashboard/internal/utils"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe for the concurrent writes of Run and the
// reads of the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// linesAtLevel returns the messages of the JSON log lines at level.
func (b *syncBuffer) linesAtLevel(t *testing.T, level string) []string {
	t.Helper()
	var messages []string
	scanner := bufio.NewScanner(strings.NewReader(b.String()))
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		if entry["level"] == level {
			messages = append(messages, entry["message"].(string))
		}
	}
	return messages
}

type fakeDB struct {
	closed atomic.Bool
}

func (db *fakeDB) Ping(context.Context) error {
	return nil
}

func (db *fakeDB) Close(context.Context) error {
	db.closed.Store(true)
	return nil
}

// recorder keeps the order in which the sequence steps happened.
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) add(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

type testSequencer struct {
	*Sequencer
	logs      *syncBuffer
	steps     *recorder
	requested []string
}

// newTestSequencer builds a sequencer whose listener binds an ephemeral
// loopback port and records the address it was asked for.
func newTestSequencer(t *testing.T, cfg *config.StructuredConfig, connect ConnectFunc, routes RoutesFunc) *testSequencer {
	t.Helper()

	logs := &syncBuffer{}
	log := &logger.Logger{Logger: zerolog.New(logs).Level(zerolog.InfoLevel)}
	ts := &testSequencer{logs: logs, steps: &recorder{}}

	ts.Sequencer = NewSequencer(connect, routes, cfg, log)
	ts.listen = func(network, address string) (net.Listener, error) {
		ts.steps.add("listen")
		ts.requested = append(ts.requested, address)
		return net.Listen(network, "127.0.0.1:0")
	}
	return ts
}

func okRoutes(db Database) (http.Handler, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"status":"ok"}`))
	})
	return mux, nil
}

// runAsync starts Run and returns a channel receiving its result.
func runAsync(ctx context.Context, s *Sequencer) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx)
	}()
	return done
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateNotConnected, "not_connected"},
		{StateConnected, "connected"},
		{StateListening, "listening"},
		{StateFailed, "failed"},
		{State(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}

func TestSequencer_ListensOnlyAfterConnect(t *testing.T) {
	db := &fakeDB{}
	var ts *testSequencer
	connect := func(ctx context.Context) (Database, error) {
		// the listener must not exist while the connection is pending
		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, StateNotConnected, ts.State())
		assert.Nil(t, ts.Addr())
		ts.steps.add("connect")
		return db, nil
	}
	routes := func(d Database) (http.Handler, error) {
		ts.steps.add("routes")
		assert.Equal(t, StateConnected, ts.State())
		return okRoutes(d)
	}
	ts = newTestSequencer(t, &config.StructuredConfig{}, connect, routes)

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(ctx, ts.Sequencer)

	select {
	case <-ts.Listening():
	case err := <-done:
		t.Fatalf("Run returned before listening: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("sequencer never started listening")
	}

	assert.Equal(t, []string{"connect", "routes", "listen"}, ts.steps.list())
	assert.Equal(t, StateListening, ts.State())
	assert.Equal(t, []string{":9000"}, ts.requested)
	assert.Contains(t, ts.logs.linesAtLevel(t, "info"), "Server Listening on port: 9000")

	client := utils.NewHTTPClient("http://" + ts.Addr().String())
	resp, err := client.R().Get("/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"status":"ok"}`, resp.String())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.True(t, db.closed.Load())
	assert.Empty(t, ts.logs.linesAtLevel(t, "error"))
}

func TestSequencer_UsesConfiguredPort(t *testing.T) {
	tests := []struct {
		name string
		port string
		want string
	}{
		{name: "numeric port", port: "8080", want: ":8080"},
		{name: "unset port", port: "", want: ":9000"},
		{name: "non numeric port", port: "notanumber", want: ":9000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.StructuredConfig{Server: config.Server{Port: tt.port}}
			connect := func(context.Context) (Database, error) { return &fakeDB{}, nil }
			ts := newTestSequencer(t, cfg, connect, okRoutes)

			ctx, cancel := context.WithCancel(context.Background())
			done := runAsync(ctx, ts.Sequencer)
			<-ts.Listening()
			cancel()
			require.NoError(t, <-done)

			assert.Equal(t, []string{tt.want}, ts.requested)
		})
	}
}

func TestSequencer_ConnectFailureIsIsolated(t *testing.T) {
	cfg := &config.StructuredConfig{App: config.App{ExitOnStartupFailure: true}}
	routesCalled := false
	connect := func(context.Context) (Database, error) {
		return nil, errors.New("dial tcp 10.0.0.1:27017: i/o timeout")
	}
	routes := func(Database) (http.Handler, error) {
		routesCalled = true
		return http.NotFoundHandler(), nil
	}
	ts := newTestSequencer(t, cfg, connect, routes)

	err := ts.Run(context.Background())

	require.ErrorIs(t, err, ErrStartupConnection)
	assert.Equal(t, StateFailed, ts.State())
	assert.False(t, routesCalled)
	assert.Empty(t, ts.requested)
	assert.Nil(t, ts.Addr())
	assert.Equal(t,
		[]string{"dial tcp 10.0.0.1:27017: i/o timeout did not connect"},
		ts.logs.linesAtLevel(t, "error"))
	assert.Empty(t, ts.logs.linesAtLevel(t, "info"))

	select {
	case <-ts.Listening():
		t.Fatal("listening closed after a failed connect")
	default:
	}
}

// Documents existing behavior, not necessarily desired: with PORT unset and
// an unreachable database the process keeps running without a listener.
func TestSequencer_UnreachableDatabaseKeepsProcessRunning(t *testing.T) {
	cfg := &config.StructuredConfig{
		Storage: config.Storage{Mongo: config.Mongo{
			URL:            "mongodb://127.0.0.1:1/dashboard",
			ConnectTimeout: 300 * time.Millisecond,
		}},
	}
	connect := func(ctx context.Context) (Database, error) {
		db, err := store.NewConnectMongo(ctx, cfg.Storage.Mongo, logger.Nop())
		if err != nil {
			return nil, err
		}
		return db, nil
	}
	ts := newTestSequencer(t, cfg, connect, okRoutes)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := runAsync(ctx, ts.Sequencer)

	require.Eventually(t, func() bool {
		return ts.State() == StateFailed
	}, 10*time.Second, 10*time.Millisecond)

	select {
	case err := <-done:
		t.Fatalf("Run returned while the process should stay up: %v", err)
	case <-time.After(200 * time.Millisecond):
	}

	assert.Empty(t, ts.requested, "no socket may be opened")
	errorLines := ts.logs.linesAtLevel(t, "error")
	require.Len(t, errorLines, 1)
	assert.Contains(t, errorLines[0], store.ErrConnectingDatabase.Error())
	assert.True(t, strings.HasSuffix(errorLines[0], "did not connect"))

	cancel()
	require.NoError(t, <-done)
}

func TestSequencer_EmptyDatabaseURL(t *testing.T) {
	cfg := &config.StructuredConfig{App: config.App{ExitOnStartupFailure: true}}
	connect := func(ctx context.Context) (Database, error) {
		db, err := store.NewConnectMongo(ctx, cfg.Storage.Mongo, logger.Nop())
		if err != nil {
			return nil, err
		}
		return db, nil
	}
	ts := newTestSequencer(t, cfg, connect, okRoutes)

	err := ts.Run(context.Background())

	require.ErrorIs(t, err, ErrStartupConnection)
	require.ErrorIs(t, err, store.ErrEmptyDatabaseURL)
	assert.Empty(t, ts.requested)
}

func TestSequencer_RoutesFailure(t *testing.T) {
	db := &fakeDB{}
	connect := func(context.Context) (Database, error) { return db, nil }
	routes := func(Database) (http.Handler, error) { return nil, errors.New("bad dashboard date") }
	ts := newTestSequencer(t, &config.StructuredConfig{}, connect, routes)

	err := ts.Run(context.Background())

	require.ErrorIs(t, err, ErrBuildingRoutes)
	assert.Empty(t, ts.requested)
	assert.True(t, db.closed.Load())
}

func TestSequencer_ListenFailure(t *testing.T) {
	db := &fakeDB{}
	connect := func(context.Context) (Database, error) { return db, nil }
	ts := newTestSequencer(t, &config.StructuredConfig{}, connect, okRoutes)
	ts.listen = func(string, string) (net.Listener, error) {
		return nil, errors.New("address already in use")
	}

	err := ts.Run(context.Background())

	require.ErrorIs(t, err, ErrListening)
	assert.Equal(t, StateConnected, ts.State())
	assert.True(t, db.closed.Load())
}

func TestSequencer_RunsOnce(t *testing.T) {
	connect := func(context.Context) (Database, error) { return nil, errors.New("refused") }
	cfg := &config.StructuredConfig{App: config.App{ExitOnStartupFailure: true}}
	ts := newTestSequencer(t, cfg, connect, okRoutes)

	require.ErrorIs(t, ts.Run(context.Background()), ErrStartupConnection)
	require.ErrorIs(t, ts.Run(context.Background()), errSequencerStarted)
	assert.Len(t, ts.logs.linesAtLevel(t, "error"), 1)
}

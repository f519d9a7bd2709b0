package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/grubline/vendordash/internal/config"
	testhelpers "github.com/grubline/vendordash/internal/test"
	facadestub "github.com/grubline/vendordash/internal/test/facade"
	"github.com/grubline/vendordash/internal/worker"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestWorkers() (*worker.OrderRefresher, *worker.SessionJanitor) {
	logger := testLogger()
	facade := &facadestub.RefresherFacadeStub{}
	refresher := worker.NewOrderRefresher(facade, 10*time.Millisecond, 1, 1, logger)
	janitor := worker.NewSessionJanitor(purgerNoop{}, 10*time.Millisecond, logger)
	return refresher, janitor
}

type purgerNoop struct{}

func (purgerNoop) PurgeExpiredSessions(context.Context) (int64, error) { return 0, nil }

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.Config{RunAddress: ":9999"}
	router := gin.New()
	server := newHTTPServer(serverParams{Config: cfg, Router: router})
	if server.Addr != ":9999" {
		t.Fatalf("expected address :9999, got %q", server.Addr)
	}
	if server.Handler != router {
		t.Fatalf("expected handler to be router")
	}
}

func TestNewWorkersUseConfig(t *testing.T) {
	params := workerParams{
		Facade: &DashboardFacade{},
		Config: &config.Config{
			OrderRefreshInterval: 15 * time.Second,
			MaxVendorsBatch:      3,
			WorkerPoolSize:       4,
			SessionPurgeInterval: time.Hour,
		},
		Logger: testLogger(),
	}
	if refresher := newOrderRefresher(params); refresher == nil {
		t.Fatal("expected order refresher instance")
	}
	if janitor := newSessionJanitor(params); janitor == nil {
		t.Fatal("expected session janitor instance")
	}
}

func TestRegisterLifecycleStartStop(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	refresher, janitor := newTestWorkers()
	cfg := &config.Config{ShutdownTimeout: 100 * time.Millisecond}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     testLogger(),
		Server:     server,
		Refresher:  refresher,
		Janitor:    janitor,
		Config:     cfg,
	})

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one hook registered, got %d", len(recorder.Hooks))
	}

	hook := recorder.Hooks[0]
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := hook.OnStart(ctx); err != nil {
		t.Fatalf("on start failed: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = hook.OnStop(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected on stop to finish")
	}
}

func TestRegisterLifecycleShutdownOnServerError(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	server := &http.Server{Addr: "bad addr"}
	refresher, janitor := newTestWorkers()

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     testLogger(),
		Server:     server,
		Refresher:  refresher,
		Janitor:    janitor,
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	hook := recorder.Hooks[0]
	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("on start returned error: %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(time.Second):
		t.Fatal("expected shutdown to be triggered on server error")
	}

	_ = hook.OnStop(context.Background())
}

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/kbo-fan-service/internal/config"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/highlights"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/records"
	"github.com/preston-bernstein/kbo-fan-service/internal/testutil"
)

func fixtureConfig() config.Config {
	return config.Config{
		Port:           "0",
		VideoProvider:  config.ProviderFixture,
		LeagueProvider: config.ProviderFixture,
		YouTube:        config.YouTubeConfig{RPS: 100, Burst: 10},
		KBO:            config.KBOConfig{RPS: 100},
		CacheTTL:       time.Minute,
		HighlightCount: 5,
		Metrics:        config.MetricsConfig{Enabled: false},
	}
}

func TestNewConstructsServer(t *testing.T) {
	srv := New(fixtureConfig(), nil)
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}
	if srv.services.Cache == nil || srv.services.Records == nil {
		t.Fatalf("expected services to be wired")
	}
}

func TestServerServesFixtureData(t *testing.T) {
	srv := New(fixtureConfig(), nil)
	router := srv.Handler()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/records/rankings", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 from rankings, got %d", rr.Code)
	}
	var rankings records.Outcome[[]records.TeamRanking]
	if err := json.NewDecoder(rr.Body).Decode(&rankings); err != nil {
		t.Fatalf("failed to decode rankings: %v", err)
	}
	if rankings.Fallback || len(rankings.Data) != 10 {
		t.Fatalf("expected live fixture standings, got fallback=%v rows=%d", rankings.Fallback, len(rankings.Data))
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/highlights", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 from highlights, got %d", rr.Code)
	}
	var result highlights.Result
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode highlights: %v", err)
	}
	if result.Error || len(result.Data) > 5 {
		t.Fatalf("unexpected highlights result %+v", result)
	}
	if srv.services.Cache.Len() != 2 {
		t.Fatalf("expected both responses cached, got %d entries", srv.services.Cache.Len())
	}
}

func TestServerMissingAPIKeyAnswers500(t *testing.T) {
	cfg := fixtureConfig()
	cfg.VideoProvider = config.ProviderYouTube
	srv := New(cfg, nil)

	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/highlights", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 without API key, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected not ready without API key, got %d", rr.Code)
	}
}

func TestGracefulShutdownCallsShutdown(t *testing.T) {
	httpSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, httpSrv)
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
}

func TestGracefulShutdownStopsMetrics(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	httpSrv := &testutil.StubHTTPServer{ShutdownErr: errors.New("down")}
	metricsSrv := &testutil.StubHTTPServer{}
	stopped := false

	srv := newServerWithDeps(config.Config{}, logger, httpSrv)
	srv.metricsServer = metricsSrv
	srv.metricsStop = func(context.Context) error {
		stopped = true
		return errors.New("flush failed")
	}
	srv.gracefulShutdown()

	if !stopped || metricsSrv.ShutdownCalls != 1 || httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected every component stopped, got metricsStop=%v metrics=%d http=%d", stopped, metricsSrv.ShutdownCalls, httpSrv.ShutdownCalls)
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	blocking := &testutil.BlockingHTTPServer{
		AddrVal:    ":0",
		HandlerVal: http.NewServeMux(),
		Unblock:    make(chan struct{}),
	}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := newServerWithDeps(config.Config{}, nil, blocking)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	srv := newServerWithDeps(config.Config{}, nil, &testutil.ErrHTTPServer{})

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	httpSrv := &testutil.CloseableHTTPServer{}
	srv := newServerWithDeps(config.Config{}, nil, httpSrv)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.ShutdownCalls)
	}
}

package providers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/kbo-fan-service/internal/domain/highlights"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/records"
	"github.com/preston-bernstein/kbo-fan-service/internal/metrics"
	"github.com/preston-bernstein/kbo-fan-service/internal/teststubs"
	"github.com/preston-bernstein/kbo-fan-service/internal/testutil"
)

func TestInstrumentedVideoProviderRecordsSuccess(t *testing.T) {
	stub := &teststubs.StubVideoProvider{IDs: []string{"a", "b"}}
	rec := metrics.NewRecorder()
	p := NewInstrumentedVideoProvider("youtube", stub, rec, nil)

	ids, err := p.SearchVideos(context.Background(), highlights.SearchParams{Query: "KBO 하이라이트"})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected ids passed through, got %v", ids)
	}
	if rec.ProviderCalls("youtube") != 1 || rec.ProviderErrors("youtube") != 0 {
		t.Fatalf("unexpected stats %+v", rec.Snapshot("youtube"))
	}
}

func TestInstrumentedVideoProviderIgnoresMissingAPIKey(t *testing.T) {
	stub := &teststubs.StubVideoProvider{SearchErr: highlights.ErrMissingAPIKey}
	rec := metrics.NewRecorder()
	logger, buf := testutil.NewBufferLogger()
	p := NewInstrumentedVideoProvider("youtube", stub, rec, logger)

	_, err := p.SearchVideos(context.Background(), highlights.SearchParams{Query: "KBO 하이라이트"})
	if !errors.Is(err, highlights.ErrMissingAPIKey) {
		t.Fatalf("expected missing key error passed through, got %v", err)
	}
	if rec.ProviderCalls("youtube") != 0 || rec.ProviderErrors("youtube") != 0 {
		t.Fatalf("expected no provider stats for a missing key, got %+v", rec.Snapshot("youtube"))
	}
	if strings.Contains(buf.String(), "provider call failed") {
		t.Fatalf("expected no failure log, got %q", buf.String())
	}
}

func TestInstrumentedVideoProviderDoesNotRetry(t *testing.T) {
	forbidden := &StatusError{Provider: "youtube", StatusCode: http.StatusForbidden}
	stub := &teststubs.StubVideoProvider{DetailsErr: forbidden}
	rec := metrics.NewRecorder()
	p := NewInstrumentedVideoProvider("youtube", stub, rec, nil)

	_, err := p.VideoDetails(context.Background(), []string{"a"})
	if !IsForbidden(err) {
		t.Fatalf("expected forbidden error passed through, got %v", err)
	}
	if stub.DetailsCalls.Load() != 1 {
		t.Fatalf("expected exactly one upstream attempt, got %d", stub.DetailsCalls.Load())
	}
	if rec.ProviderErrors("youtube") != 1 {
		t.Fatalf("expected error recorded")
	}
}

func TestInstrumentedLeagueProviderRecordsEveryOperation(t *testing.T) {
	stub := &teststubs.StubLeagueProvider{Rankings: []records.TeamRanking{{Rank: 1}}}
	rec := metrics.NewRecorder()
	p := NewInstrumentedLeagueProvider("kbo", stub, rec, nil)
	now := time.Now()

	if _, err := p.FetchTeamRankings(context.Background(), now); err != nil {
		t.Fatalf("rankings: %v", err)
	}
	_, _ = p.FetchBatterLeaders(context.Background(), now)
	_, _ = p.FetchPitcherLeaders(context.Background(), now)
	_, _ = p.FetchSchedule(context.Background(), now, now)

	if got := rec.ProviderCalls("kbo"); got != 4 {
		t.Fatalf("expected 4 recorded calls, got %d", got)
	}
}

func TestInstrumentedProvidersHandleNilInner(t *testing.T) {
	v := NewInstrumentedVideoProvider("youtube", nil, nil, nil)
	if _, err := v.SearchVideos(context.Background(), highlights.SearchParams{}); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	l := NewInstrumentedLeagueProvider("kbo", nil, nil, nil)
	if _, err := l.FetchSchedule(context.Background(), time.Now(), time.Now()); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

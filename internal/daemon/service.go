// Package daemon provides the long-running ledger monitor service with
// HTTP and SSE endpoints.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/ledgerlens/internal/analysis"
	"github.com/theirongolddev/ledgerlens/internal/logger"
	"github.com/theirongolddev/ledgerlens/internal/model"
	"github.com/theirongolddev/ledgerlens/internal/pipeline"
	"github.com/theirongolddev/ledgerlens/internal/source"
)

// Config controls the daemon runtime behavior.
type Config struct {
	DataPath     string
	Options      analysis.Options
	Interval     time.Duration
	Addr         string
	EventsBuffer int
}

// Snapshot is a compact ledger state for status and event payloads.
type Snapshot struct {
	At               time.Time       `json:"at"`
	RunID            string          `json:"run_id"`
	Files            int             `json:"files"`
	Transactions     int             `json:"transactions"`
	Income           decimal.Decimal `json:"income"`
	Expense          decimal.Decimal `json:"expense"`
	Balance          decimal.Decimal `json:"balance"`
	UnclassifiedRate decimal.Decimal `json:"unclassified_rate"`
	OverBudget       int             `json:"over_budget"`
}

// Delta captures snapshot deltas between analysis runs.
type Delta struct {
	Transactions int             `json:"transactions"`
	Income       decimal.Decimal `json:"income"`
	Expense      decimal.Decimal `json:"expense"`
	Balance      decimal.Decimal `json:"balance"`
}

func (d Delta) isZero() bool {
	return d.Transactions == 0 &&
		d.Income.IsZero() &&
		d.Expense.IsZero() &&
		d.Balance.IsZero()
}

// Event is emitted whenever the ledger snapshot changes.
type Event struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Snapshot  Snapshot  `json:"snapshot"`
	Delta     Delta     `json:"delta"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	LastPollAt      time.Time `json:"last_poll_at"`
	PollIntervalSec int       `json:"poll_interval_sec"`
	PollCount       int64     `json:"poll_count"`
	RunCount        int64     `json:"run_count"`
	DataPath        string    `json:"data_path"`
	From            string    `json:"from,omitempty"`
	To              string    `json:"to,omitempty"`
	Category        string    `json:"category,omitempty"`
	Summary         Snapshot  `json:"summary"`
	LastError       string    `json:"last_error,omitempty"`
	EventCount      int       `json:"event_count"`
	SubscriberCount int       `json:"subscriber_count"`
}

// Service provides the daemon runtime and HTTP API.
type Service struct {
	cfg Config
	log zerolog.Logger

	mu          sync.RWMutex
	startedAt   time.Time
	lastPollAt  time.Time
	pollCount   int64
	runCount    int64
	lastError   string
	fingerprint string
	hasSnapshot bool
	snapshot    Snapshot
	report      *analysis.Report
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a new daemon service with the provided config.
func New(cfg Config) *Service {
	if cfg.Interval < 2*time.Second {
		cfg.Interval = 15 * time.Second
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8788"
	}

	return &Service{
		cfg:       cfg,
		log:       zerolog.Nop(),
		startedAt: time.Now(),
		subs:      make(map[int]chan Event),
	}
}

// Handler returns the HTTP API routes.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/report", s.handleReport)
	mux.HandleFunc("/v1/events", s.handleEvents)
	mux.HandleFunc("/v1/stream", s.handleStream)
	return mux
}

// Run starts HTTP endpoints and polling until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	s.log = logger.WithFields(logger.FromContext(ctx), map[string]any{
		"component": "daemon",
		"data_path": s.cfg.DataPath,
	})

	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Seed initial snapshot so status is useful immediately.
	s.pollOnce(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case <-ticker.C:
			s.pollOnce(ctx)
		case err := <-errCh:
			return fmt.Errorf("daemon http server: %w", err)
		}
	}
}

// pollOnce re-runs the analysis when the data files changed on disk.
func (s *Service) pollOnce(ctx context.Context) {
	files, err := source.ScanPath(s.cfg.DataPath)
	if err != nil {
		s.recordError(err)
		return
	}

	fp := source.Fingerprint(files)
	s.mu.RLock()
	unchanged := s.hasSnapshot && fp == s.fingerprint
	s.mu.RUnlock()
	if unchanged {
		s.mu.Lock()
		s.lastPollAt = time.Now()
		s.pollCount++
		s.lastError = ""
		s.mu.Unlock()
		return
	}

	res, err := pipeline.Load(ctx, s.cfg.DataPath, nil)
	if err != nil {
		s.recordError(err)
		return
	}
	report := analysis.Run(ctx, res.Transactions, s.cfg.Options)
	now := time.Now()
	snap := snapshotFromReport(report, len(res.Files), now)

	var (
		ev      Event
		publish bool
	)

	s.mu.Lock()
	prev := s.snapshot
	prevExists := s.hasSnapshot

	s.hasSnapshot = true
	s.snapshot = snap
	s.report = report
	s.fingerprint = fp
	s.lastPollAt = now
	s.pollCount++
	s.runCount++
	s.lastError = ""

	if !prevExists {
		s.nextEventID++
		ev = Event{
			ID:        s.nextEventID,
			Type:      "snapshot",
			Timestamp: now,
			Snapshot:  snap,
		}
		publish = true
	} else {
		delta := diffSnapshots(prev, snap)
		if !delta.isZero() {
			s.nextEventID++
			ev = Event{
				ID:        s.nextEventID,
				Type:      "ledger_delta",
				Timestamp: now,
				Snapshot:  snap,
				Delta:     delta,
			}
			publish = true
		}
	}
	s.mu.Unlock()

	s.log.Info().
		Str("run_id", report.RunID).
		Int("transactions", snap.Transactions).
		Int("file_errors", res.FileErrors).
		Msg("ledger analyzed")

	if publish {
		s.publishEvent(ev)
	}
}

func (s *Service) recordError(err error) {
	s.mu.Lock()
	s.lastError = err.Error()
	s.lastPollAt = time.Now()
	s.pollCount++
	s.mu.Unlock()
	s.log.Warn().Err(err).Msg("poll failed")
}

func snapshotFromReport(r *analysis.Report, files int, at time.Time) Snapshot {
	return Snapshot{
		At:               at,
		RunID:            r.RunID,
		Files:            files,
		Transactions:     r.Basic.TransactionsCount,
		Income:           r.Basic.TotalIncome,
		Expense:          r.Basic.TotalExpense,
		Balance:          r.Basic.Balance,
		UnclassifiedRate: r.Classification.UnclassifiedRate,
		OverBudget:       overBudget(r.Comparison),
	}
}

func overBudget(c model.BudgetComparison) int {
	n := 0
	for _, row := range c.Categories {
		if row.Exceeded {
			n++
		}
	}
	return n
}

func diffSnapshots(prev, curr Snapshot) Delta {
	return Delta{
		Transactions: curr.Transactions - prev.Transactions,
		Income:       curr.Income.Sub(prev.Income),
		Expense:      curr.Expense.Sub(prev.Expense),
		Balance:      curr.Balance.Sub(prev.Balance),
	}
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		LastPollAt:      s.lastPollAt,
		PollIntervalSec: int(s.cfg.Interval.Seconds()),
		PollCount:       s.pollCount,
		RunCount:        s.runCount,
		DataPath:        s.cfg.DataPath,
		From:            s.cfg.Options.From,
		To:              s.cfg.Options.To,
		Category:        s.cfg.Options.Category,
		Summary:         s.snapshot,
		LastError:       s.lastError,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.snapshotStatus())
}

func (s *Service) handleReport(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	report := s.report
	s.mu.RUnlock()

	if report == nil {
		http.Error(w, "no report yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(report)
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	// Send current snapshot immediately.
	current := Event{
		Type:      "snapshot",
		Timestamp: time.Now(),
		Snapshot:  s.snapshotStatus().Summary,
	}
	writeSSE(w, current)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}

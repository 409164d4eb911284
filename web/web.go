// Package web provides a local HTTP viewer for ledger reports.
//
// The server exposes a read-only JSON API over the loaded account set,
// rebuilt from the store whenever the snapshot changes on disk.
//
// SECURITY WARNING: This server has no authentication and should only be
// bound to localhost (127.0.0.1). Do not expose it to untrusted networks.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"finman/ledger"
	"finman/store"
	"finman/telemetry"
)

type Server struct {
	Port         int
	Host         string
	Version      string
	CommitSHA    string
	WatchEnabled bool

	store store.Store
	// watchFile is the on-disk snapshot path; empty disables watching even
	// when WatchEnabled is set (the sqlite backend rewrites its file on
	// every statement, so change events carry no signal there).
	watchFile string
	log       *zap.Logger

	mu       sync.RWMutex
	accounts []*ledger.Account

	// SSE clients for broadcasting reload events
	sseClients map[chan string]struct{}
	sseMu      sync.Mutex
}

func New(st store.Store, watchFile string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		Host:       "127.0.0.1",
		Port:       8179,
		store:      st,
		watchFile:  watchFile,
		log:        log,
		sseClients: make(map[chan string]struct{}),
	}
}

// Start loads the account set, optionally starts the snapshot watcher, and
// serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	timer := telemetry.StartTimer(ctx, fmt.Sprintf("web.start %s:%d", s.Host, s.Port))
	defer timer.End()

	if err := s.reload(ctx); err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}

	if s.WatchEnabled && s.watchFile != "" {
		if err := s.startWatcher(ctx); err != nil {
			return fmt.Errorf("failed to start snapshot watcher: %w", err)
		}
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.Host, s.Port),
		Handler: s.router(),
	}

	s.log.Info("listening", zap.String("addr", srv.Addr), zap.String("version", s.Version))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) router() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/accounts", s.instrumented("accounts", s.handleListAccounts))
	mux.HandleFunc("GET /api/accounts/{name}/summary", s.instrumented("summary", s.handleSummary))
	mux.HandleFunc("GET /api/accounts/{name}/monthly", s.instrumented("monthly", s.handleMonthly))
	mux.HandleFunc("GET /api/accounts/{name}/yearly", s.instrumented("yearly", s.handleYearly))
	mux.HandleFunc("GET /api/events", s.handleSSE)
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

// reload replaces the in-memory account set from the store. A corrupt
// snapshot degrades to an empty set with a logged warning; the server keeps
// running.
func (s *Server) reload(ctx context.Context) error {
	accounts, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrCorruptSnapshot) {
			return err
		}
		s.log.Warn("snapshot unreadable, serving empty account set", zap.Error(err))
		accounts = nil
	}

	s.mu.Lock()
	s.accounts = accounts
	s.mu.Unlock()

	accountsGauge.Set(float64(len(accounts)))
	return nil
}

// startWatcher watches the snapshot file, reloading and broadcasting on
// change.
func (s *Server) startWatcher(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(s.watchFile); err != nil {
		s.log.Warn("failed to watch snapshot", zap.String("file", s.watchFile), zap.Error(err))
	}

	go s.runWatcher(ctx, watcher)
	return nil
}

// runWatcher processes file system events with debouncing.
func (s *Server) runWatcher(ctx context.Context, watcher *fsnotify.Watcher) {
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		_ = watcher.Close()
	}()

	// Debounce timer - saves often touch the file in multiple steps
	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			// React to write/create/remove/rename events
			// (Remove/Rename are common in atomic saves)
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				s.handleFileChange(ctx, watcher)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.log.Warn("file watcher error", zap.Error(err))
		}
	}
}

// handleFileChange reloads the account set and re-arms the watch. The watch
// is re-added because atomic saves replace the inode.
func (s *Server) handleFileChange(ctx context.Context, watcher *fsnotify.Watcher) {
	if err := s.reload(ctx); err != nil {
		s.log.Error("failed to reload snapshot", zap.Error(err))
		return
	}

	if err := watcher.Add(s.watchFile); err != nil {
		s.log.Warn("failed to re-watch snapshot", zap.String("file", s.watchFile), zap.Error(err))
	}

	reloadsTotal.Inc()
	s.log.Info("snapshot reloaded", zap.String("file", s.watchFile))
	s.broadcast("reload")
}

// handleSSE handles Server-Sent Events connections for real-time updates.
func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	clientChan := make(chan string, 10)

	s.sseMu.Lock()
	s.sseClients[clientChan] = struct{}{}
	s.sseMu.Unlock()

	defer func() {
		s.sseMu.Lock()
		delete(s.sseClients, clientChan)
		s.sseMu.Unlock()
		close(clientChan)
	}()

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	// Send initial connection event
	_, _ = fmt.Fprintf(w, "data: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event := <-clientChan:
			_, _ = fmt.Fprintf(w, "data: %s\n\n", event)
			flusher.Flush()
		}
	}
}

// broadcast sends an event to all connected SSE clients.
func (s *Server) broadcast(event string) {
	s.sseMu.Lock()
	defer s.sseMu.Unlock()

	for clientChan := range s.sseClients {
		select {
		case clientChan <- event:
		default:
			// Client buffer full, skip
		}
	}
}

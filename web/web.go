// Package web provides a small local HTTP viewer for bookings.
//
// The server exposes a read-only JSON API over the bookings file and the
// room catalog, plus a Server-Sent Events stream that notifies clients when
// the bookings file changes on disk (useful while the CLI is being used in
// another terminal).
//
// SECURITY WARNING: the server has no authentication and binds to localhost
// only. Do not expose it to untrusted networks. It never writes; the CLI
// remains the sole writer of the bookings file.
package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tvxk/coralbay/booking"
	"github.com/tvxk/coralbay/catalog"
	"github.com/tvxk/coralbay/telemetry"
)

type Server struct {
	Port         int
	Host         string
	Version      string
	WatchEnabled bool

	store   *booking.Store
	catalog *catalog.Catalog

	// SSE clients for broadcasting reload events
	sseClients map[chan string]struct{}
	sseMu      sync.Mutex
}

func New(port int, store *booking.Store, cat *catalog.Catalog) *Server {
	return &Server{
		Port:    port,
		Host:    "127.0.0.1",
		store:   store,
		catalog: cat,
	}
}

func (s *Server) Start(ctx context.Context) error {
	timer := telemetry.StartTimer(ctx, fmt.Sprintf("web.start %s:%d", s.Host, s.Port))
	defer timer.End()

	s.sseClients = make(map[chan string]struct{})

	if s.WatchEnabled {
		if err := s.startWatcher(ctx); err != nil {
			return fmt.Errorf("failed to start file watcher: %w", err)
		}
	}

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	return http.ListenAndServe(addr, s.Router())
}

// Router builds the API routes. Exposed separately so tests can drive the
// handlers without a listening socket.
func (s *Server) Router() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/bookings", s.handleGetBookings)
	mux.HandleFunc("GET /api/rooms", s.handleGetRooms)
	mux.HandleFunc("GET /api/availability", s.handleGetAvailability)
	mux.HandleFunc("GET /api/events", s.handleSSE)

	return mux
}

// startWatcher watches the bookings file and broadcasts a reload event when
// it changes.
func (s *Server) startWatcher(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(s.store.Path()); err != nil {
		log.Printf("Warning: failed to watch %s: %v", s.store.Path(), err)
	}

	go s.runWatcher(ctx, watcher)

	return nil
}

// runWatcher processes file system events with debouncing. Editors and
// atomic saves produce several events per logical change.
func (s *Server) runWatcher(ctx context.Context, watcher *fsnotify.Watcher) {
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		_ = watcher.Close()
	}()

	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}

			debounceTimer = time.AfterFunc(debounceDelay, func() {
				// Re-add in case the file was replaced atomically.
				_ = watcher.Add(s.store.Path())
				s.broadcast("reload")
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)
		}
	}
}

// handleSSE handles Server-Sent Events connections for real-time updates.
func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

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

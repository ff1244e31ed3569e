// Package observer serves the generated scene and its celestial frames to remote viewers
package observer

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/cors"

	"github.com/lixenwraith/pyramid-scene/parameter"
	"github.com/lixenwraith/pyramid-scene/world"
)

// Server exposes GET /bootstrap and the /ws frame stream, loopback clients only
type Server struct {
	hub *Hub
	log *log.Logger

	mu        sync.RWMutex
	bootstrap []byte // encoded snapshot of the current world

	upgrader websocket.Upgrader
}

func NewServer(hub *Hub, logger *log.Logger) *Server {
	return &Server{
		hub: hub,
		log: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  parameter.ObserverBufferSize,
			WriteBufferSize: parameter.ObserverBufferSize,
			CheckOrigin:     func(r *http.Request) bool { return true }, // loopback gate below
		},
	}
}

// SetWorld snapshots the static scene for /bootstrap and retags the frame stream
func (s *Server) SetWorld(w *world.World) error {
	b, err := json.Marshal(NewBootstrap(w))
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.bootstrap = b
	s.mu.Unlock()

	s.hub.SetWorld(w.ID.String())
	return nil
}

// Handler returns the routed, gzip and CORS wrapped handler
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/bootstrap", gzhttp.GzipHandler(s.BootstrapHandler()))
	mux.Handle("/ws", s.WSHandler())

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	})
	return c.Handler(mux)
}

func (s *Server) BootstrapHandler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			rw.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if !isLoopbackRemote(r.RemoteAddr) {
			http.Error(rw, "forbidden", http.StatusForbidden)
			return
		}

		s.mu.RLock()
		b := s.bootstrap
		s.mu.RUnlock()
		if b == nil {
			http.Error(rw, "no world", http.StatusServiceUnavailable)
			return
		}

		rw.Header().Set("Content-Type", "application/json")
		_, _ = rw.Write(b)
	}
}

func (s *Server) WSHandler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if !isLoopbackRemote(r.RemoteAddr) {
			http.Error(rw, "forbidden", http.StatusForbidden)
			return
		}

		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		id, out := s.hub.Subscribe()
		defer s.hub.Unsubscribe(id)
		s.log.Printf("observer %d connected from %s", id, r.RemoteAddr)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		writeErr := make(chan error, 1)
		go func() {
			for {
				select {
				case <-ctx.Done():
					writeErr <- ctx.Err()
					return
				case b, ok := <-out:
					if !ok {
						writeErr <- nil
						return
					}
					_ = conn.SetWriteDeadline(time.Now().Add(parameter.ObserverWriteTimeout))
					if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
						writeErr <- err
						return
					}
				}
			}
		}()

		// Clients only read; the reader loop detects close
		for {
			_ = conn.SetReadDeadline(time.Now().Add(parameter.ObserverReadTimeout))
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}

		cancel()
		_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"), time.Now().Add(time.Second))

		select {
		case <-writeErr:
		case <-time.After(500 * time.Millisecond):
		}
		s.log.Printf("observer %d disconnected", id)
	}
}

// Serve runs the HTTP server on ln until ctx is cancelled
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: parameter.ObserverWriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), parameter.ObserverShutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Printf("observer listening on %s", ln.Addr())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func isLoopbackRemote(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	host = strings.TrimPrefix(host, "[")
	host = strings.TrimSuffix(host, "]")
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

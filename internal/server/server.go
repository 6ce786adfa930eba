package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/SeamusWaldron/cubesim"
)

// Server owns an engine and exposes it to renderers: a JSON bootstrap
// endpoint with the static cube description, and a websocket that streams
// a pose frame every tick and accepts move commands.
//
// The engine is single-threaded by design, so all access - the tick loop
// and every connection's inbound commands - is serialized under one mutex.
type Server struct {
	engine *cubesim.Engine
	log    *log.Logger

	tickRate int
	upgrader websocket.Upgrader

	mu      sync.Mutex // guards engine and conns
	conns   map[*websocket.Conn]chan []byte
	connSeq int
}

// New creates a pose-stream server around an engine.
func New(engine *cubesim.Engine, tickRateHz int, logger *log.Logger) *Server {
	return &Server{
		engine:   engine,
		log:      logger,
		tickRate: tickRateHz,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 4 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
		conns: make(map[*websocket.Conn]chan []byte),
	}
}

// Run serves until the context is canceled.
func (s *Server) Run(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/bootstrap", s.BootstrapHandler())
	mux.HandleFunc("/ws", s.WSHandler())

	srv := &http.Server{Addr: addr, Handler: mux}

	go s.tickLoop(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Printf("pose server listening on %s (tick rate %d Hz)", addr, s.tickRate)
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// tickLoop advances the engine at the configured rate and broadcasts a
// pose frame to every subscriber.
func (s *Server) tickLoop(ctx context.Context) {
	interval := time.Second / time.Duration(s.tickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	dt := interval.Seconds()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		s.mu.Lock()
		s.engine.Tick(dt)
		if err := s.engine.Err(); err != nil {
			s.mu.Unlock()
			s.log.Printf("engine failed, stopping ticks: %v", err)
			return
		}
		if len(s.conns) == 0 {
			s.mu.Unlock()
			continue
		}
		frame, err := json.Marshal(buildFrame(s.engine))
		if err != nil {
			s.mu.Unlock()
			s.log.Printf("marshal frame: %v", err)
			continue
		}
		for _, ch := range s.conns {
			select {
			case ch <- frame:
			default:
				// Slow consumer: drop the frame rather than stall the tick.
			}
		}
		s.mu.Unlock()
	}
}

// BootstrapHandler returns the static cube description.
func (s *Server) BootstrapHandler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			rw.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		s.mu.Lock()
		resp := buildBootstrap(s.engine.Lattice(), s.tickRate)
		s.mu.Unlock()

		rw.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(rw).Encode(resp)
	}
}

// WSHandler upgrades a renderer connection, subscribes it to pose frames,
// and feeds its move commands to the engine. Commands arriving while a
// move is in flight follow the engine's queue policy; rejected moves are
// simply dropped, never an error on the wire.
func (s *Server) WSHandler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}

		ch := make(chan []byte, 8)
		s.mu.Lock()
		s.conns[conn] = ch
		s.connSeq++
		id := s.connSeq
		s.mu.Unlock()
		s.log.Printf("renderer %d connected from %s", id, r.RemoteAddr)

		go s.writeLoop(conn, ch)
		s.readLoop(conn, id)
	}
}

// writeLoop pushes queued frames to one connection.
func (s *Server) writeLoop(conn *websocket.Conn, ch chan []byte) {
	for frame := range ch {
		if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			return
		}
	}
}

// readLoop consumes move commands until the connection closes, then
// unsubscribes it.
func (s *Server) readLoop(conn *websocket.Conn, id int) {
	defer func() {
		s.mu.Lock()
		if ch, ok := s.conns[conn]; ok {
			delete(s.conns, conn)
			close(ch)
		}
		s.mu.Unlock()
		conn.Close()
		s.log.Printf("renderer %d disconnected", id)
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var cmd MoveCommand
		if err := json.Unmarshal(msg, &cmd); err != nil || cmd.Type != "move" {
			continue
		}
		move, ok := parseMove(cmd)
		if !ok {
			continue
		}

		s.mu.Lock()
		accepted := s.engine.Request(move)
		s.mu.Unlock()
		if !accepted {
			s.log.Printf("renderer %d: move %s dropped (engine busy)", id, move)
		}
	}
}

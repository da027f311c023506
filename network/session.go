package network

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/skirmishdev/skirmish/config"
	"github.com/skirmishdev/skirmish/shared/messages"
	"github.com/skirmishdev/skirmish/shared/protocol"
)

type SessionState int

const (
	StateDisconnected SessionState = iota
	StateListening
	StateConnecting
	StateConnected
	StateError
)

type Role int

const (
	RoleHost Role = iota
	RoleJoiner
)

func (r Role) String() string {
	if r == RoleHost {
		return "host"
	}
	return "joiner"
}

// Session is the single logical peer connection. A host listens for one
// inbound peer; a joiner dials a known address. Connection errors are
// terminal for the attempt: no retries, no reconnects.
//
// All shared fields are protected by mu (the read pump and the broadcast
// timer run on their own goroutines).
type Session struct {
	mu sync.RWMutex

	role     Role
	localID  string
	remoteID string
	state    SessionState
	lastErr  error
	conn     *websocket.Conn
	httpSrv  *http.Server

	moveCh  chan messages.Move // size-1 buffered; latest wins
	shootCh chan messages.Shoot
	hitCh   chan messages.Hit
}

func NewSession(role Role) *Session {
	return &Session{
		role:    role,
		localID: uuid.NewString(),
		state:   StateDisconnected,
		moveCh:  make(chan messages.Move, config.Net.MoveBuffer),
		shootCh: make(chan messages.Shoot, config.Net.EventBuffer),
		hitCh:   make(chan messages.Hit, config.Net.EventBuffer),
	}
}

// Host starts listening for exactly one peer on the given port. The
// local identifier is ready ("open") once the listener is up; the data
// channel is usable once a peer completes the websocket handshake.
func (s *Session) Host(port uint) {
	s.mu.Lock()
	s.state = StateListening
	s.mu.Unlock()

	mux := http.NewServeMux()
	mux.HandleFunc("/duel", s.accept)
	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}

	s.mu.Lock()
	s.httpSrv = srv
	s.mu.Unlock()

	log.Printf("[session] hosting as %s on :%d", s.localID, port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.setError(fmt.Errorf("listen: %w", err))
		}
	}()
}

func (s *Session) accept(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	busy := s.conn != nil
	s.mu.RUnlock()
	if busy {
		// Exactly two peers per match; later arrivals are turned away.
		http.Error(w, "session full", http.StatusConflict)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.Printf("[session] accept failed: %v", err)
		return
	}

	remoteID := r.URL.Query().Get("peer")

	s.mu.Lock()
	s.conn = conn
	s.remoteID = remoteID
	s.state = StateConnected
	s.mu.Unlock()

	log.Printf("[session] peer %s connected", remoteID)
	s.readPump(conn)
}

// Join dials a hosting peer in a background goroutine.
func (s *Session) Join(addr string) {
	s.mu.Lock()
	s.state = StateConnecting
	s.lastErr = nil
	s.mu.Unlock()

	go func() {
		url := fmt.Sprintf("ws://%s/duel?peer=%s", addr, s.localID)
		conn, _, err := websocket.Dial(context.Background(), url, nil)
		if err != nil {
			s.setError(fmt.Errorf("dial %s: %w", addr, err))
			return
		}

		s.mu.Lock()
		s.conn = conn
		s.remoteID = addr
		s.state = StateConnected
		s.mu.Unlock()

		log.Printf("[session] connected to %s", addr)
		s.readPump(conn)
	}()
}

// readPump decodes inbound frames and dispatches them onto the typed
// channels. Malformed frames and unknown kinds are logged and dropped;
// they never take the session down.
func (s *Session) readPump(conn *websocket.Conn) {
	for {
		_, data, err := conn.Read(context.Background())
		if err != nil {
			s.onDisconnect(err)
			return
		}

		kind, payload, err := protocol.Decode(data)
		if err != nil {
			log.Printf("[session] dropping bad frame: %v", err)
			continue
		}

		switch msg := payload.(type) {
		case messages.Move:
			select { // drain stale, push latest
			case <-s.moveCh:
			default:
			}
			s.moveCh <- msg
		case messages.Shoot:
			select {
			case s.shootCh <- msg:
			default:
			}
		case messages.Hit:
			// Hit must not be dropped on a full buffer: blockingly small
			// channel is fine because the consumer drains every tick.
			s.hitCh <- msg
		default:
			log.Printf("[session] no dispatch for kind %q", kind)
		}
	}
}

// Send encodes and writes one message. A no-op when the connection is
// not open: outbound traffic is fire-and-forget by design.
func (s *Session) Send(kind string, payload any) error {
	s.mu.RLock()
	conn := s.conn
	open := s.state == StateConnected
	s.mu.RUnlock()

	if !open || conn == nil {
		return nil
	}

	data, err := protocol.Encode(kind, payload)
	if err != nil {
		return fmt.Errorf("send: %w", err)
	}
	if err := conn.Write(context.Background(), websocket.MessageText, data); err != nil {
		return fmt.Errorf("send %s: %w", kind, err)
	}
	return nil
}

func (s *Session) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == StateConnected
}

func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *Session) Role() Role { return s.role }

func (s *Session) LocalID() string { return s.localID }

func (s *Session) RemoteID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.remoteID
}

// Moves delivers inbound Move snapshots, latest-wins.
func (s *Session) Moves() <-chan messages.Move { return s.moveCh }

// Shots delivers inbound cosmetic Shoot events.
func (s *Session) Shots() <-chan messages.Shoot { return s.shootCh }

// Hits delivers inbound Hit damage events.
func (s *Session) Hits() <-chan messages.Hit { return s.hitCh }

// Close tears the session down. Sessions are not reusable; start a new
// one for the next match attempt.
func (s *Session) Close() {
	s.mu.Lock()
	conn := s.conn
	srv := s.httpSrv
	s.conn = nil
	s.httpSrv = nil
	s.state = StateDisconnected
	s.mu.Unlock()

	if conn != nil {
		_ = conn.Close(websocket.StatusNormalClosure, "session closed")
	}
	if srv != nil {
		_ = srv.Close()
	}
}

func (s *Session) onDisconnect(err error) {
	s.mu.Lock()
	if s.state == StateConnected {
		s.state = StateDisconnected
	}
	s.conn = nil
	s.mu.Unlock()
	log.Printf("[session] disconnected: %v", err)
}

func (s *Session) setError(err error) {
	s.mu.Lock()
	s.state = StateError
	s.lastErr = err
	s.mu.Unlock()
	log.Printf("[session] error: %v", err)
}

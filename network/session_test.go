package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"

	"github.com/skirmishdev/skirmish/shared/messages"
	"github.com/skirmishdev/skirmish/shared/protocol"
)

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

// hostServer exposes a host session's accept handler on an ephemeral
// loopback port and returns the dialable host:port address.
func hostServer(t *testing.T, host *Session) string {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/duel", host.accept)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return strings.TrimPrefix(srv.URL, "http://")
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession(RoleHost)
	if s.State() != StateDisconnected {
		t.Fatalf("initial state = %v, want disconnected", s.State())
	}
	if s.LocalID() == "" {
		t.Fatal("local identifier must be assigned at construction")
	}
	if s.Role() != RoleHost {
		t.Fatalf("role = %v, want host", s.Role())
	}
	if NewSession(RoleHost).LocalID() == s.LocalID() {
		t.Fatal("identifiers must be unique per session")
	}
}

func TestSendWhileDisconnectedIsSilent(t *testing.T) {
	s := NewSession(RoleJoiner)
	if err := s.Send(protocol.KindHit, messages.Hit{Damage: 20}); err != nil {
		t.Fatalf("disconnected send must be a no-op, got %v", err)
	}
}

func TestJoinBadAddressSetsError(t *testing.T) {
	s := NewSession(RoleJoiner)
	s.Join("127.0.0.1:1") // nothing listens there
	waitFor(t, "dial error", func() bool { return s.State() == StateError })
	if s.LastError() == nil {
		t.Fatal("terminal dial failure must record the error")
	}
}

func TestHandshakeAndMessageDelivery(t *testing.T) {
	host := NewSession(RoleHost)
	joiner := NewSession(RoleJoiner)
	defer host.Close()
	defer joiner.Close()

	addr := hostServer(t, host)
	joiner.Join(addr)

	waitFor(t, "joiner connect", joiner.Connected)
	waitFor(t, "host connect", host.Connected)
	if host.RemoteID() != joiner.LocalID() {
		t.Fatalf("host sees peer %q, want %q", host.RemoteID(), joiner.LocalID())
	}

	if err := joiner.Send(protocol.KindHit, messages.Hit{Damage: 20}); err != nil {
		t.Fatalf("send: %v", err)
	}
	select {
	case hit := <-host.Hits():
		if hit.Damage != 20 {
			t.Fatalf("hit damage = %d, want 20", hit.Damage)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("hit never delivered")
	}

	move := messages.Move{Position: messages.Vec3{X: 2, Y: 1.7, Z: -5}, Yaw: 0.4, Health: 60}
	if err := host.Send(protocol.KindMove, move); err != nil {
		t.Fatalf("send: %v", err)
	}
	select {
	case got := <-joiner.Moves():
		if got != move {
			t.Fatalf("move = %+v, want %+v", got, move)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("move never delivered")
	}
}

func TestMoveChannelKeepsLatest(t *testing.T) {
	host := NewSession(RoleHost)
	joiner := NewSession(RoleJoiner)
	defer host.Close()
	defer joiner.Close()

	joiner.Join(hostServer(t, host))
	waitFor(t, "connect", func() bool { return host.Connected() && joiner.Connected() })

	// Flood moves without draining; the consumer must eventually observe
	// the final snapshot and never block the pump.
	for i := 0; i <= 50; i++ {
		if err := joiner.Send(protocol.KindMove, messages.Move{Health: i}); err != nil {
			t.Fatalf("send %d: %v", i, err)
		}
	}
	waitFor(t, "final snapshot", func() bool {
		select {
		case msg := <-host.Moves():
			return msg.Health == 50
		default:
			return false
		}
	})
}

func TestSecondPeerRejected(t *testing.T) {
	host := NewSession(RoleHost)
	joiner := NewSession(RoleJoiner)
	defer host.Close()
	defer joiner.Close()

	addr := hostServer(t, host)
	joiner.Join(addr)
	waitFor(t, "first peer", host.Connected)

	resp, err := http.Get("http://" + addr + "/duel?peer=late")
	if err != nil {
		t.Fatalf("probe: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("late peer got %d, want %d", resp.StatusCode, http.StatusConflict)
	}
}

func TestBadFramesAreDropped(t *testing.T) {
	host := NewSession(RoleHost)
	defer host.Close()
	addr := hostServer(t, host)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, "ws://"+addr+"/duel?peer=raw", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "done")

	waitFor(t, "host connect", host.Connected)

	// Garbage, an unknown kind, then a valid frame: only the last lands.
	frames := [][]byte{
		[]byte("{not json"),
		[]byte(`{"kind":"teleport"}`),
	}
	for _, f := range frames {
		if err := conn.Write(ctx, websocket.MessageText, f); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	valid, err := protocol.Encode(protocol.KindHit, messages.Hit{Damage: 5})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := conn.Write(ctx, websocket.MessageText, valid); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case hit := <-host.Hits():
		if hit.Damage != 5 {
			t.Fatalf("hit damage = %d, want 5", hit.Damage)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("valid frame after garbage never delivered")
	}
	if host.State() != StateConnected {
		t.Fatal("bad frames must not take the session down")
	}
}

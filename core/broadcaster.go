package core

import (
	"log"
	"time"

	"github.com/skirmishdev/skirmish/shared/protocol"
)

// Broadcaster pushes Move snapshots to the peer on its own fixed-rate
// timer, independent of the render tick. Messages are skipped silently
// while the connection is down: every snapshot is complete, so the next
// one heals any gap.
type Broadcaster struct {
	ctrl     *Controller
	sendRate int
	stopChan chan struct{}
}

func NewBroadcaster(ctrl *Controller, sendRate int) *Broadcaster {
	return &Broadcaster{
		ctrl:     ctrl,
		sendRate: sendRate,
		stopChan: make(chan struct{}),
	}
}

func (b *Broadcaster) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(b.sendRate))
	defer ticker.Stop()

	log.Printf("[sync] broadcasting at %d Hz", b.sendRate)

	for {
		select {
		case <-b.stopChan:
			log.Println("[sync] broadcaster stopped")
			return
		case <-ticker.C:
			b.tick()
		}
	}
}

func (b *Broadcaster) Stop() {
	close(b.stopChan)
}

func (b *Broadcaster) tick() {
	if !b.ctrl.link.Connected() {
		return
	}
	msg, ok := b.ctrl.snapshotForBroadcast()
	if !ok {
		return
	}
	if err := b.ctrl.link.Send(protocol.KindMove, msg); err != nil {
		log.Printf("[sync] move send failed: %v", err)
	}
}

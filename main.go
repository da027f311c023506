package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skirmishdev/skirmish/config"
	"github.com/skirmishdev/skirmish/core"
	"github.com/skirmishdev/skirmish/network"
	"github.com/skirmishdev/skirmish/systems"
)

func main() {
	var (
		hostMode = flag.Bool("host", false, "host a session and wait for a peer")
		joinAddr = flag.String("join", "", "join a hosting peer at host:port")
		port     = flag.Uint("port", uint(config.Net.DefaultPort), "port to listen on when hosting")
		name     = flag.String("name", "", "player name (persisted)")
		tickRate = flag.Int("tick", 60, "simulation ticks per second")
	)
	flag.Parse()

	if !*hostMode && *joinAddr == "" {
		log.Fatal("choose a role: -host or -join host:port")
	}

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: could not initialize persistence: %v", err)
	}
	profile, _ := systems.LoadProfile()
	if profile == nil {
		profile = &systems.SavedProfile{}
	}
	if *name != "" {
		profile.Name = *name
	}

	var session *network.Session
	if *hostMode {
		session = network.NewSession(network.RoleHost)
		session.Host(*port)
		profile.LastRole = network.RoleHost.String()
	} else {
		session = network.NewSession(network.RoleJoiner)
		session.Join(*joinAddr)
		profile.LastRole = network.RoleJoiner.String()
		profile.LastAddr = *joinAddr
	}
	defer session.Close()

	_ = systems.SaveProfile(profile)

	ctrl, err := core.NewController(session)
	if err != nil {
		log.Fatalf("controller: %v", err)
	}
	ctrl.Start()
	defer ctrl.Stop()

	log.Printf("[skirmish] running as %s (peer id %s)", session.Role(), session.LocalID())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	// Headless tick driver. A rendering front end would call Update from
	// its own frame loop instead and consume DrainEffects each frame.
	ticker := time.NewTicker(time.Second / time.Duration(*tickRate))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-sigCh:
			log.Println("[skirmish] shutting down")
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			ctrl.Update(dt)
			ctrl.DrainEffects()

			if session.State() == network.StateError {
				log.Fatalf("session failed: %v", session.LastError())
			}
		}
	}
}

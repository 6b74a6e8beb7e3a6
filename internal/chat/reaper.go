package chat

import (
	"context"
	"log"
	"time"
)

// DefaultReaperInterval is how often the reaper scans for stale participants.
// It is independent of the inactivity threshold, so a silent participant
// can stay listed for up to threshold + interval.
const DefaultReaperInterval = 15 * time.Second

// Reaper periodically evicts participants that stopped sending heartbeats.
type Reaper struct {
	registry  *Registry
	interval  time.Duration
	threshold time.Duration
	clock     Clock
}

// NewReaper creates a Reaper. Non-positive durations fall back to the defaults.
func NewReaper(registry *Registry, interval, threshold time.Duration, clock Clock) *Reaper {
	if interval <= 0 {
		interval = DefaultReaperInterval
	}
	if threshold <= 0 {
		threshold = DefaultInactivityThreshold
	}
	return &Reaper{registry: registry, interval: interval, threshold: threshold, clock: clock}
}

// Run ticks until ctx is cancelled. An eviction in progress when ctx is
// cancelled may be cut short; the next run picks up what was left.
func (r *Reaper) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	log.Printf("reaper: started (interval %s, threshold %s)", r.interval, r.threshold)
	for {
		select {
		case <-ctx.Done():
			log.Println("reaper: stopped")
			return
		case <-ticker.C:
			r.Tick(ctx)
		}
	}
}

// Tick runs a single eviction pass and returns the evicted names.
func (r *Reaper) Tick(ctx context.Context) []string {
	evicted, err := r.registry.EvictStale(ctx, r.clock.now(), r.threshold)
	if err != nil {
		log.Printf("reaper: scan failed: %v", err)
		return nil
	}
	for _, name := range evicted {
		log.Printf("reaper: evicted inactive participant %q", name)
	}
	return evicted
}

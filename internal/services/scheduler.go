package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"taxi-geofence-service/internal/domain"
	"taxi-geofence-service/internal/platform/obs"
	"taxi-geofence-service/internal/ports"
)

// FleetAssignment names one taxi and the ordered route list it cycles
// through for the life of the process.
type FleetAssignment struct {
	TaxiID string
	Routes []domain.Route
}

// SchedulerConfig tunes the simulation loop.
type SchedulerConfig struct {
	// Interval is the fixed sleep between full-fleet ticks.
	Interval time.Duration
	// StopTimeout bounds how long Stop waits for the worker to finish its
	// current tick and exit.
	StopTimeout time.Duration
	// Now supplies the clock; defaults to time.Now. Tests inject a fake.
	Now func() time.Time
}

const tickPanicBackoff = 5 * time.Second

// Scheduler owns the taxi fleet and drives the whole simulation from a
// single background worker: move every taxi, classify its new position,
// track region transitions, publish a status snapshot.
//
// Taxis are mutated only by the worker. Status queries are served from
// immutable snapshots and never block on a tick in progress. One slow remote
// classification delays the taxis after it within the same tick (worst case
// fleet size x classifier timeout); that bounds tick cadence, not
// correctness.
type Scheduler struct {
	classifier ports.RegionClassifier
	tracker    *ZoneTransitionTracker
	sim        *RouteSimulator
	cache      ports.StatusCache // optional mirror, best effort

	interval    time.Duration
	stopTimeout time.Duration
	now         func() time.Time

	taxis []*domain.Taxi // worker-owned after Start; configured order

	mu        sync.RWMutex
	snapshots map[string]domain.TaxiSnapshot

	ctl     sync.Mutex
	running bool
	quit    chan struct{}
	done    chan struct{}
}

// NewScheduler builds the fleet from its route table, seeds each taxi's
// starting region and publishes initial snapshots so status queries work
// before the loop ever runs. Seeding classifies the starting position
// directly instead of going through the tracker: the fleet materializing at
// its pickups is not a boundary crossing, so no events are emitted.
func NewScheduler(
	fleet []FleetAssignment,
	classifier ports.RegionClassifier,
	tracker *ZoneTransitionTracker,
	sim *RouteSimulator,
	cache ports.StatusCache,
	cfg SchedulerConfig,
) (*Scheduler, error) {
	if len(fleet) == 0 {
		return nil, errors.New("new scheduler: fleet must not be empty")
	}
	if classifier == nil || tracker == nil || sim == nil {
		return nil, errors.New("new scheduler: classifier, tracker and simulator are required")
	}
	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("new scheduler: interval must be positive, got %v", cfg.Interval)
	}
	if cfg.StopTimeout <= 0 {
		cfg.StopTimeout = 5 * time.Second
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	s := &Scheduler{
		classifier:  classifier,
		tracker:     tracker,
		sim:         sim,
		cache:       cache,
		interval:    cfg.Interval,
		stopTimeout: cfg.StopTimeout,
		now:         cfg.Now,
		snapshots:   make(map[string]domain.TaxiSnapshot, len(fleet)),
	}

	ctx := context.Background()
	now := s.now()
	for _, a := range fleet {
		taxi, err := domain.NewTaxi(a.TaxiID, a.Routes, sim.DrawSpeed(), now)
		if err != nil {
			return nil, fmt.Errorf("new scheduler: %w", err)
		}

		taxi.CurrentRegion = classifier.Classify(ctx, taxi.CurrentLng, taxi.CurrentLat)
		s.taxis = append(s.taxis, taxi)
		s.publish(ctx, taxi.Snapshot())

		log.Printf("scheduler: initialized taxi=%s region=%q routes=%d", taxi.ID, taxi.CurrentRegion, len(a.Routes))
	}

	return s, nil
}

// Start launches the background worker. Calling it while running is a
// logged no-op; concurrent calls spawn at most one worker.
func (s *Scheduler) Start() bool {
	s.ctl.Lock()
	defer s.ctl.Unlock()

	if s.running {
		log.Printf("scheduler: start ignored, already running")
		return false
	}

	// A timed-out Stop returns while its worker is still mid-tick. Two
	// workers would mutate the same taxis concurrently, so wait for the old
	// one to exit and refuse if it still hasn't.
	if s.done != nil {
		select {
		case <-s.done:
		case <-time.After(s.stopTimeout):
			log.Printf("scheduler: start refused, previous worker still ticking")
			return false
		}
	}

	s.running = true
	s.quit = make(chan struct{})
	s.done = make(chan struct{})
	go s.run(s.quit, s.done)

	log.Printf("scheduler: started taxis=%d interval=%s", len(s.taxis), s.interval)
	return true
}

// Stop signals the worker and waits, bounded by the stop timeout, for it to
// finish its current tick and exit. Calling it while stopped is a logged
// no-op. Taxis are not destroyed; a later Start resumes from their state.
func (s *Scheduler) Stop() bool {
	s.ctl.Lock()
	if !s.running {
		s.ctl.Unlock()
		log.Printf("scheduler: stop ignored, not running")
		return false
	}

	s.running = false
	close(s.quit)
	done := s.done
	s.ctl.Unlock()

	select {
	case <-done:
		log.Printf("scheduler: stopped")
	case <-time.After(s.stopTimeout):
		log.Printf("scheduler: stop timed out waiting for worker timeout=%s", s.stopTimeout)
	}

	return true
}

// Running reports whether the worker is active.
func (s *Scheduler) Running() bool {
	s.ctl.Lock()
	defer s.ctl.Unlock()
	return s.running
}

// Interval returns the configured tick cadence.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// TaxiCount returns the fleet size.
func (s *Scheduler) TaxiCount() int {
	return len(s.taxis)
}

// run is the worker loop: one full-fleet tick, then a fixed sleep. The quit
// signal is only observed between ticks, so a tick in progress always
// completes its pass over all taxis first. A panicking tick stretches the
// sleep to the backoff, still inside the select so quit cuts it short.
func (s *Scheduler) run(quit, done chan struct{}) {
	defer close(done)

	for {
		wait := s.interval
		if s.safeTick() {
			wait = tickPanicBackoff
		}

		select {
		case <-quit:
			return
		case <-time.After(wait):
		}
	}
}

// safeTick shields the loop from a faulty tick: the panic is logged and
// reported so the loop backs off instead of killing the service.
func (s *Scheduler) safeTick() (panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			log.Printf("scheduler: tick panicked, backing off: %v", r)
		}
	}()

	s.tickAll(s.now())
	return false
}

// tickAll runs one pass over the whole fleet with a shared "now".
func (s *Scheduler) tickAll(now time.Time) {
	start := time.Now()
	ctx := context.Background()

	for _, taxi := range s.taxis {
		s.tickTaxi(ctx, taxi, now)
	}

	obs.TicksTotal.Inc()
	obs.TickDurationMs.Observe(float64(time.Since(start).Milliseconds()))
}

// tickTaxi advances one taxi and publishes its snapshot. Elapsed time is
// measured from the taxi's own last tick, not a shared delta, so taxis whose
// ticks have drifted apart still move at their true speeds.
func (s *Scheduler) tickTaxi(ctx context.Context, taxi *domain.Taxi, now time.Time) {
	elapsed := now.Sub(taxi.LastTick)
	if elapsed < 0 {
		elapsed = 0
	}

	completed := s.sim.Tick(taxi, elapsed)

	classification := s.classifier.Classify(ctx, taxi.CurrentLng, taxi.CurrentLat)
	newRegion, _ := s.tracker.Update(ctx, taxi.ID, classification, taxi.CurrentRegion, taxi.CurrentLat, taxi.CurrentLng, now)
	if newRegion != taxi.CurrentRegion {
		taxi.PreviousRegion = taxi.CurrentRegion
		taxi.CurrentRegion = newRegion
	}

	taxi.LastTick = now

	s.publish(ctx, taxi.Snapshot())

	// The completing tick is observed at the dropoff; only afterwards does
	// the taxi wrap onto its next leg.
	if completed {
		s.sim.AdvanceRoute(taxi)
	}
}

// publish swaps the taxi's snapshot in whole and mirrors it to the status
// cache when one is configured.
func (s *Scheduler) publish(ctx context.Context, snap domain.TaxiSnapshot) {
	s.mu.Lock()
	s.snapshots[snap.TaxiID] = snap
	s.mu.Unlock()

	if s.cache != nil {
		if err := s.cache.PublishStatus(ctx, snap); err != nil {
			log.Printf("scheduler: status cache publish failed: taxi=%s err=%v", snap.TaxiID, err)
		}
	}
}

// GetStatus returns the most recently published snapshot for one taxi.
func (s *Scheduler) GetStatus(taxiID string) (domain.TaxiSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snapshots[taxiID]
	return snap, ok
}

// GetAllStatus returns the latest snapshot of every taxi.
func (s *Scheduler) GetAllStatus() map[string]domain.TaxiSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]domain.TaxiSnapshot, len(s.snapshots))
	for id, snap := range s.snapshots {
		out[id] = snap
	}
	return out
}

// SearchByRegion returns snapshots of taxis whose current region contains
// the query, case-insensitively, in the fleet's configured order.
func (s *Scheduler) SearchByRegion(name string) []domain.TaxiSnapshot {
	needle := strings.ToLower(name)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.TaxiSnapshot
	for _, taxi := range s.taxis {
		snap, ok := s.snapshots[taxi.ID]
		if !ok || snap.CurrentRegion == "" {
			continue
		}
		if strings.Contains(strings.ToLower(snap.CurrentRegion), needle) {
			out = append(out, snap)
		}
	}
	return out
}

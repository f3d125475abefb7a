package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"taxi-geofence-service/internal/domain"
)

// classifierFunc adapts a function to the RegionClassifier port.
type classifierFunc func(ctx context.Context, lon, lat float64) string

func (f classifierFunc) Classify(ctx context.Context, lon, lat float64) string {
	return f(ctx, lon, lat)
}

// splitAtLat5 classifies everything south of latitude 5 as Alpha and the
// rest as Beta, giving ticks a deterministic boundary to cross.
func splitAtLat5(_ context.Context, _ float64, lat float64) string {
	if lat < 5 {
		return "Alpha"
	}
	return "Beta"
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func fixedSpeedScheduler(t *testing.T, sink *recordingSink, clk *fakeClock) *Scheduler {
	t.Helper()

	fleet := []FleetAssignment{{
		TaxiID: "taxi_a",
		Routes: []domain.Route{
			leg(0, 0, 10, 0, 100), // Alpha -> Beta
			leg(10, 0, 0, 0, 100), // Beta -> Alpha
		},
	}}

	// min == max pins every speed draw at 100 km/h.
	sim := NewRouteSimulator(100, 100, 1)
	tracker := NewZoneTransitionTracker(sink)

	s, err := NewScheduler(fleet, classifierFunc(splitAtLat5), tracker, sim, nil, SchedulerConfig{
		Interval:    time.Hour, // ticks are driven manually
		StopTimeout: time.Second,
		Now:         clk.Now,
	})
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}
	return s
}

func TestSchedulerSeedsInitialRegionWithoutEvents(t *testing.T) {
	sink := &recordingSink{}
	clk := &fakeClock{t: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}
	s := fixedSpeedScheduler(t, sink, clk)

	snap, ok := s.GetStatus("taxi_a")
	if !ok {
		t.Fatal("no initial snapshot for taxi_a")
	}
	if snap.CurrentRegion != "Alpha" {
		t.Fatalf("initial region = %q, want Alpha", snap.CurrentRegion)
	}
	if snap.RouteProgress != 0 {
		t.Fatalf("initial progress = %v, want 0", snap.RouteProgress)
	}
	// Materializing the fleet at its pickups is not a boundary crossing.
	if len(sink.events) != 0 {
		t.Fatalf("construction emitted %d events, want none", len(sink.events))
	}
}

func TestSchedulerTickCompletesLegAtDropoff(t *testing.T) {
	sink := &recordingSink{}
	clk := &fakeClock{t: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}
	s := fixedSpeedScheduler(t, sink, clk)

	// 100 km at 100 km/h needs an hour; the extra minute overshoots the
	// dropoff so the clamp is what pins progress at 1.0.
	clk.Advance(time.Hour + time.Minute)
	s.tickAll(clk.Now())

	snap, _ := s.GetStatus("taxi_a")
	if snap.RouteProgress != 1.0 {
		t.Fatalf("progress = %v, want 1.0 on the completing tick", snap.RouteProgress)
	}
	if snap.Latitude != 10 || snap.Longitude != 0 {
		t.Fatalf("position = (%v, %v), want dropoff (10, 0)", snap.Latitude, snap.Longitude)
	}
	if snap.CurrentRegion != "Beta" || snap.PreviousRegion != "Alpha" {
		t.Fatalf("regions = %q/%q, want Beta/Alpha", snap.CurrentRegion, snap.PreviousRegion)
	}

	if len(sink.events) != 2 {
		t.Fatalf("got %d events, want exit+entry", len(sink.events))
	}
	if sink.events[0].Kind != domain.EventExit || sink.events[0].RegionName != "Alpha" {
		t.Fatalf("first event = %s %q, want exit Alpha", sink.events[0].Kind, sink.events[0].RegionName)
	}
	if sink.events[1].Kind != domain.EventEntry || sink.events[1].RegionName != "Beta" {
		t.Fatalf("second event = %s %q, want entry Beta", sink.events[1].Kind, sink.events[1].RegionName)
	}

	// The completing tick also advanced the taxi onto its next leg.
	if s.taxis[0].RouteIndex != 1 || s.taxis[0].RouteProgress != 0 {
		t.Fatalf("route index/progress = %d/%v, want 1/0 after advance",
			s.taxis[0].RouteIndex, s.taxis[0].RouteProgress)
	}
}

func TestSchedulerTickUnchangedRegionEmitsNothing(t *testing.T) {
	sink := &recordingSink{}
	clk := &fakeClock{t: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}
	s := fixedSpeedScheduler(t, sink, clk)

	// Ten minutes covers ~16.7 km of the 100 km leg; still in Alpha.
	clk.Advance(10 * time.Minute)
	s.tickAll(clk.Now())

	snap, _ := s.GetStatus("taxi_a")
	if snap.CurrentRegion != "Alpha" {
		t.Fatalf("region = %q, want Alpha", snap.CurrentRegion)
	}
	if len(sink.events) != 0 {
		t.Fatalf("got %d events, want none for an unchanged region", len(sink.events))
	}
}

func TestSchedulerStartIsExclusive(t *testing.T) {
	sink := &recordingSink{}
	clk := &fakeClock{t: time.Now()}
	s := fixedSpeedScheduler(t, sink, clk)

	var mu sync.Mutex
	started := 0
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.Start() {
				mu.Lock()
				started++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if started != 1 {
		t.Fatalf("%d Start calls succeeded, want exactly 1", started)
	}
	if !s.Running() {
		t.Fatal("scheduler not running after Start")
	}

	if !s.Stop() {
		t.Fatal("Stop returned false while running")
	}
	if s.Stop() {
		t.Fatal("second Stop returned true")
	}
	if s.Running() {
		t.Fatal("scheduler still running after Stop")
	}
}

// gateClassifier answers the construction-time seeding call immediately and
// then blocks every tick-time call until released.
type gateClassifier struct {
	mu      sync.Mutex
	calls   int
	entered chan struct{}
	release chan struct{}
}

func newGateClassifier() *gateClassifier {
	return &gateClassifier{
		entered: make(chan struct{}, 16),
		release: make(chan struct{}),
	}
}

func (c *gateClassifier) Classify(context.Context, float64, float64) string {
	c.mu.Lock()
	c.calls++
	n := c.calls
	c.mu.Unlock()

	if n == 1 {
		return "Alpha"
	}

	select {
	case c.entered <- struct{}{}:
	default:
	}
	<-c.release
	return "Alpha"
}

func TestStartRefusedWhileOldWorkerStillTicking(t *testing.T) {
	gate := newGateClassifier()
	fleet := []FleetAssignment{{TaxiID: "taxi_a", Routes: []domain.Route{leg(0, 0, 10, 0, 100)}}}

	s, err := NewScheduler(fleet, gate, NewZoneTransitionTracker(nil), NewRouteSimulator(100, 100, 1), nil, SchedulerConfig{
		Interval:    time.Hour,
		StopTimeout: 50 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}

	if !s.Start() {
		t.Fatal("initial Start returned false")
	}

	// Wait for the worker to block inside its first tick, then time Stop out.
	select {
	case <-gate.entered:
	case <-time.After(time.Second):
		t.Fatal("worker never reached the classifier")
	}
	if !s.Stop() {
		t.Fatal("Stop returned false while running")
	}

	// The old worker is still mid-tick; a second worker over the same taxis
	// must not be spawned.
	if s.Start() {
		t.Fatal("Start succeeded while the previous worker was still ticking")
	}

	close(gate.release)
	select {
	case <-s.done:
	case <-time.After(time.Second):
		t.Fatal("old worker never exited after release")
	}

	if !s.Start() {
		t.Fatal("Start refused after the previous worker exited")
	}
	s.Stop()
}

// panicAfterSeedClassifier lets construction-time seeding through and then
// panics on every tick-time call.
type panicAfterSeedClassifier struct {
	mu    sync.Mutex
	calls int
}

func (c *panicAfterSeedClassifier) Classify(context.Context, float64, float64) string {
	c.mu.Lock()
	c.calls++
	n := c.calls
	c.mu.Unlock()

	if n == 1 {
		return "Alpha"
	}
	panic("layer melted")
}

func TestStopCutsPanicBackoffShort(t *testing.T) {
	fleet := []FleetAssignment{{TaxiID: "taxi_a", Routes: []domain.Route{leg(0, 0, 10, 0, 100)}}}

	s, err := NewScheduler(fleet, &panicAfterSeedClassifier{}, NewZoneTransitionTracker(nil), NewRouteSimulator(100, 100, 1), nil, SchedulerConfig{
		Interval:    time.Hour,
		StopTimeout: 2 * time.Second,
	})
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}

	s.Start()
	time.Sleep(50 * time.Millisecond) // let the first tick panic

	start := time.Now()
	if !s.Stop() {
		t.Fatal("Stop returned false while running")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("Stop took %v, worker slept through its backoff", elapsed)
	}
}

func TestSchedulerStopFreezesSnapshots(t *testing.T) {
	sink := &recordingSink{}
	clk := &fakeClock{t: time.Now()}
	s := fixedSpeedScheduler(t, sink, clk)

	s.Start()
	s.Stop()

	before := s.GetAllStatus()
	clk.Advance(time.Hour)
	time.Sleep(50 * time.Millisecond)
	after := s.GetAllStatus()

	if !before["taxi_a"].LastTick.Equal(after["taxi_a"].LastTick) {
		t.Fatal("snapshots kept updating after Stop")
	}

	// A later Start resumes from the frozen state.
	if !s.Start() {
		t.Fatal("restart returned false")
	}
	s.Stop()
}

func TestSchedulerSearchByRegion(t *testing.T) {
	clk := &fakeClock{t: time.Now()}
	fleet := []FleetAssignment{
		{TaxiID: "taxi_a", Routes: []domain.Route{leg(0, 0, 10, 0, 100)}},
		{TaxiID: "taxi_b", Routes: []domain.Route{leg(10, 0, 0, 0, 100)}},
	}
	sim := NewRouteSimulator(100, 100, 1)

	s, err := NewScheduler(fleet, classifierFunc(splitAtLat5), NewZoneTransitionTracker(nil), sim, nil, SchedulerConfig{
		Interval: time.Hour,
		Now:      clk.Now,
	})
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}

	// taxi_a starts in Alpha, taxi_b in Beta.
	hits := s.SearchByRegion("alp")
	if len(hits) != 1 || hits[0].TaxiID != "taxi_a" {
		t.Fatalf("search alp = %+v, want just taxi_a", hits)
	}

	hits = s.SearchByRegion("BETA")
	if len(hits) != 1 || hits[0].TaxiID != "taxi_b" {
		t.Fatalf("search BETA = %+v, want just taxi_b", hits)
	}

	if hits = s.SearchByRegion("gamma"); len(hits) != 0 {
		t.Fatalf("search gamma = %+v, want no hits", hits)
	}
}

func TestNewSchedulerValidation(t *testing.T) {
	sim := NewRouteSimulator(100, 100, 1)
	tracker := NewZoneTransitionTracker(nil)
	fleet := []FleetAssignment{{TaxiID: "taxi_a", Routes: []domain.Route{leg(0, 0, 1, 1, 10)}}}

	if _, err := NewScheduler(nil, classifierFunc(splitAtLat5), tracker, sim, nil, SchedulerConfig{Interval: time.Second}); err == nil {
		t.Fatal("expected error for empty fleet")
	}
	if _, err := NewScheduler(fleet, nil, tracker, sim, nil, SchedulerConfig{Interval: time.Second}); err == nil {
		t.Fatal("expected error for nil classifier")
	}
	if _, err := NewScheduler(fleet, classifierFunc(splitAtLat5), tracker, sim, nil, SchedulerConfig{Interval: 0}); err == nil {
		t.Fatal("expected error for non-positive interval")
	}
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taxi-geofence-service/internal/api/dto"
	"taxi-geofence-service/internal/domain"
	"taxi-geofence-service/internal/services"
)

type stubClassifier struct{ region string }

func (s stubClassifier) Classify(context.Context, float64, float64) string { return s.region }

type stubEventReader struct {
	events []domain.TraceEvent
	err    error
}

func (s stubEventReader) ListTraceEvents(context.Context, string, int) ([]domain.TraceEvent, error) {
	return s.events, s.err
}

func testRouter(t *testing.T, reader stubEventReader) (http.Handler, *services.Scheduler) {
	t.Helper()

	route := domain.Route{
		Pickup:     domain.RoutePoint{RegionName: "Texas", RegionAbbr: "TX", Latitude: 31.9, Longitude: -99.9},
		Dropoff:    domain.RoutePoint{RegionName: "Oklahoma", RegionAbbr: "OK", Latitude: 35.0, Longitude: -97.0},
		DistanceKM: 500,
	}
	fleet := []services.FleetAssignment{{TaxiID: "taxi_a", Routes: []domain.Route{route}}}

	sched, err := services.NewScheduler(
		fleet,
		stubClassifier{region: "Texas"},
		services.NewZoneTransitionTracker(nil),
		services.NewRouteSimulator(600, 1200, 1),
		nil,
		services.SchedulerConfig{Interval: time.Hour, StopTimeout: time.Second},
	)
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}
	t.Cleanup(func() { sched.Stop() })

	regions := []domain.Region{{ID: "tx", Name: "Texas", Abbr: "TX", CentroidLat: 31.9, CentroidLng: -99.9}}
	return NewRouter(sched, regions, reader), sched
}

func doRequest(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestHealthEndpoint(t *testing.T) {
	h, _ := testRouter(t, stubEventReader{})

	rec := doRequest(t, h, http.MethodGet, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestSimulationStartStopLifecycle(t *testing.T) {
	h, _ := testRouter(t, stubEventReader{})

	rec := doRequest(t, h, http.MethodPost, "/api/v1/simulation/start")
	if rec.Code != http.StatusOK {
		t.Fatalf("start status = %d, want 200", rec.Code)
	}
	res := decode[dto.SimulationStateResponse](t, rec)
	if res.Status != "started" {
		t.Fatalf("first start = %q, want started", res.Status)
	}
	if res.Details == nil || res.Details.TaxiCount != 1 {
		t.Fatalf("details = %+v, want taxi_count 1", res.Details)
	}

	res = decode[dto.SimulationStateResponse](t, doRequest(t, h, http.MethodPost, "/api/v1/simulation/start"))
	if res.Status != "already_running" {
		t.Fatalf("second start = %q, want already_running", res.Status)
	}

	res = decode[dto.SimulationStateResponse](t, doRequest(t, h, http.MethodPost, "/api/v1/simulation/stop"))
	if res.Status != "stopped" {
		t.Fatalf("stop = %q, want stopped", res.Status)
	}

	res = decode[dto.SimulationStateResponse](t, doRequest(t, h, http.MethodPost, "/api/v1/simulation/stop"))
	if res.Status != "not_running" {
		t.Fatalf("second stop = %q, want not_running", res.Status)
	}
}

func TestStatusEndpoints(t *testing.T) {
	h, _ := testRouter(t, stubEventReader{})

	all := decode[dto.ListStatusResponse](t, doRequest(t, h, http.MethodGet, "/api/v1/simulation/status"))
	if len(all.Taxis) != 1 {
		t.Fatalf("got %d taxis, want 1", len(all.Taxis))
	}

	rec := doRequest(t, h, http.MethodGet, "/api/v1/simulation/status/taxi_a")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	one := decode[dto.TaxiStatusResponse](t, rec)
	if one.TaxiID != "taxi_a" || one.CurrentZone != "Texas" {
		t.Fatalf("taxi = %q zone = %q, want taxi_a in Texas", one.TaxiID, one.CurrentZone)
	}
	if one.CurrentRoute.DropoffRegion != "Oklahoma" {
		t.Fatalf("dropoff = %q, want Oklahoma", one.CurrentRoute.DropoffRegion)
	}

	if rec := doRequest(t, h, http.MethodGet, "/api/v1/simulation/status/taxi_z"); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown taxi status = %d, want 404", rec.Code)
	}
}

func TestSearchEndpoint(t *testing.T) {
	h, _ := testRouter(t, stubEventReader{})

	if rec := doRequest(t, h, http.MethodGet, "/api/v1/simulation/search"); rec.Code != http.StatusBadRequest {
		t.Fatalf("search without zone = %d, want 400", rec.Code)
	}

	rec := doRequest(t, h, http.MethodGet, "/api/v1/simulation/search?zone=tex")
	if rec.Code != http.StatusOK {
		t.Fatalf("search status = %d, want 200", rec.Code)
	}
	res := decode[dto.SearchResponse](t, rec)
	if len(res.Taxis) != 1 || res.Taxis[0].TaxiID != "taxi_a" {
		t.Fatalf("search hits = %+v, want just taxi_a", res.Taxis)
	}

	res = decode[dto.SearchResponse](t, doRequest(t, h, http.MethodGet, "/api/v1/simulation/search?zone=nowhere"))
	if len(res.Taxis) != 0 {
		t.Fatalf("search hits = %+v, want none", res.Taxis)
	}
}

func TestRegionsEndpoint(t *testing.T) {
	h, _ := testRouter(t, stubEventReader{})

	rec := doRequest(t, h, http.MethodGet, "/api/v1/regions")
	if rec.Code != http.StatusOK {
		t.Fatalf("regions status = %d, want 200", rec.Code)
	}
	res := decode[dto.ListRegionsResponse](t, rec)
	if len(res.Regions) != 1 || res.Regions[0].Name != "Texas" {
		t.Fatalf("regions = %+v, want just Texas", res.Regions)
	}
}

func TestEventsEndpoint(t *testing.T) {
	ev, err := domain.NewTraceEvent("taxi_a", "Texas", domain.EventEntry, 31.9, -99.9,
		time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("new trace event: %v", err)
	}
	h, _ := testRouter(t, stubEventReader{events: []domain.TraceEvent{ev}})

	rec := doRequest(t, h, http.MethodGet, "/api/v1/taxis/taxi_a/events")
	if rec.Code != http.StatusOK {
		t.Fatalf("events status = %d, want 200", rec.Code)
	}
	res := decode[dto.ListTraceEventsResponse](t, rec)
	if len(res.Events) != 1 || res.Events[0].ID != ev.ID {
		t.Fatalf("events = %+v, want the stored entry", res.Events)
	}

	if rec := doRequest(t, h, http.MethodGet, "/api/v1/taxis/taxi_a/events?limit=0"); rec.Code != http.StatusBadRequest {
		t.Fatalf("limit=0 status = %d, want 400", rec.Code)
	}
	if rec := doRequest(t, h, http.MethodGet, "/api/v1/taxis/taxi_a/events?limit=nan"); rec.Code != http.StatusBadRequest {
		t.Fatalf("limit=nan status = %d, want 400", rec.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	h, _ := testRouter(t, stubEventReader{})

	rec := doRequest(t, h, http.MethodGet, "/health")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("no X-Request-ID header on response")
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "req-42" {
		t.Fatalf("request id = %q, want the caller's req-42", got)
	}
}

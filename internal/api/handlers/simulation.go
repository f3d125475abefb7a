package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"taxi-geofence-service/internal/api/dto"
	"taxi-geofence-service/internal/services"
)

// SimulationHandler exposes the scheduler's control surface: start, stop,
// status queries and region search.
type SimulationHandler struct {
	Sched *services.Scheduler
}

func (h *SimulationHandler) details() *dto.SimulationDetails {
	return &dto.SimulationDetails{
		TaxiCount:           h.Sched.TaxiCount(),
		TickIntervalSeconds: h.Sched.Interval().Seconds(),
	}
}

// Start launches the simulation loop. Starting twice is not an error: the
// second call reports that the simulation is already running.
func (h *SimulationHandler) Start(w http.ResponseWriter, r *http.Request) {
	if h.Sched.Start() {
		writeJSON(w, r, http.StatusOK, dto.SimulationStateResponse{
			Status:  "started",
			Message: "taxi simulation started",
			Details: h.details(),
		})
		return
	}

	writeJSON(w, r, http.StatusOK, dto.SimulationStateResponse{
		Status:  "already_running",
		Message: "simulation is already running",
		Details: h.details(),
	})
}

// Stop halts the simulation loop. Taxis keep their state and a later start
// resumes from it.
func (h *SimulationHandler) Stop(w http.ResponseWriter, r *http.Request) {
	if h.Sched.Stop() {
		writeJSON(w, r, http.StatusOK, dto.SimulationStateResponse{
			Status:  "stopped",
			Message: "taxi simulation stopped",
		})
		return
	}

	writeJSON(w, r, http.StatusOK, dto.SimulationStateResponse{
		Status:  "not_running",
		Message: "simulation is not running",
	})
}

// Status returns the latest snapshot of every taxi.
func (h *SimulationHandler) Status(w http.ResponseWriter, r *http.Request) {
	all := h.Sched.GetAllStatus()

	res := dto.ListStatusResponse{Taxis: make(map[string]dto.TaxiStatusResponse, len(all))}
	for id, snap := range all {
		res.Taxis[id] = dto.FromSnapshot(snap)
	}

	writeJSON(w, r, http.StatusOK, res)
}

// StatusByID returns the latest snapshot of one taxi.
func (h *SimulationHandler) StatusByID(w http.ResponseWriter, r *http.Request) {
	taxiID := chi.URLParam(r, "taxiID")

	snap, ok := h.Sched.GetStatus(taxiID)
	if !ok {
		writeError(w, r, http.StatusNotFound, "unknown taxi")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromSnapshot(snap))
}

// Search lists taxis whose current zone matches the query substring,
// case-insensitively.
func (h *SimulationHandler) Search(w http.ResponseWriter, r *http.Request) {
	zone := strings.TrimSpace(r.URL.Query().Get("zone"))
	if zone == "" {
		writeError(w, r, http.StatusBadRequest, "zone query parameter is required")
		return
	}

	matches := h.Sched.SearchByRegion(zone)

	res := dto.SearchResponse{Zone: zone, Taxis: make([]dto.TaxiStatusResponse, 0, len(matches))}
	for _, snap := range matches {
		res.Taxis = append(res.Taxis, dto.FromSnapshot(snap))
	}

	writeJSON(w, r, http.StatusOK, res)
}

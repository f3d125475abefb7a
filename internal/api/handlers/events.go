package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"taxi-geofence-service/internal/api/dto"
	"taxi-geofence-service/internal/ports"
)

// EventsHandler serves stored region transition events per taxi.
type EventsHandler struct {
	Reader ports.TraceEventReader
}

func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	taxiID := chi.URLParam(r, "taxiID")

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 500")
			return
		}
		limit = n
	}

	events, err := h.Reader.ListTraceEvents(r.Context(), taxiID, limit)
	if err != nil {
		log.Printf("list trace events failed: taxi=%s err=%v", taxiID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListTraceEventsResponse{Events: make([]dto.TraceEventResponse, 0, len(events))}
	for _, ev := range events {
		res.Events = append(res.Events, dto.TraceEventResponse{
			ID:         ev.ID,
			TaxiID:     ev.TaxiID,
			RegionName: ev.RegionName,
			Kind:       string(ev.Kind),
			Latitude:   ev.Latitude,
			Longitude:  ev.Longitude,
			Timestamp:  ev.Timestamp,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

package handlers

import (
	"net/http"

	"taxi-geofence-service/internal/api/dto"
	"taxi-geofence-service/internal/domain"
)

// RegionsHandler serves the static region reference set.
type RegionsHandler struct {
	Regions []domain.Region
}

func (h *RegionsHandler) List(w http.ResponseWriter, r *http.Request) {
	res := dto.ListRegionsResponse{Regions: make([]dto.RegionResponse, 0, len(h.Regions))}
	for _, reg := range h.Regions {
		res.Regions = append(res.Regions, dto.RegionResponse{
			ID:          reg.ID,
			Name:        reg.Name,
			Abbr:        reg.Abbr,
			CentroidLat: reg.CentroidLat,
			CentroidLng: reg.CentroidLng,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

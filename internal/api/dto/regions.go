package dto

import "time"

type RegionResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Abbr        string  `json:"abbr"`
	CentroidLat float64 `json:"centroid_lat"`
	CentroidLng float64 `json:"centroid_lng"`
}

type ListRegionsResponse struct {
	Regions []RegionResponse `json:"regions"`
}

type TraceEventResponse struct {
	ID         string    `json:"id"`
	TaxiID     string    `json:"taxi_id"`
	RegionName string    `json:"region_name"`
	Kind       string    `json:"kind"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Timestamp  time.Time `json:"timestamp"`
}

type ListTraceEventsResponse struct {
	Events []TraceEventResponse `json:"events"`
}

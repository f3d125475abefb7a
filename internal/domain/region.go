package domain

// Region is one entry of the static geographic reference set.
// Only the centroid is held locally; exact boundaries live behind the
// remote spatial query, so the centroid is used for fallback
// classification only.
type Region struct {
	ID          string
	Name        string
	Abbr        string
	CentroidLat float64
	CentroidLng float64
}

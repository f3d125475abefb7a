package ports

import "context"

// RegionClassifier resolves a geographic point to a region label.
//
// The empty string means the point could not be classified. Implementations
// degrade internally (remote spatial query, then local heuristic) and never
// return an error: a failed classification is "no region", not a fault.
type RegionClassifier interface {
	Classify(ctx context.Context, lon, lat float64) string
}

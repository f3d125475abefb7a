// Package arcgis classifies geographic points against an ArcGIS-style
// feature layer, degrading to a local nearest-centroid heuristic whenever
// the remote query cannot answer.
package arcgis

import (
	"context"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"taxi-geofence-service/internal/domain"
	"taxi-geofence-service/internal/platform/obs"
)

// Classifier resolves points to region labels. It satisfies the
// RegionClassifier port: Classify never fails, it only degrades.
type Classifier struct {
	layerURL  string
	session   *http.Client
	regions   []domain.Region
	threshold float64
}

// NewClassifier builds a classifier over a feature layer URL and the static
// region reference set. The timeout bounds each remote query; thresholdDeg
// bounds how far (in planar degrees) the fallback will match a centroid.
func NewClassifier(layerURL string, timeout time.Duration, regions []domain.Region, thresholdDeg float64) *Classifier {
	return &Classifier{
		layerURL:  strings.TrimRight(layerURL, "/"),
		session:   &http.Client{Timeout: timeout},
		regions:   regions,
		threshold: thresholdDeg,
	}
}

// Classify resolves a point to a region name, or "" when nothing matches.
// The remote spatial query is attempted first; any failure (network, non-2xx,
// malformed response) is logged at low severity and handed to the fallback.
// An authoritative empty result set also falls back, since the layer may not
// cover every configured region.
func (c *Classifier) Classify(ctx context.Context, lon, lat float64) string {
	name, err := c.queryIntersecting(ctx, lon, lat)
	if err != nil {
		obs.ClassifyRemoteFailuresTotal.Inc()
		log.Printf("classify: remote query failed, using fallback: lon=%v lat=%v err=%v", lon, lat, err)
	} else if name != "" {
		return name
	}

	obs.ClassifyFallbackTotal.Inc()
	return c.nearestCentroid(lon, lat)
}

// nearestCentroid returns the region whose centroid is closest to the point,
// or "" when every centroid is at least the threshold away. The distance is
// a planar approximation in degrees: crude, but cheap and adequate at
// state-level resolution.
func (c *Classifier) nearestCentroid(lon, lat float64) string {
	minDist := math.Inf(1)
	closest := ""

	for _, r := range c.regions {
		dLat := lat - r.CentroidLat
		dLng := lon - r.CentroidLng
		dist := math.Sqrt(dLat*dLat + dLng*dLng)

		// Strict < keeps the first declared region on exact ties.
		if dist < minDist {
			minDist = dist
			closest = r.Name
		}
	}

	if minDist >= c.threshold {
		return ""
	}
	return closest
}

package arcgis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

type queryResponse struct {
	Features []struct {
		Attributes struct {
			StateName string `json:"state_name"`
			StateAbbr string `json:"state_abbr"`
		} `json:"attributes"`
	} `json:"features"`
}

// queryIntersecting runs the point-in-region spatial query against the
// feature layer: point geometry in EPSG:4326, "intersects" relation. It
// returns the first matching feature's region name, preferring the readable
// name over the abbreviation, or "" when the result set is empty.
//
// A single attempt is made per call. Retrying would stretch the latency
// bound past the configured timeout, and a failure degrades to the local
// heuristic anyway.
func (c *Classifier) queryIntersecting(ctx context.Context, lon, lat float64) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.layerURL+"/query", nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	point := strconv.FormatFloat(lon, 'f', -1, 64) + "," + strconv.FormatFloat(lat, 'f', -1, 64)

	q := req.URL.Query()
	q.Set("geometry", point)
	q.Set("geometryType", "esriGeometryPoint")
	q.Set("spatialRel", "esriSpatialRelIntersects")
	q.Set("outFields", "state_name,state_abbr")
	q.Set("inSR", "4326")
	q.Set("f", "json")
	req.URL.RawQuery = q.Encode()

	resp, err := c.session.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute query: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return "", &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}

	var decoded queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode query response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return "", nil
	}

	attr := decoded.Features[0].Attributes
	if attr.StateName != "" {
		return attr.StateName, nil
	}
	return attr.StateAbbr, nil
}

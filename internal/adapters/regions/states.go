// Package regions holds the static geographic reference set: the 50 US
// states plus DC, each reduced to its centroid. The declaration order is
// significant: the fallback classifier breaks distance ties by keeping the
// first region it encounters, so the order below is part of the contract.
package regions

import (
	"strings"

	"taxi-geofence-service/internal/domain"
)

var usStates = []domain.Region{
	{ID: "al", Name: "Alabama", Abbr: "AL", CentroidLat: 32.318231, CentroidLng: -86.902298},
	{ID: "ak", Name: "Alaska", Abbr: "AK", CentroidLat: 63.588753, CentroidLng: -154.493062},
	{ID: "az", Name: "Arizona", Abbr: "AZ", CentroidLat: 34.048928, CentroidLng: -111.093731},
	{ID: "ar", Name: "Arkansas", Abbr: "AR", CentroidLat: 35.20105, CentroidLng: -91.831833},
	{ID: "ca", Name: "California", Abbr: "CA", CentroidLat: 36.778261, CentroidLng: -119.417932},
	{ID: "co", Name: "Colorado", Abbr: "CO", CentroidLat: 39.550051, CentroidLng: -105.782067},
	{ID: "ct", Name: "Connecticut", Abbr: "CT", CentroidLat: 41.603221, CentroidLng: -73.087749},
	{ID: "de", Name: "Delaware", Abbr: "DE", CentroidLat: 38.910832, CentroidLng: -75.52767},
	{ID: "fl", Name: "Florida", Abbr: "FL", CentroidLat: 27.664827, CentroidLng: -81.515754},
	{ID: "ga", Name: "Georgia", Abbr: "GA", CentroidLat: 32.157435, CentroidLng: -82.907123},
	{ID: "hi", Name: "Hawaii", Abbr: "HI", CentroidLat: 19.898682, CentroidLng: -155.665857},
	{ID: "id", Name: "Idaho", Abbr: "ID", CentroidLat: 44.068202, CentroidLng: -114.742041},
	{ID: "il", Name: "Illinois", Abbr: "IL", CentroidLat: 40.633125, CentroidLng: -89.398528},
	{ID: "in", Name: "Indiana", Abbr: "IN", CentroidLat: 40.551217, CentroidLng: -85.602364},
	{ID: "ia", Name: "Iowa", Abbr: "IA", CentroidLat: 41.878003, CentroidLng: -93.097702},
	{ID: "ks", Name: "Kansas", Abbr: "KS", CentroidLat: 39.011902, CentroidLng: -98.484246},
	{ID: "ky", Name: "Kentucky", Abbr: "KY", CentroidLat: 37.839333, CentroidLng: -84.270018},
	{ID: "la", Name: "Louisiana", Abbr: "LA", CentroidLat: 30.984298, CentroidLng: -91.962333},
	{ID: "me", Name: "Maine", Abbr: "ME", CentroidLat: 45.253783, CentroidLng: -69.445469},
	{ID: "md", Name: "Maryland", Abbr: "MD", CentroidLat: 39.045755, CentroidLng: -76.641271},
	{ID: "ma", Name: "Massachusetts", Abbr: "MA", CentroidLat: 42.407211, CentroidLng: -71.382437},
	{ID: "mi", Name: "Michigan", Abbr: "MI", CentroidLat: 44.314844, CentroidLng: -85.602364},
	{ID: "mn", Name: "Minnesota", Abbr: "MN", CentroidLat: 46.729553, CentroidLng: -94.6859},
	{ID: "ms", Name: "Mississippi", Abbr: "MS", CentroidLat: 32.354668, CentroidLng: -89.398528},
	{ID: "mo", Name: "Missouri", Abbr: "MO", CentroidLat: 37.964253, CentroidLng: -91.831833},
	{ID: "mt", Name: "Montana", Abbr: "MT", CentroidLat: 46.879682, CentroidLng: -110.362566},
	{ID: "ne", Name: "Nebraska", Abbr: "NE", CentroidLat: 41.492537, CentroidLng: -99.901813},
	{ID: "nv", Name: "Nevada", Abbr: "NV", CentroidLat: 38.80261, CentroidLng: -116.419389},
	{ID: "nh", Name: "New Hampshire", Abbr: "NH", CentroidLat: 43.193852, CentroidLng: -71.572395},
	{ID: "nj", Name: "New Jersey", Abbr: "NJ", CentroidLat: 40.058324, CentroidLng: -74.405661},
	{ID: "nm", Name: "New Mexico", Abbr: "NM", CentroidLat: 34.97273, CentroidLng: -105.032363},
	{ID: "ny", Name: "New York", Abbr: "NY", CentroidLat: 43.299428, CentroidLng: -74.217933},
	{ID: "nc", Name: "North Carolina", Abbr: "NC", CentroidLat: 35.759573, CentroidLng: -79.0193},
	{ID: "nd", Name: "North Dakota", Abbr: "ND", CentroidLat: 47.551493, CentroidLng: -101.002012},
	{ID: "oh", Name: "Ohio", Abbr: "OH", CentroidLat: 40.417287, CentroidLng: -82.907123},
	{ID: "ok", Name: "Oklahoma", Abbr: "OK", CentroidLat: 35.007752, CentroidLng: -97.092877},
	{ID: "or", Name: "Oregon", Abbr: "OR", CentroidLat: 43.804133, CentroidLng: -120.554201},
	{ID: "pa", Name: "Pennsylvania", Abbr: "PA", CentroidLat: 41.203322, CentroidLng: -77.194525},
	{ID: "ri", Name: "Rhode Island", Abbr: "RI", CentroidLat: 41.580095, CentroidLng: -71.477429},
	{ID: "sc", Name: "South Carolina", Abbr: "SC", CentroidLat: 33.836081, CentroidLng: -81.163725},
	{ID: "sd", Name: "South Dakota", Abbr: "SD", CentroidLat: 43.969515, CentroidLng: -99.901813},
	{ID: "tn", Name: "Tennessee", Abbr: "TN", CentroidLat: 35.517491, CentroidLng: -86.580447},
	{ID: "tx", Name: "Texas", Abbr: "TX", CentroidLat: 31.968599, CentroidLng: -99.901813},
	{ID: "ut", Name: "Utah", Abbr: "UT", CentroidLat: 39.32098, CentroidLng: -111.093731},
	{ID: "vt", Name: "Vermont", Abbr: "VT", CentroidLat: 44.558803, CentroidLng: -72.577841},
	{ID: "va", Name: "Virginia", Abbr: "VA", CentroidLat: 37.431573, CentroidLng: -78.656894},
	{ID: "wa", Name: "Washington", Abbr: "WA", CentroidLat: 47.751074, CentroidLng: -120.740139},
	{ID: "wv", Name: "West Virginia", Abbr: "WV", CentroidLat: 38.597626, CentroidLng: -80.454903},
	{ID: "wi", Name: "Wisconsin", Abbr: "WI", CentroidLat: 43.78444, CentroidLng: -88.787868},
	{ID: "wy", Name: "Wyoming", Abbr: "WY", CentroidLat: 43.075968, CentroidLng: -107.290284},
	{ID: "dc", Name: "District of Columbia", Abbr: "DC", CentroidLat: 38.907192, CentroidLng: -77.036871},
}

// USStates returns the reference set in declaration order. The returned
// slice is a copy; callers may not affect the canonical ordering.
func USStates() []domain.Region {
	out := make([]domain.Region, len(usStates))
	copy(out, usStates)
	return out
}

// ByID looks a region up by its lowercase ID or abbreviation.
func ByID(id string) (domain.Region, bool) {
	id = strings.ToLower(id)
	for _, r := range usStates {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Region{}, false
}

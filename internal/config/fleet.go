package config

// The stock fleet: five taxis, each cycling through five fixed
// pickup->dropoff legs across US state centroids. Distances are the
// authoritative leg lengths used for progress calculations.

func point(region, abbr string, lat, lng float64) RoutePointConfig {
	return RoutePointConfig{Region: region, Abbr: abbr, Latitude: lat, Longitude: lng}
}

func leg(pickup, dropoff RoutePointConfig, distanceKM float64) RouteConfig {
	return RouteConfig{Pickup: pickup, Dropoff: dropoff, DistanceKM: distanceKM}
}

// DefaultFleet returns the built-in five-taxi route table.
func DefaultFleet() []TaxiConfig {
	return []TaxiConfig{
		{
			ID: "taxi_a",
			Routes: []RouteConfig{
				leg(point("Rhode Island", "RI", 41.580095, -71.477429), point("Massachusetts", "MA", 42.407211, -71.382437), 92.31),
				leg(point("Alabama", "AL", 32.318231, -86.902298), point("US Virgin Islands", "VI", 34.297878, -83.824066), 360.92),
				leg(point("Kentucky", "KY", 37.839333, -84.270018), point("Ohio", "OH", 40.417287, -82.907123), 309.81),
				leg(point("Illinois", "IL", 40.633125, -89.398528), point("Indiana", "IN", 40.551217, -85.602364), 320.64),
				leg(point("Vermont", "VT", 44.558803, -72.577841), point("New Hampshire", "NH", 43.193852, -71.572395), 171.84),
			},
		},
		{
			ID: "taxi_b",
			Routes: []RouteConfig{
				leg(point("Tennessee", "TN", 35.517491, -86.580447), point("Alabama", "AL", 32.318231, -86.902298), 356.98),
				leg(point("Palau", "PW", 7.51498, 134.58252), point("Federated States of Micronesia", "FM", 6.9167, 158.1833), 2604.04),
				leg(point("Colorado", "CO", 39.550051, -105.782067), point("New Mexico", "NM", 34.97273, -105.032363), 513.27),
				leg(point("North Carolina", "NC", 35.759573, -79.0193), point("Virginia", "VA", 37.431573, -78.656894), 188.71),
				leg(point("Alabama", "AL", 32.318231, -86.902298), point("Mississippi", "MS", 32.354668, -89.398528), 234.55),
			},
		},
		{
			ID: "taxi_c",
			Routes: []RouteConfig{
				leg(point("Idaho", "ID", 44.068202, -114.742041), point("Montana", "MT", 46.879682, -110.362566), 462.84),
				leg(point("New Mexico", "NM", 34.97273, -105.032363), point("Texas", "TX", 31.968599, -99.901813), 581.28),
				leg(point("Alabama", "AL", 32.318231, -86.902298), point("US Virgin Islands", "VI", 34.297878, -83.824066), 360.92),
				leg(point("Iowa", "IA", 41.878003, -93.097702), point("Missouri", "MO", 37.964253, -91.831833), 448.36),
				leg(point("South Carolina", "SC", 33.836081, -81.163725), point("North Carolina", "NC", 35.759573, -79.0193), 289.96),
			},
		},
		{
			ID: "taxi_d",
			Routes: []RouteConfig{
				leg(point("New York", "NY", 43.299428, -74.217933), point("Connecticut", "CT", 41.603221, -73.087749), 210.17),
				leg(point("Illinois", "IL", 40.633125, -89.398528), point("Iowa", "IA", 41.878003, -93.097702), 338.76),
				leg(point("Oregon", "OR", 43.804133, -120.554201), point("Idaho", "ID", 44.068202, -114.742041), 466.22),
				leg(point("Wyoming", "WY", 43.075968, -107.290284), point("Colorado", "CO", 39.550051, -105.782067), 411.78),
				leg(point("Washington", "WA", 47.751074, -120.740139), point("Oregon", "OR", 43.804133, -120.554201), 439.12),
			},
		},
		{
			ID: "taxi_e",
			Routes: []RouteConfig{
				leg(point("Texas", "TX", 31.968599, -99.901813), point("New Mexico", "NM", 34.97273, -105.032363), 581.28),
				leg(point("Maine", "ME", 45.253783, -69.445469), point("New Hampshire", "NH", 43.193852, -71.572395), 284.92),
				leg(point("Florida", "FL", 27.664827, -81.515754), point("Georgia", "GA", 32.157435, -82.907123), 517.22),
				leg(point("Washington", "WA", 47.751074, -120.740139), point("Idaho", "ID", 44.068202, -114.742041), 618.58),
				leg(point("Connecticut", "CT", 41.603221, -73.087749), point("Rhode Island", "RI", 41.580095, -71.477429), 133.94),
			},
		},
	}
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"taxi-geofence-service/internal/domain"
)

// Get reads an environment variable with a fallback default.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type RoutePointConfig struct {
	Region    string  `yaml:"region" validate:"required"`
	Abbr      string  `yaml:"abbr" validate:"required"`
	Latitude  float64 `yaml:"lat" validate:"gte=-90,lte=90"`
	Longitude float64 `yaml:"lng" validate:"gte=-180,lte=180"`
}

type RouteConfig struct {
	Pickup     RoutePointConfig `yaml:"pickup"`
	Dropoff    RoutePointConfig `yaml:"dropoff"`
	DistanceKM float64          `yaml:"distance_km" validate:"gte=0"`
}

type TaxiConfig struct {
	ID     string        `yaml:"id" validate:"required"`
	Routes []RouteConfig `yaml:"routes" validate:"min=1,dive"`
}

// SimulationConfig is the full tuning surface of the simulation: loop
// cadence, speed range, classifier behavior and the per-taxi route tables.
type SimulationConfig struct {
	TickIntervalSeconds      float64      `yaml:"tick_interval_seconds" validate:"gt=0"`
	SpeedMinKMH              float64      `yaml:"speed_min_kmh" validate:"gt=0"`
	SpeedMaxKMH              float64      `yaml:"speed_max_kmh" validate:"gtefield=SpeedMinKMH"`
	FallbackThresholdDeg     float64      `yaml:"fallback_threshold_degrees" validate:"gt=0"`
	ClassifierTimeoutSeconds float64      `yaml:"classifier_timeout_seconds" validate:"gt=0"`
	StopTimeoutSeconds       float64      `yaml:"stop_timeout_seconds" validate:"gt=0"`
	RegionLayerURL           string       `yaml:"region_layer_url" validate:"url"`
	Fleet                    []TaxiConfig `yaml:"fleet" validate:"min=1,dive"`
}

// Default returns the built-in configuration: a 2s tick, the accelerated
// 600-1200 km/h speed band, a 2 degree fallback threshold, a 5s remote query
// budget and the stock five-taxi fleet.
func Default() SimulationConfig {
	return SimulationConfig{
		TickIntervalSeconds:      2,
		SpeedMinKMH:              600,
		SpeedMaxKMH:              1200,
		FallbackThresholdDeg:     2.0,
		ClassifierTimeoutSeconds: 5,
		StopTimeoutSeconds:       5,
		RegionLayerURL:           "https://sampleserver6.arcgisonline.com/arcgis/rest/services/USA/MapServer/2",
		Fleet:                    DefaultFleet(),
	}
}

// Load reads a YAML file over the defaults, so a config file only needs the
// keys it wants to change. The result is validated before it is returned.
func Load(path string) (SimulationConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return SimulationConfig{}, fmt.Errorf("load config: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SimulationConfig{}, fmt.Errorf("load config: parse %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return SimulationConfig{}, fmt.Errorf("load config: %q: %w", path, err)
	}

	return cfg, nil
}

func (c SimulationConfig) Validate() error {
	return validator.New().Struct(c)
}

func (c SimulationConfig) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalSeconds * float64(time.Second))
}

func (c SimulationConfig) ClassifierTimeout() time.Duration {
	return time.Duration(c.ClassifierTimeoutSeconds * float64(time.Second))
}

func (c SimulationConfig) StopTimeout() time.Duration {
	return time.Duration(c.StopTimeoutSeconds * float64(time.Second))
}

// DomainRoutes converts one taxi's configured route list into domain values.
func (t TaxiConfig) DomainRoutes() []domain.Route {
	routes := make([]domain.Route, 0, len(t.Routes))
	for _, r := range t.Routes {
		routes = append(routes, domain.Route{
			Pickup: domain.RoutePoint{
				RegionName: r.Pickup.Region,
				RegionAbbr: r.Pickup.Abbr,
				Latitude:   r.Pickup.Latitude,
				Longitude:  r.Pickup.Longitude,
			},
			Dropoff: domain.RoutePoint{
				RegionName: r.Dropoff.Region,
				RegionAbbr: r.Dropoff.Abbr,
				Latitude:   r.Dropoff.Latitude,
				Longitude:  r.Dropoff.Longitude,
			},
			DistanceKM: r.DistanceKM,
		})
	}
	return routes
}

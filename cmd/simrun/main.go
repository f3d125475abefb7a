package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/joho/godotenv"

	_ "modernc.org/sqlite"

	"taxi-geofence-service/internal/adapters/arcgis"
	"taxi-geofence-service/internal/adapters/regions"
	"taxi-geofence-service/internal/adapters/sink"
	"taxi-geofence-service/internal/config"
	"taxi-geofence-service/internal/platform/db"
	"taxi-geofence-service/internal/platform/obs"
	"taxi-geofence-service/internal/services"
)

// simrun drives the simulation headless for a fixed duration, printing
// fleet status periodically. Useful for eyeballing route progress and
// transition events without the HTTP layer.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	var (
		configPath = flag.String("config", "", "optional simulation config YAML")
		duration   = flag.Duration("duration", 60*time.Second, "how long to run")
		report     = flag.Duration("report", 10*time.Second, "status print interval")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	obs.MustRegister()

	traceDB, err := db.OpenSQLite(config.Get("DB_PATH", ":memory:"))
	if err != nil {
		log.Fatal(err)
	}
	defer traceDB.Close()

	if err := sink.InitSchema(traceDB); err != nil {
		log.Fatal(err)
	}

	referenceSet := regions.USStates()
	classifier := arcgis.NewClassifier(cfg.RegionLayerURL, cfg.ClassifierTimeout(), referenceSet, cfg.FallbackThresholdDeg)
	tracker := services.NewZoneTransitionTracker(sink.NewSQLTraceSink(traceDB))
	simulator := services.NewRouteSimulator(cfg.SpeedMinKMH, cfg.SpeedMaxKMH, time.Now().UnixNano())

	fleet := make([]services.FleetAssignment, 0, len(cfg.Fleet))
	for _, t := range cfg.Fleet {
		fleet = append(fleet, services.FleetAssignment{TaxiID: t.ID, Routes: t.DomainRoutes()})
	}

	sched, err := services.NewScheduler(fleet, classifier, tracker, simulator, nil, services.SchedulerConfig{
		Interval:    cfg.TickInterval(),
		StopTimeout: cfg.StopTimeout(),
	})
	if err != nil {
		log.Fatal(err)
	}

	sched.Start()
	defer sched.Stop()

	deadline := time.After(*duration)
	ticker := time.NewTicker(*report)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			fmt.Println("--- final status ---")
			printStatus(sched)
			return
		case <-ticker.C:
			printStatus(sched)
		}
	}
}

func printStatus(sched *services.Scheduler) {
	all := sched.GetAllStatus()

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		snap := all[id]
		fmt.Printf("%s: zone=%q -> %s (%.1f%%) speed=%.0fkm/h\n",
			id, snap.CurrentRegion, snap.Route.DropoffRegion, snap.RouteProgress*100, snap.SpeedKMH)
	}
}

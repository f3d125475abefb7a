package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"taxi-geofence-service/internal/adapters/arcgis"
	"taxi-geofence-service/internal/adapters/regions"
	"taxi-geofence-service/internal/adapters/sink"
	"taxi-geofence-service/internal/adapters/statuscache"
	"taxi-geofence-service/internal/api"
	"taxi-geofence-service/internal/config"
	"taxi-geofence-service/internal/platform/db"
	"taxi-geofence-service/internal/platform/obs"
	"taxi-geofence-service/internal/ports"
	"taxi-geofence-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (trace store, remote classifier, status cache)
// behind ports, builds the scheduler and starts the HTTP control surface.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Default()
	if path := os.Getenv("SIM_CONFIG"); strings.TrimSpace(path) != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	obs.MustRegister()

	traceDB, err := openTraceDB()
	if err != nil {
		log.Fatal(err)
	}
	defer traceDB.Close()

	if err := sink.InitSchema(traceDB); err != nil {
		log.Fatal(err)
	}
	traceSink := sink.NewSQLTraceSink(traceDB)

	// The status cache is optional; without Redis the in-process snapshot
	// map still serves every status query.
	var cache ports.StatusCache
	if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		cache = statuscache.NewRedisStatusCache(rdb, 5*time.Minute)
		log.Printf("status cache enabled addr=%s", addr)
	}

	referenceSet := regions.USStates()
	classifier := arcgis.NewClassifier(cfg.RegionLayerURL, cfg.ClassifierTimeout(), referenceSet, cfg.FallbackThresholdDeg)
	tracker := services.NewZoneTransitionTracker(traceSink)
	simulator := services.NewRouteSimulator(cfg.SpeedMinKMH, cfg.SpeedMaxKMH, time.Now().UnixNano())

	fleet := make([]services.FleetAssignment, 0, len(cfg.Fleet))
	for _, t := range cfg.Fleet {
		fleet = append(fleet, services.FleetAssignment{TaxiID: t.ID, Routes: t.DomainRoutes()})
	}

	sched, err := services.NewScheduler(fleet, classifier, tracker, simulator, cache, services.SchedulerConfig{
		Interval:    cfg.TickInterval(),
		StopTimeout: cfg.StopTimeout(),
	})
	if err != nil {
		log.Fatal(err)
	}

	if config.Get("SIM_AUTOSTART", "false") == "true" {
		sched.Start()
	}

	router := api.NewRouter(sched, referenceSet, traceSink)

	port := config.Get("PORT", "8080")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening addr=:%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	// On shutdown, stop the simulation first so no tick is mid-flight while
	// the trace store closes underneath it.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("shutting down")
	sched.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}

// openTraceDB opens the trace store: postgres when DATABASE_URL is set,
// a local sqlite file otherwise.
func openTraceDB() (*sql.DB, error) {
	if url := os.Getenv("DATABASE_URL"); strings.TrimSpace(url) != "" {
		return db.OpenPostgres(url)
	}
	return db.OpenSQLite(config.Get("DB_PATH", "data/geofence.db"))
}

// main.go - Entry point and dependency injection
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/robfig/cron/v3"

	"github.com/s3r3ga/ftracker/internal/config"
	"github.com/s3r3ga/ftracker/internal/ingest"
	"github.com/s3r3ga/ftracker/internal/scan"
	"github.com/s3r3ga/ftracker/internal/storage"
	"github.com/s3r3ga/ftracker/internal/tracker"
	"github.com/s3r3ga/ftracker/internal/web"
)

// packages holds the fixed sample sensor records fed through the
// pipeline on every start.
var packages = []struct {
	workoutType string
	data        []float64
}{
	{tracker.CodeSwimming, []float64{720, 1, 80, 25, 40}},
	{tracker.CodeRunning, []float64{15000, 1, 75}},
	{tracker.CodeWalking, []float64{9000, 1, 75, 180}},
}

type App struct {
	cfg      *config.Config
	store    *storage.Store
	scanner  *scan.Scanner
	cron     *cron.Cron
	server   *http.Server
	shutdown chan os.Signal
}

func main() {
	app := &App{
		shutdown: make(chan os.Signal, 1),
	}

	if err := app.init(); err != nil {
		log.Fatal("Failed to initialize app: ", err)
	}

	app.processPackages()

	app.start()

	signal.Notify(app.shutdown, os.Interrupt, syscall.SIGTERM)
	<-app.shutdown

	app.stop()
}

func (app *App) init() error {
	var err error

	app.cfg, err = config.Load()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(app.cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.MkdirAll(app.cfg.FitDir, 0755); err != nil {
		return fmt.Errorf("failed to create FIT directory: %w", err)
	}

	app.store, err = storage.Open(app.cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	app.scanner = scan.NewScanner(app.store, app.cfg.FitDir, ingest.Profile{
		WeightKG: app.cfg.AthleteWeightKG,
		HeightCM: app.cfg.AthleteHeightCM,
	})

	app.cron = cron.New()

	handler, err := web.NewHandler(app.store)
	if err != nil {
		return err
	}
	app.server = &http.Server{
		Addr:    app.cfg.HTTPAddr,
		Handler: handler.Routes(),
	}

	return nil
}

// processPackages runs the built-in sample records through the pipeline,
// printing one summary line per record. A bad record is logged and
// skipped; the rest of the batch still runs.
func (app *App) processPackages() {
	for i, pkg := range packages {
		t, err := tracker.ReadPackage(pkg.workoutType, pkg.data)
		if err != nil {
			log.Printf("Skipping package %d: %v", i, err)
			continue
		}

		info := t.TrainingInfo()
		fmt.Println(info.GetMessage())

		source := fmt.Sprintf("sample/%d", i)
		seen, err := app.store.SourceSeen(source)
		if err != nil {
			log.Printf("Failed to check package %d: %v", i, err)
			continue
		}
		if seen {
			continue
		}

		err = app.store.SaveSession(&storage.Session{
			TrainingType: info.TrainingType,
			Duration:     info.Duration,
			Distance:     info.Distance,
			Speed:        info.Speed,
			Calories:     info.Calories,
			Source:       source,
		})
		if err != nil {
			log.Printf("Failed to save package %d: %v", i, err)
		}
	}
}

func (app *App) start() {
	app.cron.AddFunc(app.cfg.ScanSchedule, func() {
		log.Println("Starting scheduled FIT scan...")
		if err := app.scanner.Scan(context.Background()); err != nil {
			log.Printf("Scan failed: %v", err)
		}
	})
	app.cron.Start()

	// One scan right away so dropped files don't wait for the schedule.
	go func() {
		if err := app.scanner.Scan(context.Background()); err != nil {
			log.Printf("Initial scan failed: %v", err)
		}
	}()

	go func() {
		log.Printf("Server starting on http://localhost%s", app.cfg.HTTPAddr)
		if err := app.server.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()
}

func (app *App) stop() {
	log.Println("Shutting down...")

	app.cron.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	if app.store != nil {
		app.store.Close()
	}

	log.Println("Shutdown complete")
}

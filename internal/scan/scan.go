// Package scan walks the FIT drop directory and runs every new activity
// file through the tracker pipeline.
package scan

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/s3r3ga/ftracker/internal/ingest"
	"github.com/s3r3ga/ftracker/internal/storage"
	"github.com/s3r3ga/ftracker/internal/tracker"
)

type Scanner struct {
	store   *storage.Store
	dir     string
	profile ingest.Profile
}

func NewScanner(store *storage.Store, dir string, profile ingest.Profile) *Scanner {
	return &Scanner{
		store:   store,
		dir:     dir,
		profile: profile,
	}
}

// Scan processes every FIT file in the drop directory that has not been
// ingested yet. A file that fails to decode or dispatch is logged and
// skipped; the scan moves on to the next file.
func (s *Scanner) Scan(ctx context.Context) error {
	files, err := filepath.Glob(filepath.Join(s.dir, "*.fit"))
	if err != nil {
		return fmt.Errorf("failed to list FIT files: %w", err)
	}

	for _, file := range files {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		name := filepath.Base(file)
		seen, err := s.store.SourceSeen(name)
		if err != nil {
			return err
		}
		if seen {
			continue
		}

		if err := s.ingestFile(file, name); err != nil {
			log.Printf("Skipping %s: %v", name, err)
		}
	}

	return nil
}

func (s *Scanner) ingestFile(file, name string) error {
	pkg, err := ingest.FromFile(file, s.profile)
	if err != nil {
		return err
	}

	t, err := tracker.ReadPackage(pkg.WorkoutType, pkg.Data)
	if err != nil {
		return err
	}

	info := t.TrainingInfo()
	log.Printf("%s: %s", name, info.GetMessage())

	return s.store.SaveSession(&storage.Session{
		TrainingType: info.TrainingType,
		Duration:     info.Duration,
		Distance:     info.Distance,
		Speed:        info.Speed,
		Calories:     info.Calories,
		Source:       name,
	})
}

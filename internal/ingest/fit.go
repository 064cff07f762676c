// Package ingest turns Garmin FIT activity files into the sensor
// packages the tracker core understands.
package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/tormoder/fit"

	"github.com/s3r3ga/ftracker/internal/tracker"
)

// ErrUnsupportedSport means the FIT session records a sport the tracker
// has no formulas for.
var ErrUnsupportedSport = errors.New("unsupported sport")

// Package is one decoded sensor package, ready for tracker.ReadPackage.
type Package struct {
	WorkoutType string
	Data        []float64
}

// Profile carries the athlete measurements FIT session messages do not
// record themselves.
type Profile struct {
	WeightKG float64
	HeightCM float64
}

// FromFile decodes a FIT activity file into a sensor package.
func FromFile(filename string, p Profile) (*Package, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return FromData(data, p)
}

// FromData decodes FIT bytes into a sensor package. Only the first
// session of the activity is used, matching how watches export single
// workouts.
func FromData(data []byte, p Profile) (*Package, error) {
	fitFile, err := fit.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode FIT file: %w", err)
	}

	activity, err := fitFile.Activity()
	if err != nil {
		return nil, fmt.Errorf("failed to get activity from FIT: %w", err)
	}
	if len(activity.Sessions) == 0 {
		return nil, fmt.Errorf("no sessions found in FIT file")
	}

	s := activity.Sessions[0]
	return buildPackage(summary{
		sport:        s.Sport,
		cycles:       s.TotalCycles,
		timerTimeMS:  s.TotalTimerTime,
		poolLengthCM: s.PoolLength,
		lengths:      s.NumActiveLengths,
	}, p)
}

// summary is the slice of a FIT session the tracker cares about, with
// the raw FIT scaling still applied (timer time in ms, pool length in
// cm).
type summary struct {
	sport        fit.Sport
	cycles       uint32
	timerTimeMS  uint32
	poolLengthCM uint16
	lengths      uint16
}

func buildPackage(s summary, p Profile) (*Package, error) {
	hours := float64(s.timerTimeMS) / 1000 / 3600
	action := float64(s.cycles)

	switch s.sport {
	case fit.SportRunning:
		return &Package{
			WorkoutType: tracker.CodeRunning,
			Data:        []float64{action, hours, p.WeightKG},
		}, nil

	case fit.SportWalking:
		return &Package{
			WorkoutType: tracker.CodeWalking,
			Data:        []float64{action, hours, p.WeightKG, p.HeightCM},
		}, nil

	case fit.SportSwimming:
		if s.poolLengthCM == 0 || s.lengths == 0 {
			return nil, fmt.Errorf("swim session has no pool geometry")
		}
		poolLengthM := float64(s.poolLengthCM) / 100
		return &Package{
			WorkoutType: tracker.CodeSwimming,
			Data:        []float64{action, hours, p.WeightKG, poolLengthM, float64(s.lengths)},
		}, nil

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedSport, s.sport)
	}
}

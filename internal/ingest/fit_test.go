package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tormoder/fit"

	"github.com/s3r3ga/ftracker/internal/tracker"
)

var profile = Profile{WeightKG: 75, HeightCM: 180}

func TestBuildPackageRunning(t *testing.T) {
	pkg, err := buildPackage(summary{
		sport:       fit.SportRunning,
		cycles:      15000,
		timerTimeMS: 3600000, // one hour
	}, profile)
	require.NoError(t, err)

	assert.Equal(t, tracker.CodeRunning, pkg.WorkoutType)
	require.Len(t, pkg.Data, 3)
	assert.Equal(t, 15000.0, pkg.Data[0])
	assert.InDelta(t, 1.0, pkg.Data[1], 1e-9)
	assert.Equal(t, 75.0, pkg.Data[2])
}

func TestBuildPackageWalkingCarriesHeight(t *testing.T) {
	pkg, err := buildPackage(summary{
		sport:       fit.SportWalking,
		cycles:      9000,
		timerTimeMS: 5400000, // 1.5 h
	}, profile)
	require.NoError(t, err)

	assert.Equal(t, tracker.CodeWalking, pkg.WorkoutType)
	require.Len(t, pkg.Data, 4)
	assert.InDelta(t, 1.5, pkg.Data[1], 1e-9)
	assert.Equal(t, 180.0, pkg.Data[3])
}

func TestBuildPackageSwimming(t *testing.T) {
	pkg, err := buildPackage(summary{
		sport:        fit.SportSwimming,
		cycles:       720,
		timerTimeMS:  3600000,
		poolLengthCM: 2500, // 25 m
		lengths:      40,
	}, profile)
	require.NoError(t, err)

	assert.Equal(t, tracker.CodeSwimming, pkg.WorkoutType)
	require.Len(t, pkg.Data, 5)
	assert.InDelta(t, 25.0, pkg.Data[3], 1e-9)
	assert.Equal(t, 40.0, pkg.Data[4])

	// The built package must round-trip through the core dispatch.
	tr, err := tracker.ReadPackage(pkg.WorkoutType, pkg.Data)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, tr.MeanSpeed(), 1e-9)
}

func TestBuildPackageSwimmingWithoutPoolGeometry(t *testing.T) {
	_, err := buildPackage(summary{
		sport:       fit.SportSwimming,
		cycles:      720,
		timerTimeMS: 3600000,
	}, profile)
	require.Error(t, err)
}

func TestBuildPackageUnsupportedSport(t *testing.T) {
	_, err := buildPackage(summary{
		sport:       fit.SportCycling,
		cycles:      5000,
		timerTimeMS: 3600000,
	}, profile)
	require.ErrorIs(t, err, ErrUnsupportedSport)
}

package tracker

import "math"

const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
)

// SportsWalking is a walk recorded as a step count. Height must be
// supplied by the caller; a zero or negative height corrupts the calorie
// formula and is not validated here.
type SportsWalking struct {
	training
	Height float64 // cm
}

func NewSportsWalking(action int, duration, weight, height float64) SportsWalking {
	return SportsWalking{
		training: training{Action: action, Duration: duration, Weight: weight},
		Height:   height,
	}
}

func (w SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	// The speed²/height term is floor-divided. The reference formula has
	// always done this, so it is kept even though it looks like it wants
	// true division: the result differs at perfect-square boundaries.
	return (walkingCaloriesWeightMultiplier*w.Weight +
		math.Floor(speed*speed/w.Height)*walkingSpeedHeightMultiplier*w.Weight) *
		w.Duration * minInH
}

func (w SportsWalking) TrainingInfo() InfoMessage {
	return infoFor("SportsWalking", w, w.Duration)
}

// Package tracker converts raw workout sensor readings (step or stroke
// count, duration, body weight and kind-specific extras) into distance,
// mean speed and spent calories for the three supported training kinds.
package tracker

const (
	lenStep = 0.65 // meters per step
	mInKm   = 1000
	minInH  = 60

	swimmingLenStep = 1.38 // meters per stroke
)

// Training is one recorded workout session. Every kind reports distance,
// mean speed and calories; the calorie formula is what tells the kinds
// apart, so there is no default for it — only the concrete kinds below
// satisfy this interface.
type Training interface {
	// Distance returns the covered distance in km.
	Distance() float64
	// MeanSpeed returns the mean speed in km/h.
	MeanSpeed() float64
	// SpentCalories returns the energy spent in kcal.
	SpentCalories() float64
	// TrainingInfo gathers the computed values into an InfoMessage.
	TrainingInfo() InfoMessage
}

// training holds the raw inputs every kind shares. It deliberately does
// not implement SpentCalories, so it cannot be used as a Training on its
// own.
type training struct {
	Action   int     // steps or strokes counted by the sensor
	Duration float64 // hours, assumed positive
	Weight   float64 // kg
}

func (t training) Distance() float64 {
	return float64(t.Action) * lenStep / mInKm
}

func (t training) MeanSpeed() float64 {
	return t.Distance() / t.Duration
}

// infoFor builds the summary through the Training interface so each kind
// contributes its own distance, speed and calorie overrides.
func infoFor(kind string, t Training, duration float64) InfoMessage {
	return InfoMessage{
		TrainingType: kind,
		Duration:     duration,
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}

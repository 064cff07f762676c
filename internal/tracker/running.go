package tracker

const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20
)

// Running is a run recorded as a step count.
type Running struct {
	training
}

func NewRunning(action int, duration, weight float64) Running {
	return Running{training{Action: action, Duration: duration, Weight: weight}}
}

func (r Running) SpentCalories() float64 {
	speed := r.MeanSpeed()
	return (runningCaloriesMeanSpeedMultiplier*speed - runningCaloriesMeanSpeedShift) *
		r.Weight / mInKm * (r.Duration * minInH)
}

func (r Running) TrainingInfo() InfoMessage {
	return infoFor("Running", r, r.Duration)
}

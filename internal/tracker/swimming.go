package tracker

const (
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Swimming is a swim recorded as a stroke count plus pool geometry.
// Distance comes from strokes, speed from pool length and lap count —
// two unrelated sensors, which is why the speed override below ignores
// Distance entirely.
type Swimming struct {
	training
	LengthPool float64 // meters
	CountPool  int     // full pool lengths swum
}

func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) Swimming {
	return Swimming{
		training:   training{Action: action, Duration: duration, Weight: weight},
		LengthPool: lengthPool,
		CountPool:  countPool,
	}
}

func (s Swimming) Distance() float64 {
	return float64(s.Action) * swimmingLenStep / mInKm
}

func (s Swimming) MeanSpeed() float64 {
	return s.LengthPool * float64(s.CountPool) / mInKm / s.Duration
}

func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) *
		swimmingCaloriesWeightMultiplier * s.Weight
}

func (s Swimming) TrainingInfo() InfoMessage {
	return infoFor("Swimming", s, s.Duration)
}

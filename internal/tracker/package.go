package tracker

import (
	"errors"
	"fmt"
	"math"
)

// Training codes understood by ReadPackage. The set is closed: there is
// no registration mechanism for further kinds.
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

var (
	// ErrUnknownTrainingType means the package carried a code outside the
	// closed set above.
	ErrUnknownTrainingType = errors.New("unknown training type")
	// ErrMalformedPackage means the data slice does not fit the selected
	// kind: wrong number of values, or a fractional value where the kind
	// counts whole units.
	ErrMalformedPackage = errors.New("malformed sensor package")
)

// ReadPackage decodes one sensor package into the matching Training.
// Values are positional: SWM wants (strokes, hours, kg, pool m, pool
// count), RUN wants (steps, hours, kg), WLK wants (steps, hours, kg,
// height cm). On failure nothing is constructed.
func ReadPackage(workoutType string, data []float64) (Training, error) {
	switch workoutType {
	case CodeSwimming:
		if len(data) != 5 {
			return nil, arityErr(workoutType, 5, len(data))
		}
		action, err := wholeUnits(workoutType, "strokes", data[0])
		if err != nil {
			return nil, err
		}
		countPool, err := wholeUnits(workoutType, "pool lengths", data[4])
		if err != nil {
			return nil, err
		}
		return NewSwimming(action, data[1], data[2], data[3], countPool), nil

	case CodeRunning:
		if len(data) != 3 {
			return nil, arityErr(workoutType, 3, len(data))
		}
		action, err := wholeUnits(workoutType, "steps", data[0])
		if err != nil {
			return nil, err
		}
		return NewRunning(action, data[1], data[2]), nil

	case CodeWalking:
		if len(data) != 4 {
			return nil, arityErr(workoutType, 4, len(data))
		}
		action, err := wholeUnits(workoutType, "steps", data[0])
		if err != nil {
			return nil, err
		}
		return NewSportsWalking(action, data[1], data[2], data[3]), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTrainingType, workoutType)
	}
}

func arityErr(workoutType string, want, got int) error {
	return fmt.Errorf("%w: %s takes %d values, got %d", ErrMalformedPackage, workoutType, want, got)
}

// wholeUnits converts a counter value to int, rejecting fractions: the
// sensors count whole steps, strokes and pool lengths.
func wholeUnits(workoutType, field string, v float64) (int, error) {
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %s %s must be a whole number, got %v", ErrMalformedPackage, workoutType, field, v)
	}
	return int(v), nil
}

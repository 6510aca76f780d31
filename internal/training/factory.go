package training

import "strconv"

// ReadPackage builds a workout record from a sensor package: a workout code
// and its readings in positional order.
func ReadPackage(code string, data []float64) (Training, error) {
	kind, err := ParseKind(code)
	if err != nil {
		return nil, err
	}
	return New(kind, data)
}

// New builds a record of the given kind from positional readings.
func New(kind Kind, data []float64) (Training, error) {
	if kind.Code() == "" {
		return nil, &InvalidWorkoutTypeError{Code: strconv.Itoa(int(kind))}
	}
	if want := kind.Arity(); len(data) != want {
		return nil, &ArityMismatchError{Kind: kind, Expected: want, Actual: len(data)}
	}

	switch kind {
	case KindRunning:
		return Running{Action: data[0], Duration: data[1], Weight: data[2]}, nil
	case KindSportsWalking:
		return SportsWalking{Action: data[0], Duration: data[1], Weight: data[2], Height: data[3]}, nil
	case KindSwimming:
		return Swimming{Action: data[0], Duration: data[1], Weight: data[2], LengthPool: data[3], CountPool: data[4]}, nil
	}
	panic("unreachable")
}

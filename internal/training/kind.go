package training

// Kind identifies one of the supported workout types.
type Kind int

const (
	KindRunning Kind = iota
	KindSportsWalking
	KindSwimming
)

// Kinds returns every workout type in catalog order.
func Kinds() []Kind {
	return []Kind{KindSwimming, KindRunning, KindSportsWalking}
}

// ParseKind resolves a sensor workout code (RUN, WLK, SWM) to a Kind.
func ParseKind(code string) (Kind, error) {
	switch code {
	case "RUN":
		return KindRunning, nil
	case "WLK":
		return KindSportsWalking, nil
	case "SWM":
		return KindSwimming, nil
	}
	return 0, &InvalidWorkoutTypeError{Code: code}
}

// Code returns the sensor workout code.
func (k Kind) Code() string {
	switch k {
	case KindRunning:
		return "RUN"
	case KindSportsWalking:
		return "WLK"
	case KindSwimming:
		return "SWM"
	}
	return ""
}

// Name returns the label printed in training summaries.
func (k Kind) Name() string {
	switch k {
	case KindRunning:
		return "Running"
	case KindSportsWalking:
		return "SportsWalking"
	case KindSwimming:
		return "Swimming"
	}
	return "Unknown"
}

// FieldNames lists the record fields in positional order.
func (k Kind) FieldNames() []string {
	switch k {
	case KindRunning:
		return []string{"action", "duration", "weight"}
	case KindSportsWalking:
		return []string{"action", "duration", "weight", "height"}
	case KindSwimming:
		return []string{"action", "duration", "weight", "length_pool", "count_pool"}
	}
	return nil
}

// Arity is the number of readings a sensor package must carry for k.
func (k Kind) Arity() int {
	return len(k.FieldNames())
}

func (k Kind) String() string {
	return k.Name()
}

package training

const (
	swimLenStep     = 1.38
	swimSpeedAdd    = 1.1
	swimCaloriesMul = 2
)

// Swimming is a pool session tracked by stroke count and laps.
type Swimming struct {
	Action     float64
	Duration   float64 // hours
	Weight     float64 // kg
	LengthPool float64 // m
	CountPool  float64
}

// Kind reports the workout type.
func (Swimming) Kind() Kind { return KindSwimming }

// Fields returns the readings in positional order.
func (s Swimming) Fields() []float64 {
	return []float64{s.Action, s.Duration, s.Weight, s.LengthPool, s.CountPool}
}

// DurationH returns the Duration field, in hours.
func (s Swimming) DurationH() float64 { return s.Duration }

// Distance returns the covered distance in km.
func (s Swimming) Distance() float64 {
	return distance(s.Action, swimLenStep)
}

// MeanSpeed is derived from pool length and lap count, not from strokes.
func (s Swimming) MeanSpeed() float64 {
	return s.LengthPool * s.CountPool / MInKm / s.Duration
}

// SpentCalories returns the calories burned.
func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimSpeedAdd) * swimCaloriesMul * s.Weight
}

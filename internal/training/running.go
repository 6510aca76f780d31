package training

const (
	runSpeedMul = 18
	runSpeedAdd = 20
)

// Running is a run tracked by step count.
type Running struct {
	Action   float64
	Duration float64 // hours
	Weight   float64 // kg
}

// Kind reports the workout type.
func (Running) Kind() Kind { return KindRunning }

// Fields returns the readings in positional order.
func (r Running) Fields() []float64 {
	return []float64{r.Action, r.Duration, r.Weight}
}

// DurationH returns the Duration field, in hours.
func (r Running) DurationH() float64 { return r.Duration }

// Distance returns the covered distance in km.
func (r Running) Distance() float64 {
	return distance(r.Action, LenStep)
}

// MeanSpeed returns the average speed in km/h.
func (r Running) MeanSpeed() float64 {
	return r.Distance() / r.Duration
}

// SpentCalories returns the calories burned.
func (r Running) SpentCalories() float64 {
	return (runSpeedMul*r.MeanSpeed() - runSpeedAdd) *
		r.Weight / MInKm *
		r.Duration * MinInH
}

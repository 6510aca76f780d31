package training

import "math"

const (
	walkWeightMul = 0.035
	walkSpeedMul  = 0.029
)

// SportsWalking is a walk tracked by step count, with the walker's height.
type SportsWalking struct {
	Action   float64
	Duration float64 // hours
	Weight   float64 // kg
	Height   float64 // as reported by the sensor, cm
}

// Kind reports the workout type.
func (SportsWalking) Kind() Kind { return KindSportsWalking }

// Fields returns the readings in positional order.
func (w SportsWalking) Fields() []float64 {
	return []float64{w.Action, w.Duration, w.Weight, w.Height}
}

// DurationH returns the Duration field, in hours.
func (w SportsWalking) DurationH() float64 { return w.Duration }

// Distance returns the covered distance in km.
func (w SportsWalking) Distance() float64 {
	return distance(w.Action, LenStep)
}

// MeanSpeed returns the average speed in km/h.
func (w SportsWalking) MeanSpeed() float64 {
	return w.Distance() / w.Duration
}

// SpentCalories floors the speed²/height quotient before applying it.
func (w SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	return (walkWeightMul*w.Weight +
		floorDiv(speed*speed, w.Height)*walkSpeedMul*w.Weight) *
		w.Duration * MinInH
}

// floorDiv is float floor division computed from the remainder, so a/b that
// rounds up to an integer still floors to the one below (1 // 0.1 == 9).
// A zero divisor yields NaN.
func floorDiv(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div--
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}
	fd := math.Floor(div)
	if div-fd > 0.5 {
		fd++
	}
	return fd
}

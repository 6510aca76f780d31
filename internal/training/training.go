// Package training computes distance, mean speed and calories for workouts
// read from raw sensor packages.
package training

const (
	MInKm   = 1000
	MinInH  = 60
	LenStep = 0.65
)

// Training is a single workout record. Every workout type supplies its own
// calorie formula.
type Training interface {
	Kind() Kind
	// Fields returns the record values in positional order.
	Fields() []float64
	DurationH() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
}

// distance converts a count of actions (steps or strokes) into kilometres.
func distance(action, lenStep float64) float64 {
	return action * lenStep / MInKm
}

// ShowTrainingInfo builds the summary for t.
func ShowTrainingInfo(t Training) InfoMessage {
	return InfoMessage{
		TrainingType: t.Kind().Name(),
		Duration:     t.DurationH(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}

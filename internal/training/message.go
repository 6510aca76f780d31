package training

import "fmt"

const messageFormat = "Workout type: %s; " +
	"Duration: %.3f h.; " +
	"Distance: %.3f km; " +
	"Avg speed: %.3f km/h; " +
	"Calories burned: %.3f."

// InfoMessage is the computed summary of one workout.
type InfoMessage struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
}

// Message renders the summary line.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(messageFormat, m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

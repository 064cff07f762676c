package tracker

import "fmt"

// InfoMessage is the computed summary of one training session.
// Built once from a Training, rendered to text, never mutated.
type InfoMessage struct {
	TrainingType string
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

// GetMessage renders the summary line shown to the user. The template,
// punctuation and three-decimal formatting are fixed: consumers compare
// this output byte for byte.
func (m InfoMessage) GetMessage() string {
	return fmt.Sprintf(
		"Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories,
	)
}

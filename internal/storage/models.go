package storage

import "time"

// Session is one computed training summary as stored.
type Session struct {
	ID           int64     `db:"id" json:"id"`
	TrainingType string    `db:"training_type" json:"training_type"`
	Duration     float64   `db:"duration" json:"duration"` // hours
	Distance     float64   `db:"distance" json:"distance"` // km
	Speed        float64   `db:"speed" json:"speed"`       // km/h
	Calories     float64   `db:"calories" json:"calories"` // kcal
	Source       string    `db:"source" json:"source"`     // "sample" or FIT filename
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Totals aggregates stored sessions.
type Totals struct {
	Sessions int     `db:"sessions" json:"sessions"`
	Distance float64 `db:"distance" json:"distance"`
	Calories float64 `db:"calories" json:"calories"`
}

// KindTotals is Totals broken down by training type.
type KindTotals struct {
	TrainingType string  `db:"training_type" json:"training_type"`
	Sessions     int     `db:"sessions" json:"sessions"`
	Distance     float64 `db:"distance" json:"distance"`
	Calories     float64 `db:"calories" json:"calories"`
}

// SessionFilters narrows Sessions listings.
type SessionFilters struct {
	TrainingType string
	Limit        int
	Offset       int
}

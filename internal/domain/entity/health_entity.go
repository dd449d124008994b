package entity

import "time"

// HealthLog is one day's self-reported health metrics.
// Mood and stress are 1-10 scales, sleep in hours, water in liters.
type HealthLog struct {
	ID           string
	UserID       string
	Mood         float64
	SleepHours   float64
	SleepQuality float64
	Stress       float64
	WaterIntake  float64
	Notes        string
	Timestamp    time.Time
}

package entity

import "time"

// HabitEntry is one completion record in a habit's history.
type HabitEntry struct {
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
}

// Habit tracks a recurring behavior.
// Invariants: Streak <= BestStreak; LastCompleted equals the date of the last
// history entry, or nil when history is empty.
type Habit struct {
	ID            string
	UserID        string
	Name          string
	Frequency     string
	Streak        int
	BestStreak    int
	LastCompleted *time.Time
	History       []HabitEntry
	IsActive      bool
	CreatedAt     time.Time
}

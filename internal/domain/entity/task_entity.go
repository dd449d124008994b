package entity

import "time"

// Task is a unit of work, optionally attached to a goal.
type Task struct {
	ID        string
	UserID    string
	GoalID    string // empty when the task is free-standing
	Title     string
	Priority  string
	DueDate   *time.Time
	Completed bool
	CreatedAt time.Time
}

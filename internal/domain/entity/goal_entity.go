package entity

import "time"

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalAbandoned GoalStatus = "abandoned"
)

// Goal is a long-running objective with 0-100 progress.
type Goal struct {
	ID        string
	UserID    string
	Title     string
	Category  string
	Deadline  *time.Time
	Priority  string
	Status    GoalStatus
	Progress  int
	Tasks     []Task
	CreatedAt time.Time
}

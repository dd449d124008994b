package entity

import "time"

// User is the aggregate root of the profile domain. The six score fields are
// owned by the kernel's score aggregator and must never be written by domain
// actions directly.
type User struct {
	ID       string
	Email    string
	Password string
	Name     string

	HealthScore       int
	WealthScore       int
	HabitScore        int
	GoalScore         int
	RelationshipScore int
	LifeScore         int

	CreatedAt time.Time
	UpdatedAt time.Time
}

package entity

import "time"

// Interaction is one logged contact with a relationship.
type Interaction struct {
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
}

// Relationship is a tracked social connection with its own 0-100 health score.
type Relationship struct {
	ID                 string
	UserID             string
	Name               string
	Type               string
	HealthScore        int
	LastInteraction    *time.Time
	InteractionHistory []Interaction
	CreatedAt          time.Time
}

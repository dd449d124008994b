package entity

import "time"

// EventType classifies a life event.
type EventType string

const (
	EventHealth       EventType = "health"
	EventFinancial    EventType = "financial"
	EventHabit        EventType = "habit"
	EventEmotional    EventType = "emotional"
	EventProductivity EventType = "productivity"
	EventSocial       EventType = "social"
	EventSystem       EventType = "system"
)

// ValidEventType reports whether t is a recognized event type.
func ValidEventType(t EventType) bool {
	switch t {
	case EventHealth, EventFinancial, EventHabit, EventEmotional, EventProductivity, EventSocial, EventSystem:
		return true
	}
	return false
}

// Impact is the direction of an event's effect.
type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNegative Impact = "negative"
	ImpactNeutral  Impact = "neutral"
)

// SourceKind names the domain store a life event originated from.
type SourceKind string

const (
	SourceHealthLog    SourceKind = "health_log"
	SourceTransaction  SourceKind = "transaction"
	SourceGoal         SourceKind = "goal"
	SourceHabit        SourceKind = "habit"
	SourceRelationship SourceKind = "relationship"
)

// SourceRef links an event back to the domain record it was generated from.
// The kind determines which rollback rule applies when the event is deleted.
// An event carries at most one source reference.
type SourceRef struct {
	Kind SourceKind `json:"kind"`
	ID   string     `json:"id"`
}

// LifeEvent is an immutable, append-only record of something that happened.
// Events are never edited; deleting one triggers the rollback resolver.
type LifeEvent struct {
	ID          string
	UserID      string
	Type        EventType
	Title       string
	Description string
	Impact      Impact
	Value       float64
	Tags        []string
	Source      *SourceRef
	Timestamp   time.Time
	CreatedAt   time.Time
}

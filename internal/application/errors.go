package application

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserNotFound         = errors.New("user not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrInvalidEventType     = errors.New("invalid event type")
	ErrLogNotFound          = errors.New("health log not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrHabitNotFound        = errors.New("habit not found")
	ErrGoalNotFound         = errors.New("goal not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrRelationshipNotFound = errors.New("relationship not found")
)

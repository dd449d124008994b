package application

import (
	"context"
	"errors"
	"time"

	"github.com/lifeosapp/backend/internal/domain/entity"
	repo "github.com/lifeosapp/backend/internal/domain/repository"
)

// HabitService owns the habit store. Only CompleteHabit records a life event;
// the event's source link is what lets the rollback resolver restore streak
// and history if the event is later deleted.
type HabitService struct {
	Habits repo.HabitRepository
	Kernel *Kernel
}

func NewHabitService(habits repo.HabitRepository, kernel *Kernel) *HabitService {
	return &HabitService{Habits: habits, Kernel: kernel}
}

type CreateHabitInput struct {
	Name      string
	Frequency string
}

func (s *HabitService) CreateHabit(ctx context.Context, userID string, in CreateHabitInput) (*entity.Habit, error) {
	h := &entity.Habit{
		UserID:    userID,
		Name:      in.Name,
		Frequency: in.Frequency,
		IsActive:  true,
		History:   []entity.HabitEntry{},
	}
	if err := s.Habits.Create(ctx, h); err != nil {
		return nil, err
	}
	if _, err := s.Kernel.RecomputeScores(ctx, userID); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *HabitService) ListHabits(ctx context.Context, userID string) ([]entity.Habit, error) {
	return s.Habits.ListByUser(ctx, userID)
}

// CompleteHabit marks the habit done now: streak up (raising best streak if
// exceeded), a history entry appended, and a habit event recorded.
func (s *HabitService) CompleteHabit(ctx context.Context, userID, habitID string) (*entity.Habit, error) {
	h, err := s.Habits.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}
	if h.UserID != userID {
		return nil, ErrHabitNotFound
	}

	now := time.Now().UTC()
	h.LastCompleted = &now
	h.Streak++
	if h.Streak > h.BestStreak {
		h.BestStreak = h.Streak
	}
	h.History = append(h.History, entity.HabitEntry{Date: now, Completed: true})
	if err := s.Habits.Update(ctx, h); err != nil {
		return nil, err
	}

	if _, err := s.Kernel.RecordEvent(ctx, userID, EventInput{
		Type:   entity.EventHabit,
		Title:  "Completed habit: " + h.Name,
		Impact: entity.ImpactPositive,
		Value:  1,
		Source: &entity.SourceRef{Kind: entity.SourceHabit, ID: h.ID},
	}); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *HabitService) DeleteHabit(ctx context.Context, userID, habitID string) error {
	h, err := s.Habits.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrHabitNotFound
		}
		return err
	}
	if h.UserID != userID {
		return ErrHabitNotFound
	}
	if err := s.Habits.Delete(ctx, habitID); err != nil {
		return err
	}
	_, err = s.Kernel.RecomputeScores(ctx, userID)
	return err
}

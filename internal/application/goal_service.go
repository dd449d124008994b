package application

import (
	"context"
	"errors"
	"time"

	"github.com/lifeosapp/backend/internal/domain/entity"
	repo "github.com/lifeosapp/backend/internal/domain/repository"
)

// GoalService owns goals and their attached tasks.
type GoalService struct {
	Goals  repo.GoalRepository
	Tasks  repo.TaskRepository
	Kernel *Kernel
}

func NewGoalService(goals repo.GoalRepository, tasks repo.TaskRepository, kernel *Kernel) *GoalService {
	return &GoalService{Goals: goals, Tasks: tasks, Kernel: kernel}
}

type CreateGoalInput struct {
	Title    string
	Category string
	Deadline *time.Time
	Priority string
}

func (s *GoalService) CreateGoal(ctx context.Context, userID string, in CreateGoalInput) (*entity.Goal, error) {
	g := &entity.Goal{
		UserID:   userID,
		Title:    in.Title,
		Category: in.Category,
		Deadline: in.Deadline,
		Priority: in.Priority,
		Status:   entity.GoalActive,
	}
	if err := s.Goals.Create(ctx, g); err != nil {
		return nil, err
	}
	if _, err := s.Kernel.RecomputeScores(ctx, userID); err != nil {
		return nil, err
	}
	return g, nil
}

// ListGoals returns the user's goals with their tasks attached.
func (s *GoalService) ListGoals(ctx context.Context, userID string) ([]entity.Goal, error) {
	goals, err := s.Goals.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range goals {
		tasks, err := s.Tasks.ListByGoal(ctx, goals[i].ID)
		if err != nil {
			return nil, err
		}
		goals[i].Tasks = tasks
	}
	return goals, nil
}

// UpdateProgress sets the goal's progress. Reaching 100 completes the goal
// and records a productivity event linked to it; anything less just
// recomputes scores.
func (s *GoalService) UpdateProgress(ctx context.Context, userID, goalID string, progress int) (*entity.Goal, error) {
	g, err := s.Goals.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	if g.UserID != userID {
		return nil, ErrGoalNotFound
	}

	g.Progress = clamp(progress, 0, 100)
	if g.Progress == 100 {
		g.Status = entity.GoalCompleted
	}
	if err := s.Goals.Update(ctx, g); err != nil {
		return nil, err
	}

	if g.Progress == 100 {
		if _, err := s.Kernel.RecordEvent(ctx, userID, EventInput{
			Type:   entity.EventProductivity,
			Title:  "Achieved Goal: " + g.Title,
			Impact: entity.ImpactPositive,
			Value:  10,
			Source: &entity.SourceRef{Kind: entity.SourceGoal, ID: g.ID},
		}); err != nil {
			return nil, err
		}
	} else if _, err := s.Kernel.RecomputeScores(ctx, userID); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *GoalService) DeleteGoal(ctx context.Context, userID, goalID string) error {
	g, err := s.Goals.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrGoalNotFound
		}
		return err
	}
	if g.UserID != userID {
		return ErrGoalNotFound
	}
	if err := s.Goals.Delete(ctx, goalID); err != nil {
		return err
	}
	_, err = s.Kernel.RecomputeScores(ctx, userID)
	return err
}

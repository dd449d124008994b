package application

import (
	"context"
	"errors"
	"time"

	"github.com/lifeosapp/backend/internal/domain/entity"
	repo "github.com/lifeosapp/backend/internal/domain/repository"
)

// TaskService owns tasks. A task attached to a goal drives that goal's
// progress: toggling completion resets the goal's progress to the completed
// fraction of its tasks and recomputes scores. Free-standing tasks feed no
// score.
type TaskService struct {
	Tasks  repo.TaskRepository
	Goals  repo.GoalRepository
	Kernel *Kernel
}

func NewTaskService(tasks repo.TaskRepository, goals repo.GoalRepository, kernel *Kernel) *TaskService {
	return &TaskService{Tasks: tasks, Goals: goals, Kernel: kernel}
}

type CreateTaskInput struct {
	Title    string
	GoalID   string
	Priority string
	DueDate  *time.Time
}

func (s *TaskService) CreateTask(ctx context.Context, userID string, in CreateTaskInput) (*entity.Task, error) {
	priority := in.Priority
	if priority == "" {
		priority = "medium"
	}
	t := &entity.Task{
		UserID:   userID,
		GoalID:   in.GoalID,
		Title:    in.Title,
		Priority: priority,
		DueDate:  in.DueDate,
	}
	if err := s.Tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]entity.Task, error) {
	return s.Tasks.ListByUser(ctx, userID)
}

func (s *TaskService) ToggleTask(ctx context.Context, userID, taskID string) (*entity.Task, error) {
	t, err := s.Tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	if t.UserID != userID {
		return nil, ErrTaskNotFound
	}
	t.Completed = !t.Completed
	if err := s.Tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	if t.GoalID != "" {
		if err := s.syncGoalProgress(ctx, t.GoalID); err != nil {
			return nil, err
		}
		if _, err := s.Kernel.RecomputeScores(ctx, userID); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// syncGoalProgress resets the goal's progress to the completed fraction of
// its tasks. A goal that has disappeared under the task is not an error.
func (s *TaskService) syncGoalProgress(ctx context.Context, goalID string) error {
	g, err := s.Goals.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil
		}
		return err
	}
	tasks, err := s.Tasks.ListByGoal(ctx, goalID)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		g.Progress = 0
	} else {
		completed := 0
		for _, t := range tasks {
			if t.Completed {
				completed++
			}
		}
		g.Progress = round(float64(completed) / float64(len(tasks)) * 100)
	}
	return s.Goals.Update(ctx, g)
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	t, err := s.Tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrTaskNotFound
		}
		return err
	}
	if t.UserID != userID {
		return ErrTaskNotFound
	}
	if err := s.Tasks.Delete(ctx, taskID); err != nil {
		return err
	}
	if t.GoalID != "" {
		if err := s.syncGoalProgress(ctx, t.GoalID); err != nil {
			return err
		}
		if _, err := s.Kernel.RecomputeScores(ctx, userID); err != nil {
			return err
		}
	}
	return nil
}

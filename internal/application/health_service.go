package application

import (
	"context"
	"errors"
	"time"

	"github.com/lifeosapp/backend/internal/domain/entity"
	repo "github.com/lifeosapp/backend/internal/domain/repository"
)

// HealthService owns the health log store. Creating a log also records a
// health life event through the kernel.
type HealthService struct {
	Logs   repo.HealthLogRepository
	Kernel *Kernel
}

func NewHealthService(logs repo.HealthLogRepository, kernel *Kernel) *HealthService {
	return &HealthService{Logs: logs, Kernel: kernel}
}

type CreateHealthLogInput struct {
	Mood         float64
	SleepHours   float64
	SleepQuality float64
	Stress       float64
	WaterIntake  float64
	Notes        string
}

func (s *HealthService) CreateLog(ctx context.Context, userID string, in CreateHealthLogInput) (*entity.HealthLog, error) {
	log := &entity.HealthLog{
		UserID:       userID,
		Mood:         in.Mood,
		SleepHours:   in.SleepHours,
		SleepQuality: in.SleepQuality,
		Stress:       in.Stress,
		WaterIntake:  in.WaterIntake,
		Notes:        in.Notes,
		Timestamp:    time.Now().UTC(),
	}
	if err := s.Logs.Create(ctx, log); err != nil {
		return nil, err
	}

	// The event value averages the day's metrics onto a 0-100 scale.
	value := float64(round((in.Mood*10 + in.SleepHours*10 + (100 - in.Stress*10) + in.WaterIntake*20) / 4))
	impact := entity.ImpactNeutral
	if value > 50 {
		impact = entity.ImpactPositive
	}
	if _, err := s.Kernel.RecordEvent(ctx, userID, EventInput{
		Type:   entity.EventHealth,
		Title:  "Daily Health Sync",
		Impact: impact,
		Value:  value,
		Source: &entity.SourceRef{Kind: entity.SourceHealthLog, ID: log.ID},
	}); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *HealthService) ListLogs(ctx context.Context, userID string) ([]entity.HealthLog, error) {
	return s.Logs.ListByUser(ctx, userID)
}

// DeleteLog removes a health log directly (not through an event); scores are
// recomputed from the remaining logs.
func (s *HealthService) DeleteLog(ctx context.Context, userID, logID string) error {
	log, err := s.Logs.GetByID(ctx, logID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrLogNotFound
		}
		return err
	}
	if log.UserID != userID {
		return ErrLogNotFound
	}
	if err := s.Logs.Delete(ctx, logID); err != nil {
		return err
	}
	_, err = s.Kernel.RecomputeScores(ctx, userID)
	return err
}

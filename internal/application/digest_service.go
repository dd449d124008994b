package application

import (
	"context"
	"errors"

	repo "github.com/lifeosapp/backend/internal/domain/repository"
	"github.com/lifeosapp/backend/pkg/helpers"
	"github.com/lifeosapp/backend/pkg/mailer"
)

// DigestService queues life-score digest emails. The digest worker consumes
// the queue and delivers via Mailgun.
type DigestService struct {
	Users  repo.UserRepository
	Kernel *Kernel
	Queue  *helpers.RabbitPublisher
}

func NewDigestService(users repo.UserRepository, kernel *Kernel, queue *helpers.RabbitPublisher) *DigestService {
	return &DigestService{Users: users, Kernel: kernel, Queue: queue}
}

// QueueDigest recomputes the user's scores and enqueues a digest job with the
// fresh ScoreSet.
func (s *DigestService) QueueDigest(ctx context.Context, userID string) error {
	if s.Queue == nil {
		return errors.New("digest queue not configured")
	}
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	set, err := s.Kernel.RecomputeScores(ctx, userID)
	if err != nil {
		return err
	}
	if set == nil {
		// Profile vanished between the two reads; nothing to report.
		return ErrUserNotFound
	}

	job := mailer.DigestJob{
		To:     u.Email,
		Name:   u.Name,
		Scores: *set,
	}
	return s.Queue.PublishJSON(ctx, job)
}

package application

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/lifeosapp/backend/internal/domain/entity"
	repo "github.com/lifeosapp/backend/internal/domain/repository"
	"github.com/lifeosapp/backend/pkg/helpers"
)

// Stores bundles the per-domain record stores the kernel reads and writes.
type Stores struct {
	Users         repo.UserRepository
	Events        repo.EventRepository
	HealthLogs    repo.HealthLogRepository
	Transactions  repo.TransactionRepository
	Habits        repo.HabitRepository
	Goals         repo.GoalRepository
	Tasks         repo.TaskRepository
	Relationships repo.RelationshipRepository
}

// Kernel is the life-tracking engine: it appends life events, recomputes the
// six profile scores from live domain state, and rolls back domain side
// effects when an event is deleted. It holds no per-user state beyond the
// mutexes that serialize recomputation, so one instance serves all requests.
type Kernel struct {
	Stores        Stores
	Redis         *redis.Client
	Logger        *logrus.Logger
	ES            *elasticsearch.Client
	ESEventsIndex string

	locks sync.Map // userID -> *sync.Mutex
}

func NewKernel(st Stores, rdb *redis.Client, logger *logrus.Logger, es *elasticsearch.Client, esEventsIndex string) *Kernel {
	return &Kernel{
		Stores:        st,
		Redis:         rdb,
		Logger:        logger,
		ES:            es,
		ESEventsIndex: esEventsIndex,
	}
}

// EventInput describes a life event to append. Callers validate their own
// domain payloads; the kernel only rejects unrecognized types.
type EventInput struct {
	Type        entity.EventType
	Title       string
	Description string
	Impact      entity.Impact
	Value       float64
	Tags        []string
	Source      *entity.SourceRef
}

func scoresCacheKey(userID string) string {
	return "user:scores:" + userID
}

// RecordEvent appends a life event for the user and synchronously recomputes
// their scores, so a profile read immediately after return observes the new
// values. The event is returned even when recomputation fails: the append is
// committed and scores heal on the next recompute from any trigger.
func (k *Kernel) RecordEvent(ctx context.Context, userID string, in EventInput) (*entity.LifeEvent, error) {
	if !entity.ValidEventType(in.Type) {
		return nil, ErrInvalidEventType
	}
	impact := in.Impact
	if impact == "" {
		impact = entity.ImpactNeutral
	}
	ev := &entity.LifeEvent{
		UserID:      userID,
		Type:        in.Type,
		Title:       in.Title,
		Description: in.Description,
		Impact:      impact,
		Value:       in.Value,
		Tags:        in.Tags,
		Source:      in.Source,
		Timestamp:   time.Now().UTC(),
	}
	if err := k.Stores.Events.Create(ctx, ev); err != nil {
		return nil, err
	}
	_ = k.indexEvent(ctx, ev)

	set, err := k.RecomputeScores(ctx, userID)
	if err != nil {
		return ev, err
	}
	if set == nil && k.Logger != nil {
		// The event now exists for a user with no profile; scores will not
		// reflect it until the profile exists.
		k.Logger.WithFields(logrus.Fields{"user_id": userID, "event_id": ev.ID}).
			Warn("event recorded for unknown user; score recompute skipped")
	}
	return ev, nil
}

// RecomputeScores derives all six scores from current domain store state and
// writes them onto the user profile in one update. Recomputation is
// serialized per user so concurrent calls never interleave partial score
// writes; the last full ScoreSet wins. A missing profile is a no-op and
// returns (nil, nil).
func (k *Kernel) RecomputeScores(ctx context.Context, userID string) (*entity.ScoreSet, error) {
	mu := k.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	if _, err := k.Stores.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			if k.Logger != nil {
				k.Logger.WithField("user_id", userID).Debug("recompute skipped: no profile")
			}
			return nil, nil
		}
		return nil, err
	}

	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.HealthLogs, err = k.Stores.HealthLogs.ListRecent(gctx, userID, healthSampleSize)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Transactions, err = k.Stores.Transactions.ListByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Habits, err = k.Stores.Habits.ListActive(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Goals, err = k.Stores.Goals.ListScorable(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Relationships, err = k.Stores.Relationships.ListByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	set := ComputeScores(snap, time.Now())
	if err := k.Stores.Users.UpdateScores(ctx, userID, set); err != nil {
		return nil, err
	}

	if k.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, k.Redis, scoresCacheKey(userID), set, 24*time.Hour); err != nil && k.Logger != nil {
			k.Logger.WithError(err).WithField("user_id", userID).Warn("score cache write failed")
		}
	}
	return &set, nil
}

// CachedScores returns the last cached ScoreSet, or nil on a cache miss.
func (k *Kernel) CachedScores(ctx context.Context, userID string) (*entity.ScoreSet, error) {
	if k.Redis == nil {
		return nil, nil
	}
	var set entity.ScoreSet
	ok, err := helpers.RedisGetJSON(ctx, k.Redis, scoresCacheKey(userID), &set)
	if err != nil || !ok {
		return nil, err
	}
	return &set, nil
}

// DeleteEvent removes a life event from the user's timeline, first undoing
// the domain side effect the event represents. Rollback runs strictly before
// the event row is removed: deletes are hard, so there is no second chance to
// read the source link. A rollback target that is already gone is skipped
// silently; the net state is what rollback would have produced anyway.
func (k *Kernel) DeleteEvent(ctx context.Context, userID, eventID string) error {
	ev, err := k.Stores.Events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	if ev.UserID != userID {
		return ErrEventNotFound
	}

	if ev.Source != nil {
		if err := k.rollback(ctx, ev.Source); err != nil {
			return err
		}
	}

	if err := k.Stores.Events.Delete(ctx, ev.ID); err != nil {
		return err
	}
	_ = k.deleteEventIndex(ctx, ev.ID)

	_, err = k.RecomputeScores(ctx, userID)
	return err
}

// rollback applies the compensating mutation for one source link.
func (k *Kernel) rollback(ctx context.Context, src *entity.SourceRef) error {
	switch src.Kind {
	case entity.SourceHealthLog:
		if err := k.Stores.HealthLogs.Delete(ctx, src.ID); err != nil && !errors.Is(err, repo.ErrNotFound) {
			return err
		}
	case entity.SourceTransaction:
		if err := k.Stores.Transactions.Delete(ctx, src.ID); err != nil && !errors.Is(err, repo.ErrNotFound) {
			return err
		}
	case entity.SourceGoal:
		g, err := k.Stores.Goals.GetByID(ctx, src.ID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil
			}
			return err
		}
		// No prior-progress snapshot is kept, so an achieved goal rolls back
		// to a fixed "just short of complete" state.
		g.Status = entity.GoalActive
		g.Progress = 90
		return k.Stores.Goals.Update(ctx, g)
	case entity.SourceHabit:
		h, err := k.Stores.Habits.GetByID(ctx, src.ID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil
			}
			return err
		}
		if len(h.History) == 0 {
			return nil
		}
		h.History = h.History[:len(h.History)-1]
		if h.Streak > 0 {
			h.Streak--
		}
		if len(h.History) > 0 {
			last := h.History[len(h.History)-1].Date
			h.LastCompleted = &last
		} else {
			h.LastCompleted = nil
		}
		// BestStreak stays: a rollback does not erase a best already achieved.
		return k.Stores.Habits.Update(ctx, h)
	case entity.SourceRelationship:
		// Relationship events carry no undoable side effect.
	default:
		if k.Logger != nil {
			k.Logger.WithField("source_kind", string(src.Kind)).Warn("unknown event source kind; rollback skipped")
		}
	}
	return nil
}

// PurgeAllUserData deletes every record the user owns across all domain
// stores and the event log, then recomputes scores to zero. This is a full
// reset: per-event rollback rules are bypassed because there is nothing left
// to roll back to.
func (k *Kernel) PurgeAllUserData(ctx context.Context, userID string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return k.Stores.Events.DeleteByUser(gctx, userID) })
	g.Go(func() error { return k.Stores.HealthLogs.DeleteByUser(gctx, userID) })
	g.Go(func() error { return k.Stores.Transactions.DeleteByUser(gctx, userID) })
	g.Go(func() error { return k.Stores.Habits.DeleteByUser(gctx, userID) })
	g.Go(func() error { return k.Stores.Goals.DeleteByUser(gctx, userID) })
	g.Go(func() error { return k.Stores.Tasks.DeleteByUser(gctx, userID) })
	g.Go(func() error { return k.Stores.Relationships.DeleteByUser(gctx, userID) })
	if err := g.Wait(); err != nil {
		return err
	}
	_ = k.purgeEventIndex(ctx, userID)

	_, err := k.RecomputeScores(ctx, userID)
	return err
}

// ListEvents returns the user's timeline, newest first.
func (k *Kernel) ListEvents(ctx context.Context, userID string) ([]entity.LifeEvent, error) {
	return k.Stores.Events.ListByUser(ctx, userID)
}

func (k *Kernel) userLock(userID string) *sync.Mutex {
	v, _ := k.locks.LoadOrStore(userID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

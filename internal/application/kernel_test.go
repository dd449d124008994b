package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeosapp/backend/internal/domain/entity"
	repo "github.com/lifeosapp/backend/internal/domain/repository"
)

// In-memory stores backing kernel tests. Not safe for concurrent use beyond
// what the kernel itself serializes.

type memUsers struct{ m map[string]*entity.User }

func (s *memUsers) Create(_ context.Context, u *entity.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	cp := *u
	s.m[u.ID] = &cp
	return nil
}

func (s *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := s.m[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range s.m {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (s *memUsers) Update(_ context.Context, u *entity.User) error {
	if _, ok := s.m[u.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *u
	s.m[u.ID] = &cp
	return nil
}

func (s *memUsers) UpdateScores(_ context.Context, userID string, set entity.ScoreSet) error {
	u, ok := s.m[userID]
	if !ok {
		return repo.ErrNotFound
	}
	u.HealthScore = set.Health
	u.WealthScore = set.Wealth
	u.HabitScore = set.Habit
	u.GoalScore = set.Goal
	u.RelationshipScore = set.Relationship
	u.LifeScore = set.Life
	return nil
}

type memEvents struct{ m map[string]*entity.LifeEvent }

func (s *memEvents) Create(_ context.Context, e *entity.LifeEvent) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	cp := *e
	s.m[e.ID] = &cp
	return nil
}

func (s *memEvents) GetByID(_ context.Context, id string) (*entity.LifeEvent, error) {
	e, ok := s.m[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (s *memEvents) ListByUser(_ context.Context, userID string) ([]entity.LifeEvent, error) {
	out := make([]entity.LifeEvent, 0)
	for _, e := range s.m {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (s *memEvents) Delete(_ context.Context, id string) error {
	if _, ok := s.m[id]; !ok {
		return repo.ErrNotFound
	}
	delete(s.m, id)
	return nil
}

func (s *memEvents) DeleteByUser(_ context.Context, userID string) error {
	for id, e := range s.m {
		if e.UserID == userID {
			delete(s.m, id)
		}
	}
	return nil
}

type memHealthLogs struct{ m map[string]*entity.HealthLog }

func (s *memHealthLogs) Create(_ context.Context, l *entity.HealthLog) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	cp := *l
	s.m[l.ID] = &cp
	return nil
}

func (s *memHealthLogs) GetByID(_ context.Context, id string) (*entity.HealthLog, error) {
	l, ok := s.m[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (s *memHealthLogs) ListByUser(_ context.Context, userID string) ([]entity.HealthLog, error) {
	out := make([]entity.HealthLog, 0)
	for _, l := range s.m {
		if l.UserID == userID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (s *memHealthLogs) ListRecent(ctx context.Context, userID string, limit int) ([]entity.HealthLog, error) {
	logs, _ := s.ListByUser(ctx, userID)
	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}
	return logs, nil
}

func (s *memHealthLogs) Delete(_ context.Context, id string) error {
	if _, ok := s.m[id]; !ok {
		return repo.ErrNotFound
	}
	delete(s.m, id)
	return nil
}

func (s *memHealthLogs) DeleteByUser(_ context.Context, userID string) error {
	for id, l := range s.m {
		if l.UserID == userID {
			delete(s.m, id)
		}
	}
	return nil
}

type memTransactions struct{ m map[string]*entity.Transaction }

func (s *memTransactions) Create(_ context.Context, t *entity.Transaction) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	cp := *t
	s.m[t.ID] = &cp
	return nil
}

func (s *memTransactions) GetByID(_ context.Context, id string) (*entity.Transaction, error) {
	t, ok := s.m[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (s *memTransactions) ListByUser(_ context.Context, userID string) ([]entity.Transaction, error) {
	out := make([]entity.Transaction, 0)
	for _, t := range s.m {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (s *memTransactions) Delete(_ context.Context, id string) error {
	if _, ok := s.m[id]; !ok {
		return repo.ErrNotFound
	}
	delete(s.m, id)
	return nil
}

func (s *memTransactions) DeleteByUser(_ context.Context, userID string) error {
	for id, t := range s.m {
		if t.UserID == userID {
			delete(s.m, id)
		}
	}
	return nil
}

type memHabits struct{ m map[string]*entity.Habit }

func (s *memHabits) Create(_ context.Context, h *entity.Habit) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	cp := *h
	s.m[h.ID] = &cp
	return nil
}

func (s *memHabits) GetByID(_ context.Context, id string) (*entity.Habit, error) {
	h, ok := s.m[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *h
	cp.History = append([]entity.HabitEntry(nil), h.History...)
	return &cp, nil
}

func (s *memHabits) ListByUser(_ context.Context, userID string) ([]entity.Habit, error) {
	out := make([]entity.Habit, 0)
	for _, h := range s.m {
		if h.UserID == userID {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (s *memHabits) ListActive(ctx context.Context, userID string) ([]entity.Habit, error) {
	all, _ := s.ListByUser(ctx, userID)
	out := make([]entity.Habit, 0, len(all))
	for _, h := range all {
		if h.IsActive {
			out = append(out, h)
		}
	}
	return out, nil
}

func (s *memHabits) Update(_ context.Context, h *entity.Habit) error {
	if _, ok := s.m[h.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *h
	cp.History = append([]entity.HabitEntry(nil), h.History...)
	s.m[h.ID] = &cp
	return nil
}

func (s *memHabits) Delete(_ context.Context, id string) error {
	if _, ok := s.m[id]; !ok {
		return repo.ErrNotFound
	}
	delete(s.m, id)
	return nil
}

func (s *memHabits) DeleteByUser(_ context.Context, userID string) error {
	for id, h := range s.m {
		if h.UserID == userID {
			delete(s.m, id)
		}
	}
	return nil
}

type memGoals struct{ m map[string]*entity.Goal }

func (s *memGoals) Create(_ context.Context, g *entity.Goal) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	cp := *g
	s.m[g.ID] = &cp
	return nil
}

func (s *memGoals) GetByID(_ context.Context, id string) (*entity.Goal, error) {
	g, ok := s.m[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (s *memGoals) ListByUser(_ context.Context, userID string) ([]entity.Goal, error) {
	out := make([]entity.Goal, 0)
	for _, g := range s.m {
		if g.UserID == userID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (s *memGoals) ListScorable(ctx context.Context, userID string) ([]entity.Goal, error) {
	all, _ := s.ListByUser(ctx, userID)
	out := make([]entity.Goal, 0, len(all))
	for _, g := range all {
		if g.Status != entity.GoalAbandoned {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *memGoals) Update(_ context.Context, g *entity.Goal) error {
	if _, ok := s.m[g.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *g
	s.m[g.ID] = &cp
	return nil
}

func (s *memGoals) Delete(_ context.Context, id string) error {
	if _, ok := s.m[id]; !ok {
		return repo.ErrNotFound
	}
	delete(s.m, id)
	return nil
}

func (s *memGoals) DeleteByUser(_ context.Context, userID string) error {
	for id, g := range s.m {
		if g.UserID == userID {
			delete(s.m, id)
		}
	}
	return nil
}

type memTasks struct{ m map[string]*entity.Task }

func (s *memTasks) Create(_ context.Context, t *entity.Task) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	cp := *t
	s.m[t.ID] = &cp
	return nil
}

func (s *memTasks) GetByID(_ context.Context, id string) (*entity.Task, error) {
	t, ok := s.m[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (s *memTasks) ListByUser(_ context.Context, userID string) ([]entity.Task, error) {
	out := make([]entity.Task, 0)
	for _, t := range s.m {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (s *memTasks) ListByGoal(_ context.Context, goalID string) ([]entity.Task, error) {
	out := make([]entity.Task, 0)
	for _, t := range s.m {
		if t.GoalID == goalID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (s *memTasks) Update(_ context.Context, t *entity.Task) error {
	if _, ok := s.m[t.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *t
	s.m[t.ID] = &cp
	return nil
}

func (s *memTasks) Delete(_ context.Context, id string) error {
	if _, ok := s.m[id]; !ok {
		return repo.ErrNotFound
	}
	delete(s.m, id)
	return nil
}

func (s *memTasks) DeleteByUser(_ context.Context, userID string) error {
	for id, t := range s.m {
		if t.UserID == userID {
			delete(s.m, id)
		}
	}
	return nil
}

type memRelationships struct{ m map[string]*entity.Relationship }

func (s *memRelationships) Create(_ context.Context, r *entity.Relationship) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	cp := *r
	s.m[r.ID] = &cp
	return nil
}

func (s *memRelationships) GetByID(_ context.Context, id string) (*entity.Relationship, error) {
	r, ok := s.m[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *memRelationships) ListByUser(_ context.Context, userID string) ([]entity.Relationship, error) {
	out := make([]entity.Relationship, 0)
	for _, r := range s.m {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *memRelationships) Update(_ context.Context, r *entity.Relationship) error {
	if _, ok := s.m[r.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *r
	s.m[r.ID] = &cp
	return nil
}

func (s *memRelationships) Delete(_ context.Context, id string) error {
	if _, ok := s.m[id]; !ok {
		return repo.ErrNotFound
	}
	delete(s.m, id)
	return nil
}

func (s *memRelationships) DeleteByUser(_ context.Context, userID string) error {
	for id, r := range s.m {
		if r.UserID == userID {
			delete(s.m, id)
		}
	}
	return nil
}

func newMemStores() Stores {
	return Stores{
		Users:         &memUsers{m: map[string]*entity.User{}},
		Events:        &memEvents{m: map[string]*entity.LifeEvent{}},
		HealthLogs:    &memHealthLogs{m: map[string]*entity.HealthLog{}},
		Transactions:  &memTransactions{m: map[string]*entity.Transaction{}},
		Habits:        &memHabits{m: map[string]*entity.Habit{}},
		Goals:         &memGoals{m: map[string]*entity.Goal{}},
		Tasks:         &memTasks{m: map[string]*entity.Task{}},
		Relationships: &memRelationships{m: map[string]*entity.Relationship{}},
	}
}

func newTestKernel(t *testing.T) (*Kernel, Stores, string) {
	t.Helper()
	st := newMemStores()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	k := NewKernel(st, nil, logger, nil, "")

	u := &entity.User{Email: "t@example.com", Name: "T"}
	require.NoError(t, st.Users.Create(context.Background(), u))
	return k, st, u.ID
}

func TestRecordEventRejectsUnknownType(t *testing.T) {
	k, _, uid := newTestKernel(t)
	_, err := k.RecordEvent(context.Background(), uid, EventInput{Type: "astral", Title: "x"})
	assert.ErrorIs(t, err, ErrInvalidEventType)
}

func TestRecordEventDefaultsToNeutralImpact(t *testing.T) {
	k, _, uid := newTestKernel(t)
	ev, err := k.RecordEvent(context.Background(), uid, EventInput{Type: entity.EventSystem, Title: "note"})
	require.NoError(t, err)
	assert.Equal(t, entity.ImpactNeutral, ev.Impact)
	assert.NotEmpty(t, ev.ID)
}

func TestRecordEventForUnknownUserKeepsEvent(t *testing.T) {
	k, st, _ := newTestKernel(t)
	ev, err := k.RecordEvent(context.Background(), "nobody", EventInput{Type: entity.EventSystem, Title: "orphan"})
	require.NoError(t, err)
	require.NotNil(t, ev)

	got, err := st.Events.GetByID(context.Background(), ev.ID)
	require.NoError(t, err)
	assert.Equal(t, "nobody", got.UserID)
}

func TestRecomputeScoresWritesProfile(t *testing.T) {
	k, st, uid := newTestKernel(t)
	ctx := context.Background()

	require.NoError(t, st.Transactions.Create(ctx, &entity.Transaction{UserID: uid, Type: entity.TransactionIncome, Amount: 1000}))
	require.NoError(t, st.Transactions.Create(ctx, &entity.Transaction{UserID: uid, Type: entity.TransactionExpense, Amount: 400}))

	set, err := k.RecomputeScores(ctx, uid)
	require.NoError(t, err)
	require.NotNil(t, set)
	assert.Equal(t, 60, set.Wealth)

	u, err := st.Users.GetByID(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, 60, u.WealthScore)
	assert.Equal(t, set.Life, u.LifeScore)
}

func TestRecomputeScoresMissingProfileIsNoop(t *testing.T) {
	k, _, _ := newTestKernel(t)
	set, err := k.RecomputeScores(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, set)
}

func TestDeleteEventWrongOwner(t *testing.T) {
	k, st, uid := newTestKernel(t)
	ctx := context.Background()

	other := &entity.User{Email: "o@example.com"}
	require.NoError(t, st.Users.Create(ctx, other))

	ev, err := k.RecordEvent(ctx, uid, EventInput{Type: entity.EventSystem, Title: "mine"})
	require.NoError(t, err)

	err = k.DeleteEvent(ctx, other.ID, ev.ID)
	assert.ErrorIs(t, err, ErrEventNotFound)

	_, err = st.Events.GetByID(ctx, ev.ID)
	assert.NoError(t, err)
}

func TestDeleteEventRemovesHealthLog(t *testing.T) {
	k, st, uid := newTestKernel(t)
	ctx := context.Background()

	log := &entity.HealthLog{UserID: uid, Mood: 7, SleepHours: 8, Stress: 3, WaterIntake: 2}
	require.NoError(t, st.HealthLogs.Create(ctx, log))

	ev, err := k.RecordEvent(ctx, uid, EventInput{
		Type:   entity.EventHealth,
		Title:  "Health log",
		Source: &entity.SourceRef{Kind: entity.SourceHealthLog, ID: log.ID},
	})
	require.NoError(t, err)

	require.NoError(t, k.DeleteEvent(ctx, uid, ev.ID))

	_, err = st.HealthLogs.GetByID(ctx, log.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	_, err = st.Events.GetByID(ctx, ev.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	u, _ := st.Users.GetByID(ctx, uid)
	assert.Equal(t, 0, u.HealthScore)
}

func TestDeleteEventRollsBackHabitCompletion(t *testing.T) {
	k, st, uid := newTestKernel(t)
	ctx := context.Background()

	d1 := time.Date(2026, 3, 13, 9, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	h := &entity.Habit{
		UserID:        uid,
		Name:          "run",
		Streak:        2,
		BestStreak:    5,
		LastCompleted: &d2,
		History: []entity.HabitEntry{
			{Date: d1, Completed: true},
			{Date: d2, Completed: true},
		},
		IsActive: true,
	}
	require.NoError(t, st.Habits.Create(ctx, h))

	ev, err := k.RecordEvent(ctx, uid, EventInput{
		Type:   entity.EventHabit,
		Title:  "Completed: run",
		Value:  1,
		Source: &entity.SourceRef{Kind: entity.SourceHabit, ID: h.ID},
	})
	require.NoError(t, err)

	require.NoError(t, k.DeleteEvent(ctx, uid, ev.ID))

	got, err := st.Habits.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Streak)
	assert.Equal(t, 5, got.BestStreak)
	require.Len(t, got.History, 1)
	require.NotNil(t, got.LastCompleted)
	assert.True(t, got.LastCompleted.Equal(d1))
}

func TestDeleteEventHabitRollbackEmptiesHistory(t *testing.T) {
	k, st, uid := newTestKernel(t)
	ctx := context.Background()

	d := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	h := &entity.Habit{
		UserID:        uid,
		Name:          "meditate",
		Streak:        1,
		BestStreak:    1,
		LastCompleted: &d,
		History:       []entity.HabitEntry{{Date: d, Completed: true}},
		IsActive:      true,
	}
	require.NoError(t, st.Habits.Create(ctx, h))

	ev, err := k.RecordEvent(ctx, uid, EventInput{
		Type:   entity.EventHabit,
		Title:  "Completed: meditate",
		Source: &entity.SourceRef{Kind: entity.SourceHabit, ID: h.ID},
	})
	require.NoError(t, err)
	require.NoError(t, k.DeleteEvent(ctx, uid, ev.ID))

	got, err := st.Habits.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Streak)
	assert.Empty(t, got.History)
	assert.Nil(t, got.LastCompleted)
}

func TestDeleteEventReopensAchievedGoal(t *testing.T) {
	k, st, uid := newTestKernel(t)
	ctx := context.Background()

	g := &entity.Goal{UserID: uid, Title: "ship", Status: entity.GoalCompleted, Progress: 100}
	require.NoError(t, st.Goals.Create(ctx, g))

	ev, err := k.RecordEvent(ctx, uid, EventInput{
		Type:   entity.EventProductivity,
		Title:  "Goal achieved: ship",
		Value:  10,
		Source: &entity.SourceRef{Kind: entity.SourceGoal, ID: g.ID},
	})
	require.NoError(t, err)
	require.NoError(t, k.DeleteEvent(ctx, uid, ev.ID))

	got, err := st.Goals.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.GoalActive, got.Status)
	assert.Equal(t, 90, got.Progress)
}

func TestDeleteEventMissingRollbackTargetIsSkipped(t *testing.T) {
	k, st, uid := newTestKernel(t)
	ctx := context.Background()

	ev, err := k.RecordEvent(ctx, uid, EventInput{
		Type:   entity.EventFinancial,
		Title:  "Expense: rent",
		Source: &entity.SourceRef{Kind: entity.SourceTransaction, ID: uuid.NewString()},
	})
	require.NoError(t, err)

	require.NoError(t, k.DeleteEvent(ctx, uid, ev.ID))
	_, err = st.Events.GetByID(ctx, ev.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestDeleteEventRelationshipHasNoCompensation(t *testing.T) {
	k, st, uid := newTestKernel(t)
	ctx := context.Background()

	r := &entity.Relationship{UserID: uid, Name: "Sam", HealthScore: 70}
	require.NoError(t, st.Relationships.Create(ctx, r))

	ev, err := k.RecordEvent(ctx, uid, EventInput{
		Type:   entity.EventSocial,
		Title:  "Added Sam",
		Value:  5,
		Source: &entity.SourceRef{Kind: entity.SourceRelationship, ID: r.ID},
	})
	require.NoError(t, err)
	require.NoError(t, k.DeleteEvent(ctx, uid, ev.ID))

	// The relationship record itself survives.
	_, err = st.Relationships.GetByID(ctx, r.ID)
	assert.NoError(t, err)
}

func TestPurgeAllUserData(t *testing.T) {
	k, st, uid := newTestKernel(t)
	ctx := context.Background()

	require.NoError(t, st.HealthLogs.Create(ctx, &entity.HealthLog{UserID: uid, Mood: 8}))
	require.NoError(t, st.Transactions.Create(ctx, &entity.Transaction{UserID: uid, Type: entity.TransactionIncome, Amount: 100}))
	require.NoError(t, st.Habits.Create(ctx, &entity.Habit{UserID: uid, Name: "x", IsActive: true}))
	require.NoError(t, st.Goals.Create(ctx, &entity.Goal{UserID: uid, Title: "y", Status: entity.GoalActive, Progress: 50}))
	require.NoError(t, st.Tasks.Create(ctx, &entity.Task{UserID: uid, Title: "z"}))
	require.NoError(t, st.Relationships.Create(ctx, &entity.Relationship{UserID: uid, Name: "w", HealthScore: 50}))
	_, err := k.RecordEvent(ctx, uid, EventInput{Type: entity.EventSystem, Title: "pre-purge"})
	require.NoError(t, err)

	require.NoError(t, k.PurgeAllUserData(ctx, uid))

	events, _ := st.Events.ListByUser(ctx, uid)
	assert.Empty(t, events)
	logs, _ := st.HealthLogs.ListByUser(ctx, uid)
	assert.Empty(t, logs)
	txs, _ := st.Transactions.ListByUser(ctx, uid)
	assert.Empty(t, txs)
	habits, _ := st.Habits.ListByUser(ctx, uid)
	assert.Empty(t, habits)
	goals, _ := st.Goals.ListByUser(ctx, uid)
	assert.Empty(t, goals)
	tasks, _ := st.Tasks.ListByUser(ctx, uid)
	assert.Empty(t, tasks)
	rels, _ := st.Relationships.ListByUser(ctx, uid)
	assert.Empty(t, rels)

	u, err := st.Users.GetByID(ctx, uid)
	require.NoError(t, err)
	assert.Zero(t, u.LifeScore)
	assert.Zero(t, u.HealthScore)
	assert.Zero(t, u.WealthScore)
}

// scoreWrites wraps the user store to record every score write it observes.
type scoreWrites struct {
	*memUsers
	mu     sync.Mutex
	writes []entity.ScoreSet
}

func (s *scoreWrites) UpdateScores(ctx context.Context, userID string, set entity.ScoreSet) error {
	s.mu.Lock()
	s.writes = append(s.writes, set)
	s.mu.Unlock()
	return s.memUsers.UpdateScores(ctx, userID, set)
}

func TestConcurrentRecomputeWritesFullScoreSets(t *testing.T) {
	st := newMemStores()
	users := &scoreWrites{memUsers: st.Users.(*memUsers)}
	st.Users = users

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	k := NewKernel(st, nil, logger, nil, "")
	ctx := context.Background()

	u := &entity.User{Email: "c@example.com", Name: "C"}
	require.NoError(t, users.Create(ctx, u))
	require.NoError(t, st.Transactions.Create(ctx, &entity.Transaction{UserID: u.ID, Type: entity.TransactionIncome, Amount: 1000}))
	require.NoError(t, st.Transactions.Create(ctx, &entity.Transaction{UserID: u.ID, Type: entity.TransactionExpense, Amount: 400}))
	require.NoError(t, st.Goals.Create(ctx, &entity.Goal{UserID: u.ID, Status: entity.GoalActive, Progress: 40}))
	require.NoError(t, st.Goals.Create(ctx, &entity.Goal{UserID: u.ID, Status: entity.GoalActive, Progress: 80}))

	// 60*0.20 (goal) + 60*0.10 (wealth) = 18
	want := entity.ScoreSet{Wealth: 60, Goal: 60, Life: 18}

	const n = 16
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			set, err := k.RecomputeScores(ctx, u.ID)
			assert.NoError(t, err)
			if assert.NotNil(t, set) {
				assert.Equal(t, want, *set)
			}
		}()
	}
	wg.Wait()

	// Every observed write must be the complete set; no partial or mixed
	// states may ever reach the profile.
	users.mu.Lock()
	defer users.mu.Unlock()
	require.Len(t, users.writes, n)
	for _, w := range users.writes {
		assert.Equal(t, want, w)
	}

	final, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, want.Life, final.LifeScore)
	assert.Equal(t, want.Wealth, final.WealthScore)
	assert.Equal(t, want.Goal, final.GoalScore)
}

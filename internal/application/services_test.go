package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeosapp/backend/internal/domain/entity"
)

func eventsBySource(t *testing.T, st Stores, userID string, kind entity.SourceKind) []entity.LifeEvent {
	t.Helper()
	all, err := st.Events.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	out := make([]entity.LifeEvent, 0)
	for _, e := range all {
		if e.Source != nil && e.Source.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func TestCreateHealthLogRecordsEvent(t *testing.T) {
	k, st, uid := newTestKernel(t)
	svc := NewHealthService(st.HealthLogs, k)

	log, err := svc.CreateLog(context.Background(), uid, CreateHealthLogInput{
		Mood: 7, SleepHours: 7.5, Stress: 4, WaterIntake: 2.0,
	})
	require.NoError(t, err)

	events := eventsBySource(t, st, uid, entity.SourceHealthLog)
	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, entity.EventHealth, ev.Type)
	assert.Equal(t, log.ID, ev.Source.ID)
	// (70 + 75 + 60 + 40) / 4 = 61.25 -> 61; above 50 reads as positive
	assert.Equal(t, float64(61), ev.Value)
	assert.Equal(t, entity.ImpactPositive, ev.Impact)
}

func TestCreateHealthLogLowMetricsNeutralImpact(t *testing.T) {
	k, st, uid := newTestKernel(t)
	svc := NewHealthService(st.HealthLogs, k)

	_, err := svc.CreateLog(context.Background(), uid, CreateHealthLogInput{
		Mood: 2, SleepHours: 4, Stress: 9, WaterIntake: 0.5,
	})
	require.NoError(t, err)

	events := eventsBySource(t, st, uid, entity.SourceHealthLog)
	require.Len(t, events, 1)
	assert.Equal(t, entity.ImpactNeutral, events[0].Impact)
}

func TestCreateTransactionRecordsEvent(t *testing.T) {
	k, st, uid := newTestKernel(t)
	svc := NewFinanceService(st.Transactions, k)

	tx, err := svc.CreateTransaction(context.Background(), uid, CreateTransactionInput{
		Type: entity.TransactionIncome, Amount: 2500, Category: "salary",
	})
	require.NoError(t, err)

	events := eventsBySource(t, st, uid, entity.SourceTransaction)
	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, entity.EventFinancial, ev.Type)
	assert.Equal(t, tx.ID, ev.Source.ID)
	assert.Equal(t, 2500.0, ev.Value)
	assert.Equal(t, entity.ImpactPositive, ev.Impact)

	u, _ := st.Users.GetByID(context.Background(), uid)
	assert.Equal(t, 100, u.WealthScore)
}

func TestCompleteHabitThenDeleteEventRestoresHabit(t *testing.T) {
	k, st, uid := newTestKernel(t)
	svc := NewHabitService(st.Habits, k)
	ctx := context.Background()

	h, err := svc.CreateHabit(ctx, uid, CreateHabitInput{Name: "stretch", Frequency: "daily"})
	require.NoError(t, err)

	before, err := st.Habits.GetByID(ctx, h.ID)
	require.NoError(t, err)

	completed, err := svc.CompleteHabit(ctx, uid, h.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, completed.Streak)
	assert.Equal(t, 1, completed.BestStreak)
	require.Len(t, completed.History, 1)

	events := eventsBySource(t, st, uid, entity.SourceHabit)
	require.Len(t, events, 1)

	require.NoError(t, k.DeleteEvent(ctx, uid, events[0].ID))

	after, err := st.Habits.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, before.Streak, after.Streak)
	assert.Equal(t, len(before.History), len(after.History))
	assert.Nil(t, after.LastCompleted)
	// Best streak is a high-water mark and survives the rollback.
	assert.Equal(t, 1, after.BestStreak)
}

func TestGoalReachingFullProgressRecordsAchievement(t *testing.T) {
	k, st, uid := newTestKernel(t)
	svc := NewGoalService(st.Goals, st.Tasks, k)
	ctx := context.Background()

	g, err := svc.CreateGoal(ctx, uid, CreateGoalInput{Title: "ship v1", Priority: "high"})
	require.NoError(t, err)

	updated, err := svc.UpdateProgress(ctx, uid, g.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, entity.GoalCompleted, updated.Status)

	events := eventsBySource(t, st, uid, entity.SourceGoal)
	require.Len(t, events, 1)
	assert.Equal(t, entity.EventProductivity, events[0].Type)
	assert.Equal(t, 10.0, events[0].Value)
}

func TestToggleTaskSyncsGoalProgress(t *testing.T) {
	k, st, uid := newTestKernel(t)
	goals := NewGoalService(st.Goals, st.Tasks, k)
	tasks := NewTaskService(st.Tasks, st.Goals, k)
	ctx := context.Background()

	g, err := goals.CreateGoal(ctx, uid, CreateGoalInput{Title: "run a 10k", Priority: "medium"})
	require.NoError(t, err)

	t1, err := tasks.CreateTask(ctx, uid, CreateTaskInput{Title: "buy shoes", GoalID: g.ID})
	require.NoError(t, err)
	assert.Equal(t, "medium", t1.Priority)
	t2, err := tasks.CreateTask(ctx, uid, CreateTaskInput{Title: "train", GoalID: g.ID})
	require.NoError(t, err)

	_, err = tasks.ToggleTask(ctx, uid, t1.ID)
	require.NoError(t, err)

	got, err := st.Goals.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, got.Progress)

	u, err := st.Users.GetByID(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, 50, u.GoalScore)

	_, err = tasks.ToggleTask(ctx, uid, t2.ID)
	require.NoError(t, err)
	got, err = st.Goals.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, got.Progress)

	// Un-completing a task walks the goal back down.
	_, err = tasks.ToggleTask(ctx, uid, t1.ID)
	require.NoError(t, err)
	got, err = st.Goals.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, got.Progress)
}

func TestToggleFreeStandingTaskLeavesScoresAlone(t *testing.T) {
	k, st, uid := newTestKernel(t)
	tasks := NewTaskService(st.Tasks, st.Goals, k)
	ctx := context.Background()

	task, err := tasks.CreateTask(ctx, uid, CreateTaskInput{Title: "water the plants"})
	require.NoError(t, err)

	toggled, err := tasks.ToggleTask(ctx, uid, task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	u, err := st.Users.GetByID(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, 0, u.GoalScore)
	assert.Equal(t, 0, u.LifeScore)
}

func TestLogInteractionRecordsSocialEvent(t *testing.T) {
	k, st, uid := newTestKernel(t)
	svc := NewRelationshipService(st.Relationships, k)
	ctx := context.Background()

	r, err := svc.CreateRelationship(ctx, uid, CreateRelationshipInput{Name: "Sam", Type: "friend", HealthScore: 70})
	require.NoError(t, err)

	updated, err := svc.LogInteraction(ctx, uid, r.ID, LogInteractionInput{Type: "call", Description: "caught up"})
	require.NoError(t, err)
	require.NotNil(t, updated.LastInteraction)
	require.Len(t, updated.InteractionHistory, 1)

	events := eventsBySource(t, st, uid, entity.SourceRelationship)
	// One from creation (value 5) plus one from the interaction (value 1).
	require.Len(t, events, 2)
	values := []float64{events[0].Value, events[1].Value}
	assert.ElementsMatch(t, []float64{5, 1}, values)
}

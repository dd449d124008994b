package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeosapp/backend/internal/domain/entity"
)

func TestWeightsSumToOne(t *testing.T) {
	sum := WeightHealth + WeightGoal + WeightRelationship + WeightHabit + WeightWealth
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestLifeCompositeWeighting(t *testing.T) {
	// 60*0.35 + 50*0.20 + 45*0.20 + 33*0.15 + 60*0.10 = 50.95
	life := round(60*WeightHealth + 50*WeightGoal + 45*WeightRelationship + 33*WeightHabit + 60*WeightWealth)
	assert.Equal(t, 51, life)
}

func TestWealthScore(t *testing.T) {
	t.Run("savings rate", func(t *testing.T) {
		txs := []entity.Transaction{
			{Type: entity.TransactionIncome, Amount: 1000},
			{Type: entity.TransactionExpense, Amount: 400},
		}
		assert.Equal(t, 60, wealthScore(txs))
	})

	t.Run("expenses exceed income clamps to zero", func(t *testing.T) {
		txs := []entity.Transaction{
			{Type: entity.TransactionIncome, Amount: 100},
			{Type: entity.TransactionExpense, Amount: 500},
		}
		assert.Equal(t, 0, wealthScore(txs))
	})

	t.Run("only expenses", func(t *testing.T) {
		txs := []entity.Transaction{{Type: entity.TransactionExpense, Amount: 50}}
		assert.Equal(t, 10, wealthScore(txs))
	})

	t.Run("no data", func(t *testing.T) {
		assert.Equal(t, 0, wealthScore(nil))
	})
}

func TestHealthScore(t *testing.T) {
	t.Run("single log", func(t *testing.T) {
		logs := []entity.HealthLog{
			{Mood: 7, SleepHours: 7.5, Stress: 4, WaterIntake: 2.0},
		}
		// (70 + 75 + 60 + 80) / 4 = 71.25
		assert.Equal(t, 71, healthScore(logs))
	})

	t.Run("water saturates at 2.5 liters", func(t *testing.T) {
		capped := healthScore([]entity.HealthLog{{Mood: 5, SleepHours: 7, Stress: 5, WaterIntake: 2.5}})
		over := healthScore([]entity.HealthLog{{Mood: 5, SleepHours: 7, Stress: 5, WaterIntake: 6}})
		assert.Equal(t, capped, over)
	})

	t.Run("clamps to 100", func(t *testing.T) {
		logs := []entity.HealthLog{
			{Mood: 10, SleepHours: 12, Stress: 1, WaterIntake: 5},
		}
		assert.Equal(t, 100, healthScore(logs))
	})

	t.Run("uses at most seven logs", func(t *testing.T) {
		logs := make([]entity.HealthLog, 0, 8)
		for i := 0; i < 7; i++ {
			logs = append(logs, entity.HealthLog{Mood: 8, SleepHours: 8, Stress: 2, WaterIntake: 2.5})
		}
		// An eighth, terrible log must not move the score.
		withExtra := append(logs[:7:7], entity.HealthLog{Mood: 1, SleepHours: 0, Stress: 10})
		assert.Equal(t, healthScore(logs), healthScore(withExtra))
	})

	t.Run("no logs", func(t *testing.T) {
		assert.Equal(t, 0, healthScore(nil))
	})
}

func TestHabitScore(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	t.Run("one of three completed today", func(t *testing.T) {
		habits := []entity.Habit{
			{LastCompleted: &today},
			{LastCompleted: &yesterday},
			{},
		}
		assert.Equal(t, 33, habitScore(habits, now))
	})

	t.Run("all completed", func(t *testing.T) {
		habits := []entity.Habit{{LastCompleted: &today}, {LastCompleted: &today}}
		assert.Equal(t, 100, habitScore(habits, now))
	})

	t.Run("no habits", func(t *testing.T) {
		assert.Equal(t, 0, habitScore(nil, now))
	})
}

func TestGoalScore(t *testing.T) {
	goals := []entity.Goal{{Progress: 40}, {Progress: 80}}
	assert.Equal(t, 60, goalScore(goals))
	assert.Equal(t, 0, goalScore(nil))
}

func TestRelationshipScore(t *testing.T) {
	t.Run("two connections", func(t *testing.T) {
		rels := []entity.Relationship{{HealthScore: 80}, {HealthScore: 60}}
		// base = min(100, 2*10) = 20, avg = 70, (20+70)/2 = 45
		assert.Equal(t, 45, relationshipScore(rels))
	})

	t.Run("quantity reward caps at 100", func(t *testing.T) {
		rels := make([]entity.Relationship, 12)
		for i := range rels {
			rels[i].HealthScore = 100
		}
		assert.Equal(t, 100, relationshipScore(rels))
	})

	t.Run("no connections", func(t *testing.T) {
		assert.Equal(t, 0, relationshipScore(nil))
	})
}

func TestComputeScores(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

	snap := Snapshot{
		HealthLogs:   []entity.HealthLog{{Mood: 7, SleepHours: 7.5, Stress: 4, WaterIntake: 2.0}},
		Transactions: []entity.Transaction{{Type: entity.TransactionIncome, Amount: 1000}, {Type: entity.TransactionExpense, Amount: 400}},
		Habits:       []entity.Habit{{LastCompleted: &today}, {}, {}},
		Goals:        []entity.Goal{{Progress: 40}, {Progress: 80}},
		Relationships: []entity.Relationship{
			{HealthScore: 80},
			{HealthScore: 60},
		},
	}

	set := ComputeScores(snap, now)
	require.Equal(t, 71, set.Health)
	require.Equal(t, 60, set.Wealth)
	require.Equal(t, 33, set.Habit)
	require.Equal(t, 60, set.Goal)
	require.Equal(t, 45, set.Relationship)
	// 71*0.35 + 60*0.20 + 45*0.20 + 33*0.15 + 60*0.10 = 56.80
	assert.Equal(t, 57, set.Life)
}

func TestComputeScoresEmptyState(t *testing.T) {
	set := ComputeScores(Snapshot{}, time.Now())
	assert.Equal(t, entity.ScoreSet{}, set)
}

func TestComputeScoresDeterministic(t *testing.T) {
	now := time.Now()
	snap := Snapshot{
		Transactions:  []entity.Transaction{{Type: entity.TransactionIncome, Amount: 300}},
		Goals:         []entity.Goal{{Progress: 55}},
		Relationships: []entity.Relationship{{HealthScore: 50}},
	}
	assert.Equal(t, ComputeScores(snap, now), ComputeScores(snap, now))
}

package application

import (
	"math"
	"time"

	"github.com/lifeosapp/backend/internal/domain/entity"
)

// Composite weights. Priority: health > goals = relationships > habits > wealth.
// They must sum to exactly 1.0.
const (
	WeightHealth       = 0.35
	WeightGoal         = 0.20
	WeightRelationship = 0.20
	WeightHabit        = 0.15
	WeightWealth       = 0.10
)

// healthSampleSize is how many of the most recent health logs feed the
// health score.
const healthSampleSize = 7

// Snapshot is the domain store state one recomputation derives scores from.
// Habits holds active habits only; Goals holds non-abandoned goals only.
type Snapshot struct {
	HealthLogs    []entity.HealthLog
	Transactions  []entity.Transaction
	Habits        []entity.Habit
	Goals         []entity.Goal
	Relationships []entity.Relationship
}

// ComputeScores derives the five domain scores and the composite life score
// from a snapshot. It is a pure function: scores come from live domain
// records, never from replaying the event log, so they self-correct on the
// next recomputation even if individual events were lost or rolled back
// badly.
func ComputeScores(snap Snapshot, now time.Time) entity.ScoreSet {
	s := entity.ScoreSet{
		Health:       healthScore(snap.HealthLogs),
		Wealth:       wealthScore(snap.Transactions),
		Habit:        habitScore(snap.Habits, now),
		Goal:         goalScore(snap.Goals),
		Relationship: relationshipScore(snap.Relationships),
	}
	s.Life = round(float64(s.Health)*WeightHealth +
		float64(s.Goal)*WeightGoal +
		float64(s.Relationship)*WeightRelationship +
		float64(s.Habit)*WeightHabit +
		float64(s.Wealth)*WeightWealth)
	return s
}

// healthScore averages a per-log day score over the sampled logs.
// Water intake saturates at 2.5 liters.
func healthScore(logs []entity.HealthLog) int {
	if len(logs) == 0 {
		return 0
	}
	if len(logs) > healthSampleSize {
		logs = logs[:healthSampleSize]
	}
	var sum float64
	for _, l := range logs {
		day := (l.Mood*10 + l.SleepHours*10 + (100 - l.Stress*10) + math.Min(l.WaterIntake, 2.5)*40) / 4
		sum += day
	}
	return clamp(round(sum/float64(len(logs))), 0, 100)
}

// wealthScore is the savings rate as a percentage. Expenses with no income
// score a flat 10; no data at all scores 0.
func wealthScore(txs []entity.Transaction) int {
	var income, expense float64
	for _, t := range txs {
		switch t.Type {
		case entity.TransactionIncome:
			income += t.Amount
		case entity.TransactionExpense:
			expense += t.Amount
		}
	}
	switch {
	case income > 0:
		return clamp(round((income-expense)/income*100), 0, 100)
	case expense > 0:
		return 10
	default:
		return 0
	}
}

// habitScore is the fraction of active habits completed since local midnight.
func habitScore(habits []entity.Habit, now time.Time) int {
	if len(habits) == 0 {
		return 0
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	completed := 0
	for _, h := range habits {
		if h.LastCompleted != nil && !h.LastCompleted.Before(today) {
			completed++
		}
	}
	return round(float64(completed) / float64(len(habits)) * 100)
}

// goalScore is the average progress over non-abandoned goals.
func goalScore(goals []entity.Goal) int {
	if len(goals) == 0 {
		return 0
	}
	var sum float64
	for _, g := range goals {
		sum += float64(g.Progress)
	}
	return round(sum / float64(len(goals)))
}

// relationshipScore blends a quantity reward (10 points per connection,
// capped at 100) with the average per-relationship health score.
func relationshipScore(rels []entity.Relationship) int {
	if len(rels) == 0 {
		return 0
	}
	base := math.Min(100, float64(len(rels))*10)
	var sum float64
	for _, r := range rels {
		sum += float64(r.HealthScore)
	}
	avg := sum / float64(len(rels))
	return round((base + avg) / 2)
}

// round is round-half-away-from-zero.
func round(v float64) int {
	return int(math.Round(v))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

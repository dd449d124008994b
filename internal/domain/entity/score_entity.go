package entity

// ScoreSet is the result of one full score recomputation: five domain scores
// plus the composite life score, all integers in [0, 100]. It is always
// written to the profile as a unit, never field by field.
type ScoreSet struct {
	Health       int `json:"health"`
	Wealth       int `json:"wealth"`
	Habit        int `json:"habit"`
	Goal         int `json:"goal"`
	Relationship int `json:"relationship"`
	Life         int `json:"life"`
}

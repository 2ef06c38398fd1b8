package models

import "time"

// PlayerEvaluation is the durable identity binding one player to one
// evaluation event. Every per-player result row hangs off this id, and the
// (player_id, evaluation_id) pair is unique: recomputation overwrites,
// never duplicates.
type PlayerEvaluation struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	PlayerID     string    `gorm:"size:36;uniqueIndex:idx_player_evaluation" json:"playerId"`
	EvaluationID string    `gorm:"size:36;uniqueIndex:idx_player_evaluation" json:"evaluationId"`
	TeamID       string    `gorm:"size:36;index" json:"teamId"`
	CoachName    string    `json:"coachName"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PlayerRawScore stores the verbatim slice of the evaluation's raw scores
// belonging to one player, for later display and audit.
type PlayerRawScore struct {
	ID                 uint    `gorm:"primaryKey" json:"-"`
	PlayerEvaluationID string  `gorm:"size:36;uniqueIndex" json:"playerEvaluationId"`
	Scores             JSONMap `gorm:"type:jsonb" json:"scores"`
}

// PlayerDerivedMetrics stores the cohort-independent raw metric map.
type PlayerDerivedMetrics struct {
	ID                 uint      `gorm:"primaryKey" json:"-"`
	PlayerEvaluationID string    `gorm:"size:36;uniqueIndex" json:"playerEvaluationId"`
	Metrics            MetricMap `gorm:"type:jsonb" json:"metrics"`
}

// PlayerNormalizedMetrics stores the 0-1 feature map, the player's "DNA"
// vector relative to the birth-year cohort.
type PlayerNormalizedMetrics struct {
	ID                 uint      `gorm:"primaryKey" json:"-"`
	PlayerEvaluationID string    `gorm:"size:36;uniqueIndex" json:"playerEvaluationId"`
	Metrics            MetricMap `gorm:"type:jsonb" json:"metrics"`
}

// PlayerCompositeScores stores the four weighted style scores plus the
// [ps, tc, ms, dc] vector. Dimensions are nullable: a composite with no
// usable features is "no data", not zero.
type PlayerCompositeScores struct {
	ID                 uint     `gorm:"primaryKey" json:"-"`
	PlayerEvaluationID string   `gorm:"size:36;uniqueIndex" json:"playerEvaluationId"`
	PS                 *float64 `gorm:"column:ps" json:"ps"`
	TC                 *float64 `gorm:"column:tc" json:"tc"`
	MS                 *float64 `gorm:"column:ms" json:"ms"`
	DC                 *float64 `gorm:"column:dc" json:"dc"`
	Vector             Vector   `gorm:"type:jsonb" json:"vector"`
}

package models

import "time"

// Evaluation is one recorded test event for a team. Evaluations are created
// and filled by the capture flow; the scoring engine only reads them.
type Evaluation struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	TeamID        string    `gorm:"size:36;index" json:"teamId"`
	CreatedBy     string    `gorm:"size:36" json:"createdBy"`
	Name          string    `json:"name"`
	OneVOneRounds int       `json:"oneVOneRounds"`
	SkillMoves    int       `json:"skillMoves"`
	RawScores     RawScores `gorm:"type:jsonb" json:"rawScores"`
	CreatedAt     time.Time `json:"createdAt"`
}

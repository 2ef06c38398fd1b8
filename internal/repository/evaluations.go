package repository

import (
	"errors"
	"time"

	"footballers-insight/internal/database"
	"footballers-insight/internal/models"
)

// ErrNoEvaluations is returned when a team has no recorded evaluations yet.
var ErrNoEvaluations = errors.New("no evaluations recorded for team")

// ListEvaluationsByTeam returns every evaluation ever recorded for a team,
// oldest first. The cohort pass consumes the whole history.
func ListEvaluationsByTeam(teamID string) ([]models.Evaluation, error) {
	var evals []models.Evaluation
	err := database.DB.
		Where("team_id = ?", teamID).
		Order("created_at ASC").
		Find(&evals).Error
	return evals, err
}

// EvaluationMeta is the raw-scores-free listing view of an evaluation. The
// jsonb blob of raw scores can be large, so the player count is computed in
// SQL and the blob itself never leaves the database.
type EvaluationMeta struct {
	ID            string    `json:"id"`
	TeamID        string    `json:"teamId"`
	Name          string    `json:"name"`
	OneVOneRounds int       `json:"oneVOneRounds"`
	SkillMoves    int       `json:"skillMoves"`
	CreatedAt     time.Time `json:"createdAt"`
	Players       int       `json:"players"`
}

// LatestEvaluationMeta returns the metadata of the single most recently
// created evaluation for a team, the only one the engine ever (re)computes.
func LatestEvaluationMeta(teamID string) (*EvaluationMeta, error) {
	query := `
		SELECT id, team_id, name, one_v_one_rounds, skill_moves, created_at,
		       (SELECT count(*) FROM jsonb_object_keys(raw_scores)) AS players
		FROM evaluations
		WHERE team_id = ?
		ORDER BY created_at DESC
		LIMIT 1
	`
	var meta EvaluationMeta
	res := database.DB.Raw(query, teamID).Scan(&meta)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNoEvaluations
	}
	return &meta, nil
}

// GetEvaluation fetches one evaluation by id.
func GetEvaluation(id string) (*models.Evaluation, error) {
	var eval models.Evaluation
	if err := database.DB.First(&eval, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &eval, nil
}

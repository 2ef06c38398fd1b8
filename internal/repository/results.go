package repository

import (
	"footballers-insight/internal/database"
	"footballers-insight/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlayerResult bundles everything the engine computed for one player in one
// evaluation, ready to be written under a single PlayerEvaluation identity.
type PlayerResult struct {
	PlayerID   string
	RawScores  models.JSONMap
	Derived    models.MetricMap
	Normalized models.MetricMap
	PS, TC     *float64
	MS, DC     *float64
	Vector     models.Vector
}

// SaveEvaluationResults persists every player's rows for one evaluation in a
// single all-or-nothing transaction. Each row is an insert-or-overwrite keyed
// by the PlayerEvaluation identity, so recomputation (and concurrent
// computation of the same evaluation) updates rows instead of duplicating
// them; the last writer wins.
func SaveEvaluationResults(eval *models.Evaluation, coachName string, results []PlayerResult) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		for _, res := range results {
			peID, err := upsertPlayerEvaluation(tx, eval, coachName, res.PlayerID)
			if err != nil {
				return err
			}

			rows := []any{
				&models.PlayerRawScore{PlayerEvaluationID: peID, Scores: res.RawScores},
				&models.PlayerDerivedMetrics{PlayerEvaluationID: peID, Metrics: res.Derived},
				&models.PlayerNormalizedMetrics{PlayerEvaluationID: peID, Metrics: res.Normalized},
				&models.PlayerCompositeScores{
					PlayerEvaluationID: peID,
					PS:                 res.PS,
					TC:                 res.TC,
					MS:                 res.MS,
					DC:                 res.DC,
					Vector:             res.Vector,
				},
			}
			for _, row := range rows {
				err := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "player_evaluation_id"}},
					UpdateAll: true,
				}).Create(row).Error
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// upsertPlayerEvaluation inserts or refreshes the join row and returns its
// id, whether freshly generated or already on file.
func upsertPlayerEvaluation(tx *gorm.DB, eval *models.Evaluation, coachName, playerID string) (string, error) {
	query := `
		INSERT INTO player_evaluations (id, player_id, evaluation_id, team_id, coach_name, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (player_id, evaluation_id) DO UPDATE
		SET team_id = EXCLUDED.team_id, coach_name = EXCLUDED.coach_name, created_at = EXCLUDED.created_at
		RETURNING id
	`
	var peID string
	err := tx.Raw(query,
		uuid.NewString(), playerID, eval.ID, eval.TeamID, coachName, eval.CreatedAt.UTC(),
	).Scan(&peID).Error
	if err != nil {
		return "", err
	}
	return peID, nil
}

// EvaluationResults is the read-side view of everything persisted for one
// evaluation, assembled per player.
type EvaluationResults struct {
	PlayerEvaluation models.PlayerEvaluation         `json:"playerEvaluation"`
	RawScores        *models.PlayerRawScore          `json:"rawScores,omitempty"`
	Derived          *models.PlayerDerivedMetrics    `json:"derived,omitempty"`
	Normalized       *models.PlayerNormalizedMetrics `json:"normalized,omitempty"`
	Composite        *models.PlayerCompositeScores   `json:"composite,omitempty"`
}

// GetEvaluationResults loads the persisted rows for every player scored in
// one evaluation.
func GetEvaluationResults(evaluationID string) ([]EvaluationResults, error) {
	var pes []models.PlayerEvaluation
	err := database.DB.
		Where("evaluation_id = ?", evaluationID).
		Order("player_id ASC").
		Find(&pes).Error
	if err != nil {
		return nil, err
	}
	if len(pes) == 0 {
		return []EvaluationResults{}, nil
	}

	ids := make([]string, 0, len(pes))
	for _, pe := range pes {
		ids = append(ids, pe.ID)
	}

	var raws []models.PlayerRawScore
	if err := database.DB.Where("player_evaluation_id IN ?", ids).Find(&raws).Error; err != nil {
		return nil, err
	}
	var derived []models.PlayerDerivedMetrics
	if err := database.DB.Where("player_evaluation_id IN ?", ids).Find(&derived).Error; err != nil {
		return nil, err
	}
	var normalized []models.PlayerNormalizedMetrics
	if err := database.DB.Where("player_evaluation_id IN ?", ids).Find(&normalized).Error; err != nil {
		return nil, err
	}
	var composites []models.PlayerCompositeScores
	if err := database.DB.Where("player_evaluation_id IN ?", ids).Find(&composites).Error; err != nil {
		return nil, err
	}

	rawByID := make(map[string]*models.PlayerRawScore, len(raws))
	for i := range raws {
		rawByID[raws[i].PlayerEvaluationID] = &raws[i]
	}
	derivedByID := make(map[string]*models.PlayerDerivedMetrics, len(derived))
	for i := range derived {
		derivedByID[derived[i].PlayerEvaluationID] = &derived[i]
	}
	normByID := make(map[string]*models.PlayerNormalizedMetrics, len(normalized))
	for i := range normalized {
		normByID[normalized[i].PlayerEvaluationID] = &normalized[i]
	}
	compByID := make(map[string]*models.PlayerCompositeScores, len(composites))
	for i := range composites {
		compByID[composites[i].PlayerEvaluationID] = &composites[i]
	}

	out := make([]EvaluationResults, 0, len(pes))
	for _, pe := range pes {
		out = append(out, EvaluationResults{
			PlayerEvaluation: pe,
			RawScores:        rawByID[pe.ID],
			Derived:          derivedByID[pe.ID],
			Normalized:       normByID[pe.ID],
			Composite:        compByID[pe.ID],
		})
	}
	return out, nil
}

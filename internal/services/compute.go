package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"footballers-insight/internal/engine"
	"footballers-insight/internal/models"
	"footballers-insight/internal/monitoring"
	"footballers-insight/internal/repository"

	"go.uber.org/zap"
)

// ComputeService runs the full scoring pipeline for one team: cohort context
// from the whole evaluation history, scores for the most recent evaluation
// only. Older evaluations' persisted scores are intentionally never
// refreshed, even though later cohort data shifts what "normalized" means
// for them.
type ComputeService struct {
	log     *zap.Logger
	catalog *engine.Catalog
}

// NewComputeService creates a ComputeService bound to a validated catalog.
func NewComputeService(log *zap.Logger, catalog *engine.Catalog) *ComputeService {
	return &ComputeService{log: log, catalog: catalog}
}

// PlayerScore is the per-player slice of a compute summary.
type PlayerScore struct {
	PlayerID string     `json:"playerId"`
	PS       engine.Num `json:"ps"`
	TC       engine.Num `json:"tc"`
	MS       engine.Num `json:"ms"`
	DC       engine.Num `json:"dc"`
}

// ComputeSummary reports what one run computed and persisted.
type ComputeSummary struct {
	EvaluationID   string        `json:"evaluationId"`
	EvaluationName string        `json:"evaluationName"`
	TeamID         string        `json:"teamId"`
	Players        []PlayerScore `json:"players"`
}

// Run computes and persists scores for the team's most recent evaluation.
// The unit of work is a single request: one history scan, one derivation
// pass over the latest evaluation, one write transaction.
func (s *ComputeService) Run(ctx context.Context, teamID string) (*ComputeSummary, error) {
	start := time.Now()
	summary, err := s.run(ctx, teamID)
	monitoring.ComputeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		monitoring.ComputationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	monitoring.ComputationsTotal.WithLabelValues("ok").Inc()
	monitoring.PlayersScored.Add(float64(len(summary.Players)))
	return summary, nil
}

func (s *ComputeService) run(ctx context.Context, teamID string) (*ComputeSummary, error) {
	evals, err := repository.ListEvaluationsByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load evaluation history: %w", err)
	}
	if len(evals) == 0 {
		return nil, repository.ErrNoEvaluations
	}

	players, err := repository.ListPlayersByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team players: %w", err)
	}
	birthYears := make(map[string]int, len(players))
	for i := range players {
		if year, ok := players[i].BirthYear(); ok {
			birthYears[players[i].ID] = year
		}
	}
	birthYear := func(playerID string) (int, bool) {
		year, ok := birthYears[playerID]
		return year, ok
	}

	// Cohort context comes from every evaluation ever recorded for the team,
	// not just the one being scored.
	cohortInput := make([]engine.CohortEvaluation, 0, len(evals))
	for i := range evals {
		cohortInput = append(cohortInput, cohortEvaluation(&evals[i]))
	}
	stats := engine.BuildCohortStats(cohortInput, birthYear)

	latest := &evals[len(evals)-1]
	coachName, err := repository.GetUserDisplayName(latest.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve coach name: %w", err)
	}

	cfg := engine.EvalConfig{
		OneVOneRounds: latest.OneVOneRounds,
		SkillMoves:    latest.SkillMoves,
	}

	playerIDs := make([]string, 0, len(latest.RawScores))
	for playerID := range latest.RawScores {
		playerIDs = append(playerIDs, playerID)
	}
	sort.Strings(playerIDs)

	summary := &ComputeSummary{
		EvaluationID:   latest.ID,
		EvaluationName: latest.Name,
		TeamID:         latest.TeamID,
		Players:        make([]PlayerScore, 0, len(playerIDs)),
	}
	results := make([]repository.PlayerResult, 0, len(playerIDs))

	for _, playerID := range playerIDs {
		rec := engine.RawRecord(latest.RawScores[playerID])
		ds := engine.Derive(rec, cfg)

		year, hasYear := birthYear(playerID)
		norm := engine.Normalize(ds.Raw, year, hasYear, stats, s.catalog)
		composites := engine.ComputeComposites(norm, s.catalog)

		results = append(results, repository.PlayerResult{
			PlayerID:   playerID,
			RawScores:  models.JSONMap(latest.RawScores[playerID]),
			Derived:    metricMap(ds.Raw),
			Normalized: metricMap(norm),
			PS:         composites.PS.Ptr(),
			TC:         composites.TC.Ptr(),
			MS:         composites.MS.Ptr(),
			DC:         composites.DC.Ptr(),
			Vector:     vector(composites),
		})
		summary.Players = append(summary.Players, PlayerScore{
			PlayerID: playerID,
			PS:       composites.PS,
			TC:       composites.TC,
			MS:       composites.MS,
			DC:       composites.DC,
		})
	}

	if err := repository.SaveEvaluationResults(latest, coachName, results); err != nil {
		return nil, fmt.Errorf("failed to persist evaluation results: %w", err)
	}

	s.log.Info("Computed player scores",
		zap.String("team_id", teamID),
		zap.String("evaluation_id", latest.ID),
		zap.Int("players", len(results)),
		zap.Int("history_size", len(evals)),
	)
	return summary, nil
}

func cohortEvaluation(eval *models.Evaluation) engine.CohortEvaluation {
	raw := make(map[string]engine.RawRecord, len(eval.RawScores))
	for playerID, rec := range eval.RawScores {
		raw[playerID] = engine.RawRecord(rec)
	}
	return engine.CohortEvaluation{
		Config: engine.EvalConfig{
			OneVOneRounds: eval.OneVOneRounds,
			SkillMoves:    eval.SkillMoves,
		},
		RawScores: raw,
	}
}

func metricMap(m map[string]engine.Num) models.MetricMap {
	out := make(models.MetricMap, len(m))
	for name, v := range m {
		out[name] = v.Ptr()
	}
	return out
}

func vector(c engine.CompositeScores) models.Vector {
	vec := c.Vector()
	out := make(models.Vector, 0, len(vec))
	for _, v := range vec {
		out = append(out, v.Ptr())
	}
	return out
}

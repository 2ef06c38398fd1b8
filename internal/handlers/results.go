package handlers

import (
	"errors"
	"net/http"

	"footballers-insight/internal/repository"
	"footballers-insight/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ResultsHandler struct {
	log *zap.Logger
}

func NewResultsHandler(log *zap.Logger) *ResultsHandler {
	return &ResultsHandler{log: log}
}

// EvaluationResults returns everything persisted for one evaluation: raw
// snapshots, derived and normalized metric maps and composite scores, per
// player. Metrics that could not be computed come back as explicit nulls.
func (h *ResultsHandler) EvaluationResults(c *gin.Context) {
	evaluationID := c.Param("evaluationID")
	if !utils.IsValidID(evaluationID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid evaluation id"})
		return
	}

	if _, err := repository.GetEvaluation(evaluationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Evaluation not found"})
			return
		}
		h.log.Error("Failed to load evaluation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load evaluation"})
		return
	}

	results, err := repository.GetEvaluationResults(evaluationID)
	if err != nil {
		h.log.Error("Failed to load evaluation results",
			zap.String("evaluation_id", evaluationID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load results"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"evaluationId": evaluationID, "results": results})
}

// LatestEvaluation returns the metadata of the team's most recent
// evaluation, which is what a compute run would target.
func (h *ResultsHandler) LatestEvaluation(c *gin.Context) {
	teamID := c.Param("teamID")
	if !utils.IsValidID(teamID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team id"})
		return
	}

	meta, err := repository.LatestEvaluationMeta(teamID)
	if err != nil {
		if errors.Is(err, repository.ErrNoEvaluations) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No evaluations recorded for team"})
			return
		}
		h.log.Error("Failed to load latest evaluation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load evaluation"})
		return
	}

	c.JSON(http.StatusOK, meta)
}

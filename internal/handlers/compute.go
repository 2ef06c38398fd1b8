package handlers

import (
	"errors"
	"net/http"

	"footballers-insight/internal/repository"
	"footballers-insight/internal/services"
	"footballers-insight/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ComputeHandler struct {
	log *zap.Logger
	svc *services.ComputeService
}

func NewComputeHandler(log *zap.Logger, svc *services.ComputeService) *ComputeHandler {
	return &ComputeHandler{log: log, svc: svc}
}

// Compute runs the scoring pipeline for a team's most recent evaluation.
// The caller only names the team; the engine always targets the latest
// evaluation and rebuilds cohort context from the full history.
func (h *ComputeHandler) Compute(c *gin.Context) {
	teamID := c.Param("teamID")
	if !utils.IsValidID(teamID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team id"})
		return
	}

	summary, err := h.svc.Run(c.Request.Context(), teamID)
	if err != nil {
		if errors.Is(err, repository.ErrNoEvaluations) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No evaluations recorded for team"})
			return
		}
		h.log.Error("Computation failed",
			zap.String("team_id", teamID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Computation failed"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

package repository

import (
	"footballers-insight/internal/database"
	"footballers-insight/internal/models"
)

// ListPlayersByTeam returns all players registered on a team.
func ListPlayersByTeam(teamID string) ([]models.Player, error) {
	var players []models.Player
	err := database.DB.Where("team_id = ?", teamID).Find(&players).Error
	return players, err
}

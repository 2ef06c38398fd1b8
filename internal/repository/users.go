package repository

import (
	"errors"

	"footballers-insight/internal/database"
	"footballers-insight/internal/models"

	"gorm.io/gorm"
)

// GetUserDisplayName resolves a coach id to a display name for
// denormalization onto PlayerEvaluation rows. Unknown ids resolve to "".
func GetUserDisplayName(userID string) (string, error) {
	var user models.User
	err := database.DB.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return user.Name, nil
}

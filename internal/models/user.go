package models

import "time"

// User is a coach account. Account management lives in the surrounding
// product; the engine only reads display names to denormalize them onto
// PlayerEvaluation rows.
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"index" json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

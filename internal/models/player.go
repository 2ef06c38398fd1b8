package models

import "time"

// Player belongs to a team. The birth date is what buckets a player into a
// normalization cohort; players without one still get raw metrics but are
// excluded from cohort bucketing and normalization.
type Player struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	TeamID    string     `gorm:"size:36;index" json:"teamId"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	BirthDate *time.Time `json:"birthDate"`
	CreatedAt time.Time  `json:"createdAt"`
}

// BirthYear resolves the cohort bucket for the player.
func (p *Player) BirthYear() (int, bool) {
	if p.BirthDate == nil {
		return 0, false
	}
	return p.BirthDate.Year(), true
}

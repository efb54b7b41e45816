package model

import "time"

// ClubMessage keys on a UUID so that feed subscribers can deduplicate the
// realtime echo of their own insert.
type ClubMessage struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	ClubID    uint64    `gorm:"not null;index:idx_club_time" json:"clubId"`
	UserID    uint64    `gorm:"not null;index" json:"userId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"index:idx_club_time" json:"createdAt"`
}

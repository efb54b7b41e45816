package mysql

import (
	"campusconnect/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MessageRepository struct {
	DB *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	if db == nil {
		db = DB
	}
	return &MessageRepository{DB: db}
}

// Create is idempotent on the message UUID so a redelivered insert
// notification never produces a second row.
func (r *MessageRepository) Create(msg *model.ClubMessage) (bool, error) {
	res := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(msg)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *MessageRepository) ListByClub(clubID uint64, limit int) ([]model.ClubMessage, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var list []model.ClubMessage
	err := r.DB.Where("club_id = ?", clubID).
		Order("created_at asc").
		Limit(limit).
		Find(&list).Error
	return list, err
}

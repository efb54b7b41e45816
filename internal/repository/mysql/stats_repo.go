package mysql

import (
	"campusconnect/internal/model"

	"gorm.io/gorm"
)

type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	if db == nil {
		db = DB
	}
	return &StatsRepository{DB: db}
}

type DashboardStats struct {
	UserCount     int64 `json:"userCount"`
	EventCount    int64 `json:"eventCount"`
	ClubCount     int64 `json:"clubCount"`
	PendingEvents int64 `json:"pendingEvents"`
}

func (r *StatsRepository) Counts() (*DashboardStats, error) {
	var s DashboardStats
	if err := r.DB.Model(&model.User{}).Count(&s.UserCount).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&model.Event{}).Count(&s.EventCount).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&model.Club{}).Count(&s.ClubCount).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&model.Event{}).
		Where("status = ?", model.EventPending).
		Count(&s.PendingEvents).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StatsRepository) RecentUsers(limit int) ([]model.User, error) {
	var users []model.User
	err := r.DB.Select("id", "name", "email", "created_at").
		Order("created_at desc").
		Limit(limit).
		Find(&users).Error
	return users, err
}

func (r *StatsRepository) RecentEvents(limit int) ([]model.Event, error) {
	var events []model.Event
	err := r.DB.Order("created_at desc").Limit(limit).Find(&events).Error
	return events, err
}

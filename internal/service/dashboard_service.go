package service

import (
	"time"

	"campusconnect/internal/model"
	"campusconnect/internal/repository/mysql"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"gorm.io/gorm"
)

// DashboardTTL bounds how stale dashboard numbers may get. The cache is
// advisory only and is never consulted for authorization decisions.
const DashboardTTL = 60 * time.Second

type Dashboard struct {
	Stats        *mysql.DashboardStats `json:"stats"`
	RecentUsers  []model.User          `json:"recentUsers"`
	RecentEvents []model.Event         `json:"recentEvents"`
}

type DashboardService struct {
	stats *mysql.StatsRepository
	cache *lru.LRU[string, *Dashboard]
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{
		stats: mysql.NewStatsRepository(db),
		cache: lru.NewLRU[string, *Dashboard](1, nil, DashboardTTL),
	}
}

const dashboardKey = "dashboard"

func (s *DashboardService) Get() (*Dashboard, error) {
	if d, ok := s.cache.Get(dashboardKey); ok {
		return d, nil
	}

	counts, err := s.stats.Counts()
	if err != nil {
		return nil, err
	}
	users, err := s.stats.RecentUsers(5)
	if err != nil {
		return nil, err
	}
	events, err := s.stats.RecentEvents(5)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{Stats: counts, RecentUsers: users, RecentEvents: events}
	s.cache.Add(dashboardKey, d)
	return d, nil
}

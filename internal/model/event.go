package model

import "time"

const (
	EventPending   = "PENDING"
	EventApproved  = "APPROVED"
	EventRejected  = "REJECTED"
	EventCancelled = "CANCELLED"
)

type Event struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Content     string    `gorm:"type:text" json:"content,omitempty"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Location    string    `gorm:"size:255" json:"location"`
	Image       string    `gorm:"type:longtext" json:"image,omitempty"`
	Status      string    `gorm:"size:16;not null;default:PENDING;index" json:"status"`
	UserID      uint64    `gorm:"not null;index" json:"userId"`
	ClubID      *uint64   `gorm:"index" json:"clubId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"-"`
}

// EventAttendee is the join row between events and users. The composite
// unique index makes concurrent double-joins lose at the store layer.
type EventAttendee struct {
	ID        uint64    `gorm:"primaryKey"`
	EventID   uint64    `gorm:"not null;index;uniqueIndex:uk_event_user" json:"eventId"`
	UserID    uint64    `gorm:"not null;index;uniqueIndex:uk_event_user" json:"userId"`
	CreatedAt time.Time `json:"joinedAt"`
}

func (EventAttendee) TableName() string { return "event_attendees" }

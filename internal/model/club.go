package model

import "time"

const (
	ClubActive   = "ACTIVE"
	ClubInactive = "INACTIVE"
	ClubPending  = "PENDING"
	ClubRejected = "REJECTED"
)

// Club-scoped member roles, unrelated to the platform-wide user role.
const (
	MemberRoleMember = "MEMBER"
	MemberRoleAdmin  = "ADMIN"
)

type Club struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:128;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Content     string    `gorm:"type:text" json:"content,omitempty"`
	Image       string    `gorm:"type:longtext" json:"image,omitempty"`
	Status      string    `gorm:"size:16;not null;default:PENDING;index" json:"status"`
	UserID      uint64    `gorm:"not null;index" json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"-"`
}

type ClubMember struct {
	ID        uint64    `gorm:"primaryKey"`
	ClubID    uint64    `gorm:"not null;index;uniqueIndex:uk_club_user" json:"clubId"`
	UserID    uint64    `gorm:"not null;index;uniqueIndex:uk_club_user" json:"userId"`
	Role      string    `gorm:"size:16;not null;default:MEMBER" json:"role"`
	CreatedAt time.Time `json:"joinedAt"`
}

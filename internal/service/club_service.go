package service

import (
	"errors"

	"campusconnect/internal/model"
	"campusconnect/internal/repository/mysql"

	"gorm.io/gorm"
)

type ClubService struct {
	clubs *mysql.ClubRepository
}

func NewClubService(db *gorm.DB) *ClubService {
	return &ClubService{clubs: mysql.NewClubRepository(db)}
}

type ClubInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Image       string `json:"image"`
}

type ClubUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	Image       *string `json:"image"`
	Status      *string `json:"status"`
}

func (s *ClubService) List(statusQuery, actorRole string) ([]model.Club, error) {
	status := model.ClubActive
	if statusQuery != "" && actorRole == model.RoleAdmin {
		status = statusQuery
	}
	return s.clubs.List(status)
}

func (s *ClubService) Get(id, actorID uint64, actorRole string) (*model.Club, error) {
	club, err := s.clubs.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if club.Status != model.ClubActive && !CanMutate(actorID, actorRole, club.UserID) {
		return nil, ErrNotFound
	}
	return club, nil
}

// Create activates clubs created by admins immediately; everyone else's
// await moderation. The creator becomes a club-admin member in the same
// transaction.
func (s *ClubService) Create(actorID uint64, actorRole string, in ClubInput) (*model.Club, error) {
	status := model.ClubPending
	if actorRole == model.RoleAdmin {
		status = model.ClubActive
	}
	club := &model.Club{
		Name:        in.Name,
		Description: in.Description,
		Content:     in.Content,
		Image:       in.Image,
		Status:      status,
		UserID:      actorID,
	}
	if _, err := s.clubs.Create(club); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return club, nil
}

func (s *ClubService) Update(id uint64, upd ClubUpdate) (*model.Club, error) {
	if _, err := s.clubs.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	fields := map[string]any{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}
	if upd.Content != nil {
		fields["content"] = *upd.Content
	}
	if upd.Image != nil {
		fields["image"] = *upd.Image
	}
	if upd.Status != nil {
		fields["status"] = *upd.Status
	}
	if len(fields) == 0 {
		return s.clubs.FindByID(id)
	}
	return s.clubs.UpdateFields(id, fields)
}

func (s *ClubService) Delete(id uint64) error {
	if _, err := s.clubs.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.clubs.Delete(id)
}

// Join fails the duplicate-membership race closed at the store's unique
// index; the second joiner gets ErrConflict.
func (s *ClubService) Join(actorID, id uint64) (*model.ClubMember, error) {
	if _, err := s.clubs.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	changed, err := s.clubs.Join(id, actorID)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, ErrConflict
	}
	return &model.ClubMember{ClubID: id, UserID: actorID, Role: model.MemberRoleMember}, nil
}

func (s *ClubService) IsMember(clubID, userID uint64) (bool, error) {
	return s.clubs.IsMember(clubID, userID)
}

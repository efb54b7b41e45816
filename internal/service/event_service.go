package service

import (
	"errors"
	"fmt"
	"time"

	"campusconnect/internal/model"
	"campusconnect/internal/repository/mysql"

	"gorm.io/gorm"
)

type EventService struct {
	events *mysql.EventRepository
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{events: mysql.NewEventRepository(db)}
}

type EventInput struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location"`
	Image       string    `json:"image"`
	ClubID      *uint64   `json:"clubId"`
}

// List shows APPROVED events only; an admin may override the filter via
// the status query.
func (s *EventService) List(statusQuery, actorRole string) ([]model.Event, error) {
	status := model.EventApproved
	if statusQuery != "" && actorRole == model.RoleAdmin {
		status = statusQuery
	}
	return s.events.List(status)
}

// Get hides non-approved events from everyone but their owner and admins.
func (s *EventService) Get(id, actorID uint64, actorRole string) (*model.Event, error) {
	event, err := s.events.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if event.Status != model.EventApproved && !CanMutate(actorID, actorRole, event.UserID) {
		return nil, ErrNotFound
	}
	return event, nil
}

// Create auto-approves events created by admins; everyone else's default
// to PENDING and await moderation.
func (s *EventService) Create(actorID uint64, actorRole string, in EventInput) (*model.Event, error) {
	status := model.EventPending
	if actorRole == model.RoleAdmin {
		status = model.EventApproved
	}
	event := &model.Event{
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
		Date:        in.Date,
		Location:    in.Location,
		Image:       in.Image,
		Status:      status,
		UserID:      actorID,
		ClubID:      in.ClubID,
	}
	if err := s.events.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) Update(actorID uint64, actorRole string, id uint64, in EventInput) (*model.Event, error) {
	event, err := s.findForMutation(actorID, actorRole, id)
	if err != nil {
		return nil, err
	}
	fields := map[string]any{
		"title":       in.Title,
		"description": in.Description,
		"content":     in.Content,
		"location":    in.Location,
		"image":       in.Image,
	}
	if !in.Date.IsZero() {
		fields["date"] = in.Date
	}
	return s.events.UpdateFields(event.ID, fields)
}

func (s *EventService) Delete(actorID uint64, actorRole string, id uint64) error {
	event, err := s.findForMutation(actorID, actorRole, id)
	if err != nil {
		return err
	}
	return s.events.Delete(event.ID)
}

func (s *EventService) Approve(id uint64) (*model.Event, error) {
	return s.moderate(id, model.EventApproved, model.NotifySuccess, "approved")
}

func (s *EventService) Reject(id uint64) (*model.Event, error) {
	return s.moderate(id, model.EventRejected, model.NotifyError, "rejected")
}

func (s *EventService) moderate(id uint64, status, notifyType, verb string) (*model.Event, error) {
	event, err := s.events.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	message := fmt.Sprintf("Your event %q has been %s.", event.Title, verb)
	if err := s.events.SetStatus(event, status, message, notifyType); err != nil {
		return nil, err
	}
	return event, nil
}

// Join enforces idempotence through the store's unique attendance index;
// the race loser gets ErrConflict, never a second row.
func (s *EventService) Join(actorID, id uint64) error {
	event, err := s.events.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if event.Status != model.EventApproved {
		return ErrNotApproved
	}
	changed, err := s.events.Join(id, actorID)
	if err != nil {
		return err
	}
	if !changed {
		return ErrConflict
	}
	return nil
}

func (s *EventService) Leave(actorID, id uint64) error {
	changed, err := s.events.Leave(id, actorID)
	if err != nil {
		return err
	}
	if !changed {
		return ErrNotFound
	}
	return nil
}

func (s *EventService) findForMutation(actorID uint64, actorRole string, id uint64) (*model.Event, error) {
	event, err := s.events.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !CanMutate(actorID, actorRole, event.UserID) {
		return nil, ErrForbidden
	}
	return event, nil
}

package mysql

import (
	"encoding/json"
	"time"

	"campusconnect/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	if db == nil {
		db = DB
	}
	return &EventRepository{DB: db}
}

func (r *EventRepository) Create(event *model.Event) error {
	return r.DB.Create(event).Error
}

func (r *EventRepository) FindByID(id uint64) (*model.Event, error) {
	var event model.Event
	err := r.DB.First(&event, id).Error
	return &event, err
}

func (r *EventRepository) List(status string) ([]model.Event, error) {
	var list []model.Event
	err := r.DB.Where("status = ?", status).Order("date asc").Find(&list).Error
	return list, err
}

func (r *EventRepository) UpdateFields(id uint64, fields map[string]any) (*model.Event, error) {
	if err := r.DB.Model(&model.Event{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *EventRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Event{}, id).Error
}

// SetStatus flips the approval state and persists the creator's
// Notification plus its outbox row in the same transaction, so the side
// effect either surfaces with the status change or not at all.
func (r *EventRepository) SetStatus(event *model.Event, status, message, notifyType string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Event{}).Where("id = ?", event.ID).Update("status", status).Error; err != nil {
			return err
		}
		event.Status = status

		if err := tx.Create(&model.Notification{
			UserID:  event.UserID,
			Message: message,
			Type:    notifyType,
		}).Error; err != nil {
			return err
		}

		payload, _ := json.Marshal(map[string]any{
			"event_time": time.Now().UTC().Format(time.RFC3339Nano),
			"event_id":   event.ID,
			"user_id":    event.UserID,
			"status":     status,
		})
		return tx.Create(&model.NotificationOutbox{
			EventType: "event_" + statusEventName(status),
			UserID:    event.UserID,
			Payload:   string(payload),
		}).Error
	})
}

func statusEventName(status string) string {
	if status == model.EventApproved {
		return "approved"
	}
	return "rejected"
}

// Join inserts the attendance row; the unique (event_id, user_id) index
// resolves concurrent double-joins. Returns false when the row already
// existed.
func (r *EventRepository) Join(eventID, userID uint64) (bool, error) {
	res := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(&model.EventAttendee{EventID: eventID, UserID: userID})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *EventRepository) Leave(eventID, userID uint64) (bool, error) {
	res := r.DB.Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&model.EventAttendee{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *EventRepository) Attendees(eventID uint64) ([]model.EventAttendee, error) {
	var rows []model.EventAttendee
	err := r.DB.Where("event_id = ?", eventID).Find(&rows).Error
	return rows, err
}

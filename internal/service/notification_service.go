package service

import (
	"context"
	"time"

	"campusconnect/internal/model"
	"campusconnect/internal/pkg"
	"campusconnect/internal/repository/mysql"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type NotificationService struct {
	notifications *mysql.NotificationRepository
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{notifications: mysql.NewNotificationRepository(db)}
}

func (s *NotificationService) ListForUser(userID uint64) ([]model.Notification, error) {
	return s.notifications.ListByUser(userID)
}

func (s *NotificationService) MarkRead(id, userID uint64) error {
	ok, err := s.notifications.MarkRead(id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Sender delivers one outbox row to the broker.
type Sender func(ctx context.Context, ob *model.NotificationOutbox) error

// OutboxRelayer drains pending notification outbox rows to the message
// broker on a fixed tick. Failed sends are marked for retry, successful
// ones marked sent; at-most-once delivery to the broker per drain pass.
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(db *gorm.DB, sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      mysql.NewOutboxRepository(db),
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.List(ctx, r.batchSize)
	if err != nil {
		logrus.WithError(err).Warn("outbox query failed")
		return
	}
	for i := range rows {
		ob := rows[i]
		if err := r.sender(ctx, &ob); err != nil {
			_ = r.repo.MarkFailed(ctx, ob.ID)
			continue
		}
		_ = r.repo.MarkSent(ctx, ob.ID)
	}
}

// KafkaSender delivers outbox rows through the notification producer.
func KafkaSender(producer *pkg.NotificationProducer) Sender {
	return producer.SendNotification
}

// LogSender is the fallback when no broker is configured.
func LogSender(ctx context.Context, ob *model.NotificationOutbox) error {
	logrus.WithFields(logrus.Fields{
		"type":    ob.EventType,
		"user_id": ob.UserID,
	}).Info("notification outbox send")
	return nil
}

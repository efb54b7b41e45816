package pkg

import (
	"context"
	"strconv"

	"campusconnect/internal/model"

	"github.com/segmentio/kafka-go"
)

// NotificationProducer publishes drained outbox rows to the notification
// topic. Messages are keyed by recipient id so one user's notifications
// stay ordered within a partition.
type NotificationProducer struct {
	writer *kafka.Writer
}

func NewNotificationProducer(brokers []string, topic string) *NotificationProducer {
	return &NotificationProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
		},
	}
}

func (p *NotificationProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

func (p *NotificationProducer) SendNotification(ctx context.Context, ob *model.NotificationOutbox) error {
	return p.writer.WriteMessages(ctx, notificationMessage(ob))
}

// notificationMessage carries the outbox payload verbatim; the event type
// rides in a header so consumers can route without decoding the body.
func notificationMessage(ob *model.NotificationOutbox) kafka.Message {
	return kafka.Message{
		Key:   []byte(strconv.FormatUint(ob.UserID, 10)),
		Value: []byte(ob.Payload),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(ob.EventType)},
		},
	}
}

package notifier

import (
	"context"
	"medtrack-portal/internal/app/contracts"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/exceptions"
	"medtrack-portal/internal/pkg/utils"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// channelPublisher is the subset of *amqp.Channel the notifier needs.
type channelPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type reminderNotifier struct {
	publisher channelPublisher
	queueName string
	log       *zap.Logger
}

// NewReminderNotifier declares the reminder queue on conn. A nil conn
// yields a notifier that only logs the events.
func NewReminderNotifier(conn *amqp.Connection, queueName string, logger *zap.Logger) (contracts.ReminderNotifier, error) {
	if conn == nil {
		return &reminderNotifier{queueName: queueName, log: logger}, nil
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	return newReminderNotifier(ch, queueName, logger), nil
}

func newReminderNotifier(publisher channelPublisher, queueName string, logger *zap.Logger) *reminderNotifier {
	return &reminderNotifier{
		publisher: publisher,
		queueName: queueName,
		log:       logger,
	}
}

func (n *reminderNotifier) ReminderCreated(ctx context.Context, event *models.ReminderCreatedEvent) error {
	requestID := utils.GetRequestIDFromContext(ctx)
	n.log.Info("reminderNotifier.ReminderCreated called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, event.ReminderID),
		zap.String("title", event.Title),
		zap.String("body", event.Body),
	)

	if n.publisher == nil {
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Type:         event.Type,
		Headers: amqp.Table{
			constvars.HeaderXRequestID: requestID,
		},
	}

	err = n.publisher.PublishWithContext(ctx, "", n.queueName, false, false, msg)
	if err != nil {
		n.log.Error("reminderNotifier.ReminderCreated error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, n.queueName),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, n.queueName)
	}

	n.log.Info("reminderNotifier.ReminderCreated succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, n.queueName),
	)
	return nil
}

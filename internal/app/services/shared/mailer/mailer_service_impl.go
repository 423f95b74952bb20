package mailer

import (
	"context"
	"plantao-service/internal/app/contracts"
	"plantao-service/internal/pkg/constvars"
	"plantao-service/internal/pkg/dto/requests"
	"plantao-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher is the part of *amqp091.Channel the mailer needs.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type mailerService struct {
	Channel           Publisher
	MailerQueue       string
	NotificationQueue string
	Log               *zap.Logger
	// amqp channels are not safe for concurrent publishing
	mu sync.Mutex
}

func NewMailerService(rabbitMQConnection *amqp091.Connection, mailerQueue, notificationQueue string, logger *zap.Logger) (contracts.MailerService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}
	return NewMailerServiceWithPublisher(channel, mailerQueue, notificationQueue, logger), nil
}

func NewMailerServiceWithPublisher(publisher Publisher, mailerQueue, notificationQueue string, logger *zap.Logger) contracts.MailerService {
	return &mailerService{
		Channel:           publisher,
		MailerQueue:       mailerQueue,
		NotificationQueue: notificationQueue,
		Log:               logger,
	}
}

func (s *mailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	return s.publish(ctx, s.MailerQueue, constvars.NotificationTypeEmail, request)
}

func (s *mailerService) PublishNotification(ctx context.Context, notification *requests.Notification) error {
	return s.publish(ctx, s.NotificationQueue, notification.Type, notification)
}

func (s *mailerService) publish(ctx context.Context, queue, messageType string, payload interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     messageType,
		"requeue_strategy": "DROP",
	}
	if requestID != "" {
		headers["request_id"] = requestID
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	s.mu.Lock()
	err = s.Channel.PublishWithContext(ctx, "", queue, false, false, message)
	s.mu.Unlock()
	if err != nil {
		s.Log.Error("mailerService.publish error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueKey, queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublish(err, queue)
	}

	s.Log.Info("mailerService.publish message published",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, queue),
	)
	return nil
}

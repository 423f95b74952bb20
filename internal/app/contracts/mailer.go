package contracts

import (
	"context"
	"plantao-service/internal/pkg/dto/requests"
)

type MailerService interface {
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
	PublishNotification(ctx context.Context, notification *requests.Notification) error
}

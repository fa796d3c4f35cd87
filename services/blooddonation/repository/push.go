package repository

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"github.com/Mohan160597/blood-donation/domain"
)

type fcmSender struct {
	client *messaging.Client
}

// NewFCMSender wraps the Firebase messaging client behind the domain
// PushSender interface.
func NewFCMSender(client *messaging.Client) domain.PushSender {
	return &fcmSender{
		client: client,
	}
}

func (f *fcmSender) Send(ctx context.Context, msg *domain.PushMessage) error {
	message := &messaging.Message{
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Token: msg.Token,
	}

	_, err := f.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}
	return nil
}

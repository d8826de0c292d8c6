// Package adapter provides the outbound push-notification transport used by
// the reminder dispatch worker.
//
// The primary abstraction is [PushSender], which decouples the service layer
// from the delivery protocol. The package ships an FCM-compatible HTTP
// implementation ([NewPushAdapter]) built on resty; without a configured
// server key the adapter degrades to logging payloads, so local development
// never needs push credentials.
package adapter

import (
	"context"

	"github.com/Elayaraja1609/TodoApplication/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/push_sender_mock.go -package=mock

// PushSender delivers a single push notification. Implementations are
// responsible for serialisation, authentication headers and mapping
// transport-level errors.
type PushSender interface {
	Send(ctx context.Context, notification models.PushNotification) error
}

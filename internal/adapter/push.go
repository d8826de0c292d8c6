package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Elayaraja1609/TodoApplication/internal/config"
	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/models"
	"github.com/go-resty/resty/v2"
)

var (
	// ErrPushUnauthorized is returned when the push endpoint rejects the
	// configured server key.
	ErrPushUnauthorized = errors.New("push endpoint rejected server key")

	// ErrPushRejected is returned for any other non-2xx delivery response.
	ErrPushRejected = errors.New("push delivery rejected")
)

const defaultPushTimeout = 15 * time.Second

// pushAdapter is the FCM-compatible HTTP implementation of [PushSender].
type pushAdapter struct {
	client    *resty.Client
	serverKey string
	logger    *logger.Logger
}

// NewPushAdapter constructs a [PushSender] for the configured endpoint.
// An empty server key selects log-and-drop mode: payloads are logged at
// info level and reported as delivered.
func NewPushAdapter(cfg config.Push, log *logger.Logger) PushSender {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultPushTimeout
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Endpoint, "/")).
		SetTimeout(timeout)

	return &pushAdapter{
		client:    client,
		serverKey: cfg.ServerKey,
		logger:    log,
	}
}

// Send delivers one notification. Delivery failures are mapped to the
// sentinel errors of this package so callers can match with [errors.Is].
func (p *pushAdapter) Send(ctx context.Context, notification models.PushNotification) error {
	log := logger.FromContext(ctx)

	if p.serverKey == "" {
		log.Info().
			Str("to", notification.To).
			Str("title", notification.Title).
			Msg("push server key not configured, dropping notification")
		return nil
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "key="+p.serverKey).
		SetBody(notification).
		Post("")
	if err != nil {
		return fmt.Errorf("push request: %w", err)
	}

	return mapPushError(resp)
}

func mapPushError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrPushUnauthorized, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrPushRejected, resp.StatusCode(), body)
	}
}

package worker

// Processes notification jobs from QueueNotifications: WhatsApp via the
// gateway sidecar behind a circuit breaker, email via SMTP. Each channel
// retries with exponential backoff; a job fails only when every configured
// channel failed.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/krikodium/hermanascaradonti/internal/infra"
)

const maxAttempts = 3

// NotificationPayload is the job envelope sent to QueueNotifications.
type NotificationPayload struct {
	Event   string `json:"event"` // approval_needed | approved | rejected | discrepancy_found
	Subject string `json:"subject"`
	Body    string `json:"body"`
	ToPhone string `json:"to_phone,omitempty"`
	ToEmail string `json:"to_email,omitempty"`
}

// NotificationWorker delivers one payload over the enabled channels.
type NotificationWorker struct {
	whatsapp *infra.WhatsAppClient
	breaker  *infra.CircuitBreaker
	mailer   *infra.Mailer
}

func NewNotificationWorker(whatsapp *infra.WhatsAppClient, breaker *infra.CircuitBreaker, mailer *infra.Mailer) *NotificationWorker {
	return &NotificationWorker{whatsapp: whatsapp, breaker: breaker, mailer: mailer}
}

// MaxAttempts reports the per-channel retry budget, recorded in DLQ entries.
func (w *NotificationWorker) MaxAttempts() int { return maxAttempts }

// Process handles a single notification job. Returns an error only when no
// channel delivered, so the job can be dead-lettered.
func (w *NotificationWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload NotificationPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("notification_worker: invalid payload")
		return nil // malformed jobs are dropped, not retried
	}

	var delivered bool
	var errs []error

	if payload.ToPhone != "" && w.whatsapp != nil {
		if err := w.sendWhatsApp(ctx, payload); err != nil {
			errs = append(errs, fmt.Errorf("whatsapp: %w", err))
		} else {
			delivered = true
		}
	}

	if payload.ToEmail != "" && w.mailer != nil {
		if err := w.sendEmail(ctx, payload); err != nil {
			errs = append(errs, fmt.Errorf("email: %w", err))
		} else {
			delivered = true
		}
	}

	if delivered {
		log.Info().Str("event", payload.Event).Msg("notification_worker: delivered")
		return nil
	}
	if len(errs) == 0 {
		log.Warn().Str("event", payload.Event).Msg("notification_worker: no recipients — skipping")
		return nil
	}
	return errors.Join(errs...)
}

func (w *NotificationWorker) sendWhatsApp(ctx context.Context, p NotificationPayload) error {
	op := func() error {
		err := w.breaker.Execute(func() error {
			return w.whatsapp.Send(ctx, infra.WhatsAppMessage{
				To:      p.ToPhone,
				Subject: p.Subject,
				Body:    p.Body,
				Event:   p.Event,
			})
		})
		if errors.Is(err, infra.ErrCircuitOpen) {
			// No point hammering an open breaker
			return backoff.Permanent(err)
		}
		return err
	}
	return backoff.Retry(op, retryPolicy(ctx))
}

func (w *NotificationWorker) sendEmail(ctx context.Context, p NotificationPayload) error {
	op := func() error {
		return w.mailer.Send(p.ToEmail, p.Subject, p.Body)
	}
	return backoff.Retry(op, retryPolicy(ctx))
}

func retryPolicy(ctx context.Context) backoff.BackOffContext {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 10 * time.Second
	return backoff.WithContext(backoff.WithMaxRetries(b, maxAttempts-1), ctx)
}

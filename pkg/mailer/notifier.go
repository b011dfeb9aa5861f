package mailer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/pips-site-api/pkg/jobs"
)

const notificationJob = "notification_email"

// Delivery outcomes passed to NotifierConfig.OnDelivery.
const (
	OutcomeSent   = "sent"
	OutcomeFailed = "failed"
)

// NotifierConfig tunes the delivery queue.
type NotifierConfig struct {
	Workers    int
	Retries    int
	RetryDelay time.Duration
	Logger     *zap.Logger
	OnDelivery func(outcome string)
}

// Notifier sends messages from a background worker pool so request handlers
// never wait on the mail provider.
type Notifier struct {
	queue      *jobs.Queue
	sender     Sender
	logger     *zap.Logger
	onDelivery func(outcome string)
}

// NewNotifier builds a notifier around sender. Call Start before Notify.
func NewNotifier(sender Sender, cfg NotifierConfig) *Notifier {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	n := &Notifier{sender: sender, logger: cfg.Logger, onDelivery: cfg.OnDelivery}
	n.queue = jobs.NewQueue(notificationJob, n.deliver, jobs.QueueConfig{
		Workers:    cfg.Workers,
		MaxRetries: cfg.Retries,
		RetryDelay: cfg.RetryDelay,
		Logger:     cfg.Logger,
		OnResult: func(job jobs.Job, err error) {
			if cfg.OnDelivery == nil {
				return
			}
			if err != nil {
				cfg.OnDelivery(OutcomeFailed)
				return
			}
			cfg.OnDelivery(OutcomeSent)
		},
	})
	return n
}

// Start launches the workers.
func (n *Notifier) Start(ctx context.Context) {
	n.queue.Start(ctx)
}

// Stop waits for in-flight deliveries. Queued messages are dropped.
func (n *Notifier) Stop() {
	n.queue.Stop()
}

// Notify queues msg for delivery without waiting. It returns jobs.ErrQueueClosed
// after Stop and jobs.ErrQueueFull when the workers are backed up; a full
// queue counts as a failed delivery.
func (n *Notifier) Notify(msg Message) error {
	err := n.queue.TryEnqueue(jobs.Job{
		ID:      uuid.NewString(),
		Type:    notificationJob,
		Payload: msg,
	})
	if errors.Is(err, jobs.ErrQueueFull) {
		n.logger.Warn("notification dropped, queue full", zap.String("to", msg.To), zap.String("subject", msg.Subject))
		if n.onDelivery != nil {
			n.onDelivery(OutcomeFailed)
		}
	}
	return err
}

func (n *Notifier) deliver(ctx context.Context, job jobs.Job) error {
	msg, ok := job.Payload.(Message)
	if !ok {
		n.logger.Error("unexpected notification payload", zap.String("job_id", job.ID))
		return nil
	}
	return n.sender.Send(ctx, msg)
}

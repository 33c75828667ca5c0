package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/library-circulation/pkg/retry"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	deliverAttempts  = 5
	deliverBaseDelay = 200 * time.Millisecond
)

// Consumer is the notify-worker consumer group handler.
type Consumer struct {
	mailer    Mailer
	log       *zap.Logger
	retryOpts []retry.Option
}

// NewConsumer builds the handler; opts tune the delivery backoff.
func NewConsumer(mailer Mailer, log *zap.Logger, opts ...retry.Option) *Consumer {
	return &Consumer{
		mailer: mailer,
		log:    log.Named("consumer"),
		retryOpts: append([]retry.Option{
			retry.WithMaxAttempts(deliverAttempts),
			retry.WithBaseDelay(deliverBaseDelay),
		}, opts...),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim stops at the first message that could not be delivered.
// Offsets are cumulative, so nothing after it may be marked; the next session
// resumes from the last committed offset and delivers it again.
func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			if err := consumer.handle(session.Context(), message); err != nil {
				return errors.Wrapf(err, "partition %d offset %d", message.Partition, message.Offset)
			}
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// handle returns nil once the message is done with: delivered or undecodable.
func (consumer *Consumer) handle(ctx context.Context, message *sarama.ConsumerMessage) error {
	var msg Message
	if err := json.Unmarshal(message.Value, &msg); err != nil {
		consumer.log.Error("undecodable notification", zap.Error(err), zap.Int64("offset", message.Offset))
		return nil
	}

	attempt := 0
	err := retry.Do(ctx, func(ctx context.Context) error {
		attempt++
		err := consumer.mailer.Deliver(ctx, msg)
		if err != nil {
			consumer.log.Warn("mailer.Deliver", zap.String("id", msg.ID), zap.Int("attempt", attempt), zap.Error(err))
		}
		return err
	}, append(consumer.retryOpts, retry.WithRetryIf(func(err error) bool {
		return ctx.Err() == nil
	}))...)
	if err != nil {
		consumer.log.Error("delivery failed", zap.String("id", msg.ID), zap.Int("attempts", attempt), zap.Error(err))
		return err
	}
	consumer.log.Debug("delivered", zap.String("id", msg.ID), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
	return nil
}

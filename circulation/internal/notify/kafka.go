package notify

import (
	"context"
	"encoding/json"

	"github.com/Astemirdum/library-circulation/pkg/circuit_breaker"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type kafkaNotifier struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
}

func NewKafkaNotifier(producer sarama.SyncProducer, topic string, cb circuit_breaker.CircuitBreaker, log *zap.Logger) *kafkaNotifier {
	return &kafkaNotifier{
		producer: producer,
		topic:    topic,
		cb:       cb,
		log:      log.Named("notify.kafka"),
	}
}

func (n *kafkaNotifier) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	pm := &sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(msg.ID),
		Value: sarama.ByteEncoder(data),
	}
	return n.cb.Call(func() error {
		partition, offset, err := n.producer.SendMessage(pm)
		if err != nil {
			return errors.Wrap(err, "kafka send")
		}
		n.log.Debug("published", zap.String("id", msg.ID), zap.Int32("partition", partition), zap.Int64("offset", offset))
		return nil
	})
}

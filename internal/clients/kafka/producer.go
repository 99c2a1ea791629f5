package kafka

import (
	"context"

	"github.com/Shopify/sarama"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-reports/internal/entity/expense"
	"max.ks1230/expense-reports/internal/logger"
)

type producerConfig interface {
	Brokers() []string
	ReportsTopic() string
}

// Producer publishes generated reports, keyed by period.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg producerConfig) (*Producer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers(), config)
	if err != nil {
		return nil, errors.Wrap(err, "create kafka producer")
	}
	return newProducer(producer, cfg.ReportsTopic()), nil
}

func newProducer(producer sarama.SyncProducer, topic string) *Producer {
	return &Producer{
		producer: producer,
		topic:    topic,
	}
}

func (p *Producer) PublishReport(ctx context.Context, report expense.Report) error {
	span, _ := opentracing.StartSpanFromContext(ctx, "publishReport")
	defer span.Finish()

	value, err := encodeReport(report)
	if err != nil {
		return errors.Wrap(err, "publish report")
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(report.Period),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return errors.Wrap(err, "publish report")
	}

	logger.Info("report published",
		zap.String("period", string(report.Period)),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
	)
	return nil
}

func (p *Producer) Close() {
	err := p.producer.Close()
	if err != nil {
		logger.Error("failed to close producer", zap.Error(err))
	}
}

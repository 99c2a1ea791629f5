package kafka

import (
	"context"
	"time"

	"github.com/Shopify/sarama"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-reports/internal/entity/expense"
	"max.ks1230/expense-reports/internal/logger"
)

type consumerConfig interface {
	Brokers() []string
	ConsumerGroup() string
	ExpensesTopic() string
}

// ExpenseCreator stores submissions read from the expenses topic.
//
//go:generate minimock -i ExpenseCreator -o ./mock/ -s _mock.go
type ExpenseCreator interface {
	CreateExpense(ctx context.Context, draft expense.Draft) (expense.Expense, error)
}

// Consumer reads expense submissions from a consumer group.
type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	topic         string
	creator       ExpenseCreator
	location      *time.Location
}

func NewConsumer(cfg consumerConfig, creator ExpenseCreator, location *time.Location) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers(), cfg.ConsumerGroup(), config)
	if err != nil {
		return nil, errors.Wrap(err, "create kafka consumer group")
	}
	return &Consumer{
		consumerGroup: consumerGroup,
		topic:         cfg.ExpensesTopic(),
		creator:       creator,
		location:      location,
	}, nil
}

// StartConsuming blocks until ctx is done or the group fails.
func (c *Consumer) StartConsuming(ctx context.Context) error {
	defer func() {
		if err := c.consumerGroup.Close(); err != nil {
			logger.Error("failed to close consumer group", zap.Error(err))
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			err := c.consumerGroup.Consume(ctx, []string{c.topic}, c)
			if err != nil {
				return errors.Wrapf(err, "consume from %s", c.topic)
			}
		}
	}
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - setup")
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - cleanup")
	return nil
}

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		if err := c.handleMessage(session.Context(), message); err != nil {
			logger.Error("skipping expense submission",
				zap.ByteString("key", message.Key),
				zap.Int64("offset", message.Offset),
				zap.Error(err),
			)
		}
		session.MarkMessage(message, "")
	}
	return nil
}

func (c *Consumer) handleMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "consumeExpense")
	defer span.Finish()

	category, amount, date, err := decodeSubmission(message.Value)
	if err != nil {
		ext.Error.Set(span, true)
		return errors.Wrap(err, "handle message")
	}
	draft, err := expense.ParseDraft(category, amount, date, c.location)
	if err != nil {
		ext.Error.Set(span, true)
		return errors.Wrap(err, "handle message")
	}

	exp, err := c.creator.CreateExpense(ctx, draft)
	if err != nil {
		ext.Error.Set(span, true)
		return errors.Wrap(err, "handle message")
	}
	logger.Info("expense consumed", zap.Int64("id", exp.ID), zap.Int64("offset", message.Offset))
	return nil
}

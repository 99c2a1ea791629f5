package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	"max.ks1230/expense-reports/internal/logger"
)

// MessageSender delivers a reply to one chat user.
//
//go:generate minimock -i MessageSender -o ./mock/ -s _mock.go
type MessageSender interface {
	SendMessage(text string, userID int64) error
}

type MessageHandler interface {
	HandleMessage(ctx context.Context, text string, userID int64) (string, error)
}

// Service answers chat messages with the result of the matching command.
type Service struct {
	sender  MessageSender
	handler MessageHandler
}

func NewService(sender MessageSender, expenses ExpenseService, location *time.Location) *Service {
	return &Service{
		sender:  sender,
		handler: newHandler(expenses, location),
	}
}

type Message struct {
	Text   string
	UserID int64
}

// HandleIncomingMessage sends exactly one reply per message. A failed
// command still gets an apology, and its error is returned.
func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()
	span.SetTag("user_id", msg.UserID)

	start := time.Now()
	err := s.reply(ctx, msg)
	observeResponse(time.Since(start), err != nil)

	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Service) reply(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleMessage(ctx, msg.Text, msg.UserID)
	if err == nil {
		return s.sender.SendMessage(resp, msg.UserID)
	}

	logger.Error("command failed", zap.Int64("user_id", msg.UserID), zap.Error(err))
	if sendErr := s.sender.SendMessage(sorryMessage, msg.UserID); sendErr != nil {
		logger.Warn("apology not delivered", zap.Int64("user_id", msg.UserID), zap.Error(sendErr))
	}
	return err
}

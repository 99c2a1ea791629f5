package messages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"max.ks1230/expense-reports/internal/entity/expense"
	"max.ks1230/expense-reports/internal/model/customerr"
)

const (
	dontUnderstandMessage = "I don't understand you :("
	helloMessage          = "Hello! I record your expenses and send daily, weekly and monthly reports 🤖"
	loveToTalkMessage     = "I would love to talk about it more!"
	noExpensesMessage     = "You have no expenses yet"
	sorryMessage          = "Sorry, something wrong happened..."

	expenseUsageMessage = "Usage: /expense <category> <amount> [dd.mm.yyyy]"
	reportUsageMessage  = "Usage: /report <daily|weekly|monthly>"
)

const (
	startCommand    = "/start"
	expenseCommand  = "/expense"
	expensesCommand = "/expenses"
	reportCommand   = "/report"
	analysisCommand = "/analysis"
)

//go:generate minimock -i ExpenseService -o ./mock/ -s _mock.go
type ExpenseService interface {
	CreateExpense(ctx context.Context, draft expense.Draft) (expense.Expense, error)
	ListExpenses(ctx context.Context) []expense.Expense
	GetReports(ctx context.Context, periodName string) ([]expense.Report, error)
	GetAnalysis(ctx context.Context) expense.Summary
}

type handler func(ctx context.Context, arg string, userID int64) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	expenses    ExpenseService
	location    *time.Location
	now         func() time.Time
}

func newHandler(expenses ExpenseService, location *time.Location) *HandlerService {
	res := &HandlerService{
		expenses: expenses,
		location: location,
		now:      time.Now,
	}
	res.handlersMap = newMap(res)
	return res
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[expenseCommand] = s.handleExpense
	m[expensesCommand] = s.handleExpenses
	m[reportCommand] = s.handleReport
	m[analysisCommand] = s.handleAnalysis

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string, userID int64) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg, userID)
	}
	return dontUnderstandMessage, nil
}

func (s *HandlerService) handleStart(_ context.Context, _ string, _ int64) (string, error) {
	return helloMessage, nil
}

func (s *HandlerService) handleExpense(ctx context.Context, arg string, _ int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) < 2 || len(args) > 3 {
		return expenseUsageMessage, nil
	}

	date := s.now().In(s.location).Format(time.RFC3339Nano)
	if len(args) == 3 {
		date = args[2]
	}

	draft, err := expense.ParseDraft(args[0], args[1], date, s.location)
	if err != nil {
		return invalidInputMessage(err), nil
	}

	exp, err := s.expenses.CreateExpense(ctx, draft)
	if customerr.IsInvalidInput(err) {
		return invalidInputMessage(err), nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle expense")
	}
	return fmt.Sprintf("Gotcha! Expense #%d saved", exp.ID), nil
}

func (s *HandlerService) handleExpenses(ctx context.Context, _ string, _ int64) (string, error) {
	exps := s.expenses.ListExpenses(ctx)
	if len(exps) == 0 {
		return noExpensesMessage, nil
	}
	return formatExpenses(exps, s.location), nil
}

func (s *HandlerService) handleReport(ctx context.Context, arg string, _ int64) (string, error) {
	if strings.TrimSpace(arg) == "" {
		return reportUsageMessage, nil
	}

	reps, err := s.expenses.GetReports(ctx, arg)
	if customerr.IsInvalidInput(err) {
		return reportUsageMessage, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle report")
	}

	if len(reps) == 0 {
		return fmt.Sprintf("No %s reports yet", strings.ToLower(strings.TrimSpace(arg))), nil
	}
	return formatReport(reps[len(reps)-1], s.location), nil
}

func (s *HandlerService) handleAnalysis(ctx context.Context, _ string, _ int64) (string, error) {
	summary := s.expenses.GetAnalysis(ctx)
	if len(summary.TotalByCategory) == 0 {
		return noExpensesMessage, nil
	}
	return formatSummary(summary), nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string, _ int64) (string, error) {
	return loveToTalkMessage, nil
}

func invalidInputMessage(err error) string {
	var invalid *customerr.InvalidInputError
	if errors.As(err, &invalid) {
		return "That is an incorrect expense: " + invalid.Err + "\n" + expenseUsageMessage
	}
	return expenseUsageMessage
}

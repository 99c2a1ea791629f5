package messages

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"max.ks1230/expense-reports/internal/entity/expense"
	"max.ks1230/expense-reports/internal/model/customerr"
	"max.ks1230/expense-reports/internal/model/messages/mock"
)

const userID = int64(123)

var fixedNow = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

func newTestService(m *minimock.Controller) (*Service, *mock.MessageSenderMock, *mock.ExpenseServiceMock) {
	sender := mock.NewMessageSenderMock(m)
	expenses := mock.NewExpenseServiceMock(m)

	h := newHandler(expenses, time.UTC)
	h.now = func() time.Time { return fixedNow }
	return &Service{sender: sender, handler: h}, sender, expenses
}

func send(s *Service, text string) error {
	return s.HandleIncomingMessage(context.Background(), Message{Text: text, UserID: userID})
}

func Test_OnStartCommand_ShouldAnswerWithIntroMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	model, sender, _ := newTestService(m)

	sender.SendMessageMock.
		Expect(helloMessage, userID).
		Return(nil)

	assert.NoError(t, send(model, "/start"))
}

func Test_OnUnknownCommand_ShouldAnswerWithHelpMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	model, sender, _ := newTestService(m)

	sender.SendMessageMock.
		Expect("I don't understand you :(", userID).
		Return(nil)

	assert.NoError(t, send(model, "/none"))
}

func Test_OnPlainText_ShouldAnswerWithSmallTalk(t *testing.T) {
	tests := []string{"hello", "hello there", "  spent 10 on /expense food  "}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			m := minimock.NewController(t)
			defer m.Finish()
			model, sender, _ := newTestService(m)

			sender.SendMessageMock.
				Expect(loveToTalkMessage, userID).
				Return(nil)

			assert.NoError(t, send(model, text))
		})
	}
}

func Test_OnParseCommand_ShouldRequireLeadingSlash(t *testing.T) {
	tests := []struct {
		text    string
		wantCmd string
		wantArg string
	}{
		{text: "/report weekly", wantCmd: "/report", wantArg: "weekly"},
		{text: "  /expense  Food 10 ", wantCmd: "/expense", wantArg: "Food 10"},
		{text: "/analysis", wantCmd: "/analysis", wantArg: ""},
		{text: "hello there", wantCmd: "", wantArg: "hello there"},
		{text: "report /weekly", wantCmd: "", wantArg: "report /weekly"},
		{text: "", wantCmd: "", wantArg: ""},
	}

	for _, tt := range tests {
		cmd, arg := parseCommand(tt.text)

		assert.Equal(t, tt.wantCmd, cmd, tt.text)
		assert.Equal(t, tt.wantArg, arg, tt.text)
	}
}

func Test_OnExpenseCommand_ShouldCreateExpense(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	model, sender, expenses := newTestService(m)

	draft := expense.Draft{Category: "Food", Amount: 10.5, Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)}
	expenses.CreateExpenseMock.
		Inspect(func(ctx context.Context, got expense.Draft) {
			assert.Equal(m, draft, got)
		}).
		Return(expense.Expense{ID: 3, Category: "Food", Amount: 10.5, Date: draft.Date}, nil)
	sender.SendMessageMock.
		Expect("Gotcha! Expense #3 saved", userID).
		Return(nil)

	assert.NoError(t, send(model, "/expense Food 10.50 10.03.2024"))
}

func Test_OnExpenseCommandWithoutDate_ShouldUseCurrentTime(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	model, sender, expenses := newTestService(m)

	draft := expense.Draft{Category: "Transport", Amount: 20, Date: fixedNow}
	expenses.CreateExpenseMock.
		Inspect(func(ctx context.Context, got expense.Draft) {
			assert.Equal(m, draft, got)
		}).
		Return(expense.Expense{ID: 1, Category: "Transport", Amount: 20, Date: fixedNow}, nil)
	sender.SendMessageMock.
		Expect("Gotcha! Expense #1 saved", userID).
		Return(nil)

	assert.NoError(t, send(model, "/expense Transport 20"))
}

func Test_OnMalformedExpenseCommand_ShouldExplainUsage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "missing amount", text: "/expense Food", want: expenseUsageMessage},
		{name: "too many args", text: "/expense Food 1 10.03.2024 extra", want: expenseUsageMessage},
		{name: "amount not a number", text: "/expense Food ten", want: "That is an incorrect expense: cannot parse amount \"ten\"\n" + expenseUsageMessage},
		{name: "negative amount", text: "/expense Food -3", want: "That is an incorrect expense: amount must not be negative, got -3\n" + expenseUsageMessage},
		{name: "bad date", text: "/expense Food 3 31.02", want: "That is an incorrect expense: cannot parse date \"31.02\"\n" + expenseUsageMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := minimock.NewController(t)
			defer m.Finish()
			model, sender, _ := newTestService(m)

			sender.SendMessageMock.
				Expect(tt.want, userID).
				Return(nil)

			assert.NoError(t, send(model, tt.text))
		})
	}
}

func Test_OnExpensesCommand_ShouldListExpenses(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	model, sender, expenses := newTestService(m)

	expenses.ListExpensesMock.Return([]expense.Expense{
		{ID: 1, Category: "Food", Amount: 10.5, Date: fixedNow},
		{ID: 2, Category: "Transport", Amount: 20, Date: fixedNow.AddDate(0, 0, -1)},
	})
	sender.SendMessageMock.
		Expect("#1 Food: 10.50 (20.03.2024)\n#2 Transport: 20.00 (19.03.2024)", userID).
		Return(nil)

	assert.NoError(t, send(model, "/expenses"))
}

func Test_OnExpensesCommandWithoutExpenses_ShouldSayNoExpenses(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	model, sender, expenses := newTestService(m)

	expenses.ListExpensesMock.Return([]expense.Expense{})
	sender.SendMessageMock.
		Expect(noExpensesMessage, userID).
		Return(nil)

	assert.NoError(t, send(model, "/expenses"))
}

func Test_OnReportCommand_ShouldSendLatestReport(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	model, sender, expenses := newTestService(m)

	older := expense.NewReport(expense.Weekly, fixedNow.AddDate(0, 0, -7), expense.Summary{TotalAmount: 1, TotalByCategory: map[string]float64{"Food": 1}})
	latest := expense.NewReport(expense.Weekly, fixedNow, expense.Summary{
		TotalAmount:     35.75,
		TotalByCategory: map[string]float64{"Food": 15.75, "Transport": 20},
	})
	expenses.GetReportsMock.
		Inspect(func(ctx context.Context, periodName string) {
			assert.Equal(m, "weekly", periodName)
		}).
		Return([]expense.Report{older, latest}, nil)
	sender.SendMessageMock.
		Expect("Weekly report, 20.03.2024 12:00\n\nTransport: 20.00\nFood: 15.75\n\nTotal: 35.75", userID).
		Return(nil)

	assert.NoError(t, send(model, "/report weekly"))
}

func Test_OnReportCommandWithoutReports_ShouldSayNoReports(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	model, sender, expenses := newTestService(m)

	expenses.GetReportsMock.Return([]expense.Report{}, nil)
	sender.SendMessageMock.
		Expect("No monthly reports yet", userID).
		Return(nil)

	assert.NoError(t, send(model, "/report monthly"))
}

func Test_OnReportCommandWithUnknownPeriod_ShouldExplainUsage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	model, sender, expenses := newTestService(m)

	expenses.GetReportsMock.Return(nil, customerr.InvalidInput("unknown period"))
	sender.SendMessageMock.
		Expect(reportUsageMessage, userID).
		Return(nil)

	assert.NoError(t, send(model, "/report yearly"))
}

func Test_OnAnalysisCommand_ShouldSendTotals(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	model, sender, expenses := newTestService(m)

	expenses.GetAnalysisMock.Return(expense.Summary{
		TotalAmount:     35.75,
		TotalByCategory: map[string]float64{"Food": 15.75, "Transport": 20},
	})
	sender.SendMessageMock.
		Expect("Transport: 20.00\nFood: 15.75\n\nTotal: 35.75", userID).
		Return(nil)

	assert.NoError(t, send(model, "/analysis"))
}

func Test_OnServiceFailure_ShouldApologizeAndReturnError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	model, sender, expenses := newTestService(m)

	expenses.CreateExpenseMock.Return(expense.Expense{}, errors.New("storage down"))
	sender.SendMessageMock.
		Expect(sorryMessage, userID).
		Return(nil)

	assert.Error(t, send(model, "/expense Food 1"))
}

func Test_OnUndeliveredApology_ShouldStillReturnCommandError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	model, sender, expenses := newTestService(m)

	storageErr := errors.New("storage down")
	expenses.CreateExpenseMock.Return(expense.Expense{}, storageErr)
	sender.SendMessageMock.
		Expect(sorryMessage, userID).
		Return(errors.New("telegram unreachable"))

	assert.ErrorIs(t, send(model, "/expense Food 1"), storageErr)
}

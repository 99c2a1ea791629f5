package kafka

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"max.ks1230/expense-reports/internal/entity/expense"
)

func encodeReport(report expense.Report) ([]byte, error) {
	byCategory := make(map[string]interface{}, len(report.TotalByCategory))
	for cat, amount := range report.TotalByCategory {
		byCategory[cat] = amount
	}

	msg, err := structpb.NewStruct(map[string]interface{}{
		"period":          string(report.Period),
		"generatedAt":     report.GeneratedAt.Format(time.RFC3339Nano),
		"totalAmount":     report.TotalAmount,
		"totalByCategory": byCategory,
	})
	if err != nil {
		return nil, errors.Wrap(err, "build report message")
	}
	return proto.Marshal(msg)
}

// decodeSubmission reads the raw category, amount and date fields of an
// expense submission. amount may be sent as a number or a string.
func decodeSubmission(raw []byte) (category, amount, date string, err error) {
	var msg structpb.Struct
	if err = proto.Unmarshal(raw, &msg); err != nil {
		return "", "", "", errors.Wrap(err, "unmarshal submission")
	}

	fields := msg.GetFields()
	category = fields["category"].GetStringValue()
	date = fields["date"].GetStringValue()

	switch v := fields["amount"].GetKind().(type) {
	case *structpb.Value_NumberValue:
		amount = strconv.FormatFloat(v.NumberValue, 'f', -1, 64)
	case *structpb.Value_StringValue:
		amount = v.StringValue
	}
	return category, amount, date, nil
}

package cache

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-reports/internal/entity/expense"
)

func Test_OnFormatKey_ShouldIncludeVersion(t *testing.T) {
	assert.Equal(t, "analysis:store-a:0", formatKey("store-a:0"))
	assert.Equal(t, "analysis:store-b:42", formatKey("store-b:42"))
}

func Test_OnDecodeSummary_ShouldRoundTripCachedValue(t *testing.T) {
	want := expense.Summary{TotalAmount: 35.75, TotalByCategory: map[string]float64{"Food": 15.75, "Transport": 20}}
	raw, err := json.Marshal(want)
	require.NoError(t, err)

	got, err := decodeSummary(raw)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func Test_OnDecodeEmptySummary_ShouldReturnEmptyMap(t *testing.T) {
	got, err := decodeSummary([]byte(`{"totalAmount":0}`))
	require.NoError(t, err)
	assert.NotNil(t, got.TotalByCategory)

	_, err = decodeSummary([]byte(`not json`))
	assert.Error(t, err)
}

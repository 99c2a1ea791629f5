package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnEmptyYAML_ShouldUseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.HTTP().Addr())
	assert.Equal(t, time.UTC, cfg.App().Location())
	assert.Equal(t, time.Sunday, cfg.App().WeekStart())
	assert.Equal(t, 0, cfg.App().MaxReports())
	assert.Equal(t, "expense-reports", cfg.Jaeger().ServiceName())
	assert.False(t, cfg.Telegram().Enabled())
	assert.False(t, cfg.Kafka().Enabled())
	assert.False(t, cfg.Memcached().Enabled())
}

func Test_OnFullYAML_ShouldExposeSections(t *testing.T) {
	raw := []byte(`
app:
  timezone: Europe/Moscow
  week-start: Monday
  report-retention: 30
http:
  addr: ":8080"
telegram:
  token: secret
kafka:
  brokers: ["localhost:9092"]
  consumer-group: reports
  reports-topic: expense-reports
  expenses-topic: expenses
memcached:
  hosts: ["localhost:11211"]
jaeger:
  service-name: reporter
  disabled: true
`)
	cfg, err := Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "Europe/Moscow", cfg.App().Location().String())
	assert.Equal(t, time.Monday, cfg.App().WeekStart())
	assert.Equal(t, 30, cfg.App().MaxReports())
	assert.Equal(t, ":8080", cfg.HTTP().Addr())
	assert.Equal(t, "secret", cfg.Telegram().Token())
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka().Brokers())
	assert.Equal(t, "reports", cfg.Kafka().ConsumerGroup())
	assert.Equal(t, "expense-reports", cfg.Kafka().ReportsTopic())
	assert.Equal(t, "expenses", cfg.Kafka().ExpensesTopic())
	assert.Equal(t, []string{"localhost:11211"}, cfg.Memcached().Hosts())
	assert.Equal(t, "reporter", cfg.Jaeger().ServiceName())
	assert.True(t, cfg.Jaeger().TracingDisabled())
}

func Test_OnEnvOverrides_ShouldPreferEnv(t *testing.T) {
	t.Setenv(telegramTokenEnvKey, "from-env")
	t.Setenv(httpAddrEnvKey, ":9999")

	cfg, err := Parse([]byte("telegram:\n  token: from-file\n"))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Telegram().Token())
	assert.Equal(t, ":9999", cfg.HTTP().Addr())
}

func Test_OnInvalidAppSection_ShouldFail(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "unknown timezone", raw: "app:\n  timezone: Mars/Olympus\n"},
		{name: "unknown week start", raw: "app:\n  week-start: someday\n"},
		{name: "negative retention", raw: "app:\n  report-retention: -1\n"},
		{name: "broken yaml", raw: "app: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func Test_OnNew_ShouldReadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http:\n  addr: \":4000\"\n"), 0o600))
	t.Setenv(configFileEnvKey, path)
	t.Setenv(httpAddrEnvKey, "")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, ":4000", cfg.HTTP().Addr())
}

func Test_OnNewWithMissingFile_ShouldUseDefaults(t *testing.T) {
	t.Setenv(configFileEnvKey, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv(httpAddrEnvKey, "")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.HTTP().Addr())
}

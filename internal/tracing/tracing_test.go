package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	disabled bool
}

func (c testConfig) ServiceName() string   { return "expense-reports-test" }
func (c testConfig) TracingDisabled() bool { return c.disabled }

func Test_OnDisabledTracing_ShouldReturnNopCloser(t *testing.T) {
	closer, err := Init(testConfig{disabled: true})
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}

func Test_OnEnabledTracing_ShouldInstallTracer(t *testing.T) {
	t.Setenv("JAEGER_SAMPLER_TYPE", "const")
	t.Setenv("JAEGER_SAMPLER_PARAM", "0")

	closer, err := Init(testConfig{})
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}

package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
	"max.ks1230/expense-reports/internal/logger"
)

type config interface {
	ServiceName() string
	TracingDisabled() bool
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init installs the global tracer. JAEGER_* environment variables override
// the sampler and reporter settings.
func Init(conf config) (io.Closer, error) {
	if conf.TracingDisabled() {
		logger.Info("Tracing disabled")
		return nopCloser{}, nil
	}

	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		return nil, errors.Wrap(err, "read jaeger env")
	}
	cfg.ServiceName = conf.ServiceName()
	if cfg.Sampler.Type == "" {
		cfg.Sampler.Type = jaeger.SamplerTypeConst
		cfg.Sampler.Param = 1
	}

	tracer, closer, err := cfg.NewTracer(jaegercfg.Logger(jaeger.StdLogger))
	if err != nil {
		return nil, errors.Wrap(err, "init jaeger tracer")
	}
	opentracing.SetGlobalTracer(tracer)

	logger.Info("Tracing enabled", zap.String("service", cfg.ServiceName))
	return closer, nil
}

package config

const defaultJaegerService = "expense-reports"

type JaegerConfig struct {
	Service  string `yaml:"service-name"`
	Disabled bool   `yaml:"disabled"`
}

func (s *JaegerConfig) ServiceName() string {
	return s.Service
}

func (s *JaegerConfig) TracingDisabled() bool {
	return s.Disabled
}

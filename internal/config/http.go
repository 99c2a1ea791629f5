package config

const defaultListenAddr = ":3000"

type HTTPConfig struct {
	ListenAddr string `yaml:"addr"`
}

func (s *HTTPConfig) Addr() string {
	return s.ListenAddr
}

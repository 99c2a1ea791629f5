package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFileEnvKey  = "CONFIG_FILE"
	defaultConfigFile = "data/config.yaml"

	telegramTokenEnvKey = "TELEGRAM_TOKEN"
	httpAddrEnvKey      = "HTTP_ADDR"
)

type config struct {
	App       AppConfig       `yaml:"app"`
	HTTP      HTTPConfig      `yaml:"http"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Jaeger    JaegerConfig    `yaml:"jaeger"`
}

type Service struct {
	config config
}

// New reads the file named by CONFIG_FILE (data/config.yaml by default).
// A missing file is not an error: every section falls back to its defaults.
func New() (*Service, error) {
	path := os.Getenv(configFileEnvKey)
	if path == "" {
		path = defaultConfigFile
	}

	rawYAML, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "reading config file")
	}
	return Parse(rawYAML)
}

// Parse builds the config from raw YAML and applies env overrides.
func Parse(rawYAML []byte) (*Service, error) {
	s := &Service{config: defaults()}

	if err := yaml.Unmarshal(rawYAML, &s.config); err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	if token := os.Getenv(telegramTokenEnvKey); token != "" {
		s.config.Telegram.ApiToken = token
	}
	if addr := os.Getenv(httpAddrEnvKey); addr != "" {
		s.config.HTTP.ListenAddr = addr
	}

	if err := s.config.App.validate(); err != nil {
		return nil, errors.Wrap(err, "validate app config")
	}
	return s, nil
}

func defaults() config {
	return config{
		App: AppConfig{
			TimezoneName:  defaultTimezone,
			WeekStartName: defaultWeekStart,
		},
		HTTP: HTTPConfig{
			ListenAddr: defaultListenAddr,
		},
		Jaeger: JaegerConfig{
			Service: defaultJaegerService,
		},
	}
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) HTTP() *HTTPConfig {
	return &s.config.HTTP
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Jaeger() *JaegerConfig {
	return &s.config.Jaeger
}

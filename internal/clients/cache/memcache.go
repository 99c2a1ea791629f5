package cache

import (
	"encoding/json"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-reports/internal/entity/expense"
	"max.ks1230/expense-reports/internal/logger"
)

const (
	analysisKeyPrefix = "analysis:"
	// stale versions are never read again, let memcached drop them
	analysisTTLSeconds = 60 * 60
)

type MemcacheClient struct {
	client *memcache.Client
}

type config interface {
	Hosts() []string
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	if err := mc.Ping(); err != nil {
		return nil, errors.Wrap(err, "ping memcached")
	}
	return &MemcacheClient{mc}, nil
}

func formatKey(version string) string {
	return analysisKeyPrefix + version
}

func (mc *MemcacheClient) CacheAnalysis(version string, summary expense.Summary) error {
	logger.Info("cache analysis", zap.String("version", version))

	value, err := json.Marshal(summary)
	if err != nil {
		return errors.Wrap(err, "encode analysis")
	}
	return mc.client.Set(&memcache.Item{
		Key:        formatKey(version),
		Value:      value,
		Expiration: analysisTTLSeconds,
	})
}

func (mc *MemcacheClient) GetAnalysis(version string) (expense.Summary, error) {
	item, err := mc.client.Get(formatKey(version))
	if err != nil {
		return expense.Summary{}, err
	}
	return decodeSummary(item.Value)
}

func decodeSummary(raw []byte) (expense.Summary, error) {
	var summary expense.Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return expense.Summary{}, errors.Wrap(err, "decode analysis")
	}
	if summary.TotalByCategory == nil {
		summary.TotalByCategory = make(map[string]float64)
	}
	return summary, nil
}

package storage

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	config "github.com/localscan/explorer/configs"
	"github.com/localscan/explorer/internal/common"
)

const DEFAULT_MEMORY_MAX_ITEMS = 10000

// MemoryConnector keeps records in process memory. Past MaxItems the least recently used record is evicted.
type MemoryConnector struct {
	cache *lru.Cache[string, common.ContractMetadata]
}

func NewMemoryConnector(cfg *config.MemoryConfig) (*MemoryConnector, error) {
	maxItems := DEFAULT_MEMORY_MAX_ITEMS
	if cfg.MaxItems > 0 {
		maxItems = cfg.MaxItems
	}

	cache, err := lru.New[string, common.ContractMetadata](maxItems)
	if err != nil {
		return nil, fmt.Errorf("failed to create LRU cache: %w", err)
	}

	return &MemoryConnector{
		cache: cache,
	}, nil
}

func (m *MemoryConnector) GetMetadata(ctx context.Context, address string) (*common.ContractMetadata, error) {
	record, ok := m.cache.Get(address)
	if !ok {
		return nil, nil
	}
	return copyMetadata(record), nil
}

func (m *MemoryConnector) PutMetadata(ctx context.Context, record *common.ContractMetadata) error {
	m.cache.Add(record.Address, *copyMetadata(*record))
	return nil
}

func (m *MemoryConnector) ListMetadata(ctx context.Context) ([]common.ContractMetadata, error) {
	records := make([]common.ContractMetadata, 0, m.cache.Len())
	for _, record := range m.cache.Values() {
		records = append(records, *copyMetadata(record))
	}
	return records, nil
}

func (m *MemoryConnector) ClearMetadata(ctx context.Context) error {
	m.cache.Purge()
	return nil
}

func (m *MemoryConnector) Close() error {
	return nil
}

// copyMetadata detaches the ABI bytes so callers cannot mutate stored records.
func copyMetadata(record common.ContractMetadata) *common.ContractMetadata {
	record.ABI = append([]byte(nil), record.ABI...)
	return &record
}

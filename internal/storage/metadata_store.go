package storage

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/localscan/explorer/internal/common"
	"github.com/localscan/explorer/internal/metrics"
	"github.com/rs/zerolog/log"
)

// MetadataStore validates and normalizes records before they reach a backend and serializes writes:
// Save holds the lock of its address, Clear excludes every Save.
type MetadataStore struct {
	backend IMetadataBackend
	name    string
	now     func() time.Time

	clearMu sync.RWMutex
	locks   *addressLocks
}

type MetadataStoreOption func(*MetadataStore)

func WithClock(now func() time.Time) MetadataStoreOption {
	return func(s *MetadataStore) {
		s.now = now
	}
}

func NewMetadataStore(backend IMetadataBackend, name string, opts ...MetadataStoreOption) *MetadataStore {
	s := &MetadataStore{
		backend: backend,
		name:    name,
		now:     time.Now,
		locks:   newAddressLocks(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MetadataStore) Backend() string {
	return s.name
}

func (s *MetadataStore) Get(ctx context.Context, address string) (*common.ContractMetadata, error) {
	normalized, err := common.ValidateAddress(address)
	if err != nil {
		return nil, err
	}
	var record *common.ContractMetadata
	err = s.observe("get", func() error {
		record, err = s.backend.GetMetadata(ctx, normalized)
		return err
	})
	return record, err
}

// Save replaces the whole record for address. The ABI is validated first, an invalid one never
// reaches the backend.
func (s *MetadataStore) Save(ctx context.Context, address string, abi json.RawMessage, name string) error {
	record, err := common.NewContractMetadata(address, abi, name, s.now())
	if err != nil {
		return err
	}

	s.clearMu.RLock()
	defer s.clearMu.RUnlock()
	unlock := s.locks.lock(record.Address)
	defer unlock()

	return s.observe("save", func() error {
		return s.backend.PutMetadata(ctx, record)
	})
}

// ListVerified returns every stored record ordered by address.
func (s *MetadataStore) ListVerified(ctx context.Context) ([]common.ContractMetadata, error) {
	var records []common.ContractMetadata
	err := s.observe("list", func() error {
		var err error
		records, err = s.backend.ListMetadata(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []common.ContractMetadata{}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Address < records[j].Address
	})
	return records, nil
}

func (s *MetadataStore) Clear(ctx context.Context) error {
	s.clearMu.Lock()
	defer s.clearMu.Unlock()

	return s.observe("clear", func() error {
		return s.backend.ClearMetadata(ctx)
	})
}

func (s *MetadataStore) Close() error {
	return s.backend.Close()
}

func (s *MetadataStore) observe(operation string, fn func() error) error {
	start := time.Now()
	err := fn()
	metrics.MetadataStoreDuration.WithLabelValues(s.name, operation).Observe(time.Since(start).Seconds())
	outcome := "success"
	if err != nil {
		outcome = "error"
		log.Error().Err(err).Str("backend", s.name).Str("operation", operation).Msg("Metadata store operation failed")
	}
	metrics.MetadataStoreOperations.WithLabelValues(s.name, operation, outcome).Inc()
	return err
}

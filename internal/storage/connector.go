package storage

import (
	"context"
	"encoding/json"
	"fmt"

	config "github.com/localscan/explorer/configs"
	"github.com/localscan/explorer/internal/common"
)

// IMetadataStorage is the contract every metadata backend satisfies once wrapped in a MetadataStore.
// Addresses are normalized to lowercase on every call. Get returns nil, nil for an unknown address.
type IMetadataStorage interface {
	Get(ctx context.Context, address string) (*common.ContractMetadata, error)
	Save(ctx context.Context, address string, abi json.RawMessage, name string) error
	ListVerified(ctx context.Context) ([]common.ContractMetadata, error)
	Clear(ctx context.Context) error
	Close() error
}

// IMetadataBackend persists records that were already validated. Addresses passed in are canonical.
type IMetadataBackend interface {
	GetMetadata(ctx context.Context, address string) (*common.ContractMetadata, error)
	PutMetadata(ctx context.Context, record *common.ContractMetadata) error
	ListMetadata(ctx context.Context) ([]common.ContractMetadata, error)
	ClearMetadata(ctx context.Context) error
	Close() error
}

const metadataKeyPrefix = "contract_metadata:"

func metadataKey(address string) []byte {
	return []byte(metadataKeyPrefix + address)
}

func NewMetadataStorage(cfg *config.StorageConnectionConfig) (IMetadataStorage, error) {
	backend, name, err := NewConnector(cfg)
	if err != nil {
		return nil, err
	}
	return NewMetadataStore(backend, name), nil
}

// NewConnector opens the first configured backend and returns it with its name.
func NewConnector(cfg *config.StorageConnectionConfig) (IMetadataBackend, string, error) {
	var conn IMetadataBackend
	var name string
	var err error
	if cfg.Pebble != nil {
		name = "pebble"
		conn, err = NewPebbleConnector(cfg.Pebble)
	} else if cfg.Badger != nil {
		name = "badger"
		conn, err = NewBadgerConnector(cfg.Badger)
	} else if cfg.Memory != nil {
		name = "memory"
		conn, err = NewMemoryConnector(cfg.Memory)
	} else if cfg.Sqlite != nil {
		name = "sqlite"
		conn, err = NewSqliteConnector(cfg.Sqlite)
	} else if cfg.Postgres != nil {
		name = "postgres"
		conn, err = NewPostgresConnector(cfg.Postgres)
	} else if cfg.Redis != nil {
		name = "redis"
		conn, err = NewRedisConnector(cfg.Redis)
	} else if cfg.Remote != nil {
		name = "remote"
		conn, err = NewRemoteConnector(cfg.Remote)
	} else {
		return nil, "", fmt.Errorf("no storage driver configured")
	}

	if err != nil {
		return nil, "", fmt.Errorf("failed to create %s metadata storage: %w", name, err)
	}
	return conn, name, nil
}

func encodeMetadata(record *common.ContractMetadata) ([]byte, error) {
	return json.Marshal(record)
}

func decodeMetadata(data []byte) (*common.ContractMetadata, error) {
	var record common.ContractMetadata
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode contract metadata: %w", err)
	}
	return &record, nil
}

package storage_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	config "github.com/localscan/explorer/configs"
	"github.com/localscan/explorer/internal/common"
	"github.com/localscan/explorer/internal/storage"
	"github.com/localscan/explorer/internal/storage/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T, cfg *config.StorageConnectionConfig) storage.IMetadataStorage {
	t.Helper()
	store, err := storage.NewMetadataStorage(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestMemoryMetadataStorage(t *testing.T) {
	storagetest.RunMetadataStorageSuite(t, func(t *testing.T) storage.IMetadataStorage {
		return openStore(t, &config.StorageConnectionConfig{Memory: &config.MemoryConfig{}})
	})
}

func TestPebbleMetadataStorage(t *testing.T) {
	storagetest.RunMetadataStorageSuite(t, func(t *testing.T) storage.IMetadataStorage {
		return openStore(t, &config.StorageConnectionConfig{Pebble: &config.PebbleConfig{Path: t.TempDir()}})
	})
}

func TestBadgerMetadataStorage(t *testing.T) {
	storagetest.RunMetadataStorageSuite(t, func(t *testing.T) storage.IMetadataStorage {
		return openStore(t, &config.StorageConnectionConfig{Badger: &config.BadgerConfig{InMemory: true}})
	})
}

func TestSqliteMetadataStorage(t *testing.T) {
	storagetest.RunMetadataStorageSuite(t, func(t *testing.T) storage.IMetadataStorage {
		return openStore(t, &config.StorageConnectionConfig{Sqlite: &config.SqliteConfig{Path: filepath.Join(t.TempDir(), "metadata.db")}})
	})
}

func TestPostgresMetadataStorage(t *testing.T) {
	host := os.Getenv("TEST_POSTGRES_HOST")
	if host == "" {
		t.Skip("Skipping Postgres tests - requires running Postgres instance")
	}
	storagetest.RunMetadataStorageSuite(t, func(t *testing.T) storage.IMetadataStorage {
		store := openStore(t, &config.StorageConnectionConfig{Postgres: &config.PostgresConfig{
			Host:         host,
			Port:         5432,
			Username:     "test",
			Password:     "test",
			Database:     "test_explorer",
			SSLMode:      "disable",
			MaxOpenConns: 10,
			MaxIdleConns: 5,
		}})
		require.NoError(t, store.Clear(context.Background()))
		return store
	})
}

func TestRedisMetadataStorage(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("Skipping Redis tests - requires running Redis instance")
	}
	storagetest.RunMetadataStorageSuite(t, func(t *testing.T) storage.IMetadataStorage {
		store := openStore(t, &config.StorageConnectionConfig{Redis: &config.RedisConfig{Addr: addr, Key: "explorer:test:" + t.Name()}})
		require.NoError(t, store.Clear(context.Background()))
		return store
	})
}

func TestPebbleMetadataStorage_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := storage.NewMetadataStorage(&config.StorageConnectionConfig{Pebble: &config.PebbleConfig{Path: dir}})
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, storagetest.TokenAddress, storagetest.TokenABI, "Token"))
	require.NoError(t, first.Close())

	second := openStore(t, &config.StorageConnectionConfig{Pebble: &config.PebbleConfig{Path: dir}})
	record, err := second.Get(ctx, storagetest.TokenAddress)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "Token", record.Name)
}

func TestNewConnector_NoDriver(t *testing.T) {
	_, err := storage.NewMetadataStorage(&config.StorageConnectionConfig{})
	assert.EqualError(t, err, "no storage driver configured")
}

func TestMetadataStore_UsesClock(t *testing.T) {
	backend, err := storage.NewMemoryConnector(&config.MemoryConfig{})
	require.NoError(t, err)
	storedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := storage.NewMetadataStore(backend, "memory", storage.WithClock(func() time.Time { return storedAt }))

	require.NoError(t, store.Save(context.Background(), storagetest.GreeterAddress, storagetest.GreeterABI, "Greeter"))
	record, err := store.Get(context.Background(), storagetest.GreeterAddress)
	require.NoError(t, err)
	assert.Equal(t, storedAt.UnixMilli(), record.Timestamp)
	assert.Equal(t, storedAt, record.StoredAt().UTC())
}

// slowBackend records overlapping writes per address.
type slowBackend struct {
	storage.IMetadataBackend
	mu        sync.Mutex
	active    map[string]int
	overlaps  int
	clearing  bool
	clashWith int
}

func (b *slowBackend) enter(address string) {
	b.mu.Lock()
	b.active[address]++
	if b.active[address] > 1 {
		b.overlaps++
	}
	if b.clearing {
		b.clashWith++
	}
	b.mu.Unlock()
}

func (b *slowBackend) leave(address string) {
	b.mu.Lock()
	b.active[address]--
	b.mu.Unlock()
}

func (b *slowBackend) PutMetadata(ctx context.Context, record *common.ContractMetadata) error {
	b.enter(record.Address)
	defer b.leave(record.Address)
	time.Sleep(time.Millisecond)
	return b.IMetadataBackend.PutMetadata(ctx, record)
}

func (b *slowBackend) ClearMetadata(ctx context.Context) error {
	b.mu.Lock()
	b.clearing = true
	b.mu.Unlock()
	time.Sleep(2 * time.Millisecond)
	b.mu.Lock()
	b.clearing = false
	b.mu.Unlock()
	return b.IMetadataBackend.ClearMetadata(ctx)
}

func TestMetadataStore_SerializesWrites(t *testing.T) {
	memory, err := storage.NewMemoryConnector(&config.MemoryConfig{})
	require.NoError(t, err)
	backend := &slowBackend{IMetadataBackend: memory, active: map[string]int{}}
	store := storage.NewMetadataStore(backend, "memory")
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i == 6 {
				assert.NoError(t, store.Clear(ctx))
				return
			}
			abi := json.RawMessage(`["function f` + strconv.Itoa(i) + `()"]`)
			assert.NoError(t, store.Save(ctx, storagetest.TokenAddress, abi, "f"+strconv.Itoa(i)))
		}(i)
	}
	wg.Wait()

	assert.Zero(t, backend.overlaps)
	assert.Zero(t, backend.clashWith)
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/pebble"
	config "github.com/localscan/explorer/configs"
	"github.com/localscan/explorer/internal/common"
	"github.com/rs/zerolog/log"
)

type PebbleConnector struct {
	db *pebble.DB
}

func NewPebbleConnector(cfg *config.PebbleConfig) (*PebbleConnector, error) {
	path := cfg.Path
	if path == "" {
		path = filepath.Join(os.TempDir(), "explorer-metadata-pebble")
	}

	cache := pebble.NewCache(16 << 20) // 16MB, metadata records are small
	defer cache.Unref()

	opts := &pebble.Options{
		Cache:        cache,
		MemTableSize: 4 << 20,
		Levels:       make([]pebble.LevelOptions, 7),
		DisableWAL:   false,
	}
	for i := range opts.Levels {
		opts.Levels[i] = pebble.LevelOptions{
			BlockSize:   32 << 10,
			Compression: pebble.SnappyCompression,
		}
	}

	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble db: %w", err)
	}
	log.Debug().Str("path", path).Msg("Opened pebble metadata storage")

	return &PebbleConnector{db: db}, nil
}

func (pc *PebbleConnector) Close() error {
	return pc.db.Close()
}

func (pc *PebbleConnector) GetMetadata(ctx context.Context, address string) (*common.ContractMetadata, error) {
	val, closer, err := pc.db.Get(metadataKey(address))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	return decodeMetadata(val)
}

func (pc *PebbleConnector) PutMetadata(ctx context.Context, record *common.ContractMetadata) error {
	data, err := encodeMetadata(record)
	if err != nil {
		return err
	}
	return pc.db.Set(metadataKey(record.Address), data, pebble.Sync)
}

func (pc *PebbleConnector) ListMetadata(ctx context.Context) ([]common.ContractMetadata, error) {
	prefix := []byte(metadataKeyPrefix)
	iter, err := pc.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: append(append([]byte(nil), prefix...), 0xff),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	records := []common.ContractMetadata{}
	for iter.First(); iter.Valid(); iter.Next() {
		val, err := iter.ValueAndErr()
		if err != nil {
			return nil, err
		}
		record, err := decodeMetadata(val)
		if err != nil {
			log.Debug().Err(err).Str("key", string(iter.Key())).Msg("Skipping undecodable metadata record")
			continue
		}
		records = append(records, *record)
	}
	return records, iter.Error()
}

func (pc *PebbleConnector) ClearMetadata(ctx context.Context) error {
	prefix := []byte(metadataKeyPrefix)
	return pc.db.DeleteRange(prefix, append(append([]byte(nil), prefix...), 0xff), pebble.Sync)
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger/v4"
	config "github.com/localscan/explorer/configs"
	"github.com/localscan/explorer/internal/common"
	"github.com/rs/zerolog/log"
)

type BadgerConnector struct {
	db       *badger.DB
	gcTicker *time.Ticker
	stopGC   chan struct{}
}

func NewBadgerConnector(cfg *config.BadgerConfig) (*BadgerConnector, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		path := cfg.Path
		if path == "" {
			path = filepath.Join(os.TempDir(), "explorer-metadata-badger")
		}
		opts = badger.DefaultOptions(path)
		opts.SyncWrites = true
	}
	opts.Logger = nil // Disable badger's internal logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	bc := &BadgerConnector{
		db:     db,
		stopGC: make(chan struct{}),
	}
	if !cfg.InMemory {
		bc.gcTicker = time.NewTicker(time.Duration(5) * time.Minute)
		go bc.runGC()
	}
	return bc, nil
}

func (bc *BadgerConnector) runGC() {
	for {
		select {
		case <-bc.gcTicker.C:
			err := bc.db.RunValueLogGC(0.5)
			if err != nil && !errors.Is(err, badger.ErrNoRewrite) {
				log.Debug().Err(err).Msg("BadgerDB GC error")
			}
		case <-bc.stopGC:
			return
		}
	}
}

func (bc *BadgerConnector) Close() error {
	if bc.gcTicker != nil {
		bc.gcTicker.Stop()
		close(bc.stopGC)
	}
	return bc.db.Close()
}

func (bc *BadgerConnector) GetMetadata(ctx context.Context, address string) (*common.ContractMetadata, error) {
	var record *common.ContractMetadata
	err := bc.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(metadataKey(address))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			record, err = decodeMetadata(val)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (bc *BadgerConnector) PutMetadata(ctx context.Context, record *common.ContractMetadata) error {
	data, err := encodeMetadata(record)
	if err != nil {
		return err
	}
	return bc.db.Update(func(txn *badger.Txn) error {
		return txn.Set(metadataKey(record.Address), data)
	})
}

func (bc *BadgerConnector) ListMetadata(ctx context.Context) ([]common.ContractMetadata, error) {
	records := []common.ContractMetadata{}
	err := bc.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(metadataKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				record, err := decodeMetadata(val)
				if err != nil {
					log.Debug().Err(err).Str("key", string(item.Key())).Msg("Skipping undecodable metadata record")
					return nil
				}
				records = append(records, *record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (bc *BadgerConnector) ClearMetadata(ctx context.Context) error {
	var keys [][]byte
	err := bc.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(metadataKeyPrefix)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return err
	}

	wb := bc.db.NewWriteBatch()
	for _, key := range keys {
		if err := wb.Delete(key); err != nil {
			wb.Cancel()
			return err
		}
	}
	return wb.Flush()
}

package storage

import (
	"context"
	"errors"
	"fmt"

	config "github.com/localscan/explorer/configs"
	"github.com/localscan/explorer/internal/common"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var DEFAULT_REDIS_POOL_SIZE = 20

const DEFAULT_REDIS_KEY = "explorer:contract_metadata"

// RedisConnector keeps all records in one hash, field per address, so Clear is a single DEL.
type RedisConnector struct {
	client *redis.Client
	key    string
}

func NewRedisConnector(cfg *config.RedisConfig) (*RedisConnector, error) {
	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = DEFAULT_REDIS_POOL_SIZE
	}
	key := cfg.Key
	if key == "" {
		key = DEFAULT_REDIS_KEY
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: poolSize,
	})

	ctx := context.Background()
	_, err := client.Ping(ctx).Result()
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info().Str("addr", cfg.Addr).Str("key", key).Msg("Connected to Redis")
	return &RedisConnector{
		client: client,
		key:    key,
	}, nil
}

func (r *RedisConnector) GetMetadata(ctx context.Context, address string) (*common.ContractMetadata, error) {
	value, err := r.client.HGet(ctx, r.key, address).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contract metadata: %w", err)
	}
	return decodeMetadata(value)
}

func (r *RedisConnector) PutMetadata(ctx context.Context, record *common.ContractMetadata) error {
	data, err := encodeMetadata(record)
	if err != nil {
		return err
	}
	if err := r.client.HSet(ctx, r.key, record.Address, data).Err(); err != nil {
		return fmt.Errorf("failed to store contract metadata: %w", err)
	}
	return nil
}

func (r *RedisConnector) ListMetadata(ctx context.Context) ([]common.ContractMetadata, error) {
	values, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list contract metadata: %w", err)
	}
	records := make([]common.ContractMetadata, 0, len(values))
	for address, value := range values {
		record, err := decodeMetadata([]byte(value))
		if err != nil {
			log.Debug().Err(err).Str("address", address).Msg("Skipping undecodable metadata record")
			continue
		}
		records = append(records, *record)
	}
	return records, nil
}

func (r *RedisConnector) ClearMetadata(ctx context.Context) error {
	return r.client.Del(ctx, r.key).Err()
}

func (r *RedisConnector) Close() error {
	return r.client.Close()
}

package decoder

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/localscan/explorer/internal/common"
	"github.com/rs/zerolog/log"
)

const DEFAULT_ABI_CACHE_SIZE = 256

// ABICache keeps parsed ABIs keyed by the hash of their JSON, so a re-verified contract is reparsed
// while repeated lookups of an unchanged record are not.
type ABICache struct {
	cache *lru.Cache[gethCommon.Hash, *abi.ABI]
}

func NewABICache(size int) (*ABICache, error) {
	if size <= 0 {
		size = DEFAULT_ABI_CACHE_SIZE
	}
	cache, err := lru.New[gethCommon.Hash, *abi.ABI](size)
	if err != nil {
		return nil, err
	}
	return &ABICache{cache: cache}, nil
}

// Get returns the parsed ABI of metadata, or nil when there is none or it cannot be parsed.
func (c *ABICache) Get(metadata *common.ContractMetadata) *abi.ABI {
	if !metadata.HasABI() {
		return nil
	}
	if c == nil {
		return parseMetadataABI(metadata)
	}
	key := crypto.Keccak256Hash(metadata.ABI)
	if parsed, ok := c.cache.Get(key); ok {
		return parsed
	}
	parsed := parseMetadataABI(metadata)
	if parsed != nil {
		c.cache.Add(key, parsed)
	}
	return parsed
}

func (c *ABICache) Len() int {
	if c == nil {
		return 0
	}
	return c.cache.Len()
}

func parseMetadataABI(metadata *common.ContractMetadata) *abi.ABI {
	parsed, err := metadata.ParseABI()
	if err != nil {
		log.Warn().Err(err).Str("address", metadata.Address).Msg("Stored ABI could not be parsed")
		return nil
	}
	return parsed
}

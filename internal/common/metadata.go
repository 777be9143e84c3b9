package common

import (
	"encoding/json"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ContractMetadata is a locally verified contract: an address with a user supplied ABI and display name.
type ContractMetadata struct {
	Address   string          `json:"address"`
	ABI       json.RawMessage `json:"abi" swaggertype:"array,object"`
	Name      string          `json:"name"`
	Verified  bool            `json:"verified"`
	Timestamp int64           `json:"timestamp"`
}

// NewContractMetadata validates and canonicalizes a record before it reaches any backend,
// so no store ever holds an unparsable ABI or a non-canonical address.
func NewContractMetadata(address string, rawABI []byte, name string, storedAt time.Time) (*ContractMetadata, error) {
	normalized, err := ValidateAddress(address)
	if err != nil {
		return nil, err
	}
	canonical, err := CanonicalizeABI(rawABI)
	if err != nil {
		return nil, err
	}
	return &ContractMetadata{
		Address:   normalized,
		ABI:       canonical,
		Name:      name,
		Verified:  true,
		Timestamp: storedAt.UnixMilli(),
	}, nil
}

func (m *ContractMetadata) HasABI() bool {
	return m != nil && len(m.ABI) > 0
}

func (m *ContractMetadata) ParseABI() (*abi.ABI, error) {
	return ParseABI(m.ABI)
}

func (m *ContractMetadata) StoredAt() time.Time {
	return time.UnixMilli(m.Timestamp)
}

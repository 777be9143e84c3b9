package common

import (
	"math/big"
)

type Block struct {
	ChainId           *big.Int      `json:"chain_id,omitempty" swaggertype:"string"`
	Number            *big.Int      `json:"number" swaggertype:"string"`
	Hash              string        `json:"hash"`
	ParentHash        string        `json:"parent_hash"`
	Timestamp         uint64        `json:"timestamp"`
	Miner             string        `json:"miner"`
	GasUsed           *big.Int      `json:"gas_used" swaggertype:"string"`
	GasLimit          *big.Int      `json:"gas_limit" swaggertype:"string"`
	BaseFeePerGas     *big.Int      `json:"base_fee_per_gas,omitempty" swaggertype:"string"`
	Size              uint64        `json:"size"`
	ExtraData         string        `json:"extra_data"`
	TransactionCount  uint64        `json:"transaction_count"`
	TransactionHashes []string      `json:"transaction_hashes,omitempty"`
	Transactions      []Transaction `json:"transactions,omitempty"`
}

// NumberUint64 returns the block number, or zero for a block without one.
func (b *Block) NumberUint64() uint64 {
	if b.Number == nil {
		return 0
	}
	return b.Number.Uint64()
}

package common

import (
	"math/big"
)

type Receipt struct {
	TransactionHash   string   `json:"transaction_hash"`
	TransactionIndex  uint64   `json:"transaction_index"`
	BlockHash         string   `json:"block_hash"`
	BlockNumber       *big.Int `json:"block_number" swaggertype:"string"`
	FromAddress       string   `json:"from_address"`
	ToAddress         *string  `json:"to_address"`
	ContractAddress   *string  `json:"contract_address"`
	Status            *uint64  `json:"status"`
	GasUsed           uint64   `json:"gas_used"`
	CumulativeGasUsed uint64   `json:"cumulative_gas_used"`
	EffectiveGasPrice *big.Int `json:"effective_gas_price,omitempty" swaggertype:"string"`
	Logs              []Log    `json:"logs"`
}

// Succeeded reports a post-byzantium success status. Receipts without a status are treated as successful.
func (r *Receipt) Succeeded() bool {
	return r.Status == nil || *r.Status == 1
}

package common

import (
	"math/big"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

type Transaction struct {
	ChainId              *big.Int     `json:"chain_id,omitempty" swaggertype:"string"`
	Hash                 string       `json:"hash"`
	Nonce                uint64       `json:"nonce"`
	BlockHash            string       `json:"block_hash,omitempty"`
	BlockNumber          *big.Int     `json:"block_number" swaggertype:"string"`
	BlockTimestamp       uint64       `json:"block_timestamp"`
	TransactionIndex     *uint64      `json:"transaction_index"`
	FromAddress          string       `json:"from_address"`
	ToAddress            *string      `json:"to_address"`
	Value                *uint256.Int `json:"value" swaggertype:"string"`
	Gas                  uint64       `json:"gas"`
	GasPrice             *big.Int     `json:"gas_price,omitempty" swaggertype:"string"`
	MaxFeePerGas         *big.Int     `json:"max_fee_per_gas,omitempty" swaggertype:"string"`
	MaxPriorityFeePerGas *big.Int     `json:"max_priority_fee_per_gas,omitempty" swaggertype:"string"`
	BaseFeePerGas        *big.Int     `json:"base_fee_per_gas,omitempty" swaggertype:"string"`
	Data                 string       `json:"data"`
	FunctionSelector     string       `json:"function_selector"`
	TransactionType      uint8        `json:"transaction_type"`
}

// IsPending reports whether the transaction has not been included in a block yet.
func (t *Transaction) IsPending() bool {
	return t.BlockNumber == nil
}

func (t *Transaction) IsContractCreation() bool {
	return t.ToAddress == nil || *t.ToAddress == ""
}

// Input returns the decoded call data. "0x" and malformed hex both yield an empty slice.
func (t *Transaction) Input() []byte {
	return gethCommon.FromHex(t.Data)
}

func (t *Transaction) SentBy(address string) bool {
	return AddressEqual(t.FromAddress, address)
}

func (t *Transaction) ReceivedBy(address string) bool {
	if t.IsContractCreation() {
		return false
	}
	return AddressEqual(*t.ToAddress, address)
}

// AttachBlock copies the fields only the containing block carries onto the transaction.
func (t *Transaction) AttachBlock(block *Block) {
	if block.Number != nil {
		t.BlockNumber = new(big.Int).Set(block.Number)
	}
	t.BlockHash = block.Hash
	t.BlockTimestamp = block.Timestamp
	if block.BaseFeePerGas != nil {
		t.BaseFeePerGas = new(big.Int).Set(block.BaseFeePerGas)
	}
	if t.ChainId == nil {
		t.ChainId = block.ChainId
	}
}

/**
 * Extracts the function selector (first 4 bytes) from a transaction input.
 */
func ExtractFunctionSelector(data string) string {
	if len(data) < 10 {
		return ""
	}
	return data[0:10]
}

package rpc

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

func GetBlockParams(withTransactions bool) func(*big.Int) []interface{} {
	return func(blockNum *big.Int) []interface{} {
		return []interface{}{hexutil.EncodeBig(blockNum), withTransactions}
	}
}

func GetTransactionParams(txHash string) []interface{} {
	return []interface{}{txHash}
}

package rpc

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/holiman/uint256"
	"github.com/localscan/explorer/internal/common"
	"github.com/rs/zerolog/log"
)

type RawBlock = map[string]interface{}
type RawTransaction = map[string]interface{}
type RawReceipt = map[string]interface{}

func serializeBlocks(chainId *big.Int, blocks []rawBlockResult) []GetBlocksResult {
	results := make([]GetBlocksResult, 0, len(blocks))

	for _, rawBlock := range blocks {
		result := GetBlocksResult{
			BlockNumber: rawBlock.number,
		}
		if rawBlock.err != nil {
			result.Error = rawBlock.err
			results = append(results, result)
			continue
		}

		if rawBlock.block == nil {
			log.Warn().Msgf("Received a nil block result for block %s.", rawBlock.number.String())
			result.Error = fmt.Errorf("%w: %s", ErrBlockNotFound, rawBlock.number.String())
			results = append(results, result)
			continue
		}

		result.Data = serializeBlock(chainId, rawBlock.block)
		results = append(results, result)
	}

	return results
}

// serializeBlock accepts both hash-only and full transaction lists.
func serializeBlock(chainId *big.Int, block RawBlock) common.Block {
	serialized := common.Block{
		ChainId:       chainId,
		Number:        hexToBigInt(block["number"]),
		Hash:          interfaceToString(block["hash"]),
		ParentHash:    interfaceToString(block["parentHash"]),
		Timestamp:     hexToUint64(block["timestamp"]),
		Miner:         interfaceToString(block["miner"]),
		Size:          hexToUint64(block["size"]),
		ExtraData:     interfaceToString(block["extraData"]),
		GasLimit:      hexToBigInt(block["gasLimit"]),
		GasUsed:       hexToBigInt(block["gasUsed"]),
		BaseFeePerGas: hexToOptionalBigInt(block["baseFeePerGas"]),
	}

	rawTransactions, _ := block["transactions"].([]interface{})
	serialized.TransactionCount = uint64(len(rawTransactions))
	serialized.TransactionHashes = make([]string, 0, len(rawTransactions))
	for _, rawTx := range rawTransactions {
		switch tx := rawTx.(type) {
		case string:
			serialized.TransactionHashes = append(serialized.TransactionHashes, tx)
		case map[string]interface{}:
			transaction := serializeTransaction(chainId, tx)
			transaction.AttachBlock(&serialized)
			serialized.TransactionHashes = append(serialized.TransactionHashes, transaction.Hash)
			serialized.Transactions = append(serialized.Transactions, transaction)
		default:
			log.Debug().Msgf("Failed to serialize transaction: %v", rawTx)
		}
	}
	return serialized
}

func serializeTransaction(chainId *big.Int, tx RawTransaction) common.Transaction {
	input := interfaceToString(tx["input"])
	return common.Transaction{
		ChainId:              chainId,
		Hash:                 interfaceToString(tx["hash"]),
		Nonce:                hexToUint64(tx["nonce"]),
		BlockHash:            interfaceToString(tx["blockHash"]),
		BlockNumber:          hexToOptionalBigInt(tx["blockNumber"]),
		TransactionIndex:     hexToOptionalUint64(tx["transactionIndex"]),
		FromAddress:          interfaceToString(tx["from"]),
		ToAddress:            interfaceToOptionalString(tx["to"]),
		Value:                hexToUint256(tx["value"]),
		Gas:                  hexToUint64(tx["gas"]),
		GasPrice:             hexToOptionalBigInt(tx["gasPrice"]),
		Data:                 input,
		FunctionSelector:     common.ExtractFunctionSelector(input),
		MaxFeePerGas:         hexToOptionalBigInt(tx["maxFeePerGas"]),
		MaxPriorityFeePerGas: hexToOptionalBigInt(tx["maxPriorityFeePerGas"]),
		TransactionType:      uint8(hexToUint64(tx["type"])),
	}
}

func serializeReceipt(receipt RawReceipt) common.Receipt {
	rawLogs, _ := receipt["logs"].([]interface{})
	logs := make([]common.Log, 0, len(rawLogs))
	for _, rawLog := range rawLogs {
		if logMap, ok := rawLog.(map[string]interface{}); ok {
			logs = append(logs, serializeLog(logMap))
		}
	}
	return common.Receipt{
		TransactionHash:   interfaceToString(receipt["transactionHash"]),
		TransactionIndex:  hexToUint64(receipt["transactionIndex"]),
		BlockHash:         interfaceToString(receipt["blockHash"]),
		BlockNumber:       hexToBigInt(receipt["blockNumber"]),
		FromAddress:       interfaceToString(receipt["from"]),
		ToAddress:         interfaceToOptionalString(receipt["to"]),
		ContractAddress:   interfaceToOptionalString(receipt["contractAddress"]),
		Status:            hexToOptionalUint64(receipt["status"]),
		GasUsed:           hexToUint64(receipt["gasUsed"]),
		CumulativeGasUsed: hexToUint64(receipt["cumulativeGasUsed"]),
		EffectiveGasPrice: hexToOptionalBigInt(receipt["effectiveGasPrice"]),
		Logs:              logs,
	}
}

func serializeLog(rawLog map[string]interface{}) common.Log {
	rawTopics, _ := rawLog["topics"].([]interface{})
	topics := make([]string, 0, len(rawTopics))
	for _, topic := range rawTopics {
		topics = append(topics, interfaceToString(topic))
	}
	removed, _ := rawLog["removed"].(bool)
	return common.Log{
		BlockNumber:      hexToBigInt(rawLog["blockNumber"]),
		BlockHash:        interfaceToString(rawLog["blockHash"]),
		TransactionHash:  interfaceToString(rawLog["transactionHash"]),
		TransactionIndex: hexToUint64(rawLog["transactionIndex"]),
		LogIndex:         hexToUint64(rawLog["logIndex"]),
		Address:          interfaceToString(rawLog["address"]),
		Data:             interfaceToString(rawLog["data"]),
		Topics:           topics,
		Removed:          removed,
	}
}

func hexToBigInt(hex interface{}) *big.Int {
	if v := hexToOptionalBigInt(hex); v != nil {
		return v
	}
	return new(big.Int)
}

// hexToOptionalBigInt returns nil for absent or null quantities, e.g. the block number of a pending transaction.
func hexToOptionalBigInt(hex interface{}) *big.Int {
	hexString := interfaceToString(hex)
	if len(hexString) < 3 {
		return nil
	}
	v, ok := new(big.Int).SetString(hexString[2:], 16)
	if !ok {
		return nil
	}
	return v
}

func hexToUint256(hex interface{}) *uint256.Int {
	v, overflow := uint256.FromBig(hexToBigInt(hex))
	if overflow {
		return new(uint256.Int)
	}
	return v
}

func hexToUint64(hex interface{}) uint64 {
	if v := hexToOptionalUint64(hex); v != nil {
		return *v
	}
	return 0
}

func hexToOptionalUint64(hex interface{}) *uint64 {
	hexString := interfaceToString(hex)
	if len(hexString) < 3 {
		return nil
	}
	v, err := strconv.ParseUint(hexString[2:], 16, 64)
	if err != nil {
		return nil
	}
	return &v
}

func interfaceToString(value interface{}) string {
	if value == nil {
		return ""
	}
	res, ok := value.(string)
	if !ok {
		return ""
	}
	return res
}

func interfaceToOptionalString(value interface{}) *string {
	res := interfaceToString(value)
	if res == "" {
		return nil
	}
	return &res
}

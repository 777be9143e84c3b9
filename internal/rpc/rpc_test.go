package rpc

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	gethRpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sender    = "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"
	recipient = "0x70997970c51812dc3a010c7d01b50e0d17dc79c8"
	txHash    = "0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060"
	pendingTx = "0x9f2e1b0e4e3b5a3d21a6d4f1f3b2c8e7d6a5b4c3d2e1f0a9b8c7d6e5f4a3b2c1"
)

type fakeEthService struct {
	blocks   map[uint64]map[string]interface{}
	txs      map[string]map[string]interface{}
	receipts map[string]map[string]interface{}
}

func (s *fakeEthService) ChainId() string {
	return "0x7a69"
}

func (s *fakeEthService) BlockNumber() string {
	return hexutil.EncodeUint64(uint64(len(s.blocks) - 1))
}

func (s *fakeEthService) GetBlockByNumber(number string, full bool) (map[string]interface{}, error) {
	n, err := hexutil.DecodeUint64(number)
	if err != nil {
		return nil, err
	}
	block, ok := s.blocks[n]
	if !ok {
		return nil, nil
	}
	if full {
		return block, nil
	}
	hashesOnly := make(map[string]interface{}, len(block))
	for k, v := range block {
		hashesOnly[k] = v
	}
	hashes := []interface{}{}
	for _, tx := range block["transactions"].([]interface{}) {
		hashes = append(hashes, tx.(map[string]interface{})["hash"])
	}
	hashesOnly["transactions"] = hashes
	return hashesOnly, nil
}

func (s *fakeEthService) GetTransactionByHash(hash string) (map[string]interface{}, error) {
	tx, ok := s.txs[hash]
	if !ok {
		return nil, nil
	}
	return tx, nil
}

func (s *fakeEthService) GetTransactionReceipt(hash string) (map[string]interface{}, error) {
	receipt, ok := s.receipts[hash]
	if !ok {
		return nil, nil
	}
	return receipt, nil
}

func newFakeNode() *fakeEthService {
	transferTx := map[string]interface{}{
		"hash":             txHash,
		"nonce":            "0x0",
		"blockHash":        "0xb1",
		"blockNumber":      "0x1",
		"transactionIndex": "0x0",
		"from":             sender,
		"to":               recipient,
		"value":            "0xde0b6b3a7640000",
		"gas":              "0x5208",
		"gasPrice":         "0x3b9aca00",
		"input":            "0x",
		"type":             "0x2",
	}
	return &fakeEthService{
		blocks: map[uint64]map[string]interface{}{
			0: {"number": "0x0", "hash": "0xb0", "parentHash": "0x00", "timestamp": "0x6630f000", "gasLimit": "0x1c9c380", "gasUsed": "0x0", "transactions": []interface{}{}},
			1: {"number": "0x1", "hash": "0xb1", "parentHash": "0xb0", "timestamp": "0x6630f00c", "gasLimit": "0x1c9c380", "gasUsed": "0x5208", "baseFeePerGas": "0x3b9aca00", "miner": "0x0000000000000000000000000000000000000000", "transactions": []interface{}{transferTx}},
		},
		txs: map[string]map[string]interface{}{
			txHash: transferTx,
			pendingTx: {
				"hash":             pendingTx,
				"nonce":            "0x1",
				"blockHash":        nil,
				"blockNumber":      nil,
				"transactionIndex": nil,
				"from":             sender,
				"to":               nil,
				"value":            "0x0",
				"gas":              "0x100000",
				"input":            "0x6080604052",
			},
		},
		receipts: map[string]map[string]interface{}{
			txHash: {
				"transactionHash":   txHash,
				"transactionIndex":  "0x0",
				"blockHash":         "0xb1",
				"blockNumber":       "0x1",
				"from":              sender,
				"to":                recipient,
				"contractAddress":   nil,
				"status":            "0x1",
				"gasUsed":           "0x5208",
				"cumulativeGasUsed": "0x5208",
				"effectiveGasPrice": "0x3b9aca00",
				"logs": []interface{}{
					map[string]interface{}{
						"address":          recipient,
						"topics":           []interface{}{"0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"},
						"data":             "0x",
						"blockNumber":      "0x1",
						"transactionHash":  txHash,
						"transactionIndex": "0x0",
						"logIndex":         "0x0",
						"removed":          false,
					},
				},
			},
		},
	}
}

func newTestClient(t *testing.T, blocksPerRequest int) *Client {
	t.Helper()
	server := gethRpc.NewServer()
	require.NoError(t, server.RegisterName("eth", newFakeNode()))
	t.Cleanup(server.Stop)
	client := NewClient(context.Background(), gethRpc.DialInProc(server), "inproc", blocksPerRequest)
	t.Cleanup(client.Close)
	return client
}

func TestClient_ChainIDAndLatestBlock(t *testing.T) {
	client := newTestClient(t, 10)

	assert.Equal(t, big.NewInt(31337), client.GetChainID())
	latest, err := client.GetLatestBlockNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1), latest)
}

func TestClient_GetBlockWithTransactions(t *testing.T) {
	client := newTestClient(t, 10)

	block, err := client.GetBlock(context.Background(), big.NewInt(1), true)
	require.NoError(t, err)
	assert.Equal(t, "0xb1", block.Hash)
	assert.Equal(t, uint64(0x6630f00c), block.Timestamp)
	assert.Equal(t, uint64(1), block.TransactionCount)
	assert.Equal(t, []string{txHash}, block.TransactionHashes)
	require.Len(t, block.Transactions, 1)

	tx := block.Transactions[0]
	assert.Equal(t, big.NewInt(1), tx.BlockNumber)
	assert.Equal(t, uint64(0x6630f00c), tx.BlockTimestamp)
	assert.Equal(t, big.NewInt(1000000000), tx.BaseFeePerGas)
	assert.Equal(t, "1000000000000000000", tx.Value.Dec())
	require.NotNil(t, tx.ToAddress)
	assert.Equal(t, recipient, *tx.ToAddress)
	require.NotNil(t, tx.TransactionIndex)
	assert.Equal(t, uint64(0), *tx.TransactionIndex)
}

func TestClient_GetBlockHashesOnly(t *testing.T) {
	client := newTestClient(t, 10)

	block, err := client.GetBlock(context.Background(), big.NewInt(1), false)
	require.NoError(t, err)
	assert.Equal(t, []string{txHash}, block.TransactionHashes)
	assert.Empty(t, block.Transactions)
}

func TestClient_GetBlockNotFound(t *testing.T) {
	client := newTestClient(t, 10)

	_, err := client.GetBlock(context.Background(), big.NewInt(99), true)
	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestClient_GetBlocksKeepsOrderAcrossBatches(t *testing.T) {
	client := newTestClient(t, 1)

	results := client.GetBlocks(context.Background(), []*big.Int{big.NewInt(1), big.NewInt(0), big.NewInt(7)}, false)
	require.Len(t, results, 3)
	assert.NoError(t, results[0].Error)
	assert.Equal(t, "0xb1", results[0].Data.Hash)
	assert.NoError(t, results[1].Error)
	assert.Equal(t, "0xb0", results[1].Data.Hash)
	assert.ErrorIs(t, results[2].Error, ErrBlockNotFound)
	assert.Equal(t, big.NewInt(7), results[2].BlockNumber)
}

func TestClient_GetBlocksEmpty(t *testing.T) {
	client := newTestClient(t, 2)

	results := client.GetBlocks(context.Background(), nil, false)
	assert.Empty(t, results)
}

func TestClient_GetPendingTransaction(t *testing.T) {
	client := newTestClient(t, 10)

	tx, err := client.GetTransaction(context.Background(), pendingTx)
	require.NoError(t, err)
	assert.True(t, tx.IsPending())
	assert.True(t, tx.IsContractCreation())
	assert.Nil(t, tx.TransactionIndex)
	assert.Equal(t, "0x60806040", tx.FunctionSelector)

	receipt, err := client.GetTransactionReceipt(context.Background(), pendingTx)
	require.NoError(t, err)
	assert.Nil(t, receipt)

	_, err = client.GetTransaction(context.Background(), "0x1234")
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestClient_GetTransactionReceipt(t *testing.T) {
	client := newTestClient(t, 10)

	receipt, err := client.GetTransactionReceipt(context.Background(), txHash)
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.True(t, receipt.Succeeded())
	assert.Nil(t, receipt.ContractAddress)
	assert.Equal(t, uint64(21000), receipt.GasUsed)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, recipient, receipt.Logs[0].Address)
	assert.Len(t, receipt.Logs[0].Topics, 1)
}

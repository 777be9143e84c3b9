package rpc

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/ethclient"
	gethRpc "github.com/ethereum/go-ethereum/rpc"
	config "github.com/localscan/explorer/configs"
	"github.com/localscan/explorer/internal/common"
	"github.com/rs/zerolog/log"
)

var (
	ErrBlockNotFound       = errors.New("block not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)

type GetBlocksResult struct {
	BlockNumber *big.Int
	Error       error
	Data        common.Block
}

type IRPCClient interface {
	GetLatestBlockNumber(ctx context.Context) (*big.Int, error)
	GetBlock(ctx context.Context, blockNumber *big.Int, withTransactions bool) (*common.Block, error)
	GetBlocks(ctx context.Context, blockNumbers []*big.Int, withTransactions bool) []GetBlocksResult
	GetTransaction(ctx context.Context, txHash string) (*common.Transaction, error)
	GetTransactionReceipt(ctx context.Context, txHash string) (*common.Receipt, error)
	GetChainID() *big.Int
	GetURL() string
	Close()
}

type Client struct {
	RPCClient        *gethRpc.Client
	EthClient        *ethclient.Client
	url              string
	chainID          *big.Int
	blocksPerRequest int
}

func Initialize(ctx context.Context) (IRPCClient, error) {
	rpcUrl := config.Cfg.RPC.URL
	if rpcUrl == "" {
		return nil, fmt.Errorf("RPC_URL environment variable is not set")
	}
	log.Debug().Str("url", rpcUrl).Msg("Initializing RPC")
	rpcClient, dialErr := gethRpc.DialContext(ctx, rpcUrl)
	if dialErr != nil {
		return nil, dialErr
	}
	return NewClient(ctx, rpcClient, rpcUrl, GetBlocksPerRequest()), nil
}

// NewClient wraps an already dialed connection. A node that cannot report its chain ID is not fatal,
// the dev node may still be starting.
func NewClient(ctx context.Context, rpcClient *gethRpc.Client, url string, blocksPerRequest int) *Client {
	if blocksPerRequest <= 0 {
		blocksPerRequest = DEFAULT_BLOCKS_PER_REQUEST
	}
	rpc := &Client{
		RPCClient:        rpcClient,
		EthClient:        ethclient.NewClient(rpcClient),
		url:              url,
		blocksPerRequest: blocksPerRequest,
	}
	if err := rpc.setChainID(ctx); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("Could not read chain ID from node")
	}
	return rpc
}

func (rpc *Client) GetChainID() *big.Int {
	return rpc.chainID
}

func (rpc *Client) GetURL() string {
	return rpc.url
}

func (rpc *Client) Close() {
	rpc.EthClient.Close()
}

func (rpc *Client) setChainID(ctx context.Context) error {
	chainID, err := rpc.EthClient.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain ID: %v", err)
	}
	rpc.chainID = chainID
	return nil
}

func (rpc *Client) GetLatestBlockNumber(ctx context.Context) (*big.Int, error) {
	blockNumber, err := rpc.EthClient.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest block number: %w", err)
	}
	return new(big.Int).SetUint64(blockNumber), nil
}

func (rpc *Client) GetBlock(ctx context.Context, blockNumber *big.Int, withTransactions bool) (*common.Block, error) {
	var raw RawBlock
	if err := rpc.RPCClient.CallContext(ctx, &raw, "eth_getBlockByNumber", GetBlockParams(withTransactions)(blockNumber)...); err != nil {
		return nil, fmt.Errorf("failed to get block %s: %w", blockNumber.String(), err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: %s", ErrBlockNotFound, blockNumber.String())
	}
	block := serializeBlock(rpc.chainID, raw)
	return &block, nil
}

// GetBlocks fetches the blocks in JSON-RPC batches. Results keep the order of blockNumbers.
func (rpc *Client) GetBlocks(ctx context.Context, blockNumbers []*big.Int, withTransactions bool) []GetBlocksResult {
	return serializeBlocks(rpc.chainID, rpc.fetchBlocks(ctx, blockNumbers, withTransactions))
}

func (rpc *Client) GetTransaction(ctx context.Context, txHash string) (*common.Transaction, error) {
	var raw RawTransaction
	if err := rpc.RPCClient.CallContext(ctx, &raw, "eth_getTransactionByHash", GetTransactionParams(txHash)...); err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", txHash, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: %s", ErrTransactionNotFound, txHash)
	}
	tx := serializeTransaction(rpc.chainID, raw)
	return &tx, nil
}

// GetTransactionReceipt returns nil without error for a transaction that is still pending.
func (rpc *Client) GetTransactionReceipt(ctx context.Context, txHash string) (*common.Receipt, error) {
	var raw RawReceipt
	if err := rpc.RPCClient.CallContext(ctx, &raw, "eth_getTransactionReceipt", GetTransactionParams(txHash)...); err != nil {
		return nil, fmt.Errorf("failed to get receipt %s: %w", txHash, err)
	}
	if raw == nil {
		return nil, nil
	}
	receipt := serializeReceipt(raw)
	return &receipt, nil
}

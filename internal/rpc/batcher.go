package rpc

import (
	"context"
	"math/big"

	gethRpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/localscan/explorer/internal/common"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// rawBlockResult is one eth_getBlockByNumber answer. A nil block means the node does not have it.
type rawBlockResult struct {
	number *big.Int
	err    error
	block  RawBlock
}

// fetchBlocks requests blockNumbers in JSON-RPC batches of at most blocksPerRequest calls. Batches
// run concurrently, each writing into its own slice of the result, so results line up with
// blockNumbers.
func (rpc *Client) fetchBlocks(ctx context.Context, blockNumbers []*big.Int, withTransactions bool) []rawBlockResult {
	results := make([]rawBlockResult, len(blockNumbers))
	if len(blockNumbers) == 0 {
		return results
	}
	chunks := common.SliceToChunks(blockNumbers, rpc.blocksPerRequest)
	if len(chunks) > 1 {
		log.Debug().Msgf("Fetching %d blocks in %d batches of max %d requests", len(blockNumbers), len(chunks), rpc.blocksPerRequest)
	}

	var g errgroup.Group
	offset := 0
	for _, chunk := range chunks {
		out := results[offset : offset+len(chunk)]
		offset += len(chunk)
		g.Go(func() error {
			rpc.fetchBlockBatch(ctx, chunk, withTransactions, out)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (rpc *Client) fetchBlockBatch(ctx context.Context, blockNumbers []*big.Int, withTransactions bool, out []rawBlockResult) {
	params := GetBlockParams(withTransactions)
	batch := make([]gethRpc.BatchElem, len(blockNumbers))
	for i, number := range blockNumbers {
		out[i].number = number
		batch[i] = gethRpc.BatchElem{
			Method: "eth_getBlockByNumber",
			Args:   params(number),
			Result: &out[i].block,
		}
	}

	if err := rpc.RPCClient.BatchCallContext(ctx, batch); err != nil {
		for i := range out {
			out[i].err = err
			out[i].block = nil
		}
		return
	}
	for i, elem := range batch {
		if elem.Error != nil {
			out[i].err = elem.Error
			out[i].block = nil
		}
	}
}

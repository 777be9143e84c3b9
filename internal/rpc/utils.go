package rpc

import (
	config "github.com/localscan/explorer/configs"
)

const DEFAULT_BLOCKS_PER_REQUEST = 100

func GetBlocksPerRequest() int {
	blocksPerRequest := config.Cfg.RPC.Blocks.BlocksPerRequest
	if blocksPerRequest <= 0 {
		blocksPerRequest = DEFAULT_BLOCKS_PER_REQUEST
	}
	return blocksPerRequest
}

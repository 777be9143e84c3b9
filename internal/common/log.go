package common

import (
	"math/big"

	gethCommon "github.com/ethereum/go-ethereum/common"
)

type Log struct {
	BlockNumber      *big.Int `json:"block_number" swaggertype:"string"`
	BlockHash        string   `json:"block_hash"`
	TransactionHash  string   `json:"transaction_hash"`
	TransactionIndex uint64   `json:"transaction_index"`
	LogIndex         uint64   `json:"log_index"`
	Address          string   `json:"address"`
	Data             string   `json:"data"`
	Topics           []string `json:"topics"`
	Removed          bool     `json:"removed"`
}

func (l *Log) Topic0() (gethCommon.Hash, bool) {
	if len(l.Topics) == 0 {
		return gethCommon.Hash{}, false
	}
	return gethCommon.HexToHash(l.Topics[0]), true
}

func (l *Log) TopicHashes() []gethCommon.Hash {
	hashes := make([]gethCommon.Hash, len(l.Topics))
	for i, topic := range l.Topics {
		hashes[i] = gethCommon.HexToHash(topic)
	}
	return hashes
}

func (l *Log) DataBytes() []byte {
	return gethCommon.FromHex(l.Data)
}

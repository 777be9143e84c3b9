package scanner

import (
	"context"
	"math/big"
	"time"

	config "github.com/localscan/explorer/configs"
	"github.com/localscan/explorer/internal/common"
	"github.com/localscan/explorer/internal/metrics"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	DEFAULT_BLOCKS_TO_SCAN = 100
	DEFAULT_CONCURRENCY    = 1
)

// BlockFetcher is the part of the chain client a window scan needs.
type BlockFetcher interface {
	GetLatestBlockNumber(ctx context.Context) (*big.Int, error)
	GetBlock(ctx context.Context, blockNumber *big.Int, withTransactions bool) (*common.Block, error)
}

type Role int

const (
	RoleAny Role = iota
	RoleSender
	RoleReceiver
)

// AddressFilter restricts a scan to transactions touching Address in the given role.
type AddressFilter struct {
	Address string
	Role    Role
}

func (f *AddressFilter) Matches(tx *common.Transaction) bool {
	if f == nil {
		return true
	}
	switch f.Role {
	case RoleSender:
		return tx.SentBy(f.Address)
	case RoleReceiver:
		return tx.ReceivedBy(f.Address)
	default:
		return tx.SentBy(f.Address) || tx.ReceivedBy(f.Address)
	}
}

// AddressTransactions holds one window scan split by role. A self-send appears in both lists.
type AddressTransactions struct {
	Sent     []common.Transaction
	Received []common.Transaction
}

type Scanner struct {
	client       BlockFetcher
	blocksToScan int
	concurrency  int
}

type ScannerOption func(*Scanner)

func WithBlocksToScan(blocksToScan int) ScannerOption {
	return func(s *Scanner) {
		if blocksToScan > 0 {
			s.blocksToScan = blocksToScan
		}
	}
}

func WithConcurrency(concurrency int) ScannerOption {
	return func(s *Scanner) {
		if concurrency > 0 {
			s.concurrency = concurrency
		}
	}
}

func NewScanner(client BlockFetcher, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		client:       client,
		blocksToScan: DEFAULT_BLOCKS_TO_SCAN,
		concurrency:  DEFAULT_CONCURRENCY,
	}
	if config.Cfg.Scanner.BlocksToScan > 0 {
		s.blocksToScan = config.Cfg.Scanner.BlocksToScan
	}
	if config.Cfg.Scanner.Concurrency > 0 {
		s.concurrency = config.Cfg.Scanner.Concurrency
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scanner) BlocksToScan() int {
	return s.blocksToScan
}

// WindowBlockNumbers lists the block numbers of a window scan, highest first, stopping at block 0.
func WindowBlockNumbers(startBlock uint64, maxBlocks int) []uint64 {
	numbers := make([]uint64, 0)
	for i := 0; i < maxBlocks; i++ {
		numbers = append(numbers, startBlock-uint64(i))
		if startBlock == uint64(i) {
			break
		}
	}
	return numbers
}

// Scan fetches up to maxBlocks full blocks walking down from startBlock and returns their
// transactions, highest block first and in block order within a block.
// Fetches are issued in descending order and the context is checked before each one. Any fetch
// error aborts the scan and is returned as is; no partial result is returned.
func (s *Scanner) Scan(ctx context.Context, startBlock uint64, maxBlocks int, filter *AddressFilter) ([]common.Transaction, error) {
	start := time.Now()
	numbers := WindowBlockNumbers(startBlock, maxBlocks)
	perBlock := make([][]common.Transaction, len(numbers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, blockNumber := range numbers {
		if gctx.Err() != nil {
			break
		}
		i, blockNumber := i, blockNumber
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			block, err := s.client.GetBlock(gctx, new(big.Int).SetUint64(blockNumber), true)
			if err != nil {
				log.Debug().Err(err).Uint64("block", blockNumber).Msg("Block fetch failed, aborting scan")
				return err
			}
			perBlock[i] = collectTransactions(block, filter)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		metrics.FailedScans.Inc()
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		metrics.FailedScans.Inc()
		return nil, err
	}

	total := 0
	for _, txs := range perBlock {
		total += len(txs)
	}
	transactions := make([]common.Transaction, 0, total)
	for _, txs := range perBlock {
		transactions = append(transactions, txs...)
	}

	metrics.ScannedBlocks.Add(float64(len(numbers)))
	metrics.ScanDuration.Observe(time.Since(start).Seconds())
	metrics.LatestScannedBlock.Set(float64(startBlock))
	log.Debug().Uint64("start", startBlock).Int("blocks", len(numbers)).Int("transactions", len(transactions)).Dur("took", time.Since(start)).Msg("Scanned block window")

	return transactions, nil
}

// ScanLatest scans the configured window ending at the current chain head.
func (s *Scanner) ScanLatest(ctx context.Context, filter *AddressFilter) ([]common.Transaction, error) {
	head, err := s.client.GetLatestBlockNumber(ctx)
	if err != nil {
		return nil, err
	}
	return s.Scan(ctx, head.Uint64(), s.blocksToScan, filter)
}

// ScanAddress scans the latest window once and splits the matches into sent and received.
func (s *Scanner) ScanAddress(ctx context.Context, address string) (*AddressTransactions, error) {
	transactions, err := s.ScanLatest(ctx, &AddressFilter{Address: address, Role: RoleAny})
	if err != nil {
		return nil, err
	}
	result := &AddressTransactions{
		Sent:     []common.Transaction{},
		Received: []common.Transaction{},
	}
	for _, tx := range transactions {
		if tx.SentBy(address) {
			result.Sent = append(result.Sent, tx)
		}
		if tx.ReceivedBy(address) {
			result.Received = append(result.Received, tx)
		}
	}
	return result, nil
}

func collectTransactions(block *common.Block, filter *AddressFilter) []common.Transaction {
	if block == nil {
		return nil
	}
	transactions := make([]common.Transaction, 0, len(block.Transactions))
	for _, tx := range block.Transactions {
		tx.AttachBlock(block)
		if filter.Matches(&tx) {
			transactions = append(transactions, tx)
		}
	}
	return transactions
}

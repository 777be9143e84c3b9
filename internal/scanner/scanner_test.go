package scanner

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"testing"

	"github.com/localscan/explorer/internal/common"
	mocks "github.com/localscan/explorer/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	alice = "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"
	bob   = "0x70997970c51812dc3a010c7d01b50e0d17dc79c8"
	carol = "0x3c44cdddb6a900fa2b585dd299e03d12fa4293bc"
)

func transfer(hash, from string, to *string) common.Transaction {
	return common.Transaction{Hash: hash, FromAddress: from, ToAddress: to, Data: "0x"}
}

func addr(s string) *string {
	return &s
}

// testChain builds one block per number; block n carries transactions alice->bob, bob->carol and a
// self-send by carol on every third block.
func testChain(n uint64) *common.Block {
	txs := []common.Transaction{
		transfer(fmt.Sprintf("0x%x01", n), alice, addr(bob)),
		transfer(fmt.Sprintf("0x%x02", n), bob, addr(carol)),
	}
	if n%3 == 0 {
		txs = append(txs, transfer(fmt.Sprintf("0x%x03", n), "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC", addr(carol)))
	}
	for i := range txs {
		idx := uint64(i)
		txs[i].TransactionIndex = &idx
	}
	return &common.Block{
		Number:        new(big.Int).SetUint64(n),
		Hash:          fmt.Sprintf("0xb%x", n),
		Timestamp:     1700000000 + n*12,
		BaseFeePerGas: big.NewInt(7),
		Transactions:  txs,
	}
}

type fetchRecorder struct {
	mu      sync.Mutex
	fetched []uint64
}

func (r *fetchRecorder) record(n *big.Int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetched = append(r.fetched, n.Uint64())
}

func TestWindowBlockNumbers(t *testing.T) {
	assert.Equal(t, []uint64{5, 4, 3, 2, 1, 0}, WindowBlockNumbers(5, 100))
	assert.Equal(t, []uint64{100, 99, 98}, WindowBlockNumbers(100, 3))
	assert.Equal(t, []uint64{0}, WindowBlockNumbers(0, 100))
	assert.Empty(t, WindowBlockNumbers(10, 0))
}

func TestScan_StopsAtGenesis(t *testing.T) {
	mockRPC := mocks.NewMockIRPCClient(t)
	recorder := &fetchRecorder{}
	mockRPC.EXPECT().GetBlock(mock.Anything, mock.Anything, true).RunAndReturn(func(ctx context.Context, n *big.Int, _ bool) (*common.Block, error) {
		recorder.record(n)
		return testChain(n.Uint64()), nil
	})

	s := NewScanner(mockRPC)
	txs, err := s.Scan(context.Background(), 5, 100, nil)

	require.NoError(t, err)
	assert.Equal(t, []uint64{5, 4, 3, 2, 1, 0}, recorder.fetched)
	assert.Len(t, txs, 6*2+2)
	assert.Equal(t, "0x501", txs[0].Hash)
	assert.Equal(t, big.NewInt(5), txs[0].BlockNumber)
	assert.Equal(t, "0xb5", txs[0].BlockHash)
	assert.Equal(t, uint64(1700000060), txs[0].BlockTimestamp)
	assert.Equal(t, big.NewInt(7), txs[0].BaseFeePerGas)
	assert.Equal(t, big.NewInt(0), txs[len(txs)-1].BlockNumber)
}

func TestScan_AddressFilter(t *testing.T) {
	mockRPC := mocks.NewMockIRPCClient(t)
	mockRPC.EXPECT().GetBlock(mock.Anything, mock.Anything, true).RunAndReturn(func(ctx context.Context, n *big.Int, _ bool) (*common.Block, error) {
		return testChain(n.Uint64()), nil
	})

	s := NewScanner(mockRPC)
	target := "0x3C44CDDDB6A900FA2B585DD299E03D12FA4293BC"
	txs, err := s.Scan(context.Background(), 9, 10, &AddressFilter{Address: target})
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, tx := range txs {
		assert.True(t, tx.SentBy(target) || tx.ReceivedBy(target), tx.Hash)
		assert.False(t, seen[tx.Hash], "duplicate %s", tx.Hash)
		seen[tx.Hash] = true
	}
	// 10 bob->carol transfers plus self-sends in blocks 9, 6, 3, 0
	assert.Len(t, txs, 14)

	sent, err := s.Scan(context.Background(), 9, 10, &AddressFilter{Address: target, Role: RoleSender})
	require.NoError(t, err)
	assert.Len(t, sent, 4)

	received, err := s.Scan(context.Background(), 9, 10, &AddressFilter{Address: target, Role: RoleReceiver})
	require.NoError(t, err)
	assert.Len(t, received, 14)
}

func TestScan_AbortsOnFetchError(t *testing.T) {
	mockRPC := mocks.NewMockIRPCClient(t)
	recorder := &fetchRecorder{}
	fetchErr := errors.New("connection refused")
	mockRPC.EXPECT().GetBlock(mock.Anything, mock.Anything, true).RunAndReturn(func(ctx context.Context, n *big.Int, _ bool) (*common.Block, error) {
		recorder.record(n)
		if n.Uint64() == 3 {
			return nil, fetchErr
		}
		return testChain(n.Uint64()), nil
	})

	s := NewScanner(mockRPC)
	txs, err := s.Scan(context.Background(), 5, 100, nil)

	assert.Nil(t, txs)
	assert.Same(t, fetchErr, err)
	assert.Equal(t, []uint64{5, 4, 3}, recorder.fetched)
}

func TestScan_CancellationStopsFetching(t *testing.T) {
	mockRPC := mocks.NewMockIRPCClient(t)
	recorder := &fetchRecorder{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	mockRPC.EXPECT().GetBlock(mock.Anything, mock.Anything, true).RunAndReturn(func(_ context.Context, n *big.Int, _ bool) (*common.Block, error) {
		recorder.record(n)
		if n.Uint64() == 8 {
			cancel()
		}
		return testChain(n.Uint64()), nil
	})

	s := NewScanner(mockRPC)
	txs, err := s.Scan(ctx, 10, 100, nil)

	assert.Nil(t, txs)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []uint64{10, 9, 8}, recorder.fetched)
}

func TestScan_ConcurrentFetchKeepsOrder(t *testing.T) {
	mockRPC := mocks.NewMockIRPCClient(t)
	mockRPC.EXPECT().GetBlock(mock.Anything, mock.Anything, true).RunAndReturn(func(ctx context.Context, n *big.Int, _ bool) (*common.Block, error) {
		return testChain(n.Uint64()), nil
	})

	sequential, err := NewScanner(mockRPC).Scan(context.Background(), 40, 30, nil)
	require.NoError(t, err)
	concurrent, err := NewScanner(mockRPC, WithConcurrency(8)).Scan(context.Background(), 40, 30, nil)
	require.NoError(t, err)

	assert.Equal(t, sequential, concurrent)
	for i := 1; i < len(concurrent); i++ {
		assert.GreaterOrEqual(t, concurrent[i-1].BlockNumber.Cmp(concurrent[i].BlockNumber), 0)
	}
}

func TestScanAddress_SplitsByRole(t *testing.T) {
	mockRPC := mocks.NewMockIRPCClient(t)
	mockRPC.EXPECT().GetLatestBlockNumber(mock.Anything).Return(big.NewInt(3), nil)
	mockRPC.EXPECT().GetBlock(mock.Anything, mock.Anything, true).RunAndReturn(func(ctx context.Context, n *big.Int, _ bool) (*common.Block, error) {
		return testChain(n.Uint64()), nil
	})

	s := NewScanner(mockRPC, WithBlocksToScan(2))
	result, err := s.ScanAddress(context.Background(), carol)
	require.NoError(t, err)

	// blocks 3 and 2: carol receives from bob twice and sends to herself in block 3
	assert.Len(t, result.Sent, 1)
	assert.Len(t, result.Received, 3)
	assert.Equal(t, "0x303", result.Sent[0].Hash)
}

func TestScanLatest_PropagatesHeadError(t *testing.T) {
	mockRPC := mocks.NewMockIRPCClient(t)
	headErr := errors.New("node unavailable")
	mockRPC.EXPECT().GetLatestBlockNumber(mock.Anything).Return(nil, headErr)

	_, err := NewScanner(mockRPC).ScanLatest(context.Background(), nil)
	assert.Same(t, headErr, err)
}

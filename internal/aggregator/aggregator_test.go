package aggregator

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/localscan/explorer/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alice = "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"
	bob   = "0x70997970c51812dc3a010c7d01b50e0d17dc79c8"
)

func mined(hash string, block int64, index uint64) common.Transaction {
	to := bob
	return common.Transaction{
		Hash:             hash,
		BlockNumber:      big.NewInt(block),
		TransactionIndex: &index,
		FromAddress:      alice,
		ToAddress:        &to,
	}
}

func pending(hash string) common.Transaction {
	to := bob
	return common.Transaction{Hash: hash, FromAddress: alice, ToAddress: &to}
}

func hashes(txs []common.Transaction) []string {
	result := make([]string, len(txs))
	for i, tx := range txs {
		result[i] = tx.Hash
	}
	return result
}

func TestAggregate_SortsNewestFirst(t *testing.T) {
	records := []common.Transaction{
		mined("0x01", 3, 1),
		mined("0x02", 5, 0),
		pending("0x03"),
		mined("0x04", 3, 0),
		mined("0x05", 4, 2),
	}

	page := Aggregate(records, 1, 10)
	assert.Equal(t, []string{"0x03", "0x02", "0x05", "0x04", "0x01"}, hashes(page.Items))
}

func TestAggregate_MissingIndexSortsLastWithinBlock(t *testing.T) {
	noIndex := mined("0x01", 3, 0)
	noIndex.TransactionIndex = nil

	page := Aggregate([]common.Transaction{noIndex, mined("0x02", 3, 4), mined("0x03", 3, 1)}, 1, 10)
	assert.Equal(t, []string{"0x03", "0x02", "0x01"}, hashes(page.Items))
}

func TestAggregate_SelfTransferAppearsOnce(t *testing.T) {
	self := mined("0xaa", 7, 0)
	selfTo := alice
	self.ToAddress = &selfTo

	sent := []common.Transaction{self, mined("0xbb", 6, 0)}
	received := []common.Transaction{self}

	page := Aggregate(Merge(sent, received), 1, 10)
	assert.Equal(t, 2, page.TotalItems)
	assert.Equal(t, []string{"0xaa", "0xbb"}, hashes(page.Items))
}

func TestDedup_FirstOccurrenceWins(t *testing.T) {
	first := mined("0xAB", 1, 0)
	first.Nonce = 1
	second := mined("0xab", 1, 0)
	second.Nonce = 2

	unique := Dedup([]common.Transaction{first, second})
	require.Len(t, unique, 1)
	assert.Equal(t, uint64(1), unique[0].Nonce)
}

func TestPaginate_ItemCounts(t *testing.T) {
	for _, total := range []int{0, 1, 9, 10, 11, 25} {
		items := make([]int, total)
		for i := range items {
			items[i] = i
		}
		for _, pageSize := range []int{1, 3, 10} {
			for page := 1; page <= 5; page++ {
				t.Run(fmt.Sprintf("total=%d/size=%d/page=%d", total, pageSize, page), func(t *testing.T) {
					result := Paginate(items, page, pageSize)
					expected := min(pageSize, max(0, total-(page-1)*pageSize))
					assert.Len(t, result.Items, expected)
					assert.Equal(t, total, result.TotalItems)
					assert.Equal(t, (total+pageSize-1)/pageSize, result.TotalPages)
					assert.Equal(t, page < result.TotalPages, result.HasNextPage)
					assert.Equal(t, page > 1, result.HasPrevPage)
					if expected > 0 {
						assert.Equal(t, (page-1)*pageSize, result.Items[0])
					}
				})
			}
		}
	}

	t.Run("size=MaxInt", func(t *testing.T) {
		items := []int{1, 2, 3, 4, 5}

		first := Paginate(items, 1, math.MaxInt)
		assert.Equal(t, items, first.Items)
		assert.Equal(t, 1, first.TotalPages)
		assert.False(t, first.HasNextPage)

		second := Paginate(items, 2, math.MaxInt)
		assert.Empty(t, second.Items)
		assert.Equal(t, 1, second.TotalPages)
	})
}

func TestPaginate_OutOfRangeAndInvalidParams(t *testing.T) {
	items := []int{1, 2, 3}

	outOfRange := Paginate(items, 9, 2)
	assert.NotNil(t, outOfRange.Items)
	assert.Empty(t, outOfRange.Items)
	assert.Equal(t, 3, outOfRange.TotalItems)
	assert.Equal(t, 2, outOfRange.TotalPages)
	assert.False(t, outOfRange.HasNextPage)

	clamped := Paginate(items, 0, -1)
	assert.Equal(t, 1, clamped.CurrentPage)
	assert.Equal(t, DEFAULT_PAGE_SIZE, clamped.PageSize)
	assert.Equal(t, items, clamped.Items)
}

func TestAggregate_DeterministicAcrossInputOrder(t *testing.T) {
	a := []common.Transaction{mined("0x01", 2, 0), mined("0x02", 2, 1), mined("0x03", 1, 0), pending("0x04")}
	b := []common.Transaction{a[3], a[2], a[1], a[0]}

	assert.Equal(t, hashes(Aggregate(a, 1, 2).Items), hashes(Aggregate(b, 1, 2).Items))
	assert.Equal(t, hashes(Aggregate(a, 2, 2).Items), hashes(Aggregate(b, 2, 2).Items))
}

package aggregator

import (
	"sort"

	"github.com/localscan/explorer/internal/common"
)

const DEFAULT_PAGE_SIZE = 10

// Aggregate deduplicates records by hash, sorts them newest first and returns the requested page.
func Aggregate(records []common.Transaction, page, pageSize int) common.Page[common.Transaction] {
	merged := Dedup(records)
	SortTransactions(merged)
	return Paginate(merged, page, pageSize)
}

// Merge concatenates several scan results in order and drops repeated hashes.
func Merge(sets ...[]common.Transaction) []common.Transaction {
	total := 0
	for _, set := range sets {
		total += len(set)
	}
	all := make([]common.Transaction, 0, total)
	for _, set := range sets {
		all = append(all, set...)
	}
	return Dedup(all)
}

// Dedup keeps the first occurrence of every transaction hash, preserving order. Hashes compare
// case-insensitively.
func Dedup(records []common.Transaction) []common.Transaction {
	seen := make(map[string]struct{}, len(records))
	unique := make([]common.Transaction, 0, len(records))
	for _, record := range records {
		key := common.NormalizeAddress(record.Hash)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, record)
	}
	return unique
}

// SortTransactions orders by block number descending with pending transactions first. Within a block
// transactions keep ascending transaction index; records without an index go last. The sort is stable.
func SortTransactions(records []common.Transaction) {
	sort.SliceStable(records, func(i, j int) bool {
		return newerThan(&records[i], &records[j])
	})
}

func newerThan(a, b *common.Transaction) bool {
	if a.IsPending() != b.IsPending() {
		return a.IsPending()
	}
	if !a.IsPending() {
		if cmp := a.BlockNumber.Cmp(b.BlockNumber); cmp != 0 {
			return cmp > 0
		}
	}
	if a.TransactionIndex == nil || b.TransactionIndex == nil {
		return a.TransactionIndex != nil && b.TransactionIndex == nil
	}
	return *a.TransactionIndex < *b.TransactionIndex
}

// Paginate returns the 1-based page of items. Non-positive parameters fall back to page 1 and
// DEFAULT_PAGE_SIZE; a page past the end has no items but keeps the totals.
func Paginate[T any](items []T, page, pageSize int) common.Page[T] {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DEFAULT_PAGE_SIZE
	}
	total := len(items)
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	pageItems := make([]T, 0)
	if page <= totalPages {
		start := (page - 1) * pageSize
		end := start + pageSize
		if end > total {
			end = total
		}
		pageItems = append(pageItems, items[start:end]...)
	}

	return common.Page[T]{
		Items:       pageItems,
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

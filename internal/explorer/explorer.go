package explorer

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/localscan/explorer/internal/aggregator"
	"github.com/localscan/explorer/internal/common"
	"github.com/localscan/explorer/internal/decoder"
	customLogger "github.com/localscan/explorer/internal/log"
	"github.com/localscan/explorer/internal/rpc"
	"github.com/localscan/explorer/internal/scanner"
	"github.com/localscan/explorer/internal/storage"
	"github.com/rs/zerolog"
)

const DEFAULT_LATEST_BLOCKS = 10

// EnrichedTransaction is a transaction with its resolved method label.
type EnrichedTransaction struct {
	common.Transaction
	Method         string `json:"method"`
	MethodVerified bool   `json:"method_verified"`
	ContractName   string `json:"contract_name,omitempty"`
}

type TransactionDetail struct {
	Transaction    common.Transaction           `json:"transaction"`
	Receipt        *common.Receipt              `json:"receipt"`
	Method         string                       `json:"method"`
	MethodVerified bool                         `json:"method_verified"`
	ContractName   string                       `json:"contract_name,omitempty"`
	DecodedCall    *common.DecodedCall          `json:"decoded_call,omitempty"`
	DecodedEvents  map[int]*common.DecodedEvent `json:"decoded_events"`
}

// Service answers explorer queries by scanning the recent block window and decorating results
// with stored contract metadata.
type Service struct {
	client   rpc.IRPCClient
	scanner  *scanner.Scanner
	store    storage.IMetadataStorage
	resolver *decoder.MethodResolver
	events   *decoder.EventDecoder
	logger   zerolog.Logger
}

func NewService(client rpc.IRPCClient, store storage.IMetadataStorage, opts ...scanner.ScannerOption) (*Service, error) {
	abis, err := decoder.NewABICache(decoder.DEFAULT_ABI_CACHE_SIZE)
	if err != nil {
		return nil, fmt.Errorf("failed to create ABI cache: %w", err)
	}
	return &Service{
		client:   client,
		scanner:  scanner.NewScanner(client, opts...),
		store:    store,
		resolver: decoder.NewMethodResolver(nil, abis),
		events:   decoder.NewEventDecoder(abis),
		logger:   customLogger.NewLogger("explorer"),
	}, nil
}

// AddressTransactions returns one page of the transactions sent or received by address within the
// scan window. A self-send is listed once.
func (s *Service) AddressTransactions(ctx context.Context, address string, page, pageSize int) (common.Page[EnrichedTransaction], error) {
	normalized, err := common.ValidateAddress(address)
	if err != nil {
		return common.Page[EnrichedTransaction]{}, err
	}
	split, err := s.scanner.ScanAddress(ctx, normalized)
	if err != nil {
		return common.Page[EnrichedTransaction]{}, err
	}
	result := aggregator.Aggregate(aggregator.Merge(split.Sent, split.Received), page, pageSize)
	return s.enrichPage(ctx, result), nil
}

// AllTransactions returns one page of every transaction within the scan window.
func (s *Service) AllTransactions(ctx context.Context, page, pageSize int) (common.Page[EnrichedTransaction], error) {
	transactions, err := s.scanner.ScanLatest(ctx, nil)
	if err != nil {
		return common.Page[EnrichedTransaction]{}, err
	}
	return s.enrichPage(ctx, aggregator.Aggregate(transactions, page, pageSize)), nil
}

// LatestBlocks returns up to limit blocks ending at the chain head, highest first, without their
// transactions.
func (s *Service) LatestBlocks(ctx context.Context, limit int) ([]common.Block, error) {
	if limit < 1 {
		limit = DEFAULT_LATEST_BLOCKS
	}
	head, err := s.client.GetLatestBlockNumber(ctx)
	if err != nil {
		return nil, err
	}
	window := scanner.WindowBlockNumbers(head.Uint64(), limit)
	numbers := make([]*big.Int, len(window))
	for i, n := range window {
		numbers[i] = new(big.Int).SetUint64(n)
	}

	blocks := make([]common.Block, 0, len(numbers))
	for _, result := range s.client.GetBlocks(ctx, numbers, false) {
		if result.Error != nil {
			return nil, fmt.Errorf("failed to get block %s: %w", result.BlockNumber.String(), result.Error)
		}
		blocks = append(blocks, result.Data)
	}
	return blocks, nil
}

func (s *Service) Block(ctx context.Context, number uint64) (*common.Block, error) {
	return s.client.GetBlock(ctx, new(big.Int).SetUint64(number), true)
}

// TransactionDetail fetches a transaction with its receipt and decodes its call and logs. A pending
// transaction has no receipt and no decoded events.
func (s *Service) TransactionDetail(ctx context.Context, hash string) (*TransactionDetail, error) {
	tx, err := s.client.GetTransaction(ctx, hash)
	if err != nil {
		return nil, err
	}
	receipt, err := s.client.GetTransactionReceipt(ctx, hash)
	if err != nil {
		return nil, err
	}
	if !tx.IsPending() && tx.BlockTimestamp == 0 {
		block, err := s.client.GetBlock(ctx, tx.BlockNumber, false)
		if err != nil {
			return nil, err
		}
		tx.AttachBlock(block)
	}

	lookup := newMetadataLookup(s.store, s.logger)
	var metadata *common.ContractMetadata
	if !tx.IsContractCreation() {
		metadata = lookup.get(ctx, *tx.ToAddress)
	}
	input := tx.Input()
	method, verified := s.resolver.ResolveMethodName(tx.ToAddress, input, metadata)

	detail := &TransactionDetail{
		Transaction:    *tx,
		Receipt:        receipt,
		Method:         method,
		MethodVerified: verified,
		DecodedEvents:  map[int]*common.DecodedEvent{},
	}
	if metadata != nil {
		detail.ContractName = metadata.Name
	}
	if !tx.IsContractCreation() && !isPlainTransfer(input) {
		detail.DecodedCall = s.resolver.DecodeCall(input, metadata)
	}
	if receipt != nil {
		for i, l := range receipt.Logs {
			if decoded := s.events.DecodeLog(l, lookup.get(ctx, l.Address)); decoded != nil {
				detail.DecodedEvents[i] = decoded
			}
		}
	}
	return detail, nil
}

// MethodLabel is the placeholder label for a raw input before any metadata lookup.
func (s *Service) MethodLabel(input string) string {
	return s.resolver.MethodSignature(input)
}

func (s *Service) enrichPage(ctx context.Context, page common.Page[common.Transaction]) common.Page[EnrichedTransaction] {
	lookup := newMetadataLookup(s.store, s.logger)
	return common.MapPage(page, func(tx common.Transaction) EnrichedTransaction {
		var metadata *common.ContractMetadata
		if !tx.IsContractCreation() {
			metadata = lookup.get(ctx, *tx.ToAddress)
		}
		method, verified := s.resolver.ResolveMethodName(tx.ToAddress, tx.Input(), metadata)
		enriched := EnrichedTransaction{Transaction: tx, Method: method, MethodVerified: verified}
		if metadata != nil {
			enriched.ContractName = metadata.Name
		}
		return enriched
	})
}

func isPlainTransfer(input []byte) bool {
	return len(input) == 0 || (len(input) == 1 && input[0] == 0)
}

// metadataLookup memoizes store reads for one request. A failed read is logged and treated as
// unverified.
type metadataLookup struct {
	store  storage.IMetadataStorage
	logger zerolog.Logger
	seen   map[string]*common.ContractMetadata
}

func newMetadataLookup(store storage.IMetadataStorage, logger zerolog.Logger) *metadataLookup {
	return &metadataLookup{store: store, logger: logger, seen: map[string]*common.ContractMetadata{}}
}

func (l *metadataLookup) get(ctx context.Context, address string) *common.ContractMetadata {
	key := strings.ToLower(address)
	if metadata, ok := l.seen[key]; ok {
		return metadata
	}
	var metadata *common.ContractMetadata
	if l.store != nil && gethCommon.IsHexAddress(key) {
		found, err := l.store.Get(ctx, key)
		if err != nil {
			l.logger.Warn().Err(err).Str("address", key).Msg("Failed to load contract metadata")
		} else {
			metadata = found
		}
	}
	l.seen[key] = metadata
	return metadata
}

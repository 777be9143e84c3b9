package decoder

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/localscan/explorer/internal/common"
	"github.com/localscan/explorer/internal/metrics"
	"github.com/rs/zerolog/log"
)

const (
	TransferLabel         = "Transfer"
	ContractCreationLabel = "Contract Creation"
	ContractCallLabel     = "Contract Call"
)

const (
	sourceABI      = "abi"
	sourceSelector = "selector"
	sourceFallback = "fallback"
)

// MethodResolver labels transactions with a method name. A verified ABI always wins over the
// static selector table.
type MethodResolver struct {
	selectors SelectorTable
	abis      *ABICache
}

func NewMethodResolver(selectors SelectorTable, abis *ABICache) *MethodResolver {
	if selectors == nil {
		selectors = DefaultSelectors
	}
	return &MethodResolver{selectors: selectors, abis: abis}
}

// ResolveMethodName returns the label for a transaction and whether it came from a verified ABI.
//
// Order: empty input is a plain Transfer, a missing recipient is a Contract Creation, then the
// contract's ABI, then the selector table, and Contract Call otherwise.
func (r *MethodResolver) ResolveMethodName(to *string, input []byte, metadata *common.ContractMetadata) (string, bool) {
	if isEmptyInput(input) {
		metrics.MethodResolutions.WithLabelValues(sourceFallback).Inc()
		return TransferLabel, false
	}
	if to == nil || *to == "" {
		metrics.MethodResolutions.WithLabelValues(sourceFallback).Inc()
		return ContractCreationLabel, false
	}
	if method, _ := r.matchABIMethod(input, metadata); method != nil {
		metrics.MethodResolutions.WithLabelValues(sourceABI).Inc()
		return method.RawName, true
	}
	if name, ok := r.selectors.Name(input); ok {
		metrics.MethodResolutions.WithLabelValues(sourceSelector).Inc()
		return name, false
	}
	metrics.MethodResolutions.WithLabelValues(sourceFallback).Inc()
	return ContractCallLabel, false
}

// MethodSignature labels input using only this resolver's selector table.
func (r *MethodResolver) MethodSignature(input string) string {
	return r.selectors.MethodSignature(input)
}

// DecodeCall decodes call data into its arguments. A verified ABI gives a verified result; a known
// selector gives a best effort decode from its signature. Unknown or empty input returns nil.
func (r *MethodResolver) DecodeCall(input []byte, metadata *common.ContractMetadata) *common.DecodedCall {
	if len(input) < 4 {
		return nil
	}
	if method, values := r.matchABIMethod(input, metadata); method != nil {
		return &common.DecodedCall{
			Name:      method.RawName,
			Signature: method.Sig,
			Selector:  hexutil.Encode(method.ID),
			Verified:  true,
			Args:      decodedArguments(method.Inputs, values),
		}
	}

	signature, ok := r.selectors.Signature(input)
	if !ok {
		return nil
	}
	decoded := &common.DecodedCall{
		Name:      signatureName(signature),
		Signature: signature,
		Selector:  hexutil.Encode(input[:4]),
		Args:      []common.DecodedArgument{},
	}
	method, err := common.ConstructFunctionABI(signature)
	if err != nil {
		log.Debug().Err(err).Str("signature", signature).Msg("failed to construct function ABI")
		return decoded
	}
	values, err := method.Inputs.Unpack(input[4:])
	if err != nil {
		log.Debug().Err(err).Str("signature", signature).Msg("call data does not match known selector signature")
		return decoded
	}
	decoded.Args = decodedArguments(method.Inputs, values)
	return decoded
}

// matchABIMethod finds the ABI method for the selector and requires its arguments to unpack.
func (r *MethodResolver) matchABIMethod(input []byte, metadata *common.ContractMetadata) (*abi.Method, []interface{}) {
	if len(input) < 4 {
		return nil, nil
	}
	parsed := r.abis.Get(metadata)
	if parsed == nil {
		return nil, nil
	}
	method, err := parsed.MethodById(input[:4])
	if err != nil {
		return nil, nil
	}
	values, err := method.Inputs.Unpack(input[4:])
	if err != nil {
		log.Debug().Err(err).Str("address", metadata.Address).Str("method", method.Sig).Msg("call data does not unpack against verified ABI")
		return nil, nil
	}
	return method, values
}

// isEmptyInput treats both "0x" and a lone zero byte as no call data.
func isEmptyInput(input []byte) bool {
	return len(input) == 0 || (len(input) == 1 && input[0] == 0)
}

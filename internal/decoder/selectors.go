package decoder

import (
	"strings"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// SelectorTable maps lowercase 4-byte hex selectors to canonical function signatures.
type SelectorTable map[string]string

// DefaultSelectors is the fixed table of well-known ERC-20/721 and common contract selectors.
// The UI relies on these exact names, so entries are only ever added.
var DefaultSelectors = SelectorTable{
	"0xa9059cbb": "transfer(address,uint256)",
	"0x23b872dd": "transferFrom(address,address,uint256)",
	"0x095ea7b3": "approve(address,uint256)",
	"0x70a08231": "balanceOf(address)",
	"0x18160ddd": "totalSupply()",
	"0x313ce567": "decimals()",
	"0x06fdde03": "name()",
	"0x95d89b41": "symbol()",
	"0xdd62ed3e": "allowance(address,address)",
	"0x39509351": "increaseAllowance(address,uint256)",
	"0xa457c2d7": "decreaseAllowance(address,uint256)",
	"0x40c10f19": "mint(address,uint256)",
	"0xa0712d68": "mint(uint256)",
	"0xa1448194": "safeMint(address,uint256)",
	"0x42966c68": "burn(uint256)",
	"0x79cc6790": "burnFrom(address,uint256)",
	"0xd0e30db0": "deposit()",
	"0x2e1a7d4d": "withdraw(uint256)",
	"0x42842e0e": "safeTransferFrom(address,address,uint256)",
	"0xb88d4fde": "safeTransferFrom(address,address,uint256,bytes)",
	"0xa22cb465": "setApprovalForAll(address,bool)",
	"0x6352211e": "ownerOf(uint256)",
	"0x081812fc": "getApproved(uint256)",
	"0xe985e9c5": "isApprovedForAll(address,address)",
	"0xc87b56dd": "tokenURI(uint256)",
	"0x8da5cb5b": "owner()",
	"0xf2fde38b": "transferOwnership(address)",
	"0x715018a6": "renounceOwnership()",
	"0x8456cb59": "pause()",
	"0x3f4ba83a": "unpause()",
	"0xac9650d8": "multicall(bytes[])",
	"0x38ed1739": "swapExactTokensForTokens(uint256,uint256,address[],address,uint256)",
	"0x7ff36ab5": "swapExactETHForTokens(uint256,address[],address,uint256)",
	"0xe8e33700": "addLiquidity(address,address,uint256,uint256,uint256,uint256,address,uint256)",
}

// Signature returns the signature registered for the selector at the start of input.
func (t SelectorTable) Signature(input []byte) (string, bool) {
	if len(input) < 4 {
		return "", false
	}
	signature, ok := t[hexutil.Encode(input[:4])]
	return signature, ok
}

func (t SelectorTable) Name(input []byte) (string, bool) {
	signature, ok := t.Signature(input)
	if !ok {
		return "", false
	}
	return signatureName(signature), true
}

// MethodSignature labels raw call data without consulting any contract metadata.
func (t SelectorTable) MethodSignature(input string) string {
	data := gethCommon.FromHex(input)
	if isEmptyInput(data) {
		return TransferLabel
	}
	if name, ok := t.Name(data); ok {
		return name
	}
	return ContractCallLabel
}

// GetMethodSignature labels call data using DefaultSelectors. It is used for placeholder labels
// before any metadata lookup has happened.
func GetMethodSignature(input string) string {
	return DefaultSelectors.MethodSignature(input)
}

func signatureName(signature string) string {
	if idx := strings.Index(signature, "("); idx != -1 {
		return signature[:idx]
	}
	return signature
}

package decoder

import (
	"encoding/json"
	"math/big"
	"strings"
	"testing"
	"time"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/localscan/explorer/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contractAddress = "0x5fbdb2315678afecb367f032d93f642f64180aa3"

func metadataWith(t *testing.T, entries ...string) *common.ContractMetadata {
	t.Helper()
	raw, err := json.Marshal(entries)
	require.NoError(t, err)
	metadata, err := common.NewContractMetadata(contractAddress, raw, "TestContract", time.Unix(1714564800, 0))
	require.NoError(t, err)
	return metadata
}

func newTestResolver(t *testing.T, selectors SelectorTable) *MethodResolver {
	t.Helper()
	cache, err := NewABICache(16)
	require.NoError(t, err)
	return NewMethodResolver(selectors, cache)
}

func word(n int64) string {
	return gethCommon.BigToHash(big.NewInt(n)).Hex()[2:]
}

func strPtr(s string) *string {
	return &s
}

func TestGetMethodSignature(t *testing.T) {
	transferInput := "0xa9059cbb" + strings.Repeat("0", 128)

	assert.Equal(t, "transfer", GetMethodSignature(transferInput))
	assert.Equal(t, "approve", GetMethodSignature("0x095ea7b3"))
	assert.Equal(t, "Transfer", GetMethodSignature("0x"))
	assert.Equal(t, "Transfer", GetMethodSignature(""))
	assert.Equal(t, "Transfer", GetMethodSignature("0x00"))
	assert.Equal(t, "Contract Call", GetMethodSignature("0xdeadbeef"))
	assert.Equal(t, "Contract Call", GetMethodSignature("0xa905"))
}

func TestResolveMethodName_Fallbacks(t *testing.T) {
	resolver := newTestResolver(t, nil)

	name, verified := resolver.ResolveMethodName(strPtr(contractAddress), nil, nil)
	assert.Equal(t, "Transfer", name)
	assert.False(t, verified)

	name, verified = resolver.ResolveMethodName(strPtr(contractAddress), []byte{0}, nil)
	assert.Equal(t, "Transfer", name)
	assert.False(t, verified)

	name, _ = resolver.ResolveMethodName(nil, gethCommon.FromHex("0x6080604052"), nil)
	assert.Equal(t, "Contract Creation", name)

	name, _ = resolver.ResolveMethodName(strPtr(contractAddress), gethCommon.FromHex("0xdeadbeef"), nil)
	assert.Equal(t, "Contract Call", name)

	name, verified = resolver.ResolveMethodName(strPtr(contractAddress), gethCommon.FromHex("0xa9059cbb"+word(1)+word(2)), nil)
	assert.Equal(t, "transfer", name)
	assert.False(t, verified)
}

func TestResolveMethodName_CreationIgnoresMetadata(t *testing.T) {
	resolver := newTestResolver(t, nil)
	metadata := metadataWith(t, "function foo(uint256 x)")

	name, verified := resolver.ResolveMethodName(nil, gethCommon.FromHex("0x2fbebd38"+word(7)), metadata)
	assert.Equal(t, "Contract Creation", name)
	assert.False(t, verified)
}

func TestResolveMethodName_ABIBeatsSelectorTable(t *testing.T) {
	resolver := newTestResolver(t, SelectorTable{"0x2fbebd38": "bar(uint256)"})
	input := gethCommon.FromHex("0x2fbebd38" + word(42))

	name, verified := resolver.ResolveMethodName(strPtr(contractAddress), input, nil)
	assert.Equal(t, "bar", name)
	assert.False(t, verified)

	metadata := metadataWith(t, "function foo(uint256 x)")
	name, verified = resolver.ResolveMethodName(strPtr(contractAddress), input, metadata)
	assert.Equal(t, "foo", name)
	assert.True(t, verified)
}

func TestResolveMethodName_UndecodableArgsFallBack(t *testing.T) {
	resolver := newTestResolver(t, SelectorTable{"0x2fbebd38": "bar(uint256)"})
	metadata := metadataWith(t, "function foo(uint256 x)")

	name, verified := resolver.ResolveMethodName(strPtr(contractAddress), gethCommon.FromHex("0x2fbebd38"), metadata)
	assert.Equal(t, "bar", name)
	assert.False(t, verified)
}

func TestResolveMethodName_UnparsableStoredABI(t *testing.T) {
	resolver := newTestResolver(t, nil)
	metadata := &common.ContractMetadata{Address: contractAddress, ABI: json.RawMessage(`{"not":"an abi"}`)}

	name, verified := resolver.ResolveMethodName(strPtr(contractAddress), gethCommon.FromHex("0xa9059cbb"+word(1)+word(2)), metadata)
	assert.Equal(t, "transfer", name)
	assert.False(t, verified)
}

func TestDecodeCall_VerifiedABI(t *testing.T) {
	resolver := newTestResolver(t, nil)
	metadata := metadataWith(t, "function approve(address _spender, uint256 _value) returns (bool)")
	input := gethCommon.FromHex("0x095ea7b3000000000000000000000000971add32ea87f10bd192671630be3be8a11b862300000000000000000000000000000000000000000000010df58ac64e49b91ea0")

	decoded := resolver.DecodeCall(input, metadata)
	require.NotNil(t, decoded)
	assert.Equal(t, "approve", decoded.Name)
	assert.Equal(t, "approve(address,uint256)", decoded.Signature)
	assert.Equal(t, "0x095ea7b3", decoded.Selector)
	assert.True(t, decoded.Verified)

	params := decoded.Params()
	assert.Equal(t, gethCommon.HexToAddress("0x971add32Ea87f10bD192671630be3BE8A11b8623"), params["_spender"])
	expectedValue := big.NewInt(0)
	expectedValue.SetString("4979867327953494417056", 10)
	assert.Equal(t, expectedValue, params["_value"])
}

func TestDecodeCall_TupleArgument(t *testing.T) {
	resolver := newTestResolver(t, nil)
	metadata := metadataWith(t, "function allocatedWithdrawal((bytes,uint256,uint256,uint256,uint256,address) _withdrawal)")
	input := gethCommon.FromHex("0x27c777a9000000000000000000000000000000000000000000000000000000000000002000000000000000000000000000000000000000000000000000000000000000c0000000000000000000000000000000000000000000000000000000000000007b00000000000000000000000000000000000000000000000000000000672c0c60302aafae8a36ffd8c12b32f1000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000038d7ea4c680000000000000000000000000000734d56da60852a03e2aafae8a36ffd8c12b32f10000000000000000000000000000000000000000000000000000000000000000")

	decoded := resolver.DecodeCall(input, metadata)
	require.NotNil(t, decoded)
	assert.Equal(t, "allocatedWithdrawal", decoded.Name)

	withdrawal := decoded.Params()["_withdrawal"].(struct {
		Field0 []uint8            `json:"field0"`
		Field1 *big.Int           `json:"field1"`
		Field2 *big.Int           `json:"field2"`
		Field3 *big.Int           `json:"field3"`
		Field4 *big.Int           `json:"field4"`
		Field5 gethCommon.Address `json:"field5"`
	})
	assert.Equal(t, []uint8{}, withdrawal.Field0)
	assert.Equal(t, "123", withdrawal.Field1.String())
	assert.Equal(t, "1730940000", withdrawal.Field2.String())
	assert.Equal(t, "1000000000000000", withdrawal.Field4.String())
	assert.Equal(t, "0x0734d56DA60852A03e2Aafae8a36FFd8c12B32f1", withdrawal.Field5.Hex())
}

func TestDecodeCall_SelectorTable(t *testing.T) {
	resolver := newTestResolver(t, nil)
	recipient := gethCommon.HexToAddress("0x70997970c51812dc3a010c7d01b50e0d17dc79c8")
	input := gethCommon.FromHex("0xa9059cbb" + gethCommon.BytesToHash(recipient.Bytes()).Hex()[2:] + word(1000))

	decoded := resolver.DecodeCall(input, nil)
	require.NotNil(t, decoded)
	assert.Equal(t, "transfer", decoded.Name)
	assert.Equal(t, "transfer(address,uint256)", decoded.Signature)
	assert.False(t, decoded.Verified)
	require.Len(t, decoded.Args, 2)
	assert.Equal(t, "", decoded.Args[0].Name)
	assert.Equal(t, recipient, decoded.Args[0].Value)
	assert.Equal(t, big.NewInt(1000), decoded.Params()["1"])
}

func TestDecodeCall_Unknown(t *testing.T) {
	resolver := newTestResolver(t, nil)

	assert.Nil(t, resolver.DecodeCall(nil, nil))
	assert.Nil(t, resolver.DecodeCall(gethCommon.FromHex("0xdeadbeef"), nil))
}

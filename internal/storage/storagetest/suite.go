// Package storagetest holds the behavioral suite every metadata backend must pass.
package storagetest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/localscan/explorer/internal/common"
	"github.com/localscan/explorer/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	TokenAddress   = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	GreeterAddress = "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"
	VaultAddress   = "0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0"
)

var TokenABI = json.RawMessage(`[{"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable"},{"type":"event","name":"Transfer","inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256","indexed":false}],"anonymous":false}]`)

var GreeterABI = json.RawMessage(`[{"type":"function","name":"setGreeting","inputs":[{"name":"_greeting","type":"string"}],"outputs":[],"stateMutability":"nonpayable"},{"type":"function","name":"greet","inputs":[],"outputs":[{"name":"","type":"string"}],"stateMutability":"view"}]`)

// RunMetadataStorageSuite runs every contract check against fresh stores from newStore.
func RunMetadataStorageSuite(t *testing.T, newStore func(t *testing.T) storage.IMetadataStorage) {
	t.Run("RoundTrip", func(t *testing.T) { testRoundTrip(t, newStore(t)) })
	t.Run("MissingAddress", func(t *testing.T) { testMissingAddress(t, newStore(t)) })
	t.Run("OverwriteReplacesWholeRecord", func(t *testing.T) { testOverwrite(t, newStore(t)) })
	t.Run("IdempotentSave", func(t *testing.T) { testIdempotentSave(t, newStore(t)) })
	t.Run("ListVerified", func(t *testing.T) { testListVerified(t, newStore(t)) })
	t.Run("Clear", func(t *testing.T) { testClear(t, newStore(t)) })
	t.Run("RejectsInvalidInput", func(t *testing.T) { testRejectsInvalidInput(t, newStore(t)) })
	t.Run("ConcurrentSaves", func(t *testing.T) { testConcurrentSaves(t, newStore(t)) })
}

func testRoundTrip(t *testing.T, store storage.IMetadataStorage) {
	ctx := context.Background()
	before := time.Now().UnixMilli()
	require.NoError(t, store.Save(ctx, TokenAddress, TokenABI, "Token"))
	after := time.Now().UnixMilli()

	for _, address := range []string{TokenAddress, strings.ToLower(TokenAddress), strings.ToUpper(TokenAddress[2:])} {
		if !strings.HasPrefix(address, "0x") {
			address = "0x" + address
		}
		record, err := store.Get(ctx, address)
		require.NoError(t, err)
		require.NotNil(t, record, address)
		assert.Equal(t, strings.ToLower(TokenAddress), record.Address)
		assert.JSONEq(t, string(TokenABI), string(record.ABI))
		assert.Equal(t, "Token", record.Name)
		assert.True(t, record.Verified)
		assert.GreaterOrEqual(t, record.Timestamp, before)
		assert.LessOrEqual(t, record.Timestamp, after)
	}
}

func testMissingAddress(t *testing.T, store storage.IMetadataStorage) {
	record, err := store.Get(context.Background(), VaultAddress)
	assert.NoError(t, err)
	assert.Nil(t, record)
}

func testOverwrite(t *testing.T, store storage.IMetadataStorage) {
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, TokenAddress, TokenABI, "Token"))
	require.NoError(t, store.Save(ctx, strings.ToLower(TokenAddress), GreeterABI, ""))

	record, err := store.Get(ctx, TokenAddress)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.JSONEq(t, string(GreeterABI), string(record.ABI))
	assert.Equal(t, "", record.Name)

	records, err := store.ListVerified(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func testIdempotentSave(t *testing.T, store storage.IMetadataStorage) {
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, GreeterAddress, GreeterABI, "Greeter"))
	first, err := store.Get(ctx, GreeterAddress)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, GreeterAddress, GreeterABI, "Greeter"))
	second, err := store.Get(ctx, GreeterAddress)
	require.NoError(t, err)

	require.NotNil(t, first)
	require.NotNil(t, second)
	second.Timestamp = first.Timestamp
	assert.Equal(t, first.Address, second.Address)
	assert.JSONEq(t, string(first.ABI), string(second.ABI))
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, first.Verified, second.Verified)
}

func testListVerified(t *testing.T, store storage.IMetadataStorage) {
	ctx := context.Background()
	empty, err := store.ListVerified(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	require.NoError(t, store.Save(ctx, VaultAddress, json.RawMessage(`[]`), "Vault"))
	require.NoError(t, store.Save(ctx, TokenAddress, TokenABI, "Token"))
	require.NoError(t, store.Save(ctx, GreeterAddress, GreeterABI, "Greeter"))

	records, err := store.ListVerified(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	addresses := make([]string, len(records))
	for i, record := range records {
		assert.True(t, record.Verified)
		addresses[i] = record.Address
	}
	assert.Equal(t, []string{
		strings.ToLower(TokenAddress),
		strings.ToLower(VaultAddress),
		strings.ToLower(GreeterAddress),
	}, addresses)
}

func testClear(t *testing.T, store storage.IMetadataStorage) {
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, TokenAddress, TokenABI, "Token"))
	require.NoError(t, store.Save(ctx, GreeterAddress, GreeterABI, "Greeter"))

	require.NoError(t, store.Clear(ctx))

	for _, address := range []string{TokenAddress, GreeterAddress, VaultAddress} {
		record, err := store.Get(ctx, address)
		assert.NoError(t, err)
		assert.Nil(t, record)
	}
	records, err := store.ListVerified(ctx)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Save(ctx, TokenAddress, TokenABI, "Token"))
	record, err := store.Get(ctx, TokenAddress)
	require.NoError(t, err)
	assert.NotNil(t, record)
}

func testRejectsInvalidInput(t *testing.T, store storage.IMetadataStorage) {
	ctx := context.Background()

	err := store.Save(ctx, TokenAddress, json.RawMessage(`[{"type":"function","name":"broken","inputs":[{"name":"x","type":"uint7"}]}]`), "Broken")
	assert.ErrorIs(t, err, common.ErrInvalidABI)
	err = store.Save(ctx, TokenAddress, json.RawMessage(`{"not":"a list"`), "Broken")
	assert.ErrorIs(t, err, common.ErrInvalidABI)
	err = store.Save(ctx, TokenAddress, json.RawMessage(`[{"type":"function","name":"broken","inputs":[{"name":"x","type":"tuple"}]}]`), "Broken")
	assert.ErrorIs(t, err, common.ErrInvalidABI)
	err = store.Save(ctx, TokenAddress, json.RawMessage(`null`), "Broken")
	assert.ErrorIs(t, err, common.ErrInvalidABI)

	record, err := store.Get(ctx, TokenAddress)
	assert.NoError(t, err)
	assert.Nil(t, record)

	err = store.Save(ctx, "0x1234", TokenABI, "Short")
	assert.ErrorIs(t, err, common.ErrInvalidAddress)
	_, err = store.Get(ctx, "not-an-address")
	assert.ErrorIs(t, err, common.ErrInvalidAddress)
}

func testConcurrentSaves(t *testing.T, store storage.IMetadataStorage) {
	ctx := context.Background()
	addresses := []string{TokenAddress, GreeterAddress}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			abi := json.RawMessage(fmt.Sprintf(`["function f%d(uint256 x)"]`, i))
			assert.NoError(t, store.Save(ctx, addresses[i%2], abi, fmt.Sprintf("f%d", i)))
		}(i)
	}
	wg.Wait()

	for _, address := range addresses {
		record, err := store.Get(ctx, address)
		require.NoError(t, err)
		require.NotNil(t, record)
		parsed, err := record.ParseABI()
		require.NoError(t, err)
		_, ok := parsed.Methods[record.Name]
		assert.True(t, ok, "record %s mixes abi and name from different saves", record.Name)
	}
}

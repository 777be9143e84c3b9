package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceToChunks(t *testing.T) {
	values := []uint64{1, 2, 3, 4, 5}

	chunks := SliceToChunks(values, 2)
	assert.Equal(t, [][]uint64{{1, 2}, {3, 4}, {5}}, chunks)

	assert.Equal(t, [][]uint64{values}, SliceToChunks(values, 10))
	assert.Equal(t, [][]uint64{values}, SliceToChunks(values, 0))
}

func TestValidateAddress(t *testing.T) {
	normalized, err := ValidateAddress("0x971add32Ea87f10bD192671630be3BE8A11b8623")
	assert.NoError(t, err)
	assert.Equal(t, "0x971add32ea87f10bd192671630be3be8a11b8623", normalized)

	normalized, err = ValidateAddress("  971ADD32EA87F10BD192671630BE3BE8A11B8623 ")
	assert.NoError(t, err)
	assert.Equal(t, "0x971add32ea87f10bd192671630be3be8a11b8623", normalized)

	_, err = ValidateAddress("0x1234")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestAddressEqual(t *testing.T) {
	assert.True(t, AddressEqual("0xABCDEF0000000000000000000000000000000001", "0xabcdef0000000000000000000000000000000001"))
	assert.False(t, AddressEqual("", ""))
	assert.False(t, AddressEqual("0xabcdef0000000000000000000000000000000001", "0xabcdef0000000000000000000000000000000002"))
}

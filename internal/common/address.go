package common

import (
	"errors"
	"fmt"
	"strings"

	gethCommon "github.com/ethereum/go-ethereum/common"
)

var ErrInvalidAddress = errors.New("invalid address")

// NormalizeAddress returns the canonical lowercase form used for every address comparison and storage key.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// ValidateAddress checks that address is a 20-byte hex address and returns it in canonical form.
func ValidateAddress(address string) (string, error) {
	trimmed := strings.TrimSpace(address)
	if !gethCommon.IsHexAddress(trimmed) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return strings.ToLower(gethCommon.HexToAddress(trimmed).Hex()), nil
}

func AddressEqual(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return NormalizeAddress(a) == NormalizeAddress(b)
}

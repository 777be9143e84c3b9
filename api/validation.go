package api

import (
	"fmt"
	"strconv"
	"strings"

	gethCommon "github.com/ethereum/go-ethereum/common"
)

// NormalizePagination applies the defaults to missing parameters and rejects negative or oversized ones.
func NormalizePagination(params QueryParams, defaultLimit, maxLimit int) (QueryParams, error) {
	if params.Page < 0 {
		return params, fmt.Errorf("page must be positive, got %d", params.Page)
	}
	if params.Limit < 0 {
		return params, fmt.Errorf("limit must be positive, got %d", params.Limit)
	}
	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = defaultLimit
	}
	if maxLimit > 0 && params.Limit > maxLimit {
		return params, fmt.Errorf("limit must not exceed %d, got %d", maxLimit, params.Limit)
	}
	return params, nil
}

// ParseBlockNumber accepts a decimal or 0x-prefixed hex block number.
func ParseBlockNumber(raw string) (uint64, error) {
	raw = strings.TrimSpace(raw)
	var (
		number uint64
		err    error
	)
	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		number, err = strconv.ParseUint(raw[2:], 16, 64)
	} else {
		number, err = strconv.ParseUint(raw, 10, 64)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid block number: %q", raw)
	}
	return number, nil
}

func ValidateTransactionHash(raw string) (string, error) {
	hash := strings.ToLower(strings.TrimSpace(raw))
	if !strings.HasPrefix(hash, "0x") || len(hash) != 2+2*gethCommon.HashLength {
		return "", fmt.Errorf("invalid transaction hash: %q", raw)
	}
	if !isHex(hash[2:]) {
		return "", fmt.Errorf("invalid transaction hash: %q", raw)
	}
	return hash, nil
}

func isHex(s string) bool {
	for _, c := range s {
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}

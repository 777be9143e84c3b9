package decoder

import (
	"reflect"

	"github.com/ethereum/go-ethereum/accounts/abi"
	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/localscan/explorer/internal/common"
)

// displayValue renders byte values as 0x hex. Addresses, integers and tuples keep their ABI Go types.
func displayValue(value interface{}) interface{} {
	switch typed := value.(type) {
	case gethCommon.Address:
		return typed
	case gethCommon.Hash:
		return typed.Hex()
	case []byte:
		return hexutil.Encode(typed)
	}
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Array && v.Type().Elem().Kind() == reflect.Uint8 {
		b := make([]byte, v.Len())
		reflect.Copy(reflect.ValueOf(b), v)
		return hexutil.Encode(b)
	}
	return value
}

func decodedArguments(arguments abi.Arguments, values []interface{}) []common.DecodedArgument {
	args := make([]common.DecodedArgument, 0, len(arguments))
	for i, argument := range arguments {
		if i >= len(values) {
			break
		}
		args = append(args, common.DecodedArgument{
			Name:    argument.Name,
			Type:    argument.Type.String(),
			Value:   displayValue(values[i]),
			Indexed: argument.Indexed,
		})
	}
	return args
}

package decoder

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/localscan/explorer/internal/common"
	"github.com/localscan/explorer/internal/metrics"
	"github.com/rs/zerolog/log"
)

type EventDecoder struct {
	abis *ABICache
}

func NewEventDecoder(abis *ABICache) *EventDecoder {
	return &EventDecoder{abis: abis}
}

// DecodeLog decodes a log against the emitting contract's ABI. Any mismatch returns nil and the
// log is shown raw.
func (d *EventDecoder) DecodeLog(l common.Log, metadata *common.ContractMetadata) *common.DecodedEvent {
	decoded := d.decodeLog(l, metadata)
	if decoded == nil {
		metrics.DecodedEvents.WithLabelValues("raw").Inc()
	} else {
		metrics.DecodedEvents.WithLabelValues("decoded").Inc()
	}
	return decoded
}

func (d *EventDecoder) decodeLog(l common.Log, metadata *common.ContractMetadata) *common.DecodedEvent {
	parsed := d.abis.Get(metadata)
	if parsed == nil {
		return nil
	}
	topic0, ok := l.Topic0()
	if !ok {
		return nil
	}
	event, err := parsed.EventByID(topic0)
	if err != nil {
		return nil
	}

	indexed := make(abi.Arguments, 0, len(event.Inputs))
	for _, input := range event.Inputs {
		if input.Indexed {
			// keys must be unique and non-empty for ParseTopicsIntoMap
			input.Name = topicKey(len(indexed))
			indexed = append(indexed, input)
		}
	}
	topics := l.TopicHashes()[1:]
	if len(indexed) != len(topics) {
		log.Debug().Str("event", event.Sig).Int("expected", len(indexed)).Int("actual", len(topics)).Msg("indexed topic count mismatch")
		return nil
	}

	indexedValues := make(map[string]interface{}, len(indexed))
	if err := abi.ParseTopicsIntoMap(indexedValues, indexed, topics); err != nil {
		log.Debug().Err(err).Str("event", event.Sig).Msg("failed to parse indexed event arguments")
		return nil
	}
	nonIndexedValues, err := event.Inputs.NonIndexed().Unpack(l.DataBytes())
	if err != nil {
		log.Debug().Err(err).Str("event", event.Sig).Msg("failed to unpack event data")
		return nil
	}

	values := make([]interface{}, len(event.Inputs))
	topicIdx, dataIdx := 0, 0
	for i, input := range event.Inputs {
		if input.Indexed {
			values[i] = indexedValues[topicKey(topicIdx)]
			topicIdx++
			continue
		}
		if dataIdx >= len(nonIndexedValues) {
			return nil
		}
		values[i] = nonIndexedValues[dataIdx]
		dataIdx++
	}

	return &common.DecodedEvent{
		Name:      event.RawName,
		Signature: event.Sig,
		Address:   common.NormalizeAddress(l.Address),
		LogIndex:  l.LogIndex,
		Args:      decodedArguments(event.Inputs, values),
	}
}

func topicKey(idx int) string {
	return fmt.Sprintf("topic%d", idx)
}

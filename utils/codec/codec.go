package codec

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/undeniable-app/undeniable/blame"
	"github.com/undeniable-app/undeniable/utils/types"
	"gopkg.in/yaml.v3"
)

var errUnsupported = errors.New("unsupported encoding format")

// Encode serializes data based on the codec type.
func Encode[T any](data T, codecType types.CodecType) ([]byte, error) {
	var buf bytes.Buffer
	var err error

	switch codecType {
	case JSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		err = enc.Encode(data)
	case YAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		err = enc.Encode(data)
		if err == nil {
			err = enc.Close()
		}
	default:
		err = errUnsupported
	}

	if err != nil {
		return nil, blame.MarshalError(codecType, err)
	}
	return buf.Bytes(), nil
}

// Decode deserializes data based on the codec type.
func Decode[T any](data []byte, codecType types.CodecType) (T, error) {
	var result T
	var err error

	switch codecType {
	case JSON:
		err = json.Unmarshal(data, &result)
	case YAML:
		err = yaml.Unmarshal(data, &result)
	default:
		err = errUnsupported
	}

	if err != nil {
		var zero T
		return zero, blame.UnMarshalError(codecType, err)
	}
	return result, nil
}

package codec

import "github.com/undeniable-app/undeniable/utils/types"

// Supported output formats
const (
	JSON types.CodecType = "json"
	YAML types.CodecType = "yaml"
)

// Parse maps a user supplied format name onto a codec type.
func Parse(name string) (types.CodecType, bool) {
	switch types.CodecType(name) {
	case JSON:
		return JSON, true
	case YAML, "yml":
		return YAML, true
	}
	return "", false
}

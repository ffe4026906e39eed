package blame

import (
	"fmt"

	"github.com/undeniable-app/undeniable/utils/constant"
	"github.com/undeniable-app/undeniable/utils/helpers"
	"github.com/undeniable-app/undeniable/utils/types"
)

// BlameDefinition represents a blame definition.
type BlameDefinition struct {
	ReasonCode   string `json:"ReasonCode"`
	Code         string `json:"Code"`
	Message      string `json:"Message"`
	Description  string `json:"Description"`
	Component    string `json:"Component"`
	ResponseType string `json:"ResponseType"`
}

// BlameManager holds the blame definitions keyed by error code.
type BlameManager struct {
	BlameDefinitions map[types.ErrorCode]Blame
}

// RetrieveBlameCache retrieves a blame definition from the cache.
func (bw *BlameManager) RetrieveBlameCache(errorCode types.ErrorCode) Blame {
	if cache, ok := bw.BlameDefinitions[errorCode]; ok {
		return cache
	}
	return NewBasicBlame(errorCode).
		WithComponent(constant.ErrApplication).
		WithResponseType(constant.InternalServer)
}

// FetchBlameForError returns a fresh copy of the definition for errorCode with opts applied.
// The cached definition is never mutated.
func (bw *BlameManager) FetchBlameForError(errorCode types.ErrorCode, opts ...BlameOption) Blame {
	return bw.RetrieveBlameCache(errorCode).Wrap(opts...)
}

func buildDefinitions(definitions []BlameDefinition) map[types.ErrorCode]Blame {
	out := make(map[types.ErrorCode]Blame, len(definitions))
	for index, def := range definitions {
		if helpers.IsEmpty(def.ReasonCode) {
			def.ReasonCode = GenerateReasonCode(ReasonCodeNameSpace, ReasonCodeBase+index)
		}
		out[types.ErrorCode(def.Code)] =
			NewBlame(def.ReasonCode, types.ErrorCode(def.Code), def.Message, def.Description).
				WithComponent(types.ComponentErrorType(def.Component)).
				WithResponseType(types.ResponseErrorType(def.ResponseType))
	}
	return out
}

// GenerateReasonCode builds a reason code such as UNDN-100003.
func GenerateReasonCode(namespace string, code int) string {
	if helpers.IsEmpty(namespace) {
		return fmt.Sprintf("%d", code)
	}
	return fmt.Sprintf("%s-%d", namespace, code)
}

// BlameOption defines an option for modifying Blame creation.
type BlameOption func(*BlameOptions)

// BlameOptions holds options for creating Blame instances.
type BlameOptions struct {
	Fields map[string]any
	Causes []error
}

// NewBlameOptions creates a new BlameOptions instance.
func NewBlameOptions() *BlameOptions {
	return &BlameOptions{
		Fields: make(map[string]any),
		Causes: make([]error, 0),
	}
}

// WithField adds a single field to the Blame.
func WithField(key string, value any) BlameOption {
	return func(opts *BlameOptions) {
		if opts.Fields == nil {
			opts.Fields = make(map[string]any)
		}
		opts.Fields[key] = value
	}
}

// WithFields takes a map[string]any and applies all key-value pairs to BlameOptions.
func WithFields(fields map[string]any) BlameOption {
	return func(opts *BlameOptions) {
		if opts.Fields == nil {
			opts.Fields = make(map[string]any)
		}
		for key, value := range fields {
			opts.Fields[key] = value
		}
	}
}

// WithCauses adds causes to the Blame. Nil causes are skipped.
func WithCauses(causes ...error) BlameOption {
	return func(opts *BlameOptions) {
		for _, cause := range causes {
			if cause != nil {
				opts.Causes = append(opts.Causes, cause)
			}
		}
	}
}

package acknowledgment

import (
	"github.com/undeniable-app/undeniable/utils/types"
)

// APIResponse is the envelope for every JSON response of the api group.
type APIResponse[T any] struct {
	Success   bool            `json:"success"`
	RequestID types.RequestID `json:"request_id"`
	Result    T               `json:"result"`
}

func NewAPIResponse[T any](
	success bool,
	requestID types.RequestID,
	result T,
) APIResponse[T] {
	return APIResponse[T]{
		Success:   success,
		RequestID: requestID,
		Result:    result,
	}
}

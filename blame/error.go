package blame

import (
	"errors"
	"fmt"
	"maps"
	"runtime"
	"strings"

	"github.com/undeniable-app/undeniable/utils/helpers"
	"github.com/undeniable-app/undeniable/utils/types"
)

// Error struct holds the error information
type Error struct {
	reasonCode   string          //UNDN-100003
	errCode      types.ErrorCode //error-company-not-found
	component    types.ComponentErrorType
	responseType types.ResponseErrorType
	message      string
	description  string
	fields       map[string]any
	causes       []error
	source       string
}

// NewError creates a new Error instance
func NewError(
	reasonCode string,
	errorCode types.ErrorCode,
	message, description string,
) *Error {
	if helpers.IsEmpty(reasonCode) {
		reasonCode = string(errorCode)
	}
	return &Error{
		reasonCode:  reasonCode,
		errCode:     errorCode,
		message:     message,
		description: description,
		fields:      map[string]any{},
		causes:      make([]error, 0),
		source:      findSource(),
	}
}

// NewBasicError creates a new Error instance with the given error code
func NewBasicError(
	errorCode types.ErrorCode,
) *Error {
	return &Error{
		reasonCode: errorCode.String(),
		errCode:    errorCode,
		fields:     map[string]any{},
		causes:     make([]error, 0),
		source:     findSource(),
	}
}

// FetchReasonCode returns the reason code of the error as a string
func (e *Error) FetchReasonCode() string {
	return e.reasonCode
}

// FetchErrCode returns the error code of the error as a ErrorCode
func (e *Error) FetchErrCode() types.ErrorCode {
	return e.errCode
}

// FetchMessage returns the message of the error as a string
func (e *Error) FetchMessage() string {
	return e.message
}

// FetchDescription returns the description of the error as a string
func (e *Error) FetchDescription() string {
	return e.description
}

// WithMessage sets the message of the error and returns the updated Error instance.
func (e *Error) WithMessage(msg string) *Error {
	e.message = msg
	return e
}

// WithDescription sets the description of the error and returns the updated Error instance.
func (e *Error) WithDescription(description string) *Error {
	e.description = description
	return e
}

// FetchFields returns the fields of the error as a map[string]any
func (e *Error) FetchFields() map[string]any {
	return e.fields
}

// FetchSource returns the source of the error as a string
func (e *Error) FetchSource() string {
	return e.source
}

// FetchComponent returns the component of the error as a ComponentErrorType
func (e *Error) FetchComponent() types.ComponentErrorType {
	return e.component
}

// FetchResponseType returns the response type of the error as a ResponseErrorType
func (e *Error) FetchResponseType() types.ResponseErrorType {
	return e.responseType
}

// FetchCauses returns the causes of the error as a slice of errors
func (e *Error) FetchCauses() []error {
	return e.causes
}

// WithField adds a field to the error and returns the updated Error instance.
func (e *Error) WithField(key string, value any) *Error {
	e.fields[key] = value
	return e
}

// WithFields adds multiple fields to the error and returns the updated Error instance.
func (e *Error) WithFields(fields map[string]any) *Error {
	maps.Copy(e.fields, fields)
	return e
}

// WithCause adds a cause to the error and returns the updated Error instance.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	e.causes = append(e.causes, err)
	return e
}

// WithComponent sets the component of the error and returns the updated Error instance.
func (e *Error) WithComponent(component types.ComponentErrorType) *Error {
	e.component = component
	return e
}

// WithResponseType sets the response type of the error and returns the updated Error instance.
func (e *Error) WithResponseType(responseType types.ResponseErrorType) *Error {
	e.responseType = responseType
	return e
}

// Error returns the error code with the causes as a string
func (e *Error) Error() string {
	if len(e.causes) == 0 {
		return e.errCode.String()
	}
	return fmt.Sprintf("%s (causes: %v)", e.errCode.String(), e.causes)
}

// Is reports whether target carries the same error code, so errors.Is works
// against the sentinel values built by the constructors in this package.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok || other == nil {
		return false
	}
	return other.errCode == e.errCode
}

// Unwrap exposes the causes to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	return e.causes
}

// findSource captures the source of the error at the point of instantiation.
func findSource() string {
	_, file, line, _ := runtime.Caller(2)
	return fmt.Sprintf("%s:%d", strings.TrimPrefix(file, runtime.GOROOT()+"/src/"), line)
}

// clone returns a copy that shares no mutable state with e.
func (e *Error) clone() *Error {
	c := *e
	c.fields = maps.Clone(e.fields)
	if c.fields == nil {
		c.fields = map[string]any{}
	}
	c.causes = append(make([]error, 0, len(e.causes)), e.causes...)
	c.source = findSource()
	return &c
}

// WrapToError creates a new Error instance with the current error's properties
// and the given options applied on top.
func (e *Error) WrapToError(opts ...BlameOption) *Error {
	options := NewBlameOptions()
	maps.Copy(options.Fields, e.fields)
	options.Causes = append(options.Causes, e.causes...)

	for _, opt := range opts {
		opt(options)
	}

	c := e.clone()
	c.fields = options.Fields
	c.causes = options.Causes
	return c
}

// Wrap wraps the error with the provided options and returns the new Blame instance.
func (e *Error) Wrap(opts ...BlameOption) Blame {
	return e.WrapToError(opts...)
}

// ErrorFromBlame creates a new error from a Blame instance.
func (e *Error) ErrorFromBlame() error {
	return errors.New(helpers.FetchErrorStack(e.FetchCauses()))
}

// Translate replaces {{.key}} placeholders in message and description with field values.
func (e *Error) Translate() (string, string) {
	message := e.message
	description := e.description
	for key, value := range e.fields {
		formatted := fmt.Sprintf("%v", value)
		message = strings.ReplaceAll(message, "{{."+key+"}}", formatted)
		description = strings.ReplaceAll(description, "{{."+key+"}}", formatted)
	}
	return message, description
}

// ErrorResponse struct holds the error information for sending as a response
type ErrorResponse struct {
	ReasonCode   string                   `json:"reason_code,omitempty"`
	ErrorCode    types.ErrorCode          `json:"error_code,omitempty"`
	Message      string                   `json:"message,omitempty"`
	Description  string                   `json:"description,omitempty"`
	Fields       map[string]any           `json:"fields,omitempty"`
	Component    types.ComponentErrorType `json:"component,omitempty"`
	ResponseType types.ResponseErrorType  `json:"response_type,omitempty"`
	Causes       []string                 `json:"causes,omitempty"`
}

// FetchErrorResponse returns the error as an ErrorResponse
func (e *Error) FetchErrorResponse(options ...SendErrorResponseOption) ErrorResponse {
	response := ErrorResponse{
		ReasonCode:   e.FetchReasonCode(),
		ErrorCode:    e.FetchErrCode(),
		Message:      e.FetchMessage(),
		Description:  e.FetchDescription(),
		Fields:       maps.Clone(e.FetchFields()),
		Component:    e.FetchComponent(),
		ResponseType: e.FetchResponseType(),
		Causes:       helpers.FetchErrorStrings(e.FetchCauses()),
	}

	for _, opt := range options {
		opt(&response, e)
	}

	return response
}

// SendErrorResponseOption is a function that can be used to modify the error response
type SendErrorResponseOption func(*ErrorResponse, Blame)

// WithTranslation fills the placeholders of message and description
func WithTranslation() SendErrorResponseOption {
	return func(response *ErrorResponse, err Blame) {
		response.Message, response.Description = err.Translate()
	}
}

// WithoutCauses drops the causes, which may carry internal detail, from the response.
func WithoutCauses() SendErrorResponseOption {
	return func(response *ErrorResponse, _ Blame) {
		response.Causes = nil
	}
}

// WithoutFields drops the fields from the response.
func WithoutFields() SendErrorResponseOption {
	return func(response *ErrorResponse, _ Blame) {
		response.Fields = nil
	}
}

// WithCustomField adds a custom field to the error response and returns the updated SendErrorResponseOption.
func WithCustomField(key string, value any) SendErrorResponseOption {
	return func(response *ErrorResponse, _ Blame) {
		if response.Fields == nil {
			response.Fields = map[string]any{}
		}
		response.Fields[key] = value
	}
}

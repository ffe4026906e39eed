package types

import (
	"strings"

	"go.uber.org/zap"
)

// StringConstant represents a constant string value.
type StringConstant string

// String returns the string representation of the StringConstant.
func (s StringConstant) String() string {
	return string(s)
}

// RequestID represents a request ID.
type RequestID string

// String returns the string representation of the RequestID.
func (r RequestID) String() string {
	return string(r)
}

// ErrorCode represents an error code.
type ErrorCode string

// String returns the string representation of the ErrorCode.
func (e ErrorCode) String() string {
	return string(e)
}

// ResponseErrorType represents the type of response error.
type ResponseErrorType string

// String returns the string representation of the ResponseErrorType.
func (e ResponseErrorType) String() string {
	return string(e)
}

// ComponentErrorType represents the type of component error.
type ComponentErrorType string

// String returns the string representation of the ComponentErrorType.
func (e ComponentErrorType) String() string {
	return string(e)
}

// CodecType defines the type of encoder (e.g., JSON, YAML).
type CodecType string

// String returns the string representation of the CodecType.
func (e CodecType) String() string {
	return string(e)
}

// Method to convert string to uppercase
func (s CodecType) ToUpperCase() string {
	return strings.ToUpper(string(s))
}

// ContentType defines the type for a ContentType.
type ContentType string

// Method to convert ContentType Type to string
func (c ContentType) String() string {
	return string(c)
}

// Field type to represent structured log fields
//
//nolint:gochecknoglobals
type Field = zap.Field

// Protocol represents a protocol.
type Protocol string

// String returns the string representation of the Protocol.
func (p Protocol) String() string {
	return string(p)
}

// LogMode represents the logging mode
type LogMode string

// String returns the string representation of the LogMode.
func (l LogMode) String() string {
	return string(l)
}

// SourceKind names where the insurer directory is read from.
type SourceKind string

// String returns the string representation of the SourceKind.
func (s SourceKind) String() string {
	return string(s)
}

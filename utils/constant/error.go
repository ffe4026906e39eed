package constant

import "github.com/undeniable-app/undeniable/utils/types"

// These are ComponentErrorType constant
const (
	ErrDirectory   types.ComponentErrorType = "directory"
	ErrResolver    types.ComponentErrorType = "resolver"
	ErrForm        types.ComponentErrorType = "form"
	ErrCompose     types.ComponentErrorType = "compose"
	ErrAdaptors    types.ComponentErrorType = "adaptors"
	ErrMiddlewares types.ComponentErrorType = "middlewares"
	ErrController  types.ComponentErrorType = "controller"
	ErrApplication types.ComponentErrorType = "application"
	ErrLibrary     types.ComponentErrorType = "library"
)

// These are generic HTTP request error constant
const (
	BadRequest         types.ResponseErrorType = "BadRequest"
	NotFound           types.ResponseErrorType = "NotFound"
	Unprocessable      types.ResponseErrorType = "Unprocessable"
	InternalServer     types.ResponseErrorType = "InternalServerError"
	ServiceUnavailable types.ResponseErrorType = "ServiceUnavailable"
	Informational      types.ResponseErrorType = "Informational"
)

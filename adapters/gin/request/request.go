package request

import (
	"github.com/gin-gonic/gin"
	"github.com/undeniable-app/undeniable/blame"
	"github.com/undeniable-app/undeniable/result"
	"github.com/undeniable-app/undeniable/utils/helpers"
)

// Parameter Source Enum
type ParamOrigin int

const (
	Unknown ParamOrigin = iota
	RouteParam
	QueryParam
	HeaderParam
)

// String Conversion
func (p ParamOrigin) String() string {
	switch p {
	case RouteParam:
		return "route"
	case QueryParam:
		return "query"
	case HeaderParam:
		return "header"
	default:
		return "unknown"
	}
}

// fetchParam reads the raw value. A missing query or header value is
// reported as absent; a route value always exists.
func fetchParam(c *gin.Context, paramName string, origin ParamOrigin) (string, bool) {
	switch origin {
	case RouteParam:
		return c.Param(paramName), true
	case QueryParam:
		return c.GetQuery(paramName)
	case HeaderParam:
		val := c.GetHeader(paramName)
		return val, !helpers.IsEmpty(val)
	default:
		return "", false
	}
}

// FetchTextParam returns the parameter, or an empty string when it is
// absent and optional.
func FetchTextParam(c *gin.Context, paramName string, origin ParamOrigin, required bool) result.Result[string] {
	val, ok := fetchParam(c, paramName, origin)
	if !ok || helpers.IsEmpty(val) {
		if required {
			return result.NewFailure[string](blame.MissingParameterError(paramName))
		}
		empty := ""
		return result.NewSuccess(&empty)
	}
	return result.NewSuccess(&val)
}

// Extract Data from Request Body
func ExtractDataFromRequestBody[T any](c *gin.Context) result.Result[T] {
	var payload T
	if err := c.ShouldBindJSON(&payload); err != nil {
		return result.NewFailure[T](blame.RequestBodyInvalid(err))
	}
	return result.NewSuccess(&payload)
}

// ExtractDataFromForm binds by content type, so JSON bodies and url-encoded
// or multipart forms are both accepted. Only `binding` tags are enforced here.
func ExtractDataFromForm[T any](c *gin.Context) result.Result[T] {
	var form T
	if err := c.ShouldBind(&form); err != nil {
		return result.NewFailure[T](blame.RequestBodyInvalid(err))
	}
	return result.NewSuccess(&form)
}

// ExtractDataFromQuery binds query string values onto T.
func ExtractDataFromQuery[T any](c *gin.Context) result.Result[T] {
	var query T
	if err := c.ShouldBindQuery(&query); err != nil {
		return result.NewFailure[T](blame.RequestBodyInvalid(err))
	}
	return result.NewSuccess(&query)
}

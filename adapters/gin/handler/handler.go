package handler

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/undeniable-app/undeniable/adapters/gin/middleware"
	"github.com/undeniable-app/undeniable/adapters/log"
	"github.com/undeniable-app/undeniable/blame"
	"github.com/undeniable-app/undeniable/result"
	"github.com/undeniable-app/undeniable/utils/constant"
	"github.com/undeniable-app/undeniable/utils/helpers"
	"github.com/undeniable-app/undeniable/utils/structures/acknowledgment"
	"github.com/undeniable-app/undeniable/utils/types"
)

// RequestHandler is a function that takes a *gin.Context and returns a result.Result[T]
type RequestHandler[T any] func(*gin.Context) result.Result[T]

// ExecuteControllerHandler executes a RequestHandler and writes its result
// inside an acknowledgment.APIResponse envelope.
func ExecuteControllerHandler[T any](logger *log.Log, handler RequestHandler[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var handlerResult result.Result[T]

		defer func() {
			if err := recover(); err != nil {
				handleException(c, logger, err)
				return
			}
			processResult(c, logger, handlerResult)
		}()

		handlerResult = handler(c)
	}
}

// handleException logs the panic with its stack trace and answers 500.
func handleException(c *gin.Context, logger *log.Log, err any) {
	serverBlame := blame.InternalServerError(fmt.Errorf("error %+v", err))
	logger.Error("exception occurred at controller",
		logger.Any("error", err),
		log.String(constant.RequestID, middleware.GetRequestID(c)),
		log.String("stack", string(debug.Stack())),
	)
	writeFailure(c, serverBlame)
}

// processResult writes the success value, or the failure with the status
// mapped from its response type.
func processResult[T any](c *gin.Context, logger *log.Log, res result.Result[T]) {
	if c.Writer.Written() {
		return
	}
	if res == nil {
		handleException(c, logger, "handler returned no result")
		return
	}

	data, err := res.Value()
	if err != nil {
		logger.Warn(constant.HandlerFailed,
			log.String("error_code", err.FetchErrCode().String()),
			log.String(constant.RequestID, middleware.GetRequestID(c)),
		)
		writeFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, acknowledgment.NewAPIResponse(true, requestID(c), data))
}

func writeFailure(c *gin.Context, err blame.Blame) {
	status := helpers.FetchHTTPStatusCode(err.FetchResponseType())
	response := err.FetchErrorResponse(blame.WithTranslation(), blame.WithoutCauses(), blame.WithoutFields())
	c.AbortWithStatusJSON(status, acknowledgment.NewAPIResponse(false, requestID(c), response))
}

func requestID(c *gin.Context) types.RequestID {
	return types.RequestID(middleware.GetRequestID(c))
}

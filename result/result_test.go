package result_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/undeniable-app/undeniable/blame"
	"github.com/undeniable-app/undeniable/result"
)

func TestNewSuccess(t *testing.T) {
	value := "success value"
	successResult := result.NewSuccess(&value)

	assert.True(t, successResult.IsSuccess())
	assert.False(t, successResult.IsError())

	val, err := successResult.Value()
	assert.Nil(t, err)
	assert.Equal(t, value, *val)
	assert.Equal(t, value, *successResult.ToValue())
}

func TestNewFailure(t *testing.T) {
	testErr := blame.NewBasicBlame("test-error")
	errorResult := result.NewFailure[any](testErr)

	assert.False(t, errorResult.IsSuccess())
	assert.True(t, errorResult.IsError())

	_, err := errorResult.Value()
	assert.Error(t, err)
	assert.Equal(t, testErr, err)
	assert.Equal(t, testErr, errorResult.Error())
	assert.Nil(t, errorResult.ToValue())
}

func TestFailureWithValueKeepsValue(t *testing.T) {
	value := "partial"
	r := result.NewFailureWithValue(&value, blame.CompanyNotFound("Acme"))

	val, err := r.Value()
	assert.Equal(t, "partial", *val)
	assert.True(t, errors.Is(err, blame.ErrCompanyNotFound))
}

func TestToResult(t *testing.T) {
	value := "success value"
	successResult := result.ToResult(&value, nil)
	assert.IsType(t, &result.Success[string]{}, successResult)

	errorResult := result.ToResult[string](nil, blame.NewBasicBlame("test-error"))
	assert.IsType(t, &result.Failure[string]{}, errorResult)
}

func TestCastFailure(t *testing.T) {
	value := "success value"
	successResult := result.NewSuccess(&value)

	castResult := result.CastFailure[string, int](successResult)
	assert.IsType(t, &result.Failure[int]{}, castResult)
	assert.EqualError(t, castResult.Error(), "success-cannot-produce-error")

	testErr := blame.NewBasicBlame("test-error")
	errorResult := result.NewFailure[string](testErr)
	castErrorResult := result.CastFailure[string, int](errorResult)
	assert.IsType(t, &result.Failure[int]{}, castErrorResult)
	assert.Equal(t, testErr, castErrorResult.Error())
}

func TestMapError(t *testing.T) {
	value := "success value"
	successResult := result.NewSuccess(&value)

	mappedResult := result.MapError[string, int](successResult, func(err error) blame.Blame {
		return blame.NewBasicBlame("mapped-error")
	})
	assert.EqualError(t, mappedResult.Error(), "success-cannot-map-with-error")

	errorResult := result.NewFailure[string](blame.NewBasicBlame("test-error"))
	mappedResult = result.MapError[string, int](errorResult, func(err error) blame.Blame {
		return blame.InternalServerError(err)
	})
	assert.IsType(t, &result.Failure[int]{}, mappedResult)
	assert.Equal(t, blame.ErrorInternalServerError, mappedResult.Error().FetchErrCode())
}

package request

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/undeniable-app/undeniable/blame"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type claimForm struct {
	Name        string `json:"name" form:"name"`
	ClaimNumber string `json:"claim_number" form:"claim_number" binding:"required"`
}

func contextFor(req *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestFetchTextParam(t *testing.T) {
	c := contextFor(httptest.NewRequest(http.MethodGet, "/?field=to", nil))
	c.Request.Header.Set("X-Field", "body")
	c.Params = gin.Params{{Key: "kind", Value: "draft"}}

	value, err := FetchTextParam(c, "field", QueryParam, true).Value()
	require.Nil(t, err)
	assert.Equal(t, "to", *value)

	value, err = FetchTextParam(c, "X-Field", HeaderParam, true).Value()
	require.Nil(t, err)
	assert.Equal(t, "body", *value)

	value, err = FetchTextParam(c, "kind", RouteParam, true).Value()
	require.Nil(t, err)
	assert.Equal(t, "draft", *value)

	value, err = FetchTextParam(c, "missing", QueryParam, false).Value()
	require.Nil(t, err)
	assert.Empty(t, *value)

	res := FetchTextParam(c, "missing", QueryParam, true)
	require.True(t, res.IsError())
	assert.Equal(t, blame.ErrorMissingParameter, res.Error().FetchErrCode())
	assert.Equal(t, "missing", res.Error().FetchFields()["parameter"])
}

func TestParamOriginString(t *testing.T) {
	assert.Equal(t, "route", RouteParam.String())
	assert.Equal(t, "query", QueryParam.String())
	assert.Equal(t, "header", HeaderParam.String())
	assert.Equal(t, "unknown", Unknown.String())
}

func TestExtractDataFromFormAcceptsJSONAndURLEncoded(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Jane","claim_number":"A1"}`))
	req.Header.Set("Content-Type", "application/json")
	form, err := ExtractDataFromForm[claimForm](contextFor(req)).Value()
	require.Nil(t, err)
	assert.Equal(t, claimForm{Name: "Jane", ClaimNumber: "A1"}, *form)

	values := url.Values{"name": {"Jane"}, "claim_number": {"A1"}}
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	form, err = ExtractDataFromForm[claimForm](contextFor(req)).Value()
	require.Nil(t, err)
	assert.Equal(t, claimForm{Name: "Jane", ClaimNumber: "A1"}, *form)
}

func TestExtractDataEnforcesBindingTags(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Jane"}`))
	req.Header.Set("Content-Type", "application/json")

	res := ExtractDataFromRequestBody[claimForm](contextFor(req))
	require.True(t, res.IsError())
	assert.True(t, errors.Is(res.Error(), blame.NewBasicError(blame.ErrorRequestBodyInvalid)))
}

func TestExtractDataFromRequestBodyRejectsMalformedJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")

	res := ExtractDataFromRequestBody[claimForm](contextFor(req))
	require.True(t, res.IsError())
	assert.Equal(t, blame.ErrorRequestBodyInvalid, res.Error().FetchErrCode())
}

func TestExtractDataFromQuery(t *testing.T) {
	c := contextFor(httptest.NewRequest(http.MethodGet, "/?name=Jane&claim_number=A1", nil))
	form, err := ExtractDataFromQuery[claimForm](c).Value()
	require.Nil(t, err)
	assert.Equal(t, "A1", form.ClaimNumber)

	c = contextFor(httptest.NewRequest(http.MethodGet, "/?name=Jane", nil))
	assert.True(t, ExtractDataFromQuery[claimForm](c).IsError())
}

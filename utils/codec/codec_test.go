package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/undeniable-app/undeniable/blame"
)

type report struct {
	Rows    int      `json:"rows" yaml:"rows"`
	Dropped []string `json:"dropped" yaml:"dropped"`
}

func TestEncodeYAML(t *testing.T) {
	out, err := Encode(report{Rows: 3, Dropped: []string{"line 4"}}, YAML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "rows: 3\n")
	assert.Contains(t, string(out), "- line 4\n")

	back, err := Decode[report](out, YAML)
	require.NoError(t, err)
	assert.Equal(t, []string{"line 4"}, back.Dropped)
}

func TestEncodeJSONIndented(t *testing.T) {
	out, err := Encode(report{Rows: 1}, JSON)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"rows\": 1,\n  \"dropped\": null\n}\n", string(out))
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode[report]([]byte("{"), JSON)
	require.Error(t, err)

	var b blame.Blame
	require.True(t, errors.As(err, &b))
	assert.Equal(t, blame.ErrorUnmarshalFailed, b.FetchErrCode())
}

func TestUnsupportedCodec(t *testing.T) {
	_, err := Encode(report{}, "toml")
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	c, ok := Parse("yml")
	assert.True(t, ok)
	assert.Equal(t, YAML, c)
	_, ok = Parse("xml")
	assert.False(t, ok)
}

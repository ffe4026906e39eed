package helpers

import (
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type claimLog struct {
	Name      string `json:"name"`
	Company   string `json:"company"`
	Residence string `json:"state_of_residence"`
	Internal  string `json:"-"`
	Subject   string
}

func TestSanitizeStruct(t *testing.T) {
	got := DefaultSanitizer.Sanitize(&claimLog{
		Name: "Jane Doe", Company: "Acme", Residence: "CA", Internal: "x", Subject: "Appeal",
	})

	assert.Equal(t, map[string]any{
		"name":               "****",
		"company":            "Acme",
		"state_of_residence": "****",
		"Subject":            "****",
	}, got)
}

func TestSanitizeNestedMapsAndSlices(t *testing.T) {
	got := DefaultSanitizer.Sanitize(map[string]any{
		"rows": []any{map[string]string{"Email": "a@b.co", "line": "3"}},
		"path": "/api/preview",
	})

	assert.Equal(t, map[string]any{
		"rows": []any{map[string]any{"Email": "****", "line": "3"}},
		"path": "/api/preview",
	}, got)
}

func TestSanitizeJSONText(t *testing.T) {
	assert.JSONEq(t, `{"name":"****","company":"Acme"}`,
		DefaultSanitizer.Sanitize(`{"name":"Jane","company":"Acme"}`).(string))
	assert.JSONEq(t, `{"claim_number":"****"}`,
		DefaultSanitizer.Sanitize([]byte(`{"claim_number":"ABC123"}`)).(string))

	assert.Equal(t, "boom", DefaultSanitizer.Sanitize("boom"))
	assert.Equal(t, "{not json", DefaultSanitizer.Sanitize("{not json"))
	assert.Equal(t, "[binary]", DefaultSanitizer.Sanitize([]byte{0x01, 0x02}))
}

func TestSanitizeCustomKeysAndScalars(t *testing.T) {
	s := NewSanitizer(" Token ")
	assert.Equal(t, map[string]any{"token": "****", "name": "Jane"},
		s.Sanitize(map[string]string{"token": "t", "name": "Jane"}))

	assert.Equal(t, 42, s.Sanitize(42))
	assert.Equal(t, "reading rows: EOF", s.Sanitize(fmt.Errorf("reading rows: %w", io.EOF)))
	assert.Equal(t, "1.5s", s.Sanitize(1500*time.Millisecond))
	assert.Nil(t, s.Sanitize(nil))

	assert.Equal(t, "****", s.SanitizeField("TOKEN", "abc"))
	assert.Equal(t, "abc", s.SanitizeField("label", "abc"))

	var nilSanitizer *Sanitizer
	assert.Equal(t, "raw", nilSanitizer.Sanitize("raw"))
}

func TestSanitizeTruncatesDeepValues(t *testing.T) {
	var v any = "leaf"
	for i := 0; i < 12; i++ {
		v = []any{v}
	}
	got := DefaultSanitizer.Sanitize(v)
	for i := 0; i <= sanitizeMaxDepth; i++ {
		got = got.([]any)[0]
	}
	assert.Equal(t, "[truncated]", got)
}

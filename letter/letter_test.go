package letter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBodyFilled(t *testing.T) {
	body := RenderBody(Fields{
		Name:             "Jane Doe",
		ClaimNumber:      "A123",
		StateOfResidence: "CA",
		StateOfCare:      "NY",
	})

	assert.True(t, strings.HasPrefix(body, "To the Claims Review Department,\n\n"))
	assert.Contains(t, body, "appeal the denial of my insurance claim #A123.")
	assert.Contains(t, body, "Proof of active medical registration in CA and in NY where my care was provided\n")
	assert.Contains(t, body, "Under CA Insurance Code and ERISA regulations")
	assert.True(t, strings.HasSuffix(body, "Sincerely,\nJane Doe"))
	assert.False(t, ContainsPlaceholder(body))
}

func TestRenderBodyPlaceholders(t *testing.T) {
	body := RenderBody(Fields{})

	assert.Contains(t, body, "claim #"+PlaceholderClaimNumber)
	assert.Contains(t, body, "registration in "+PlaceholderStateOfResidence+"\n")
	assert.True(t, strings.HasSuffix(body, "Sincerely,\n"+PlaceholderName))
	assert.True(t, ContainsPlaceholder(body))
}

func TestCareClause(t *testing.T) {
	tests := []struct {
		residence, care, want string
	}{
		{"CA", "CA", ""},
		{"CA", "", ""},
		{"CA", "   ", ""},
		{"CA", "ca", ""},
		{"CA", "NY", " and in NY where my care was provided"},
		{"", "NY", " and in NY where my care was provided"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CareClause(tt.residence, tt.care), "residence=%q care=%q", tt.residence, tt.care)
	}
}

func TestRenderBodyListIndentation(t *testing.T) {
	body := RenderBody(Fields{})
	assert.Contains(t, body, "including:\n   * Specific clinical findings")
	assert.Contains(t, body, "physician:\n    * Full name and credentials")
	assert.Contains(t, body, "\n\n5. Copies of all materials reviewed")
}

func TestRenderSubject(t *testing.T) {
	assert.Equal(t, "Appeal Request: Claim #A123", RenderSubject("A123"))
	assert.Equal(t, "Appeal Request: Claim #[CLAIM NUMBER]", RenderSubject(""))
}

func TestIsPlaceholder(t *testing.T) {
	assert.True(t, IsPlaceholder("[EMAIL ADDRESS]"))
	assert.True(t, IsPlaceholder(" [NAME] "))
	assert.False(t, IsPlaceholder("Appeal Request: Claim #[CLAIM NUMBER]"))
	assert.False(t, IsPlaceholder("claims@aetna.example"))
	assert.False(t, IsPlaceholder(""))
}

func TestSegments(t *testing.T) {
	segments := Segments("Claim #[CLAIM NUMBER] for [NAME].")
	require.Len(t, segments, 4)
	assert.Equal(t, Segment{Text: "Claim #"}, segments[0])
	assert.Equal(t, Segment{Text: "[CLAIM NUMBER]", Placeholder: true}, segments[1])
	assert.Equal(t, Segment{Text: " for "}, segments[2])
	assert.Equal(t, Segment{Text: "[NAME]", Placeholder: true}, segments[3])

	assert.Nil(t, Segments(""))
}

package compose

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/undeniable-app/undeniable/adapters/email"
	"github.com/undeniable-app/undeniable/blame"
	"github.com/undeniable-app/undeniable/directory"
	"github.com/undeniable-app/undeniable/form"
	"github.com/undeniable-app/undeniable/letter"
	"github.com/undeniable-app/undeniable/resolver"
	"github.com/undeniable-app/undeniable/utils/constant"
)

func testDirectory() *directory.Directory {
	return directory.New(
		directory.InsuranceCompany{Name: "Aetna", Email: "claims@aetna.example"},
		directory.InsuranceCompany{Name: "Regence", Email: constant.BlankEmail},
	)
}

func TestComputeEmailFullForm(t *testing.T) {
	got := ComputeEmail(form.Values{
		Name:             "Jane Doe",
		InsuranceCompany: "Aetna",
		StateOfResidence: "CA",
		StateOfCare:      "NY",
		ClaimNumber:      "A123",
	}, testDirectory())

	assert.Equal(t, "claims@aetna.example", got.To)
	assert.Equal(t, "Appeal Request: Claim #A123", got.Subject)
	assert.Contains(t, got.Body, "Proof of active medical registration in CA and in NY where my care was provided")
	assert.True(t, strings.HasSuffix(got.Body, "Sincerely,\nJane Doe"))
	assert.Empty(t, got.Error)
	assert.Nil(t, got.Err)
	assert.False(t, letter.ContainsPlaceholder(got.Subject))
	assert.False(t, letter.ContainsPlaceholder(got.Body))
}

func TestComputeEmailCompanyUnset(t *testing.T) {
	got := ComputeEmail(form.Values{Name: "Jane Doe"}, testDirectory())
	assert.Empty(t, got.To)
	assert.Empty(t, got.Error)
	assert.Equal(t, letter.PlaceholderEmailAddress, got.DisplayTo())
}

func TestComputeEmailNotListed(t *testing.T) {
	got := ComputeEmail(form.Values{
		Name:             "Jane Doe",
		InsuranceCompany: constant.NotListedCompany,
		StateOfResidence: "CA",
	}, testDirectory())

	assert.Empty(t, got.To)
	assert.True(t, errors.Is(got.Err, blame.ErrUnlistedCompany))
	assert.Equal(t, resolver.UnresolvedMessage, got.Error)
	assert.Equal(t, blame.ErrorCompanyUnlisted, got.ErrorCode)
	assert.Contains(t, got.Body, "Proof of active medical registration in CA\n")
	assert.True(t, strings.HasSuffix(got.Body, "Sincerely,\nJane Doe"))
}

func TestComputeEmailBlankAddress(t *testing.T) {
	got := ComputeEmail(form.Values{InsuranceCompany: "Regence"}, testDirectory())
	assert.Empty(t, got.To)
	assert.True(t, errors.Is(got.Err, blame.ErrCompanyNotFound))
}

func TestComputeEmailSameStateOmitsClause(t *testing.T) {
	got := ComputeEmail(form.Values{StateOfResidence: "CA", StateOfCare: "CA"}, testDirectory())
	assert.NotContains(t, got.Body, "where my care was provided")
}

func TestComputeEmailStripsMarkup(t *testing.T) {
	got := ComputeEmail(form.Values{
		Name:        "<script>alert(1)</script>Jane",
		ClaimNumber: "<b>A123</b>",
	}, testDirectory())

	assert.NotContains(t, got.Body, "<")
	assert.NotContains(t, got.Body, "script")
	assert.Equal(t, "Appeal Request: Claim #A123", got.Subject)
	assert.True(t, strings.HasSuffix(got.Body, "Sincerely,\nJane"))
}

func TestComposerMemoizes(t *testing.T) {
	composer, err := NewComposer(8, nil)
	require.NoError(t, err)
	dir := testDirectory()
	values := form.Values{Name: "Jane", InsuranceCompany: "Aetna"}

	first, cached := composer.Compute(values, dir)
	assert.False(t, cached)
	second, cached := composer.Compute(values, dir)
	assert.True(t, cached)
	assert.Equal(t, first, second)

	// A different directory instance is a different key.
	_, cached = composer.Compute(values, testDirectory())
	assert.False(t, cached)
	assert.Equal(t, 2, composer.Len())

	composer.Purge()
	assert.Equal(t, 0, composer.Len())
}

func TestCopyGuard(t *testing.T) {
	assert.Nil(t, CopyGuard(CopyTo, "claims@aetna.example"))
	assert.Nil(t, CopyGuard(CopyBody, "claim #[CLAIM NUMBER] pending"))

	err := CopyGuard(CopyTo, "[EMAIL ADDRESS]")
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, blame.ErrClipboardWriteRefused))
	assert.Equal(t, "to", err.FetchFields()["field"])

	assert.NotNil(t, CopyGuard(CopySubject, "  "))
}

func TestCopyableWithUnsetClaim(t *testing.T) {
	got := ComputeEmail(form.Values{Name: "Jane"}, testDirectory())
	assert.Contains(t, got.Body, letter.PlaceholderClaimNumber)

	copyable := Copyable(got)
	assert.False(t, copyable[CopyTo])
	assert.True(t, copyable[CopySubject])
	assert.True(t, copyable[CopyBody])
}

func TestParseCopyField(t *testing.T) {
	f, ok := ParseCopyField(" Body ")
	assert.True(t, ok)
	assert.Equal(t, CopyBody, f)
	_, ok = ParseCopyField("cc")
	assert.False(t, ok)
}

func TestMailtoURI(t *testing.T) {
	uri := MailtoURI("claims@aetna.example", "Appeal Request: Claim #A123", "Hello there,\nJane's (claim) 100%")
	assert.Equal(t,
		"mailto:claims@aetna.example?subject=Appeal%20Request%3A%20Claim%20%23A123&body=Hello%20there%2C%0AJane's%20(claim)%20100%25",
		uri)
	assert.Equal(t, "%C3%A9", EncodeURIComponent("é"))
	assert.Equal(t, "-_.!~*'()", EncodeURIComponent("-_.!~*'()"))
	assert.Equal(t, "a%26b%3Dc%23d%0Ae%2Bf%3Fg%2Fh", EncodeURIComponent("a&b=c#d\ne+f?g/h"))
	assert.Equal(t, "Jos%C3%A9%20N%C3%BA%C3%B1ez", EncodeURIComponent("José Núñez"))
}

func TestBuildDraft(t *testing.T) {
	builder := email.NewGomailDraftBuilder(email.WithClock(func() time.Time {
		return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	}))
	e := ComputeEmail(form.Values{Name: "Jane", InsuranceCompany: "Aetna", ClaimNumber: "A123"}, testDirectory())

	raw, err := BuildDraft(builder, e)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "To: claims@aetna.example")
	assert.Contains(t, string(raw), "Subject: Appeal Request: Claim #A123")

	assert.Equal(t, "appeal-A123.eml", DraftFilename("A123"))
	assert.Equal(t, "appeal-draft.eml", DraftFilename(""))
}

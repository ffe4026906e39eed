package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		raw   string
		want  string
	}{
		{"plain name", FieldName, "Jane Doe", "Jane Doe"},
		{"apostrophe stripped", FieldName, "O'Brien", "OBrien"},
		{"script removed", FieldName, "<script>alert('x')</script>Jane", "Jane"},
		{"tags removed", FieldName, "<b>Jane</b> <i>Doe</i>", "Jane Doe"},
		{"digits removed", FieldName, "Jane 2 Doe", "Jane Doe"},
		{"name capped", FieldName, "Abcdefghij Abcdefghij Abcdefghij Abc", "Abcdefghij Abcdefghij Abcdefgh"},
		{"decomposed accent", FieldName, "Jose\u0301", "Jos\u00e9"},
		{"non-ascii letters kept", FieldName, "Jos\u00e9 N\u00fa\u00f1ez", "Jos\u00e9 N\u00fa\u00f1ez"},
		{"symbols removed", FieldName, "Zo\u00eb \u2603 \u00d8deg\u00e5rd", "Zo\u00eb \u00d8deg\u00e5rd"},
		{"claim punctuation", FieldClaimNumber, "A-12/3 ", "A123"},
		{"claim markup", FieldClaimNumber, "<img src=x onerror=alert(1)>X99", "X99"},
		{"state upper", FieldStateOfResidence, "ca", "CA"},
		{"state capped", FieldStateOfCare, "New York", "NE"},
		{"company entity", FieldInsuranceCompany, " Blue Cross &amp; Shield ", "Blue Cross & Shield"},
		{"company tags", FieldInsuranceCompany, "<a href='x'>Aetna</a>", "Aetna"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.field, tt.raw))
		})
	}
}

func TestValidatePartialForm(t *testing.T) {
	assert.Nil(t, Values{}.Validate())
	assert.Nil(t, Values{Name: "Jane"}.Validate())
}

func TestValidateReportsFields(t *testing.T) {
	errs := Values{
		StateOfResidence: "ZZ",
		ClaimNumber:      "A1",
	}.Validate()

	require.Len(t, errs, 2)
	assert.Contains(t, errs, "state_of_residence")
	assert.Equal(t, "claim_number must be at least 3 characters long", errs["claim_number"])
}

func TestValidateFullForm(t *testing.T) {
	v := Values{
		Name:             "Jane Doe",
		InsuranceCompany: "Aetna",
		StateOfResidence: "CA",
		StateOfCare:      "NY",
		ClaimNumber:      "A123",
	}
	assert.Nil(t, v.Validate())
	assert.True(t, v.Complete())
	assert.False(t, Values{Name: "Jane"}.Complete())
}

func TestStateSetNotifiesInOrder(t *testing.T) {
	state := NewState()
	var seen []Values
	var order []string
	unsubscribe := state.Subscribe(func(v Values) {
		seen = append(seen, v)
		order = append(order, "first")
	})
	state.Subscribe(func(Values) { order = append(order, "second") })

	assert.Equal(t, "Jane", state.Set(FieldName, "<b>Jane</b>"))
	state.Set(FieldClaimNumber, "A123")

	require.Len(t, seen, 2)
	assert.Equal(t, "Jane", seen[0].Name)
	assert.Equal(t, "", seen[0].ClaimNumber)
	assert.Equal(t, "A123", seen[1].ClaimNumber)
	assert.Equal(t, []string{"first", "second", "first", "second"}, order)

	unsubscribe()
	state.Set(FieldStateOfResidence, "ca")
	assert.Len(t, seen, 2)
	assert.Equal(t, "CA", state.Values().StateOfResidence)
}

func TestStateUnknownField(t *testing.T) {
	state := NewState()
	called := false
	state.Subscribe(func(Values) { called = true })

	assert.Equal(t, "", state.Set(Field("email"), "x@example.com"))
	assert.False(t, called)
}

func TestStateSetAllAndReset(t *testing.T) {
	state := NewState()
	got := state.SetAll(Values{Name: " Jane ", StateOfCare: "ny"})
	assert.Equal(t, "Jane", got.Name)
	assert.Equal(t, "NY", got.StateOfCare)

	state.Reset()
	assert.Equal(t, Values{}, state.Values())
}

func TestRegions(t *testing.T) {
	assert.Len(t, Regions, 51)
	assert.True(t, IsRegion("DC"))
	assert.False(t, IsRegion("PR"))
	assert.Equal(t, "AL", RegionCodes()[0])
}

func TestLetterFields(t *testing.T) {
	f := Values{Name: "Jane", ClaimNumber: "A1B", StateOfResidence: "CA", StateOfCare: "NY"}.Letter()
	assert.Equal(t, "Jane", f.Name)
	assert.Equal(t, "NY", f.StateOfCare)
}

package form

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"
	"github.com/microcosm-cc/bluemonday"
	"github.com/undeniable-app/undeniable/utils/constant"
	"golang.org/x/text/unicode/norm"
)

// Field identifies one input of the appeal form.
type Field string

const (
	FieldName             Field = "name"
	FieldInsuranceCompany Field = "insurance_company"
	FieldStateOfResidence Field = "state_of_residence"
	FieldStateOfCare      Field = "state_of_care"
	FieldClaimNumber      Field = "claim_number"
)

// Fields lists every form field in display order.
var Fields = []Field{FieldName, FieldInsuranceCompany, FieldStateOfResidence, FieldStateOfCare, FieldClaimNumber}

func (f Field) String() string {
	return string(f)
}

// Length caps applied while sanitizing.
const (
	MaxNameLength        = 30
	MaxClaimNumberLength = 30
	MinClaimNumberLength = 3
	RegionLength         = 2
	MaxCompanyLength     = 120
)

var (
	strictPolicy  = bluemonday.StrictPolicy()
	angleStripper = strings.NewReplacer("<", "", ">", "")
)

// maxStripPasses bounds StripMarkup on input with nested entity encoding.
const maxStripPasses = 8

// StripMarkup removes every tag, including the contents of script and style
// elements, and returns NFC plain text with entities decoded. Passes repeat
// until the text is stable, so entity-encoded markup cannot survive a
// second call.
func StripMarkup(s string) string {
	for range maxStripPasses {
		next := norm.NFC.String(s)
		next = html.UnescapeString(strictPolicy.Sanitize(next))
		next = angleStripper.Replace(next)
		if next == s {
			break
		}
		s = next
	}
	return s
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

// Sanitize converts raw input for field into the value stored in the form.
// Characters outside the field's class are removed, never flagged.
func Sanitize(field Field, raw string) string {
	s := StripMarkup(raw)
	switch field {
	case FieldName:
		s = govalidator.WhiteList(s, constant.NameCharClass)
		s = strings.Join(strings.Fields(s), " ")
		return strings.TrimSpace(truncate(s, MaxNameLength))
	case FieldClaimNumber:
		s = govalidator.WhiteList(s, constant.ClaimNumberCharClass)
		return truncate(s, MaxClaimNumberLength)
	case FieldStateOfResidence, FieldStateOfCare:
		s = govalidator.WhiteList(s, constant.RegionCharClass)
		return strings.ToUpper(truncate(s, RegionLength))
	case FieldInsuranceCompany:
		return truncate(strings.TrimSpace(s), MaxCompanyLength)
	}
	return strings.TrimSpace(s)
}

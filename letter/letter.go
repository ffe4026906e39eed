package letter

import (
	"regexp"
	"strings"

	"github.com/undeniable-app/undeniable/utils/constant"
)

// Placeholders stand in for fields that are still empty.
const (
	PlaceholderName             = "[NAME]"
	PlaceholderClaimNumber      = "[CLAIM NUMBER]"
	PlaceholderStateOfResidence = "[STATE OF RESIDENCE]"
	PlaceholderEmailAddress     = "[EMAIL ADDRESS]"
)

var placeholderPattern = regexp.MustCompile(constant.PlaceholderTokenRegex)

// Fields are the already sanitized values substituted into the letter.
type Fields struct {
	Name             string
	ClaimNumber      string
	StateOfResidence string
	StateOfCare      string
}

func orPlaceholder(value, placeholder string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return placeholder
	}
	return value
}

func normalizeState(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// CareClause returns the " and in XX where my care was provided" suffix, or ""
// when care is blank or matches the state of residence.
func CareClause(stateOfResidence, stateOfCare string) string {
	care := normalizeState(stateOfCare)
	if care == "" || care == normalizeState(stateOfResidence) {
		return ""
	}
	return " and in " + care + " where my care was provided"
}

// RenderBody produces the full letter.
func RenderBody(f Fields) string {
	r := strings.NewReplacer(
		tokenClaimNumber, orPlaceholder(f.ClaimNumber, PlaceholderClaimNumber),
		tokenResidence, orPlaceholder(f.StateOfResidence, PlaceholderStateOfResidence),
		tokenCareClause, CareClause(f.StateOfResidence, f.StateOfCare),
		tokenName, orPlaceholder(f.Name, PlaceholderName),
	)
	return r.Replace(bodyTemplate)
}

// RenderSubject produces "Appeal Request: Claim #<claim>".
func RenderSubject(claimNumber string) string {
	return subjectPrefix + orPlaceholder(claimNumber, PlaceholderClaimNumber)
}

// IsPlaceholder reports whether the whole of s is a single bracketed token.
func IsPlaceholder(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= 2 && strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")
}

// ContainsPlaceholder reports whether s holds any bracketed token.
func ContainsPlaceholder(s string) bool {
	return placeholderPattern.MatchString(s)
}

// Segment is a run of rendered text, flagged when it is a placeholder.
type Segment struct {
	Text        string `json:"text"`
	Placeholder bool   `json:"placeholder"`
}

// Segments splits s around placeholder tokens so they can be highlighted.
func Segments(s string) []Segment {
	var out []Segment
	last := 0
	for _, loc := range placeholderPattern.FindAllStringIndex(s, -1) {
		if loc[0] > last {
			out = append(out, Segment{Text: s[last:loc[0]]})
		}
		out = append(out, Segment{Text: s[loc[0]:loc[1]], Placeholder: true})
		last = loc[1]
	}
	if last < len(s) {
		out = append(out, Segment{Text: s[last:]})
	}
	return out
}

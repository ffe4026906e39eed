package compose

import (
	"strings"

	"github.com/undeniable-app/undeniable/blame"
	"github.com/undeniable-app/undeniable/letter"
)

// CopyField names a copyable part of the generated email.
type CopyField string

const (
	CopyTo      CopyField = "to"
	CopySubject CopyField = "subject"
	CopyBody    CopyField = "body"
)

// ParseCopyField accepts "to", "subject" or "body".
func ParseCopyField(s string) (CopyField, bool) {
	switch f := CopyField(strings.ToLower(strings.TrimSpace(s))); f {
	case CopyTo, CopySubject, CopyBody:
		return f, true
	}
	return "", false
}

// CopyGuard refuses to copy a value that is empty or is, as a whole, a single
// placeholder token such as "[EMAIL ADDRESS]". Longer text that merely
// contains placeholders may be copied.
func CopyGuard(field CopyField, value string) blame.Blame {
	if strings.TrimSpace(value) == "" || letter.IsPlaceholder(value) {
		return blame.ClipboardWriteRefused(string(field))
	}
	return nil
}

// Copyable reports, per field, whether CopyGuard would allow the copy.
func Copyable(email GeneratedEmail) map[CopyField]bool {
	out := make(map[CopyField]bool, 3)
	for _, f := range []CopyField{CopyTo, CopySubject, CopyBody} {
		out[f] = CopyGuard(f, email.Field(f)) == nil
	}
	return out
}

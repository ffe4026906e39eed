package compose

import "strings"

const upperhex = "0123456789ABCDEF"

// shouldEscape follows encodeURIComponent: only A-Z a-z 0-9 and - _ . ! ~ * ' ( )
// are left as is.
func shouldEscape(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return false
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return false
	}
	return true
}

// EncodeURIComponent percent-encodes s byte by byte over its UTF-8 form.
// Spaces become %20 and line feeds %0A.
func EncodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// MailtoURI builds mailto:<to>?subject=..&body=.. for the platform mail handler.
func MailtoURI(to, subject, body string) string {
	return "mailto:" + to + "?subject=" + EncodeURIComponent(subject) + "&body=" + EncodeURIComponent(body)
}

// Mailto returns the mailto URI of email.
func (e GeneratedEmail) Mailto() string {
	return MailtoURI(e.To, e.Subject, e.Body)
}

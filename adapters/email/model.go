package email

import "strings"

// DraftData is the content of an unsent message.
// @field From: Optional sender address, left for the mail client to fill when empty
// @field To: Recipient addresses; empty entries are skipped
// @field Subject: The subject line
// @field TextBody: The plain text body
// @field Headers: Extra headers written verbatim
type DraftData struct {
	From     string
	To       []string
	Subject  string
	TextBody string
	Headers  map[string]string
}

func NewDraftData() *DraftData {
	return &DraftData{
		To:      make([]string, 0),
		Headers: make(map[string]string),
	}
}

// recipients drops blank entries.
func (d *DraftData) recipients() []string {
	out := make([]string, 0, len(d.To))
	for _, to := range d.To {
		if strings.TrimSpace(to) != "" {
			out = append(out, strings.TrimSpace(to))
		}
	}
	return out
}

package compose

import (
	"github.com/undeniable-app/undeniable/adapters/email"
	"github.com/undeniable-app/undeniable/blame"
	"github.com/undeniable-app/undeniable/utils/helpers"
)

// DraftFilename is the download name of the .eml file.
func DraftFilename(claimNumber string) string {
	if helpers.IsEmpty(claimNumber) {
		return "appeal-draft.eml"
	}
	return "appeal-" + claimNumber + ".eml"
}

// BuildDraft renders e as an unsent RFC 5322 message.
func BuildDraft(builder email.DraftBuilder, e GeneratedEmail) ([]byte, error) {
	data := email.NewDraftData()
	if e.To != "" {
		data.To = append(data.To, e.To)
	}
	data.Subject = e.Subject
	data.TextBody = e.Body

	raw, err := builder.Build(data)
	if err != nil {
		return nil, blame.DraftBuildFailed(err)
	}
	return raw, nil
}

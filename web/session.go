package web

import (
	"github.com/gin-gonic/gin"

	"github.com/undeniable-app/undeniable/adapters/gin/middleware"
	"github.com/undeniable-app/undeniable/compose"
	"github.com/undeniable-app/undeniable/consent"
	"github.com/undeniable-app/undeniable/directory"
	"github.com/undeniable-app/undeniable/form"
	"github.com/undeniable-app/undeniable/utils/constant"
)

// session feeds raw through a fresh form State and recomputes the email on
// each change, the same way the page script does on every keystroke. The
// state lives only for this request.
func (a *App) session(raw form.Values, dir *directory.Directory) (form.Values, compose.GeneratedEmail) {
	state := form.NewState()

	var email compose.GeneratedEmail
	unsubscribe := state.Subscribe(func(v form.Values) {
		email, _ = a.composer.Compute(v, dir)
	})
	defer unsubscribe()

	values := state.SetAll(raw)
	return values, email
}

func consentStatus(c *gin.Context) consent.Status {
	return consent.ParseStatus(middleware.ConsentCookieValue(c))
}

// track records event when the visitor consented and does not send DNT.
func (a *App) track(c *gin.Context, event consent.Event, label string) {
	a.tracker.Track(consentStatus(c), c.GetHeader(constant.DoNotTrack), event, label)
}

func copyableByName(email compose.GeneratedEmail) map[string]bool {
	out := map[string]bool{}
	for field, ok := range compose.Copyable(email) {
		out[string(field)] = ok
	}
	return out
}

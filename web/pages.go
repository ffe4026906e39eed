package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/undeniable-app/undeniable/adapters/gin/request"
	"github.com/undeniable-app/undeniable/blame"
	"github.com/undeniable-app/undeniable/compose"
	"github.com/undeniable-app/undeniable/consent"
	"github.com/undeniable-app/undeniable/form"
	"github.com/undeniable-app/undeniable/utils/constant"
)

// Page states of the index page.
const (
	stateLoading = "loading"
	stateError   = "error"
	stateReady   = "ready"
)

const loadFailedMessage = "Error loading insurance companies. Please reload the page to try again."

type pageData struct {
	Title         string
	State         string
	Error         string
	Companies     []string
	NotListed     string
	Regions       []form.Region
	Values        form.Values
	Email         compose.GeneratedEmail
	Copyable      map[string]bool
	FieldErrors   map[string]string
	Mailto        string
	Consent       string
	ShowBanner    bool
	Analytics     bool
	MeasurementID string
	AppURL        string
	StaticPrefix  string
}

func (a *App) basePage(c *gin.Context, title string) pageData {
	status := consentStatus(c)
	gate := a.tracker.Gate()
	return pageData{
		Title:         title,
		NotListed:     constant.NotListedCompany,
		Regions:       form.Regions,
		Consent:       status.String(),
		ShowBanner:    !status.Decided(),
		Analytics:     gate.Allowed(status, c.GetHeader(constant.DoNotTrack)),
		MeasurementID: gate.MeasurementID,
		AppURL:        a.cfg.App.URL,
		StaticPrefix:  StaticPrefix,
	}
}

// index renders the loading state while the directory is pending, a full
// page error once it failed and otherwise the form with its preview.
// Query values prefill the form so the page works without script.
func (a *App) index(c *gin.Context) {
	data := a.basePage(c, "Insurance Claim Appeal")

	dir, err := a.loader.Directory().Value()
	if err != nil {
		if errors.Is(err, blame.ErrDirectoryPending) {
			data.State = stateLoading
			c.HTML(http.StatusOK, "index.html", data)
			return
		}
		data.State = stateError
		data.Error = loadFailedMessage
		c.HTML(http.StatusServiceUnavailable, "index.html", data)
		return
	}

	var raw form.Values
	if query := request.ExtractDataFromQuery[form.Values](c); query.IsSuccess() {
		raw = *query.ToValue()
	}
	values, email := a.session(raw, dir)

	data.State = stateReady
	data.Companies = dir.Names()
	data.Values = values
	data.Email = email
	data.Copyable = copyableByName(email)
	data.FieldErrors = values.Validate()
	data.Mailto = email.Mailto()

	a.track(c, consent.EventPageView, "index")
	c.HTML(http.StatusOK, "index.html", data)
}

func (a *App) staticPage(name, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.track(c, consent.EventPageView, name)
		c.HTML(http.StatusOK, name, a.basePage(c, title))
	}
}

func (a *App) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"directory": a.loader.Status().String(),
	})
}

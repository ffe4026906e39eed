package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/undeniable-app/undeniable/adapters/gin/middleware"
	"github.com/undeniable-app/undeniable/adapters/gin/request"
	"github.com/undeniable-app/undeniable/adapters/log"
	"github.com/undeniable-app/undeniable/blame"
	"github.com/undeniable-app/undeniable/compose"
	"github.com/undeniable-app/undeniable/consent"
	"github.com/undeniable-app/undeniable/form"
	"github.com/undeniable-app/undeniable/letter"
	"github.com/undeniable-app/undeniable/result"
	"github.com/undeniable-app/undeniable/utils/constant"
)

type companiesResponse struct {
	Companies []string      `json:"companies"`
	NotListed string        `json:"not_listed"`
	Regions   []form.Region `json:"regions"`
}

// companies lists the selectable names in directory order followed by the
// "not listed" option. It fails with 503 while the directory is pending or
// after it failed.
func (a *App) companies(_ *gin.Context) result.Result[companiesResponse] {
	dir, err := a.loader.Directory().Value()
	if err != nil {
		return result.NewFailure[companiesResponse](err)
	}
	return result.NewSuccess(&companiesResponse{
		Companies: dir.Options(),
		NotListed: constant.NotListedCompany,
		Regions:   form.Regions,
	})
}

type previewResponse struct {
	compose.GeneratedEmail
	DisplayTo   string                                 `json:"display_to"`
	Values      form.Values                            `json:"values"`
	Copyable    map[compose.CopyField]bool             `json:"copyable"`
	Segments    map[compose.CopyField][]letter.Segment `json:"segments"`
	Mailto      string                                 `json:"mailto"`
	FieldErrors map[string]string                      `json:"field_errors,omitempty"`
	Complete    bool                                   `json:"complete"`
}

// preview recomputes the email for the posted form values. A lookup error
// rides along in the response; it does not fail the request.
func (a *App) preview(c *gin.Context) result.Result[previewResponse] {
	dir, err := a.loader.Directory().Value()
	if err != nil {
		return result.NewFailure[previewResponse](err)
	}
	raw := request.ExtractDataFromForm[form.Values](c)
	if raw.IsError() {
		return result.CastFailure[form.Values, previewResponse](raw)
	}

	values, email := a.session(*raw.ToValue(), dir)
	return result.NewSuccess(&previewResponse{
		GeneratedEmail: email,
		DisplayTo:      email.DisplayTo(),
		Values:         values,
		Copyable:       compose.Copyable(email),
		Segments: map[compose.CopyField][]letter.Segment{
			compose.CopyTo:      letter.Segments(email.DisplayTo()),
			compose.CopySubject: letter.Segments(email.Subject),
			compose.CopyBody:    letter.Segments(email.Body),
		},
		Mailto:      email.Mailto(),
		FieldErrors: values.Validate(),
		Complete:    values.Complete(),
	})
}

type copyRequest struct {
	Field string `json:"field" form:"field" binding:"required"`
	Value string `json:"value" form:"value"`
}

type copyResponse struct {
	Field  compose.CopyField `json:"field"`
	Copied bool              `json:"copied"`
}

// copy runs the clipboard guard for the text the page is about to copy.
// The value itself is neither stored nor logged.
func (a *App) copy(c *gin.Context) result.Result[copyResponse] {
	req := request.ExtractDataFromForm[copyRequest](c)
	if req.IsError() {
		return result.CastFailure[copyRequest, copyResponse](req)
	}
	field, ok := compose.ParseCopyField(req.ToValue().Field)
	if !ok {
		return result.NewFailure[copyResponse](blame.RequestBodyInvalid(fmt.Errorf("unknown copy field %q", req.ToValue().Field)))
	}
	if err := compose.CopyGuard(field, req.ToValue().Value); err != nil {
		return result.NewFailure[copyResponse](err)
	}

	a.track(c, consent.EventCopyContent, string(field))
	return result.NewSuccess(&copyResponse{Field: field, Copied: true})
}

type consentRequest struct {
	Status string `json:"status" form:"status" binding:"required"`
}

type consentResponse struct {
	Status    string `json:"status"`
	Analytics bool   `json:"analytics"`
}

// setConsent stores the banner answer in the consent cookie.
func (a *App) setConsent(c *gin.Context) result.Result[consentResponse] {
	req := request.ExtractDataFromForm[consentRequest](c)
	if req.IsError() {
		return result.CastFailure[consentRequest, consentResponse](req)
	}
	status := consent.ParseStatus(req.ToValue().Status)
	if !status.Decided() {
		return result.NewFailure[consentResponse](blame.RequestBodyInvalid(fmt.Errorf("unknown consent status %q", req.ToValue().Status)))
	}

	middleware.SetConsentCookie(c, status.String(), a.cfg.Environment)
	return result.NewSuccess(&consentResponse{
		Status:    status.String(),
		Analytics: a.tracker.Gate().Allowed(status, c.GetHeader(constant.DoNotTrack)),
	})
}

// queryEmail computes the email for the form values in the query string.
func (a *App) queryEmail(c *gin.Context) (form.Values, compose.GeneratedEmail, bool) {
	dir, err := a.loader.Directory().Value()
	if err != nil {
		middleware.AbortWithBlame(c, err)
		return form.Values{}, compose.GeneratedEmail{}, false
	}
	raw := request.ExtractDataFromQuery[form.Values](c)
	if raw.IsError() {
		middleware.AbortWithBlame(c, raw.Error())
		return form.Values{}, compose.GeneratedEmail{}, false
	}
	values, email := a.session(*raw.ToValue(), dir)
	return values, email, true
}

// mailto redirects to the mailto: URI so the platform mail handler opens
// the draft. Nothing is sent by the service.
func (a *App) mailto(c *gin.Context) {
	_, email, ok := a.queryEmail(c)
	if !ok {
		return
	}
	a.track(c, consent.EventOpenEmailClient, "")
	c.Redirect(http.StatusFound, email.Mailto())
}

// draft returns the email as an unsent .eml message for download.
func (a *App) draft(c *gin.Context) {
	values, email, ok := a.queryEmail(c)
	if !ok {
		return
	}
	raw, err := compose.BuildDraft(a.drafts, email)
	if err != nil {
		var b blame.Blame
		if !errors.As(err, &b) {
			b = blame.DraftBuildFailed(err)
		}
		a.log.Error("draft export failed", log.String("error_code", b.FetchErrCode().String()), log.Err(err))
		middleware.AbortWithBlame(c, b)
		return
	}

	a.track(c, consent.EventDownloadDraft, "")
	c.Header("Content-Disposition", `attachment; filename="`+compose.DraftFilename(values.ClaimNumber)+`"`)
	c.Data(http.StatusOK, constant.ContentTypeRFC822.String(), raw)
}

package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/undeniable-app/undeniable/utils/constant"
)

// ConsentCookieTTL is how long a consent answer is remembered.
const ConsentCookieTTL = 365 * 24 * time.Hour

// SetConsentCookie writes the consent cookie. It is readable by the page
// script, so it is not HttpOnly; it carries no personal data.
// - env: "prod", "staging", "dev", ...
func SetConsentCookie(c *gin.Context, value, env string) {
	req := c.Request

	scheme := "http"
	if req.TLS != nil || strings.EqualFold(req.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	secure := scheme == "https" || strings.EqualFold(env, "prod")

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     constant.ConsentCookie,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(ConsentCookieTTL),
		MaxAge:   int(ConsentCookieTTL.Seconds()),
		Secure:   secure,
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
}

// ConsentCookieValue returns the raw consent cookie value, or "".
func ConsentCookieValue(c *gin.Context) string {
	value, err := c.Cookie(constant.ConsentCookie)
	if err != nil {
		return ""
	}
	return value
}

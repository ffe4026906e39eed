// Package web serves the appeal form: the HTML page in its loading, error
// and form states, the JSON api used by the page script, and the static
// pages.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/undeniable-app/undeniable/adapters/email"
	"github.com/undeniable-app/undeniable/adapters/gin/handler"
	"github.com/undeniable-app/undeniable/adapters/gin/middleware"
	"github.com/undeniable-app/undeniable/adapters/gin/server"
	"github.com/undeniable-app/undeniable/adapters/log"
	metrics "github.com/undeniable-app/undeniable/adapters/prometheus"
	"github.com/undeniable-app/undeniable/blame"
	"github.com/undeniable-app/undeniable/compose"
	"github.com/undeniable-app/undeniable/config"
	"github.com/undeniable-app/undeniable/consent"
	"github.com/undeniable-app/undeniable/directory"
	"github.com/undeniable-app/undeniable/letter"
	"github.com/undeniable-app/undeniable/utils/constant"
)

//go:embed assets/templates/*.html assets/static/*
var assets embed.FS

// StaticPrefix is the URL prefix of the embedded scripts and styles.
const StaticPrefix = "/static"

// Dependencies are the collaborators of the web layer.
type Dependencies struct {
	Config   *config.Config
	Loader   *directory.Loader
	Composer *compose.Composer
	Tracker  *consent.Tracker
	Drafts   email.DraftBuilder
	Metrics  *metrics.MetricsCollector
	Log      *log.Log
}

// App holds the handlers of the web layer.
type App struct {
	cfg      *config.Config
	loader   *directory.Loader
	composer *compose.Composer
	tracker  *consent.Tracker
	drafts   email.DraftBuilder
	metrics  *metrics.MetricsCollector
	log      *log.Log
	pages    *template.Template
	static   fs.FS
	limiter  *middleware.IPRateLimiter
}

// New validates deps and parses the embedded templates.
func New(deps Dependencies) (*App, error) {
	if deps.Log == nil {
		deps.Log = log.NewBasicLogger(false)
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.NewMetricsCollector()
	}
	if deps.Drafts == nil {
		deps.Drafts = email.NewGomailDraftBuilder(email.WithLog(deps.Log))
	}
	if deps.Composer == nil {
		c, err := compose.NewComposer(deps.Config.Cache.Size, deps.Log)
		if err != nil {
			return nil, err
		}
		deps.Composer = c
	}
	if deps.Tracker == nil {
		deps.Tracker = consent.NewTracker(AnalyticsGate(deps.Config), deps.Metrics, deps.Log)
	}

	pages, err := template.New("pages").Funcs(template.FuncMap{
		"segments": letter.Segments,
	}).ParseFS(assets, "assets/templates/*.html")
	if err != nil {
		return nil, blame.InternalServerError(err)
	}
	static, err := fs.Sub(assets, "assets/static")
	if err != nil {
		return nil, blame.InternalServerError(err)
	}

	limit := rate.Limit(deps.Config.Server.RateLimit.RPS)
	if deps.Config.Server.RateLimit.RPS <= 0 {
		limit = rate.Inf
	}

	return &App{
		cfg:      deps.Config,
		loader:   deps.Loader,
		composer: deps.Composer,
		tracker:  deps.Tracker,
		drafts:   deps.Drafts,
		metrics:  deps.Metrics,
		log:      deps.Log,
		pages:    pages,
		static:   static,
		limiter:  middleware.NewIPRateLimiter(limit, deps.Config.Server.RateLimit.Burst, deps.Config.Server.RateLimit.TTL, deps.Log),
	}, nil
}

// AnalyticsGate builds the environment side of the consent gate from cfg.
func AnalyticsGate(cfg *config.Config) consent.Gate {
	return consent.Gate{
		Production:    cfg.IsProduction(),
		Enabled:       cfg.Analytics.Enabled,
		MeasurementID: cfg.Analytics.MeasurementID,
	}
}

// ServerOptions wires the middleware chain, the templates and the routes.
func (a *App) ServerOptions() []server.ServerOption {
	return []server.ServerOption{
		server.WithLogger(a.log),
		server.WithPort(a.cfg.Server.Port),
		server.WithReadTimeout(a.cfg.Server.ReadTimeout),
		server.WithGracefulTimeOut(a.cfg.Server.ShutdownTimeout),
		server.WithHTMLTemplate(a.pages),
		server.WithServeStatic(server.NewServeStaticConfig(StaticPrefix, a.static)),
		server.WithGlobalMiddleware(
			middleware.RecoveryMiddleware(a.log),
			middleware.RequestIDMiddleware(),
			middleware.GinRequestLogger(a.log),
			middleware.SecurityHeadersMiddleware(a.cfg.IsProduction()),
			middleware.CompressionMiddleware(),
			middleware.PrometheusMiddleware(a.metrics),
		),
		server.WithRoutingConfigurator(a.routes),
	}
}

// Handler builds a router with every route, for tests and embedding.
func (a *App) Handler() http.Handler {
	return server.NewServer(a.ServerOptions()...).Handler()
}

func (a *App) routes(r *gin.Engine) {
	r.GET("/", a.index)
	r.GET("/about", a.staticPage("about.html", "About"))
	r.GET("/privacy", a.staticPage("privacy.html", "Privacy Policy"))
	r.GET("/terms", a.staticPage("terms.html", "Terms of Service"))
	r.GET(constant.HealthEndpoint, a.health)
	middleware.RegisterMetricsEndpoint(r, a.metrics)

	api := r.Group(constant.APIGroup, a.limiter.Middleware())
	api.GET("/companies", handler.ExecuteControllerHandler(a.log, a.companies))
	api.POST("/preview", handler.ExecuteControllerHandler(a.log, a.preview))
	api.POST("/copy", handler.ExecuteControllerHandler(a.log, a.copy))
	api.POST("/consent", handler.ExecuteControllerHandler(a.log, a.setConsent))
	api.GET("/mailto", a.mailto)
	api.GET("/draft.eml", a.draft)

	r.NoRoute(func(c *gin.Context) {
		middleware.AbortWithBlame(c, blame.RouteNotFound())
	})
}

// Close stops the rate limiter sweeper.
func (a *App) Close() {
	a.limiter.StopCleanup()
}

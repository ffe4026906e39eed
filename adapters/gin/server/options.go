package server

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/undeniable-app/undeniable/adapters/log"
	"github.com/undeniable-app/undeniable/utils/constant"
	"github.com/undeniable-app/undeniable/utils/helpers"
)

// ServerOption defines a functional option for configuring the server
type ServerOption func(*ServerOptions)

// WithPort sets the server port
func WithPort(port string) ServerOption {
	return func(o *ServerOptions) {
		o.port = port
	}
}

// WithBaseURL sets the base URL for the server
func WithBaseURL(baseURL string) ServerOption {
	return func(o *ServerOptions) {
		o.baseURL = baseURL
	}
}

// WithServeStatic serves embedded static files
func WithServeStatic(config *ServeStaticConfig) ServerOption {
	return func(o *ServerOptions) {
		o.serveStatic = config
	}
}

// WithHTMLTemplate sets the parsed page templates
func WithHTMLTemplate(tmpl *template.Template) ServerOption {
	return func(o *ServerOptions) {
		o.htmlTemplate = tmpl
	}
}

// WithGlobalMiddleware adds global middleware
func WithGlobalMiddleware(middleware ...gin.HandlerFunc) ServerOption {
	return func(o *ServerOptions) {
		o.GlobalMiddlewares = append(o.GlobalMiddlewares, middleware...)
	}
}

// WithRouteGroup adds a route group
func WithRouteGroup(group RouteGroupConfig) ServerOption {
	return func(o *ServerOptions) {
		o.RouteGroups = append(o.RouteGroups, group)
	}
}

// WithRoutes adds routes directly under the base URL
func WithRoutes(routes []RouteConfig) ServerOption {
	return func(o *ServerOptions) {
		o.RouteGroups = append(o.RouteGroups, RouteGroupConfig{
			Prefix: "",
			Routes: routes,
		})
	}
}

// WithReadTimeout bounds reading a request including its body
func WithReadTimeout(timeOut time.Duration) ServerOption {
	return func(o *ServerOptions) {
		if timeOut > 0 {
			o.readTimeout = timeOut
		}
	}
}

// WithGracefulTimeOut adds a graceful time out
func WithGracefulTimeOut(timeOut time.Duration) ServerOption {
	return func(o *ServerOptions) {
		if timeOut > 0 {
			o.gracefulTimeOut = timeOut
		}
	}
}

// WithRoutingConfigurator allows you to supply a custom routing function.
// This is useful if your routes need to inject additional middleware in between.
func WithRoutingConfigurator(fn func(*gin.Engine)) ServerOption {
	return func(o *ServerOptions) {
		o.RoutingConfigurator = fn
	}
}

// WithLogger sets the logger for the server
func WithLogger(log *log.Log) ServerOption {
	return func(o *ServerOptions) {
		o.log = log
	}
}

// applyServeStatic applies server static content to the router
func applyServeStatic(router *gin.Engine, config *ServeStaticConfig) {
	if config == nil || config.files == nil || helpers.IsEmpty(config.relativePath) {
		return
	}
	router.StaticFS(config.relativePath, http.FS(config.files))
}

// applyGlobalMiddlewares applies global middlewares to the router
func applyGlobalMiddlewares(router *gin.Engine, middlewares []gin.HandlerFunc) {
	for _, mw := range middlewares {
		router.Use(mw)
	}
}

// configureRouteGroups configures route groups and their routes
func configureRouteGroups(baseGroup *gin.RouterGroup, routeGroups []RouteGroupConfig, logger *log.Log) {
	for _, groupConfig := range routeGroups {
		group := baseGroup.Group(groupConfig.Prefix)
		for _, mw := range groupConfig.Middlewares {
			group.Use(mw)
		}

		for _, route := range groupConfig.Routes {
			switch route.Method {
			case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodHead:
				group.Handle(route.Method, route.Path, route.Handler)
			default:
				logger.Error("unsupported route method",
					log.String("method", route.Method),
					log.String("path", route.Path),
					log.String("component", string(constant.ErrAdaptors)),
				)
			}
		}
	}
}

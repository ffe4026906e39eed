package server

import (
	"html/template"
	"io/fs"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/undeniable-app/undeniable/adapters/log"
	"github.com/undeniable-app/undeniable/utils/constant"
)

// ServerOptions encapsulates the configuration for the Gin server
type ServerOptions struct {
	port              string
	baseURL           string
	readTimeout       time.Duration
	gracefulTimeOut   time.Duration
	serveStatic       *ServeStaticConfig
	htmlTemplate      *template.Template
	GlobalMiddlewares []gin.HandlerFunc
	RouteGroups       []RouteGroupConfig
	// A custom routing configurator allows complete control over route registration.
	RoutingConfigurator func(*gin.Engine)
	log                 *log.Log
}

// DefaultServerOptions returns the default server options
func DefaultServerOptions() *ServerOptions {
	return &ServerOptions{
		port:              os.Getenv(constant.DefaultAppPort),
		baseURL:           "/",
		readTimeout:       10 * time.Second,
		gracefulTimeOut:   constant.ServerDefaultGracefulTime,
		GlobalMiddlewares: []gin.HandlerFunc{},
		RouteGroups:       []RouteGroupConfig{},
	}
}

// ServeStaticConfig serves files of an fs.FS under a URL prefix.
type ServeStaticConfig struct {
	relativePath string // example "/static"
	files        fs.FS
}

// NewServeStaticConfig creates a new ServeStaticConfig instance
func NewServeStaticConfig(relativePath string, files fs.FS) *ServeStaticConfig {
	return &ServeStaticConfig{
		relativePath: relativePath,
		files:        files,
	}
}

// RouteGroupConfig defines configuration for a specific route group
type RouteGroupConfig struct {
	Prefix      string
	Middlewares []gin.HandlerFunc
	Routes      []RouteConfig
}

// NewRouteGroupConfig creates a new RouteGroupConfig instance
func NewRouteGroupConfig(
	prefix string,
	middlewares []gin.HandlerFunc,
	routes []RouteConfig) RouteGroupConfig {
	return RouteGroupConfig{
		Prefix:      prefix,
		Middlewares: middlewares,
		Routes:      routes,
	}
}

// RouteConfig defines an individual route
type RouteConfig struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// NewRouteConfig creates a new RouteConfig instance
func NewRouteConfig(method, path string, handler gin.HandlerFunc) RouteConfig {
	return RouteConfig{
		Method:  method,
		Path:    path,
		Handler: handler,
	}
}

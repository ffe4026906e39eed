package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/undeniable-app/undeniable/adapters/log"
	"github.com/undeniable-app/undeniable/blame"
	"github.com/undeniable-app/undeniable/utils/constant"
	"github.com/undeniable-app/undeniable/utils/helpers"
)

// Server is a gin engine bound to an http.Server.
type Server struct {
	options    *ServerOptions
	router     *gin.Engine
	httpServer *http.Server
	log        *log.Log
	addr       chan string
}

// NewRouter builds the gin engine from options.
func NewRouter(options *ServerOptions) *gin.Engine {
	if helpers.IsProdEnvironment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	applyServeStatic(router, options.serveStatic)

	if options.htmlTemplate != nil {
		router.SetHTMLTemplate(options.htmlTemplate)
	}

	applyGlobalMiddlewares(router, options.GlobalMiddlewares)

	// Configure routing:
	// If a custom routing configurator is provided, use it.
	// Otherwise, use the default base URL group and route groups.
	if options.RoutingConfigurator != nil {
		options.RoutingConfigurator(router)
	} else {
		configureRouteGroups(router.Group(options.baseURL), options.RouteGroups, options.log)
	}
	return router
}

// NewServer applies opts and builds the router.
func NewServer(opts ...ServerOption) *Server {
	options := DefaultServerOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.log == nil {
		options.log = log.NewBasicLogger(helpers.IsProdEnvironment())
	}
	router := NewRouter(options)
	return &Server{
		options: options,
		router:  router,
		log:     options.log,
		addr:    make(chan string, 1),
		httpServer: &http.Server{
			Handler:           router,
			ReadTimeout:       options.readTimeout,
			ReadHeaderTimeout: options.readTimeout,
		},
	}
}

// Handler returns the router, for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr delivers the bound address once Start is listening.
func (s *Server) Addr() <-chan string {
	return s.addr
}

// Start listens on the configured port, or the next free one, and serves
// until Shutdown. It returns nil after a clean shutdown.
func (s *Server) Start() error {
	port, err := helpers.GetAvailablePort(constant.TCP, s.options.port)
	if err != nil {
		return blame.ServerStartFailed(":"+s.options.port, err)
	}
	if !helpers.IsEmpty(s.options.port) && s.options.port != "0" && port != s.options.port {
		s.log.Warn("configured port is not available", log.String("configured", s.options.port), log.String("port", port))
	}

	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return blame.ServerStartFailed(":"+port, err)
	}
	s.addr <- listener.Addr().String()
	s.log.Info(constant.ServerStarting, log.String("address", listener.Addr().String()))

	if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return blame.ServerStartFailed(listener.Addr().String(), err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("gracefully shutting down server")
	err := s.httpServer.Shutdown(ctx)
	s.log.Info(constant.ServerStopped)
	_ = s.log.Sync()
	return err
}

// GracefulTimeout is the configured shutdown budget.
func (s *Server) GracefulTimeout() time.Duration {
	return s.options.gracefulTimeOut
}

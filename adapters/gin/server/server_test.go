package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/undeniable-app/undeniable/adapters/log"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func ping(c *gin.Context) { c.String(http.StatusOK, "pong") }

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNewServerRouteGroups(t *testing.T) {
	var order []string
	mark := func(name string) gin.HandlerFunc {
		return func(c *gin.Context) {
			order = append(order, name)
			c.Next()
		}
	}

	srv := NewServer(
		WithLogger(log.NewFromZap(zap.NewNop())),
		WithBaseURL("/v1"),
		WithGlobalMiddleware(mark("global")),
		WithRoutes([]RouteConfig{NewRouteConfig(http.MethodGet, "/ping", ping)}),
		WithRouteGroup(NewRouteGroupConfig("/api", []gin.HandlerFunc{mark("group")}, []RouteConfig{
			NewRouteConfig(http.MethodGet, "/ping", ping),
			NewRouteConfig(http.MethodPatch, "/ignored", ping),
		})),
	)

	w := get(t, srv.Handler(), "/v1/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"global"}, order)

	order = nil
	w = get(t, srv.Handler(), "/v1/api/ping")
	assert.Equal(t, "pong", w.Body.String())
	assert.Equal(t, []string{"global", "group"}, order)

	req := httptest.NewRequest(http.MethodPatch, "/v1/api/ignored", nil)
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutingConfiguratorAndStatic(t *testing.T) {
	files := fstest.MapFS{"app.css": {Data: []byte("body{}")}}
	srv := NewServer(
		WithLogger(log.NewFromZap(zap.NewNop())),
		WithServeStatic(NewServeStaticConfig("/static", files)),
		WithRoutes([]RouteConfig{NewRouteConfig(http.MethodGet, "/unused", ping)}),
		WithRoutingConfigurator(func(r *gin.Engine) {
			r.GET("/custom", ping)
		}),
	)

	assert.Equal(t, http.StatusOK, get(t, srv.Handler(), "/custom").Code)
	assert.Equal(t, http.StatusNotFound, get(t, srv.Handler(), "/unused").Code)

	w := get(t, srv.Handler(), "/static/app.css")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body{}", w.Body.String())
}

func TestTimeoutOptionsIgnoreNonPositive(t *testing.T) {
	srv := NewServer(
		WithLogger(log.NewFromZap(zap.NewNop())),
		WithGracefulTimeOut(0),
		WithReadTimeout(-time.Second),
	)
	assert.Equal(t, 10*time.Second, srv.GracefulTimeout())
	assert.Equal(t, 10*time.Second, srv.httpServer.ReadTimeout)

	srv = NewServer(WithLogger(log.NewFromZap(zap.NewNop())), WithGracefulTimeOut(3*time.Second))
	assert.Equal(t, 3*time.Second, srv.GracefulTimeout())
}

func TestStartAndShutdown(t *testing.T) {
	srv := NewServer(
		WithLogger(log.NewFromZap(zap.NewNop())),
		WithPort("0"),
		WithRoutes([]RouteConfig{NewRouteConfig(http.MethodGet, "/ping", ping)}),
	)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	var addr string
	select {
	case addr = <-srv.Addr():
	case err := <-errCh:
		t.Fatalf("server did not start: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not report its address")
	}

	_, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get("http://127.0.0.1:" + port + "/ping")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))
	client.CloseIdleConnections()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))
	assert.NoError(t, <-errCh)
}

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/undeniable-app/undeniable/blame"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test", r.Header.Get("X-Client"))
		_, _ = w.Write([]byte("name,email\nAcme,a@acme.example\n"))
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientGet(t *testing.T) {
	srv := newServer(t)
	for _, fast := range []bool{false, true} {
		c := NewClient(WithFastHTTP(fast), WithHeader("X-Client", "test"))

		body, err := c.Get(context.Background(), srv.URL+"/ok").Value()
		require.Nil(t, err, c.Transport())
		assert.Equal(t, "name,email\nAcme,a@acme.example\n", string(*body))
	}
}

func TestClientGetStatusFailure(t *testing.T) {
	srv := newServer(t)
	for _, fast := range []bool{false, true} {
		c := NewClient(WithFastHTTP(fast))

		r := c.Get(context.Background(), srv.URL+"/missing")
		require.True(t, r.IsError())
		assert.Equal(t, blame.ErrorUnexpectedResponseStatus, r.Error().FetchErrCode())
	}
}

func TestClientGetRejectsBadURL(t *testing.T) {
	r := NewClient().Get(context.Background(), "ftp://example.test/file.csv")
	require.True(t, r.IsError())
	assert.Equal(t, blame.ErrorURLValidationFailed, r.Error().FetchErrCode())
}

func TestClientGetHonoursContext(t *testing.T) {
	srv := newServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	r := NewClient().Get(ctx, srv.URL+"/slow")
	require.True(t, r.IsError())
	assert.True(t, errors.Is(r.Error(), context.DeadlineExceeded))
}

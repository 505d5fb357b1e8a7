package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(srv.URL, WithHTTPClient(srv.Client()), WithLimiter(rate.NewLimiter(rate.Inf, 1)))
}

func TestFetchInput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/2022/day/4/input", r.URL.Path)
		assert.Equal(t, UserAgent, r.UserAgent())

		cookie, err := r.Cookie("session")
		if assert.NoError(t, err) {
			assert.Equal(t, "abc123", cookie.Value)
		}

		_, _ = w.Write([]byte("1-2,3-4\n"))
	}))
	defer srv.Close()

	input, err := newTestClient(srv).FetchInput(context.Background(), "abc123", 2022, 4)
	require.NoError(t, err)
	assert.Equal(t, "1-2,3-4\n", input)
}

func TestFetchInput_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Please don't repeatedly request this endpoint before it unlocks!", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).FetchInput(context.Background(), "abc123", 2030, 1)
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "unlocks")
}

func TestFetchInput_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not be sent")
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(srv).FetchInput(ctx, "abc123", 2022, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("")
	assert.Equal(t, "https://adventofcode.com/2015/day/25/input", c.InputURL(2015, 25))

	c = NewClient("http://localhost:8080/")
	assert.Equal(t, "http://localhost:8080/2022/day/1/input", c.InputURL(2022, 1))
}

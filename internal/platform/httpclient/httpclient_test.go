package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bot/echo", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "v", r.Header.Get("X-Test"))

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["text"]})
	}))
	defer srv.Close()

	c, err := New(Options{BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	var out struct {
		Echo string `json:"echo"`
	}
	err = c.DoJSON(context.Background(), http.MethodPost, "bot/echo", map[string]string{"X-Test": "v"}, map[string]string{"text": "hola"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "hola", out.Echo)
}

func TestDoJSON_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "chat not found", http.StatusBadRequest)
	}))
	defer srv.Close()

	c, err := New(Options{})
	require.NoError(t, err)

	err = c.DoJSON(context.Background(), http.MethodGet, srv.URL, nil, nil, nil)
	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, "chat not found", httpErr.Body)
	assert.False(t, httpErr.Temporary())
}

func TestDoJSON_RelativeWithoutBase(t *testing.T) {
	c, err := New(Options{})
	require.NoError(t, err)
	assert.Error(t, c.DoJSON(context.Background(), http.MethodGet, "/x", nil, nil, nil))

	_, err = New(Options{BaseURL: "::bad"})
	assert.Error(t, err)
}

package telegram

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

type fakeResolver map[string]string

func (f fakeResolver) ChatIDFor(ctx context.Context, userName string) (string, error) {
	id, ok := f[userName]
	if !ok {
		return "", errors.New("not found")
	}
	return id, nil
}

func newTestServer(t *testing.T, got *sendMessageRequest, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botsecret/sendMessage", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(got))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestGateway_Send_ResolvesChat(t *testing.T) {
	var got sendMessageRequest
	srv := newTestServer(t, &got, http.StatusOK, `{"ok":true}`)
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL, Token: "secret"})
	require.NoError(t, err)
	gw := NewGateway(client, fakeResolver{"ana": "tg:1001"})

	require.NoError(t, gw.Send(context.Background(), "@ana", "hola"))
	assert.Equal(t, "1001", got.ChatID)
	assert.Equal(t, "hola", got.Text)
}

func TestGateway_Send_UnknownUser(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "http://127.0.0.1:1", Token: "secret"})
	require.NoError(t, err)
	gw := NewGateway(client, fakeResolver{})

	err = gw.Send(context.Background(), "nadie", "hola")
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestGateway_NotConfigured(t *testing.T) {
	client, err := NewClient(Config{})
	require.NoError(t, err)

	err = NewGateway(client, nil).Send(context.Background(), "ana", "hola")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClient_SendMessage_Errors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"ok":false}`, ErrUnauthorized},
		{"chat not found", http.StatusBadRequest, `{"ok":false,"description":"Bad Request: chat not found"}`, ErrChatNotFound},
		{"server error", http.StatusBadGateway, ``, ErrUpstream},
		{"ok false", http.StatusOK, `{"ok":false,"description":"nope"}`, ErrUpstream},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got sendMessageRequest
			srv := newTestServer(t, &got, tc.status, tc.body)
			defer srv.Close()

			client, err := NewClient(Config{BaseURL: srv.URL, Token: "secret"})
			require.NoError(t, err)
			assert.ErrorIs(t, client.SendMessage(context.Background(), "1001", "x"), tc.want)
		})
	}
}

func TestTelegramChatID(t *testing.T) {
	assert.Equal(t, "1001", TelegramChatID("tg:1001"))
	assert.Equal(t, "@canal", TelegramChatID("@canal"))
}

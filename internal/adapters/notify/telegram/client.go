package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-shelter/internal/platform/httpclient"
)

var (
	ErrNotConfigured = errors.New("telegram client not configured")
	ErrUnauthorized  = errors.New("telegram unauthorized")
	ErrChatNotFound  = errors.New("telegram chat not found")
	ErrUpstream      = errors.New("telegram upstream error")
)

const DefaultBaseURL = "https://api.telegram.org"

// Config del cliente del Bot API. Token normalmente viene de TELEGRAM_BOT_TOKEN.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration

	// Opcional (tests).
	Transport http.RoundTripper
}

type Client struct {
	token string
	http  *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	hc, err := httpclient.New(httpclient.Options{
		BaseURL:   base,
		Timeout:   timeout,
		Transport: cfg.Transport,
	})
	if err != nil {
		return nil, err
	}
	return &Client{
		token: strings.TrimSpace(cfg.Token),
		http:  hc,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.token != ""
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}

// SendMessage llama a sendMessage. chatID es el id numérico o @username del chat.
func (c *Client) SendMessage(ctx context.Context, chatID, text string) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}

	var out apiResponse
	err := c.http.DoJSON(ctx, http.MethodPost, "/bot"+c.token+"/sendMessage", nil,
		sendMessageRequest{ChatID: chatID, Text: text}, &out)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			switch httpErr.StatusCode {
			case http.StatusUnauthorized, http.StatusForbidden:
				return ErrUnauthorized
			case http.StatusBadRequest:
				if strings.Contains(strings.ToLower(httpErr.Body), "chat not found") {
					return ErrChatNotFound
				}
			}
			return fmt.Errorf("%w: status=%d", ErrUpstream, httpErr.StatusCode)
		}
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if !out.OK {
		return fmt.Errorf("%w: %s", ErrUpstream, out.Description)
	}
	return nil
}

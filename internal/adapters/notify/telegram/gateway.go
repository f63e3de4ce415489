package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownUser = errors.New("telegram: unknown user name")

// ChatResolver traduce el user name de un adoptante a su alias de chat.
// Lo implementan los repos de parents.
type ChatResolver interface {
	ChatIDFor(ctx context.Context, userName string) (string, error)
}

// Gateway implementa notify.Gateway sobre el Bot API.
type Gateway struct {
	client   *Client
	resolver ChatResolver
}

func NewGateway(client *Client, resolver ChatResolver) *Gateway {
	return &Gateway{client: client, resolver: resolver}
}

func (g *Gateway) Send(ctx context.Context, userName, text string) error {
	if g == nil || !g.client.IsConfigured() {
		return ErrNotConfigured
	}
	userName = strings.TrimPrefix(strings.TrimSpace(userName), "@")
	if userName == "" {
		return ErrUnknownUser
	}

	chatID := "@" + userName
	if g.resolver != nil {
		alias, err := g.resolver.ChatIDFor(ctx, userName)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrUnknownUser, userName, err)
		}
		chatID = TelegramChatID(alias)
	}

	if err := g.client.SendMessage(ctx, chatID, text); err != nil {
		return fmt.Errorf("telegram send to %s failed: %w", userName, err)
	}
	return nil
}

// TelegramChatID saca el prefijo "tg:" de los alias de chat guardados ("tg:1001" => "1001").
func TelegramChatID(alias string) string {
	return strings.TrimPrefix(strings.TrimSpace(alias), "tg:")
}

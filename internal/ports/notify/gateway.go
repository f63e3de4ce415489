package notify

import "context"

// Gateway entrega un texto al usuario de chat identificado por su user name.
// La implementación decide el transporte (Telegram, log, etc).
type Gateway interface {
	Send(ctx context.Context, userName, text string) error
}

// GatewayFunc adapta una función a Gateway.
type GatewayFunc func(ctx context.Context, userName, text string) error

func (f GatewayFunc) Send(ctx context.Context, userName, text string) error {
	return f(ctx, userName, text)
}

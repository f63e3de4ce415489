package notify

import (
	"context"

	"pet-shelter/internal/platform/logger"
)

// LogGateway no envía nada: deja el mensaje en el log. Es el gateway por defecto
// cuando no hay token de Telegram.
type LogGateway struct {
	log logger.Logger
}

func NewLogGateway(log logger.Logger) *LogGateway {
	return &LogGateway{log: log}
}

func (g *LogGateway) Send(ctx context.Context, userName, text string) error {
	g.log.Info("notification (log only)", map[string]any{
		"user_name": userName,
		"text":      text,
	})
	return nil
}

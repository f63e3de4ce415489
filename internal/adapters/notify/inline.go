package notify

import (
	"context"
	"time"

	"pet-shelter/internal/platform/logger"
	portnotify "pet-shelter/internal/ports/notify"
)

// Inline envía en la misma goroutine del caller. Sirve para la CLI y tests:
// cuando Notify vuelve, el gateway ya fue llamado. Los errores se loguean.
type Inline struct {
	gw      portnotify.Gateway
	log     logger.Logger
	timeout time.Duration
}

func NewInline(gw portnotify.Gateway, log logger.Logger, timeout time.Duration) *Inline {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Inline{gw: gw, log: log, timeout: timeout}
}

func (n *Inline) Notify(ctx context.Context, userName, text string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	defer cancel()

	if err := n.gw.Send(ctx, userName, text); err != nil {
		n.log.Warn("notification failed", map[string]any{
			"user_name": userName,
			"error":     err.Error(),
		})
	}
}

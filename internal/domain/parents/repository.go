package parents

import (
	"context"
	"time"
)

type Repository interface {
	// Create falla con ErrDuplicate si el chat ID o el user name ya existen.
	Create(ctx context.Context, p Parent) error
	GetByChatID(ctx context.Context, chatID string) (Parent, error)
	GetByUserName(ctx context.Context, userName string) (Parent, error)
	// Update aplica mutate dentro de la misma unidad de trabajo.
	// Asignar un animal inexistente es ErrNotFound; uno que ya tiene otro adoptante, ErrConflict.
	Update(ctx context.Context, chatID string, mutate func(*Parent) error) (Parent, error)
	Delete(ctx context.Context, chatID string) error
	List(ctx context.Context) ([]Parent, error)
	// ListByReportDate devuelve los adoptantes cuyo próximo reporte vence ese día.
	ListByReportDate(ctx context.Context, day time.Time) ([]Parent, error)
}

package volunteers

import "context"

type Repository interface {
	// Create falla con ErrDuplicate si el alias ya existe.
	Create(ctx context.Context, v Volunteer) error
	GetByChatID(ctx context.Context, chatID string) (Volunteer, error)
	Update(ctx context.Context, chatID string, mutate func(*Volunteer) error) (Volunteer, error)
	Delete(ctx context.Context, chatID string) error
	List(ctx context.Context) ([]Volunteer, error)
}

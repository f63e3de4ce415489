package shelters

import "context"

type Repository interface {
	Create(ctx context.Context, s Shelter) (Shelter, error)
	GetByID(ctx context.Context, id int64) (Shelter, error)
	// Update aplica mutate dentro de la misma unidad de trabajo.
	// Un pet type que no acepta a los animales que ya están adentro es ErrConflict.
	Update(ctx context.Context, id int64, mutate func(*Shelter) error) (Shelter, error)
	// Delete no falla si el refugio ya no existe; si quedan animales devuelve ErrConflict.
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Shelter, error)
}

package animals

import "context"

// Repository guarda animales. Las reglas que cruzan entidades las hace cumplir el store,
// en la misma unidad de trabajo que la escritura.
type Repository interface {
	// Create asigna el ID y devuelve el registro guardado.
	// Si el refugio no existe o no aloja esa especie devuelve ErrInvalidInput.
	Create(ctx context.Context, a Animal) (Animal, error)
	GetByID(ctx context.Context, id int64) (Animal, error)
	// Update carga el animal y aplica mutate dentro de la misma unidad de trabajo.
	// Si mutate devuelve error no se escribe nada. El refugio resultante se valida igual que en Create.
	Update(ctx context.Context, id int64, mutate func(*Animal) error) (Animal, error)
	// Delete no falla si el animal ya no existe; si tiene adoptante devuelve ErrConflict.
	Delete(ctx context.Context, id int64) error
	// List devuelve todos los animales en orden de alta.
	List(ctx context.Context) ([]Animal, error)
}

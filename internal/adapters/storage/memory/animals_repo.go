package memory

import (
	"context"
	"sort"

	"pet-shelter/internal/domain/animals"
)

type animalRepo struct {
	s *Store
}

func (r *animalRepo) Create(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.acceptsAnimal(a.ShelterID, a.Kind) {
		return animals.Animal{}, animals.ErrInvalidInput
	}
	r.s.nextAnimal++
	a.ID = r.s.nextAnimal
	r.s.animals[a.ID] = a
	return a, nil
}

func (r *animalRepo) GetByID(ctx context.Context, id int64) (animals.Animal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.animals[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, nil
}

func (r *animalRepo) Update(ctx context.Context, id int64, mutate func(*animals.Animal) error) (animals.Animal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.animals[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	kind := a.Kind
	if err := mutate(&a); err != nil {
		return animals.Animal{}, err
	}
	a.ID = id
	a.Kind = kind
	if !r.s.acceptsAnimal(a.ShelterID, a.Kind) {
		return animals.Animal{}, animals.ErrInvalidInput
	}
	r.s.animals[id] = a
	return a, nil
}

func (r *animalRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.animals[id]; !ok {
		return nil
	}
	if r.s.animalAssigned(id) {
		return animals.ErrConflict
	}
	delete(r.s.animals, id)
	return nil
}

func (r *animalRepo) List(ctx context.Context) ([]animals.Animal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]animals.Animal, 0, len(r.s.animals))
	for _, a := range r.s.animals {
		out = append(out, a)
	}

	// los IDs son incrementales: ordenar por ID es orden de alta
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

package memory

import (
	"context"
	"sort"

	"pet-shelter/internal/domain/shelters"
)

type shelterRepo struct {
	s *Store
}

func (r *shelterRepo) Create(ctx context.Context, sh shelters.Shelter) (shelters.Shelter, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextShelter++
	sh.ID = r.s.nextShelter
	r.s.shelters[sh.ID] = sh
	return sh, nil
}

func (r *shelterRepo) GetByID(ctx context.Context, id int64) (shelters.Shelter, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sh, ok := r.s.shelters[id]
	if !ok {
		return shelters.Shelter{}, shelters.ErrNotFound
	}
	return sh, nil
}

func (r *shelterRepo) Update(ctx context.Context, id int64, mutate func(*shelters.Shelter) error) (shelters.Shelter, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sh, ok := r.s.shelters[id]
	if !ok {
		return shelters.Shelter{}, shelters.ErrNotFound
	}
	if err := mutate(&sh); err != nil {
		return shelters.Shelter{}, err
	}
	sh.ID = id
	for _, k := range r.s.kindsIn(id) {
		if !sh.PetType.Accepts(k) {
			return shelters.Shelter{}, shelters.ErrConflict
		}
	}
	r.s.shelters[id] = sh
	return sh, nil
}

func (r *shelterRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if len(r.s.kindsIn(id)) > 0 {
		return shelters.ErrConflict
	}
	delete(r.s.shelters, id)
	return nil
}

func (r *shelterRepo) List(ctx context.Context) ([]shelters.Shelter, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]shelters.Shelter, 0, len(r.s.shelters))
	for _, sh := range r.s.shelters {
		out = append(out, sh)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

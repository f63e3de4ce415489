package memory

import (
	"context"
	"slices"
	"time"

	"pet-shelter/internal/domain/parents"
)

type ParentRepo struct {
	s *Store
}

func (r *ParentRepo) Create(ctx context.Context, p parents.Parent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.parents[p.ChatID]; exists {
		return parents.ErrDuplicate
	}
	if p.UserName != "" {
		if _, taken := r.findByUserName(p.UserName); taken {
			return parents.ErrDuplicate
		}
	}
	r.s.parents[p.ChatID] = cloneParent(p)
	r.s.parentOrder = append(r.s.parentOrder, p.ChatID)
	return nil
}

func (r *ParentRepo) GetByChatID(ctx context.Context, chatID string) (parents.Parent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.parents[chatID]
	if !ok {
		return parents.Parent{}, parents.ErrNotFound
	}
	return cloneParent(p), nil
}

func (r *ParentRepo) GetByUserName(ctx context.Context, userName string) (parents.Parent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.findByUserName(userName)
	if !ok {
		return parents.Parent{}, parents.ErrNotFound
	}
	return cloneParent(p), nil
}

// Update corre mutate con el lock del store tomado: el estado del adoptante,
// la existencia del animal y su unicidad se validan y escriben juntos.
func (r *ParentRepo) Update(ctx context.Context, chatID string, mutate func(*parents.Parent) error) (parents.Parent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.parents[chatID]
	if !ok {
		return parents.Parent{}, parents.ErrNotFound
	}
	p := cloneParent(cur)
	if err := mutate(&p); err != nil {
		return parents.Parent{}, err
	}
	p.ChatID = chatID

	if p.AnimalID != nil {
		if _, ok := r.s.animals[*p.AnimalID]; !ok {
			return parents.Parent{}, parents.ErrNotFound
		}
		// un animal, un adoptante
		for id, other := range r.s.parents {
			if id != chatID && other.AnimalID != nil && *other.AnimalID == *p.AnimalID {
				return parents.Parent{}, parents.ErrConflict
			}
		}
	}
	if p.UserName != "" {
		if other, taken := r.findByUserName(p.UserName); taken && other.ChatID != chatID {
			return parents.Parent{}, parents.ErrDuplicate
		}
	}

	r.s.parents[chatID] = cloneParent(p)
	return p, nil
}

func (r *ParentRepo) Delete(ctx context.Context, chatID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.parents[chatID]; !ok {
		return nil
	}
	delete(r.s.parents, chatID)
	r.s.parentOrder = slices.DeleteFunc(r.s.parentOrder, func(id string) bool { return id == chatID })
	return nil
}

func (r *ParentRepo) List(ctx context.Context) ([]parents.Parent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]parents.Parent, 0, len(r.s.parentOrder))
	for _, id := range r.s.parentOrder {
		out = append(out, cloneParent(r.s.parents[id]))
	}
	return out, nil
}

func (r *ParentRepo) ListByReportDate(ctx context.Context, day time.Time) ([]parents.Parent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	day = parents.Day(day)
	out := make([]parents.Parent, 0)
	for _, id := range r.s.parentOrder {
		p := r.s.parents[id]
		if p.ReportDate != nil && parents.Day(*p.ReportDate).Equal(day) {
			out = append(out, cloneParent(p))
		}
	}
	return out, nil
}

// ChatIDFor resuelve el alias de chat de un adoptante a partir de su user name.
func (r *ParentRepo) ChatIDFor(ctx context.Context, userName string) (string, error) {
	p, err := r.GetByUserName(ctx, userName)
	if err != nil {
		return "", err
	}
	return p.ChatID, nil
}

func (r *ParentRepo) findByUserName(userName string) (parents.Parent, bool) {
	for _, p := range r.s.parents {
		if p.UserName == userName {
			return p, true
		}
	}
	return parents.Parent{}, false
}

// cloneParent copia los campos puntero: lo guardado no comparte memoria con el caller.
func cloneParent(p parents.Parent) parents.Parent {
	p.AnimalID = clonePtr(p.AnimalID)
	p.ReportDate = clonePtr(p.ReportDate)
	p.ProbationStartedAt = clonePtr(p.ProbationStartedAt)
	return p
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

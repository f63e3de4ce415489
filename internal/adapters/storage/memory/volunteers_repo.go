package memory

import (
	"context"
	"slices"

	"pet-shelter/internal/domain/volunteers"
)

type volunteerRepo struct {
	s *Store
}

func (r *volunteerRepo) Create(ctx context.Context, v volunteers.Volunteer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.volunteers[v.ChatID]; exists {
		return volunteers.ErrDuplicate
	}
	r.s.volunteers[v.ChatID] = v
	r.s.volunteerOrder = append(r.s.volunteerOrder, v.ChatID)
	return nil
}

func (r *volunteerRepo) GetByChatID(ctx context.Context, chatID string) (volunteers.Volunteer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.volunteers[chatID]
	if !ok {
		return volunteers.Volunteer{}, volunteers.ErrNotFound
	}
	return v, nil
}

func (r *volunteerRepo) Update(ctx context.Context, chatID string, mutate func(*volunteers.Volunteer) error) (volunteers.Volunteer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v, ok := r.s.volunteers[chatID]
	if !ok {
		return volunteers.Volunteer{}, volunteers.ErrNotFound
	}
	if err := mutate(&v); err != nil {
		return volunteers.Volunteer{}, err
	}
	v.ChatID = chatID
	r.s.volunteers[chatID] = v
	return v, nil
}

func (r *volunteerRepo) Delete(ctx context.Context, chatID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.volunteers[chatID]; !ok {
		return nil
	}
	delete(r.s.volunteers, chatID)
	r.s.volunteerOrder = slices.DeleteFunc(r.s.volunteerOrder, func(id string) bool { return id == chatID })
	return nil
}

func (r *volunteerRepo) List(ctx context.Context) ([]volunteers.Volunteer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]volunteers.Volunteer, 0, len(r.s.volunteerOrder))
	for _, id := range r.s.volunteerOrder {
		out = append(out, r.s.volunteers[id])
	}
	return out, nil
}

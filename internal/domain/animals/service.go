package animals

import (
	"context"
	"strings"
	"time"

	"pet-shelter/internal/domain/apperr"
)

var (
	ErrNotFound     = apperr.ErrNotFound
	ErrInvalidInput = apperr.ErrInvalidInput
	ErrConflict     = apperr.ErrConflict
	ErrUnavailable  = apperr.ErrUnavailable
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Add da de alta el animal. El refugio tiene que existir y alojar su especie (ErrInvalidInput).
func (s *Service) Add(ctx context.Context, a Animal) (Animal, error) {
	kind, ok := ParseKind(string(a.Kind))
	if !ok {
		return Animal{}, ErrInvalidInput
	}
	a.Kind = kind

	a, err := normalize(a)
	if err != nil {
		return Animal{}, err
	}
	now := s.now()
	a.ID = 0
	a.CreatedAt = now
	a.UpdatedAt = now

	saved, err := s.repo.Create(ctx, a)
	if err != nil {
		return Animal{}, apperr.Storage(err)
	}
	return saved, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Animal, error) {
	if id <= 0 {
		return Animal{}, ErrNotFound
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, apperr.Storage(err)
	}
	return a, nil
}

// Update pisa name, age, sex y shelter con los valores del patch.
// ID y Kind del patch se ignoran: son inmutables. El refugio nuevo tiene que alojar la especie.
func (s *Service) Update(ctx context.Context, id int64, patch Animal) (Animal, error) {
	if id <= 0 {
		return Animal{}, ErrNotFound
	}
	patch, err := normalize(patch)
	if err != nil {
		return Animal{}, err
	}

	updated, err := s.repo.Update(ctx, id, func(cur *Animal) error {
		cur.Name = patch.Name
		cur.Age = patch.Age
		cur.Sex = patch.Sex
		cur.ShelterID = patch.ShelterID
		cur.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return Animal{}, apperr.Storage(err)
	}
	return updated, nil
}

// Delete es idempotente. Un animal asignado a un adoptante no se borra (ErrConflict).
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return nil
	}
	return apperr.Storage(s.repo.Delete(ctx, id))
}

func (s *Service) All(ctx context.Context) ([]Animal, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return items, nil
}

func normalize(a Animal) (Animal, error) {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return Animal{}, ErrInvalidInput
	}
	if a.Age < 0 {
		return Animal{}, ErrInvalidInput
	}
	if a.ShelterID <= 0 {
		return Animal{}, ErrInvalidInput
	}
	return a, nil
}

package shelters

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

// DeletedMessage es la confirmación que devuelve Delete.
const DeletedMessage = "shelter deleted"

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

func (s *Service) Add(ctx context.Context, sh Shelter) (Shelter, error) {
	sh, err := normalize(sh)
	if err != nil {
		return Shelter{}, err
	}

	now := s.now()
	sh.ID = 0
	sh.CreatedAt = now
	sh.UpdatedAt = now

	saved, err := s.repo.Create(ctx, sh)
	if err != nil {
		return Shelter{}, apperr.Storage(err)
	}
	return saved, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Shelter, error) {
	if id <= 0 {
		return Shelter{}, ErrNotFound
	}
	sh, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Shelter{}, apperr.Storage(err)
	}
	return sh, nil
}

// Update pisa name, address, info, instruction y pet type. El ID no cambia.
// Cambiar el pet type con animales de otra especie adentro es ErrConflict.
func (s *Service) Update(ctx context.Context, id int64, patch Shelter) (Shelter, error) {
	if id <= 0 {
		return Shelter{}, ErrNotFound
	}
	patch, err := normalize(patch)
	if err != nil {
		return Shelter{}, err
	}

	updated, err := s.repo.Update(ctx, id, func(cur *Shelter) error {
		cur.Name = patch.Name
		cur.Address = patch.Address
		cur.Info = patch.Info
		cur.Instruction = patch.Instruction
		cur.PetType = patch.PetType
		cur.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return Shelter{}, apperr.Storage(err)
	}
	return updated, nil
}

// Delete es idempotente y devuelve un texto de confirmación.
// Un refugio con animales no se borra (ErrConflict): no hay cascada.
func (s *Service) Delete(ctx context.Context, id int64) (string, error) {
	if id <= 0 {
		return DeletedMessage, nil
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return "", apperr.Storage(err)
	}
	return DeletedMessage, nil
}

func (s *Service) All(ctx context.Context) ([]Shelter, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return items, nil
}

func normalize(sh Shelter) (Shelter, error) {
	sh.Name = strings.TrimSpace(sh.Name)
	if sh.Name == "" {
		return Shelter{}, ErrInvalidInput
	}
	pt, ok := ParsePetType(string(sh.PetType))
	if !ok {
		return Shelter{}, ErrInvalidInput
	}
	sh.PetType = pt
	sh.Address = strings.TrimSpace(sh.Address)
	sh.Info = strings.TrimSpace(sh.Info)
	sh.Instruction = strings.TrimSpace(sh.Instruction)
	return sh, nil
}

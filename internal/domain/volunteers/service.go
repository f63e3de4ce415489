package volunteers

import (
	"context"
	"strings"
	"time"

	"pet-shelter/internal/domain/apperr"
)

var (
	ErrNotFound     = apperr.ErrNotFound
	ErrInvalidInput = apperr.ErrInvalidInput
	ErrDuplicate    = apperr.ErrDuplicate
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

func (s *Service) Add(ctx context.Context, v Volunteer) (Volunteer, error) {
	v.ChatID = strings.TrimSpace(v.ChatID)
	if v.ChatID == "" {
		return Volunteer{}, ErrInvalidInput
	}
	v, err := normalize(v)
	if err != nil {
		return Volunteer{}, err
	}

	now := s.now()
	v.CreatedAt = now
	v.UpdatedAt = now

	if err := s.repo.Create(ctx, v); err != nil {
		return Volunteer{}, apperr.Storage(err)
	}
	return v, nil
}

func (s *Service) Get(ctx context.Context, chatID string) (Volunteer, error) {
	chatID = strings.TrimSpace(chatID)
	if chatID == "" {
		return Volunteer{}, ErrNotFound
	}
	v, err := s.repo.GetByChatID(ctx, chatID)
	if err != nil {
		return Volunteer{}, apperr.Storage(err)
	}
	return v, nil
}

// Update pisa name, age y sex. El alias no cambia.
func (s *Service) Update(ctx context.Context, chatID string, patch Volunteer) (Volunteer, error) {
	chatID = strings.TrimSpace(chatID)
	if chatID == "" {
		return Volunteer{}, ErrNotFound
	}
	patch, err := normalize(patch)
	if err != nil {
		return Volunteer{}, err
	}

	updated, err := s.repo.Update(ctx, chatID, func(cur *Volunteer) error {
		cur.Name = patch.Name
		cur.Age = patch.Age
		cur.Sex = patch.Sex
		cur.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return Volunteer{}, apperr.Storage(err)
	}
	return updated, nil
}

// Delete es idempotente.
func (s *Service) Delete(ctx context.Context, chatID string) error {
	chatID = strings.TrimSpace(chatID)
	if chatID == "" {
		return nil
	}
	return apperr.Storage(s.repo.Delete(ctx, chatID))
}

func (s *Service) All(ctx context.Context) ([]Volunteer, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return items, nil
}

func normalize(v Volunteer) (Volunteer, error) {
	v.Name = strings.TrimSpace(v.Name)
	if v.Name == "" || v.Age < 0 {
		return Volunteer{}, ErrInvalidInput
	}
	return v, nil
}

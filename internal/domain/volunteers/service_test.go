package volunteers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID  map[string]Volunteer
	order []string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Volunteer{}}
}

func (r *testRepo) Create(ctx context.Context, v Volunteer) error {
	if _, ok := r.byID[v.ChatID]; ok {
		return ErrDuplicate
	}
	r.byID[v.ChatID] = v
	r.order = append(r.order, v.ChatID)
	return nil
}

func (r *testRepo) GetByChatID(ctx context.Context, chatID string) (Volunteer, error) {
	v, ok := r.byID[chatID]
	if !ok {
		return Volunteer{}, ErrNotFound
	}
	return v, nil
}

func (r *testRepo) Update(ctx context.Context, chatID string, mutate func(*Volunteer) error) (Volunteer, error) {
	v, ok := r.byID[chatID]
	if !ok {
		return Volunteer{}, ErrNotFound
	}
	if err := mutate(&v); err != nil {
		return Volunteer{}, err
	}
	r.byID[chatID] = v
	return v, nil
}

func (r *testRepo) Delete(ctx context.Context, chatID string) error {
	delete(r.byID, chatID)
	return nil
}

func (r *testRepo) List(ctx context.Context) ([]Volunteer, error) {
	out := make([]Volunteer, 0, len(r.byID))
	for _, id := range r.order {
		if v, ok := r.byID[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func newTestService() *Service {
	svc := NewService(newTestRepo())
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc
}

func TestService_Add_DuplicateAlias(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Add(ctx, Volunteer{ChatID: "tg:7", Name: "Olga"})
	require.NoError(t, err)

	_, err = svc.Add(ctx, Volunteer{ChatID: "tg:7", Name: "Other"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestService_Add_RequiresAliasAndName(t *testing.T) {
	svc := newTestService()

	_, err := svc.Add(context.Background(), Volunteer{ChatID: " ", Name: "Olga"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Add(context.Background(), Volunteer{ChatID: "tg:1", Name: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update_KeepsAlias(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Add(ctx, Volunteer{ChatID: "tg:7", Name: "Olga", Age: 20})
	require.NoError(t, err)

	v, err := svc.Update(ctx, "tg:7", Volunteer{ChatID: "tg:999", Name: "Olga P.", Age: 21, Sex: true})
	require.NoError(t, err)
	assert.Equal(t, "tg:7", v.ChatID)
	assert.Equal(t, "Olga P.", v.Name)
	assert.Equal(t, 21, v.Age)
	assert.True(t, v.Sex)

	_, err = svc.Get(ctx, "tg:999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_NotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.Update(context.Background(), "tg:404", Volunteer{Name: "X"})
	assert.ErrorIs(t, err, ErrNotFound)

	items, _ := svc.All(context.Background())
	assert.Empty(t, items)
}

func TestService_Delete_Idempotent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Add(ctx, Volunteer{ChatID: "tg:7", Name: "Olga"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "tg:7"))
	require.NoError(t, svc.Delete(ctx, "tg:7"))

	_, err = svc.Get(ctx, "tg:7")
	assert.ErrorIs(t, err, ErrNotFound)
}

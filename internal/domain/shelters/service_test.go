package shelters

import (
	"context"
	"testing"
	"time"

	"pet-shelter/internal/domain/animals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRepo hace cumplir las reglas de los stores reales sobre los animales alojados.
type testRepo struct {
	nextID int64
	byID   map[int64]Shelter
	kinds  map[int64][]animals.Kind // shelterID -> especies alojadas
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Shelter{}, kinds: map[int64][]animals.Kind{}}
}

func (r *testRepo) Create(ctx context.Context, s Shelter) (Shelter, error) {
	r.nextID++
	s.ID = r.nextID
	r.byID[s.ID] = s
	return s, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Shelter, error) {
	s, ok := r.byID[id]
	if !ok {
		return Shelter{}, ErrNotFound
	}
	return s, nil
}

func (r *testRepo) Update(ctx context.Context, id int64, mutate func(*Shelter) error) (Shelter, error) {
	s, ok := r.byID[id]
	if !ok {
		return Shelter{}, ErrNotFound
	}
	if err := mutate(&s); err != nil {
		return Shelter{}, err
	}
	for _, k := range r.kinds[id] {
		if !s.PetType.Accepts(k) {
			return Shelter{}, ErrConflict
		}
	}
	r.byID[id] = s
	return s, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if len(r.kinds[id]) > 0 {
		return ErrConflict
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) List(ctx context.Context) ([]Shelter, error) {
	out := make([]Shelter, 0, len(r.byID))
	for id := int64(1); id <= r.nextID; id++ {
		if s, ok := r.byID[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo)
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, repo
}

func TestService_Add_NormalizesPetType(t *testing.T) {
	svc, _ := newTestService()

	sh, err := svc.Add(context.Background(), Shelter{Name: " North ", PetType: "cat"})
	require.NoError(t, err)
	assert.Equal(t, "North", sh.Name)
	assert.Equal(t, PetTypeCat, sh.PetType)
	assert.NotZero(t, sh.ID)
}

func TestService_Add_RejectsUnknownPetType(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Add(context.Background(), Shelter{Name: "North", PetType: "HAMSTER"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update_OverwritesFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	sh, err := svc.Add(ctx, Shelter{Name: "North", Address: "a", PetType: PetTypeCat})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, sh.ID, Shelter{
		ID:          999,
		Name:        "North Cats",
		Address:     "Main St 1",
		Info:        "open 9-18",
		Instruction: "bring a carrier",
		PetType:     PetTypeDog,
	})
	require.NoError(t, err)
	assert.Equal(t, sh.ID, updated.ID)
	assert.Equal(t, "North Cats", updated.Name)
	assert.Equal(t, "Main St 1", updated.Address)
	assert.Equal(t, "open 9-18", updated.Info)
	assert.Equal(t, "bring a carrier", updated.Instruction)
	assert.Equal(t, PetTypeDog, updated.PetType)
}

func TestService_Update_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), 5, Shelter{Name: "X", PetType: PetTypeCat})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_PetTypeChangeWithAnimalsConflicts(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	sh, err := svc.Add(ctx, Shelter{Name: "North", PetType: PetTypeCat})
	require.NoError(t, err)
	repo.kinds[sh.ID] = []animals.Kind{animals.KindCat}

	_, err = svc.Update(ctx, sh.ID, Shelter{Name: "North", PetType: PetTypeDog})
	require.ErrorIs(t, err, ErrConflict)

	// mismo pet type: sin conflicto
	_, err = svc.Update(ctx, sh.ID, Shelter{Name: "North renamed", PetType: PetTypeCat})
	assert.NoError(t, err)
}

func TestService_Delete_WithAnimalsIsRejected(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	sh, err := svc.Add(ctx, Shelter{Name: "North", PetType: PetTypeCat})
	require.NoError(t, err)
	repo.kinds[sh.ID] = []animals.Kind{animals.KindCat}

	_, err = svc.Delete(ctx, sh.ID)
	require.ErrorIs(t, err, ErrConflict)

	_, err = svc.Get(ctx, sh.ID)
	assert.NoError(t, err, "shelter must survive a rejected delete")
}

func TestService_Delete_IdempotentWithConfirmation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	sh, err := svc.Add(ctx, Shelter{Name: "North", PetType: PetTypeCat})
	require.NoError(t, err)

	msg, err := svc.Delete(ctx, sh.ID)
	require.NoError(t, err)
	assert.Equal(t, DeletedMessage, msg)

	msg, err = svc.Delete(ctx, sh.ID)
	require.NoError(t, err)
	assert.Equal(t, DeletedMessage, msg)
}

func TestPetType_Accepts(t *testing.T) {
	assert.True(t, PetTypeCat.Accepts(animals.KindCat))
	assert.False(t, PetTypeCat.Accepts(animals.KindDog))
	assert.True(t, PetTypeDog.Accepts(animals.KindDog))
	assert.False(t, PetTypeDog.Accepts(animals.KindCat))
	assert.False(t, PetType("").Accepts(animals.KindCat))
}

package animals

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// -------------------------
// Fakes
// -------------------------

// testRepo hace cumplir las mismas reglas que los stores reales:
// el refugio tiene que alojar la especie y un animal asignado no se borra.
type testRepo struct {
	nextID   int64
	byID     map[int64]Animal
	shelters map[int64]Kind // shelterID -> especie aceptada
	assigned map[int64]bool
	writes   int
}

func newTestRepo() *testRepo {
	return &testRepo{
		byID:     map[int64]Animal{},
		shelters: map[int64]Kind{1: KindCat, 2: KindDog, 3: KindCat},
		assigned: map[int64]bool{},
	}
}

func (r *testRepo) accepts(shelterID int64, kind Kind) bool {
	k, ok := r.shelters[shelterID]
	return ok && k == kind
}

func (r *testRepo) Create(ctx context.Context, a Animal) (Animal, error) {
	if !r.accepts(a.ShelterID, a.Kind) {
		return Animal{}, ErrInvalidInput
	}
	r.nextID++
	a.ID = r.nextID
	r.byID[a.ID] = a
	r.writes++
	return a, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Animal, error) {
	a, ok := r.byID[id]
	if !ok {
		return Animal{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) Update(ctx context.Context, id int64, mutate func(*Animal) error) (Animal, error) {
	a, ok := r.byID[id]
	if !ok {
		return Animal{}, ErrNotFound
	}
	if err := mutate(&a); err != nil {
		return Animal{}, err
	}
	if !r.accepts(a.ShelterID, a.Kind) {
		return Animal{}, ErrInvalidInput
	}
	r.byID[id] = a
	r.writes++
	return a, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if r.assigned[id] {
		return ErrConflict
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) List(ctx context.Context) ([]Animal, error) {
	out := make([]Animal, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo)
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, repo
}

// -------------------------
// Tests
// -------------------------

func TestService_AddThenGet_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		svc, _ := newTestService()
		ctx := context.Background()

		kind := rapid.SampledFrom([]Kind{KindCat, KindDog}).Draw(t, "kind")
		shelter := int64(1)
		if kind == KindDog {
			shelter = 2
		}
		in := Animal{
			Kind:      kind,
			Name:      rapid.StringMatching(`[A-Za-z][A-Za-z ]{0,15}[A-Za-z]`).Draw(t, "name"),
			Age:       rapid.IntRange(0, 30).Draw(t, "age"),
			Sex:       rapid.Bool().Draw(t, "sex"),
			ShelterID: shelter,
		}

		added, err := svc.Add(ctx, in)
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		got, err := svc.Get(ctx, added.ID)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got != added {
			t.Fatalf("round trip mismatch: %+v vs %+v", got, added)
		}
		if got.Name != in.Name || got.Age != in.Age || got.Sex != in.Sex || got.Kind != in.Kind {
			t.Fatalf("fields changed on add: %+v vs %+v", got, in)
		}
	})
}

func TestService_Add_Validation(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	cases := map[string]Animal{
		"unknown kind":       {Kind: "parrot", Name: "Kiwi", ShelterID: 1},
		"blank name":         {Kind: KindCat, Name: "  ", ShelterID: 1},
		"negative age":       {Kind: KindCat, Name: "Milo", Age: -1, ShelterID: 1},
		"missing shelter":    {Kind: KindCat, Name: "Milo", ShelterID: 99},
		"shelter wrong kind": {Kind: KindDog, Name: "Rex", ShelterID: 1},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Add(ctx, in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Zero(t, repo.writes, "rejected adds must not write")
}

func TestService_Update_NotFound_NoWrite(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Update(context.Background(), 42, Animal{Name: "Milo", ShelterID: 1})
	require.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, repo.writes)

	_, err = svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_KeepsKindAndID(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.Add(ctx, Animal{Kind: KindCat, Name: "Milo", Age: 2, Sex: true, ShelterID: 1})
	require.NoError(t, err)

	later := time.Date(2025, 12, 23, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return later }

	updated, err := svc.Update(ctx, a.ID, Animal{ID: 777, Kind: KindDog, Name: "Milo II", Age: 3, Sex: false, ShelterID: 3})
	require.NoError(t, err)

	assert.Equal(t, a.ID, updated.ID)
	assert.Equal(t, KindCat, updated.Kind)
	assert.Equal(t, "Milo II", updated.Name)
	assert.Equal(t, 3, updated.Age)
	assert.False(t, updated.Sex)
	assert.Equal(t, int64(3), updated.ShelterID)
	assert.Equal(t, a.CreatedAt, updated.CreatedAt)
	assert.Equal(t, later, updated.UpdatedAt)
}

func TestService_Update_RejectsShelterOfOtherKind(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.Add(ctx, Animal{Kind: KindCat, Name: "Milo", ShelterID: 1})
	require.NoError(t, err)

	_, err = svc.Update(ctx, a.ID, Animal{Name: "Milo", ShelterID: 2})
	require.ErrorIs(t, err, ErrInvalidInput)

	got, _ := svc.Get(ctx, a.ID)
	assert.Equal(t, int64(1), got.ShelterID)
}

func TestService_Delete_Idempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.Add(ctx, Animal{Kind: KindDog, Name: "Rex", ShelterID: 2})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, a.ID))
	require.NoError(t, svc.Delete(ctx, a.ID))

	_, err = svc.Get(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete_AssignedAnimalConflicts(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	a, err := svc.Add(ctx, Animal{Kind: KindCat, Name: "Milo", ShelterID: 1})
	require.NoError(t, err)
	repo.assigned[a.ID] = true

	err = svc.Delete(ctx, a.ID)
	require.ErrorIs(t, err, ErrConflict)

	_, err = svc.Get(ctx, a.ID)
	assert.NoError(t, err)
}

func TestService_All_InsertionOrder(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		_, err := svc.Add(ctx, Animal{Kind: KindCat, Name: name, ShelterID: 1})
		require.NoError(t, err)
	}

	items, err := svc.All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{items[0].Name, items[1].Name, items[2].Name})
}

type brokenRepo struct{ *testRepo }

func (brokenRepo) GetByID(ctx context.Context, id int64) (Animal, error) {
	return Animal{}, errors.New("connection reset")
}

func TestService_Get_StorageFailureIsUnavailable(t *testing.T) {
	svc := NewService(brokenRepo{newTestRepo()})

	_, err := svc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrNotFound)
}

package postgres

import (
	"context"
	"database/sql"
	"os"
	"sync"
	"testing"
	"time"

	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/domain/parents"
	"pet-shelter/internal/domain/shelters"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Estos tests necesitan un Postgres descartable: SHELTER_TEST_DB_DSN.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("SHELTER_TEST_DB_DSN")
	if dsn == "" {
		t.Skip("SHELTER_TEST_DB_DSN not set")
	}
	db, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db))
	_, err = db.Exec(`TRUNCATE parents, animals, shelters, volunteers RESTART IDENTITY`)
	require.NoError(t, err)
	return db
}

func seedShelter(t *testing.T, ctx context.Context, repo *SheltersRepo, name string, pt shelters.PetType) shelters.Shelter {
	t.Helper()
	now := time.Now().UTC()
	sh, err := repo.Create(ctx, shelters.Shelter{Name: name, PetType: pt, CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)
	return sh
}

// Con una sola conexión en el pool, cualquier consulta fuera de la transacción
// abierta se quedaría esperando: las reglas entre tablas tienen que correr sobre el tx.
func TestRepos_CrossTableRulesOnSingleConnection(t *testing.T) {
	db := openTestDB(t)
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	shelterRepo := NewSheltersRepo(db)
	animalRepo := NewAnimalsRepo(db)
	parentRepo := NewParentsRepo(db)
	now := time.Now().UTC()

	cats := seedShelter(t, ctx, shelterRepo, "North", shelters.PetTypeCat)
	dogs := seedShelter(t, ctx, shelterRepo, "South", shelters.PetTypeDog)

	milo, err := animalRepo.Create(ctx, animals.Animal{Kind: animals.KindCat, Name: "Milo", ShelterID: cats.ID, CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)

	_, err = animalRepo.Create(ctx, animals.Animal{Kind: animals.KindDog, Name: "Rex", ShelterID: cats.ID, CreatedAt: now, UpdatedAt: now})
	assert.ErrorIs(t, err, animals.ErrInvalidInput)
	_, err = animalRepo.Create(ctx, animals.Animal{Kind: animals.KindCat, Name: "Luna", ShelterID: 9999, CreatedAt: now, UpdatedAt: now})
	assert.ErrorIs(t, err, animals.ErrInvalidInput)

	_, err = animalRepo.Update(ctx, milo.ID, func(a *animals.Animal) error {
		a.ShelterID = dogs.ID
		return nil
	})
	assert.ErrorIs(t, err, animals.ErrInvalidInput)

	_, err = shelterRepo.Update(ctx, cats.ID, func(s *shelters.Shelter) error {
		s.PetType = shelters.PetTypeDog
		return nil
	})
	assert.ErrorIs(t, err, shelters.ErrConflict)
	assert.ErrorIs(t, shelterRepo.Delete(ctx, cats.ID), shelters.ErrConflict)

	require.NoError(t, parentRepo.Create(ctx, parents.Parent{
		ChatID: "tg:1", Probation: parents.ProbationUnassigned, CreatedAt: now, UpdatedAt: now,
	}))
	_, err = parentRepo.Update(ctx, "tg:1", func(p *parents.Parent) error {
		p.AnimalID = &milo.ID
		p.Probation = parents.ProbationActive
		return nil
	})
	require.NoError(t, err)
	assert.ErrorIs(t, animalRepo.Delete(ctx, milo.ID), animals.ErrConflict)

	missing := int64(9999)
	_, err = parentRepo.Update(ctx, "tg:1", func(p *parents.Parent) error {
		p.AnimalID = &missing
		return nil
	})
	assert.ErrorIs(t, err, parents.ErrNotFound)

	require.NoError(t, ctx.Err(), "operations stalled waiting for a second connection")
}

func TestRepos_ConcurrentAnimalUpdatesDoNotExhaustPool(t *testing.T) {
	db := openTestDB(t)
	db.SetMaxOpenConns(2)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	shelterRepo := NewSheltersRepo(db)
	animalRepo := NewAnimalsRepo(db)
	now := time.Now().UTC()
	cats := seedShelter(t, ctx, shelterRepo, "North", shelters.PetTypeCat)

	const n = 20
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		a, err := animalRepo.Create(ctx, animals.Animal{Kind: animals.KindCat, Name: "Cat", ShelterID: cats.ID, CreatedAt: now, UpdatedAt: now})
		require.NoError(t, err)
		ids = append(ids, a.ID)
	}

	var wg sync.WaitGroup
	errs := make(chan error, n+1)
	for _, id := range ids {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_, err := animalRepo.Update(ctx, id, func(a *animals.Animal) error {
				a.Age++
				return nil
			})
			errs <- err
		}(id)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := shelterRepo.Update(ctx, cats.ID, func(s *shelters.Shelter) error {
			s.Info = "open 9-18"
			return nil
		})
		errs <- err
	}()
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

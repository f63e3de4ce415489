package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/domain/shelters"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

const animalColumns = `id, kind, name, age, sex, shelter_id, created_at, updated_at`

// Create valida el refugio y escribe en la misma transacción.
func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := checkShelter(ctx, tx, a.ShelterID, a.Kind); err != nil {
			return err
		}
		err := tx.QueryRowContext(ctx, `
			INSERT INTO animals (kind, name, age, sex, shelter_id, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7)
			RETURNING id
		`,
			string(a.Kind),
			a.Name,
			a.Age,
			a.Sex,
			a.ShelterID,
			a.CreatedAt,
			a.UpdatedAt,
		).Scan(&a.ID)
		return animalErr(err)
	})
	if err != nil {
		return animals.Animal{}, err
	}
	return a, nil
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id int64) (animals.Animal, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+animalColumns+` FROM animals WHERE id = $1`, id)
	return scanAnimal(row)
}

func (r *AnimalsRepo) Update(ctx context.Context, id int64, mutate func(*animals.Animal) error) (animals.Animal, error) {
	var out animals.Animal
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `SELECT `+animalColumns+` FROM animals WHERE id = $1 FOR UPDATE`, id)
		a, err := scanAnimal(row)
		if err != nil {
			return err
		}
		kind := a.Kind
		if err := mutate(&a); err != nil {
			return err
		}
		a.Kind = kind
		if err := checkShelter(ctx, tx, a.ShelterID, a.Kind); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE animals
			SET
				name = $2,
				age = $3,
				sex = $4,
				shelter_id = $5,
				updated_at = $6
			WHERE id = $1
		`,
			id,
			a.Name,
			a.Age,
			a.Sex,
			a.ShelterID,
			a.UpdatedAt,
		)
		if err != nil {
			return animalErr(err)
		}
		a.ID = id
		out = a
		return nil
	})
	if err != nil {
		return animals.Animal{}, err
	}
	return out, nil
}

func (r *AnimalsRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM animals WHERE id = $1`, id)
	if err != nil {
		// animal referenciado por un adoptante
		if code, _ := pgError(err); code == codeForeignKeyViolation {
			return animals.ErrConflict
		}
		return err
	}
	return nil
}

func (r *AnimalsRepo) List(ctx context.Context) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+animalColumns+` FROM animals ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// checkShelter toma el refugio con FOR SHARE: un cambio de pet type concurrente
// (FOR UPDATE en SheltersRepo.Update) espera a esta transacción o ésta lo ve aplicado.
func checkShelter(ctx context.Context, tx *sql.Tx, shelterID int64, kind animals.Kind) error {
	var petType string
	err := tx.QueryRowContext(ctx, `SELECT pet_type FROM shelters WHERE id = $1 FOR SHARE`, shelterID).Scan(&petType)
	if errors.Is(err, sql.ErrNoRows) {
		return animals.ErrInvalidInput
	}
	if err != nil {
		return err
	}
	if !shelters.PetType(petType).Accepts(kind) {
		return animals.ErrInvalidInput
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnimal(row rowScanner) (animals.Animal, error) {
	var a animals.Animal
	var kind string
	if err := row.Scan(
		&a.ID,
		&kind,
		&a.Name,
		&a.Age,
		&a.Sex,
		&a.ShelterID,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, err
	}
	a.Kind = animals.Kind(kind)
	return a, nil
}

// animalErr: el refugio referenciado desapareció (FK) o el registro viola un CHECK.
func animalErr(err error) error {
	if err == nil {
		return nil
	}
	switch code, _ := pgError(err); code {
	case codeForeignKeyViolation, codeCheckViolation:
		return animals.ErrInvalidInput
	}
	return err
}

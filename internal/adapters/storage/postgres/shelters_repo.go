package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/domain/shelters"
)

type SheltersRepo struct {
	db *sql.DB
}

func NewSheltersRepo(db *sql.DB) *SheltersRepo {
	return &SheltersRepo{db: db}
}

const shelterColumns = `id, name, address, info, instruction, pet_type, created_at, updated_at`

func (r *SheltersRepo) Create(ctx context.Context, s shelters.Shelter) (shelters.Shelter, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO shelters (name, address, info, instruction, pet_type, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`,
		s.Name,
		s.Address,
		s.Info,
		s.Instruction,
		string(s.PetType),
		s.CreatedAt,
		s.UpdatedAt,
	).Scan(&s.ID)
	if err != nil {
		return shelters.Shelter{}, err
	}
	return s, nil
}

func (r *SheltersRepo) GetByID(ctx context.Context, id int64) (shelters.Shelter, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+shelterColumns+` FROM shelters WHERE id = $1`, id)
	return scanShelter(row)
}

// Update bloquea la fila del refugio mientras corre mutate y valida el pet type
// contra los animales que ya están adentro, en la misma transacción.
func (r *SheltersRepo) Update(ctx context.Context, id int64, mutate func(*shelters.Shelter) error) (shelters.Shelter, error) {
	var out shelters.Shelter
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `SELECT `+shelterColumns+` FROM shelters WHERE id = $1 FOR UPDATE`, id)
		s, err := scanShelter(row)
		if err != nil {
			return err
		}
		if err := mutate(&s); err != nil {
			return err
		}
		kinds, err := kindsInShelter(ctx, tx, id)
		if err != nil {
			return err
		}
		for _, k := range kinds {
			if !s.PetType.Accepts(k) {
				return shelters.ErrConflict
			}
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE shelters
			SET
				name = $2,
				address = $3,
				info = $4,
				instruction = $5,
				pet_type = $6,
				updated_at = $7
			WHERE id = $1
		`,
			id,
			s.Name,
			s.Address,
			s.Info,
			s.Instruction,
			string(s.PetType),
			s.UpdatedAt,
		)
		if err != nil {
			return err
		}
		s.ID = id
		out = s
		return nil
	})
	if err != nil {
		return shelters.Shelter{}, err
	}
	return out, nil
}

func (r *SheltersRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM shelters WHERE id = $1`, id)
	if err != nil {
		// quedan animales en el refugio
		if code, _ := pgError(err); code == codeForeignKeyViolation {
			return shelters.ErrConflict
		}
		return err
	}
	return nil
}

func (r *SheltersRepo) List(ctx context.Context) ([]shelters.Shelter, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+shelterColumns+` FROM shelters ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]shelters.Shelter, 0)
	for rows.Next() {
		s, err := scanShelter(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func kindsInShelter(ctx context.Context, tx *sql.Tx, shelterID int64) ([]animals.Kind, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT DISTINCT kind FROM animals WHERE shelter_id = $1
	`, shelterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Kind, 0, 2)
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		out = append(out, animals.Kind(k))
	}
	return out, rows.Err()
}

func scanShelter(row rowScanner) (shelters.Shelter, error) {
	var s shelters.Shelter
	var petType string
	if err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Address,
		&s.Info,
		&s.Instruction,
		&petType,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return shelters.Shelter{}, shelters.ErrNotFound
		}
		return shelters.Shelter{}, err
	}
	s.PetType = shelters.PetType(petType)
	return s, nil
}

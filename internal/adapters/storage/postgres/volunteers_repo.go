package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-shelter/internal/domain/volunteers"
)

type VolunteersRepo struct {
	db *sql.DB
}

func NewVolunteersRepo(db *sql.DB) *VolunteersRepo {
	return &VolunteersRepo{db: db}
}

const volunteerColumns = `chat_id, name, age, sex, created_at, updated_at`

func (r *VolunteersRepo) Create(ctx context.Context, v volunteers.Volunteer) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO volunteers (chat_id, name, age, sex, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		v.ChatID,
		v.Name,
		v.Age,
		v.Sex,
		v.CreatedAt,
		v.UpdatedAt,
	)
	if err != nil {
		if code, _ := pgError(err); code == codeUniqueViolation {
			return volunteers.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *VolunteersRepo) GetByChatID(ctx context.Context, chatID string) (volunteers.Volunteer, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+volunteerColumns+` FROM volunteers WHERE chat_id = $1`, chatID)
	return scanVolunteer(row)
}

func (r *VolunteersRepo) Update(ctx context.Context, chatID string, mutate func(*volunteers.Volunteer) error) (volunteers.Volunteer, error) {
	var out volunteers.Volunteer
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `SELECT `+volunteerColumns+` FROM volunteers WHERE chat_id = $1 FOR UPDATE`, chatID)
		v, err := scanVolunteer(row)
		if err != nil {
			return err
		}
		if err := mutate(&v); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE volunteers
			SET name = $2, age = $3, sex = $4, updated_at = $5
			WHERE chat_id = $1
		`, chatID, v.Name, v.Age, v.Sex, v.UpdatedAt)
		if err != nil {
			return err
		}
		v.ChatID = chatID
		out = v
		return nil
	})
	if err != nil {
		return volunteers.Volunteer{}, err
	}
	return out, nil
}

func (r *VolunteersRepo) Delete(ctx context.Context, chatID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM volunteers WHERE chat_id = $1`, chatID)
	return err
}

func (r *VolunteersRepo) List(ctx context.Context) ([]volunteers.Volunteer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+volunteerColumns+` FROM volunteers ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]volunteers.Volunteer, 0)
	for rows.Next() {
		v, err := scanVolunteer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func scanVolunteer(row rowScanner) (volunteers.Volunteer, error) {
	var v volunteers.Volunteer
	if err := row.Scan(
		&v.ChatID,
		&v.Name,
		&v.Age,
		&v.Sex,
		&v.CreatedAt,
		&v.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return volunteers.Volunteer{}, volunteers.ErrNotFound
		}
		return volunteers.Volunteer{}, err
	}
	return v, nil
}

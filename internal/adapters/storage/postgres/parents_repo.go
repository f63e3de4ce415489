package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pet-shelter/internal/domain/parents"
)

type ParentsRepo struct {
	db *sql.DB
}

func NewParentsRepo(db *sql.DB) *ParentsRepo {
	return &ParentsRepo{db: db}
}

const parentColumns = `
	chat_id, user_name,
	name, age, sex,
	animal_id, report_date, probation, probation_started_at,
	created_at, updated_at`

func (r *ParentsRepo) Create(ctx context.Context, p parents.Parent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO parents (
			chat_id, user_name,
			name, age, sex,
			animal_id, report_date, probation, probation_started_at,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		p.ChatID,
		nullString(p.UserName),
		p.Name,
		p.Age,
		p.Sex,
		nullInt64(p.AnimalID),
		nullTime(p.ReportDate),
		string(p.Probation),
		nullTime(p.ProbationStartedAt),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return parentErr(err)
}

func (r *ParentsRepo) GetByChatID(ctx context.Context, chatID string) (parents.Parent, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+parentColumns+` FROM parents WHERE chat_id = $1`, chatID)
	return scanParent(row)
}

func (r *ParentsRepo) GetByUserName(ctx context.Context, userName string) (parents.Parent, error) {
	if userName == "" {
		return parents.Parent{}, parents.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+parentColumns+` FROM parents WHERE user_name = $1`, userName)
	return scanParent(row)
}

// Update carga la fila con FOR UPDATE, aplica mutate y escribe en la misma transacción.
// El índice único sobre animal_id resuelve asignaciones concurrentes del mismo animal.
func (r *ParentsRepo) Update(ctx context.Context, chatID string, mutate func(*parents.Parent) error) (parents.Parent, error) {
	var out parents.Parent
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `SELECT `+parentColumns+` FROM parents WHERE chat_id = $1 FOR UPDATE`, chatID)
		p, err := scanParent(row)
		if err != nil {
			return err
		}
		if err := mutate(&p); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE parents
			SET
				user_name = $2,
				name = $3,
				age = $4,
				sex = $5,
				animal_id = $6,
				report_date = $7,
				probation = $8,
				probation_started_at = $9,
				updated_at = $10
			WHERE chat_id = $1
		`,
			chatID,
			nullString(p.UserName),
			p.Name,
			p.Age,
			p.Sex,
			nullInt64(p.AnimalID),
			nullTime(p.ReportDate),
			string(p.Probation),
			nullTime(p.ProbationStartedAt),
			p.UpdatedAt,
		)
		if err != nil {
			return parentErr(err)
		}
		p.ChatID = chatID
		out = p
		return nil
	})
	if err != nil {
		return parents.Parent{}, err
	}
	return out, nil
}

func (r *ParentsRepo) Delete(ctx context.Context, chatID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM parents WHERE chat_id = $1`, chatID)
	return err
}

func (r *ParentsRepo) List(ctx context.Context) ([]parents.Parent, error) {
	return r.query(ctx, `SELECT `+parentColumns+` FROM parents ORDER BY seq ASC`)
}

func (r *ParentsRepo) ListByReportDate(ctx context.Context, day time.Time) ([]parents.Parent, error) {
	return r.query(ctx, `
		SELECT `+parentColumns+`
		FROM parents
		WHERE report_date = $1::date
		ORDER BY seq ASC
	`, parents.Day(day).Format(time.DateOnly))
}

// ChatIDFor resuelve el alias de chat de un adoptante a partir de su user name.
func (r *ParentsRepo) ChatIDFor(ctx context.Context, userName string) (string, error) {
	var chatID string
	err := r.db.QueryRowContext(ctx, `SELECT chat_id FROM parents WHERE user_name = $1`, userName).Scan(&chatID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", parents.ErrNotFound
	}
	return chatID, err
}

func (r *ParentsRepo) query(ctx context.Context, q string, args ...any) ([]parents.Parent, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]parents.Parent, 0)
	for rows.Next() {
		p, err := scanParent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanParent(row rowScanner) (parents.Parent, error) {
	var (
		p         parents.Parent
		userName  sql.NullString
		animalID  sql.NullInt64
		report    sql.NullTime
		probation string
		started   sql.NullTime
	)
	if err := row.Scan(
		&p.ChatID,
		&userName,
		&p.Name,
		&p.Age,
		&p.Sex,
		&animalID,
		&report,
		&probation,
		&started,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return parents.Parent{}, parents.ErrNotFound
		}
		return parents.Parent{}, err
	}

	p.UserName = userName.String
	p.AnimalID = int64Ptr(animalID)
	p.ReportDate = timePtr(report, true)
	p.Probation = parents.ProbationStatus(probation)
	p.ProbationStartedAt = timePtr(started, false)
	return p, nil
}

// parentErr traduce violaciones de constraints:
// alias o user name repetido => ErrDuplicate; animal ya asignado => ErrConflict;
// animal inexistente (FK) => ErrNotFound.
func parentErr(err error) error {
	if err == nil {
		return nil
	}
	code, constraint := pgError(err)
	switch code {
	case codeUniqueViolation:
		if constraint == "parents_animal_id_key" {
			return parents.ErrConflict
		}
		return parents.ErrDuplicate
	case codeForeignKeyViolation:
		return parents.ErrNotFound
	case codeCheckViolation:
		return parents.ErrInvalidInput
	}
	return err
}

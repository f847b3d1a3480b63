package applications

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, app Application) error {
	const query = `
INSERT INTO applications (id, candidate_id, job_id, status, notes, applied_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now())`
	_, err := r.DB.ExecContext(ctx, query,
		app.ID,
		app.CandidateID,
		app.JobID,
		app.Status,
		nullableNotes(app.Notes),
		app.AppliedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, applicationID string) (Application, error) {
	const query = `
SELECT id, candidate_id, job_id, status, notes, applied_at, updated_at
FROM applications
WHERE id = $1
LIMIT 1`
	var app Application
	var notes sql.NullString
	err := r.DB.QueryRowContext(ctx, query, applicationID).Scan(
		&app.ID,
		&app.CandidateID,
		&app.JobID,
		&app.Status,
		&notes,
		&app.AppliedAt,
		&app.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	app.Notes = notes.String
	return app, nil
}

func (r *PGRepo) ListByCandidate(ctx context.Context, candidateID string) ([]Application, error) {
	const query = `
SELECT id, candidate_id, job_id, status, notes, applied_at, updated_at
FROM applications
WHERE candidate_id = $1
ORDER BY applied_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Application{}
	for rows.Next() {
		var app Application
		var notes sql.NullString
		if err := rows.Scan(&app.ID, &app.CandidateID, &app.JobID, &app.Status, &notes, &app.AppliedAt, &app.UpdatedAt); err != nil {
			return nil, err
		}
		app.Notes = notes.String
		out = append(out, app)
	}
	return out, rows.Err()
}

func (r *PGRepo) UpdateStatus(ctx context.Context, applicationID, status, notes string) error {
	const query = `
UPDATE applications
SET status = $2, notes = $3, updated_at = now()
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, applicationID, status, nullableNotes(notes))
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func nullableNotes(value string) any {
	if value == "" {
		return nil
	}
	return value
}

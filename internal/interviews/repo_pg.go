package interviews

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, iv Interview) error {
	const query = `
INSERT INTO interviews (id, application_id, candidate_id, job_id, interviewer_name, scheduled_date, status, notes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.ExecContext(ctx, query,
		iv.ID,
		iv.ApplicationID,
		iv.CandidateID,
		iv.JobID,
		iv.InterviewerName,
		iv.ScheduledDate,
		iv.Status,
		nullableText(iv.Notes),
		iv.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, interviewID string) (Interview, error) {
	const query = `
SELECT id, application_id, candidate_id, job_id, interviewer_name, scheduled_date, status, notes, created_at
FROM interviews
WHERE id = $1
LIMIT 1`
	iv, err := scanInterview(r.DB.QueryRowContext(ctx, query, interviewID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Interview{}, ErrNotFound
		}
		return Interview{}, err
	}
	return iv, nil
}

func (r *PGRepo) List(ctx context.Context) ([]Interview, error) {
	const query = `
SELECT id, application_id, candidate_id, job_id, interviewer_name, scheduled_date, status, notes, created_at
FROM interviews
ORDER BY scheduled_date DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Interview{}
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, rows.Err()
}

func (r *PGRepo) UpdateStatus(ctx context.Context, interviewID, status, notes string) error {
	const query = `
UPDATE interviews
SET status = $2, notes = $3
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, interviewID, status, nullableText(notes))
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInterview(row rowScanner) (Interview, error) {
	var iv Interview
	var notes sql.NullString
	err := row.Scan(
		&iv.ID,
		&iv.ApplicationID,
		&iv.CandidateID,
		&iv.JobID,
		&iv.InterviewerName,
		&iv.ScheduledDate,
		&iv.Status,
		&notes,
		&iv.CreatedAt,
	)
	if err != nil {
		return Interview{}, err
	}
	iv.Notes = notes.String
	return iv, nil
}

func nullableText(value string) any {
	if value == "" {
		return nil
	}
	return value
}

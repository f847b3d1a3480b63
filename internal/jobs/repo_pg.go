package jobs

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, job Job) error {
	const query = `
INSERT INTO jobs (id, title, department, location, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		job.ID,
		job.Title,
		nullable(job.Department),
		nullable(job.Location),
		job.Status,
		job.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, jobID string) (Job, error) {
	const query = `
SELECT id, title, department, location, status, created_at
FROM jobs
WHERE id = $1
LIMIT 1`
	var job Job
	var department sql.NullString
	var location sql.NullString
	err := r.DB.QueryRowContext(ctx, query, jobID).Scan(
		&job.ID,
		&job.Title,
		&department,
		&location,
		&job.Status,
		&job.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	job.Department = department.String
	job.Location = location.String
	return job, nil
}

func (r *PGRepo) List(ctx context.Context) ([]Job, error) {
	const query = `
SELECT id, title, department, location, status, created_at
FROM jobs
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Job{}
	for rows.Next() {
		var job Job
		var department sql.NullString
		var location sql.NullString
		if err := rows.Scan(&job.ID, &job.Title, &department, &location, &job.Status, &job.CreatedAt); err != nil {
			return nil, err
		}
		job.Department = department.String
		job.Location = location.String
		out = append(out, job)
	}
	return out, rows.Err()
}

func nullable(value string) any {
	if value == "" {
		return nil
	}
	return value
}

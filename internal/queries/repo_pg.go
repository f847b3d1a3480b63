package queries

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, q Query) error {
	const query = `
INSERT INTO queries (id, from_user_id, to_user_id, subject, message, priority, category, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`
	_, err := r.DB.ExecContext(ctx, query,
		q.ID,
		q.FromUserID,
		q.ToUserID,
		q.Subject,
		q.Message,
		q.Priority,
		q.Category,
		q.Status,
		q.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, queryID string) (Query, error) {
	const query = `
SELECT id, from_user_id, to_user_id, subject, message, priority, category, status, created_at, updated_at
FROM queries
WHERE id = $1
LIMIT 1`
	var q Query
	err := r.DB.QueryRowContext(ctx, query, queryID).Scan(
		&q.ID,
		&q.FromUserID,
		&q.ToUserID,
		&q.Subject,
		&q.Message,
		&q.Priority,
		&q.Category,
		&q.Status,
		&q.CreatedAt,
		&q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Query{}, ErrNotFound
		}
		return Query{}, err
	}

	responses, err := r.listResponses(ctx, q.ID)
	if err != nil {
		return Query{}, err
	}
	q.Responses = responses
	return q, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Query, error) {
	const query = `
SELECT id, from_user_id, to_user_id, subject, message, priority, category, status, created_at, updated_at
FROM queries
WHERE from_user_id = $1 OR to_user_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Query{}
	for rows.Next() {
		var q Query
		if err := rows.Scan(&q.ID, &q.FromUserID, &q.ToUserID, &q.Subject, &q.Message, &q.Priority, &q.Category, &q.Status, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		responses, err := r.listResponses(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Responses = responses
	}
	return out, nil
}

func (r *PGRepo) UpdateStatus(ctx context.Context, queryID, status string) error {
	const query = `
UPDATE queries
SET status = $2, updated_at = now()
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, queryID, status)
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

func (r *PGRepo) AddResponse(ctx context.Context, resp Response) error {
	const query = `
INSERT INTO query_responses (id, query_id, responder_id, message, is_read, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		resp.ID,
		resp.QueryID,
		resp.ResponderID,
		resp.Message,
		resp.IsRead,
		resp.CreatedAt,
	)
	return err
}

func (r *PGRepo) MarkResponseRead(ctx context.Context, responseID string) error {
	const query = `
UPDATE query_responses
SET is_read = true
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, responseID)
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

func (r *PGRepo) listResponses(ctx context.Context, queryID string) ([]Response, error) {
	const query = `
SELECT id, query_id, responder_id, message, is_read, created_at
FROM query_responses
WHERE query_id = $1
ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query, queryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Response{}
	for rows.Next() {
		var resp Response
		if err := rows.Scan(&resp.ID, &resp.QueryID, &resp.ResponderID, &resp.Message, &resp.IsRead, &resp.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, rows.Err()
}

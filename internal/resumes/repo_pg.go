package resumes

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, res Resume) error {
	const query = `
INSERT INTO resumes (id, user_id, file_name, mime_type, size_bytes, storage_key, text_content, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, query,
		res.ID,
		res.UserID,
		res.FileName,
		res.MimeType,
		res.SizeBytes,
		res.StorageKey,
		nullableText(res.TextContent),
		res.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, resumeID string) (Resume, error) {
	const query = `
SELECT id, user_id, file_name, mime_type, size_bytes, storage_key, text_content, created_at
FROM resumes
WHERE id = $1`
	var res Resume
	var text sql.NullString
	err := r.DB.QueryRowContext(ctx, query, resumeID).Scan(
		&res.ID,
		&res.UserID,
		&res.FileName,
		&res.MimeType,
		&res.SizeBytes,
		&res.StorageKey,
		&text,
		&res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	res.TextContent = text.String
	return res, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	const query = `
SELECT id, user_id, file_name, mime_type, size_bytes, storage_key, text_content, created_at
FROM resumes
WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		var res Resume
		var text sql.NullString
		if err := rows.Scan(
			&res.ID,
			&res.UserID,
			&res.FileName,
			&res.MimeType,
			&res.SizeBytes,
			&res.StorageKey,
			&text,
			&res.CreatedAt,
		); err != nil {
			return nil, err
		}
		res.TextContent = text.String
		out = append(out, res)
	}
	return out, rows.Err()
}

func nullableText(value string) any {
	if value == "" {
		return nil
	}
	return value
}

package notifications

import (
	"context"
	"database/sql"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, n Notification) error {
	const query = `
INSERT INTO notifications (id, user_id, title, message, type, related_id, is_read, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	var relatedID any
	if n.RelatedID != "" {
		relatedID = n.RelatedID
	}
	_, err := r.DB.ExecContext(ctx, query,
		n.ID,
		n.UserID,
		n.Title,
		n.Message,
		n.Type,
		relatedID,
		n.IsRead,
		n.CreatedAt,
	)
	return err
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Notification, error) {
	const query = `
SELECT id, user_id, title, message, type, related_id, is_read, created_at
FROM notifications
WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Notification{}
	for rows.Next() {
		var n Notification
		var relatedID sql.NullString
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &relatedID, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		n.RelatedID = relatedID.String
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *PGRepo) MarkRead(ctx context.Context, notificationID string) error {
	const query = `
UPDATE notifications
SET is_read = true
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, notificationID)
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

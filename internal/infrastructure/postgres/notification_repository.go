package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/retail-boss/internal/domain"
	"github.com/tu-usuario/retail-boss/internal/domain/entity"
	"github.com/tu-usuario/retail-boss/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación de NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador de avisos. Pasar pool o tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// List lista avisos recientes.
func (r *NotificationRepo) List(limit int) ([]*entity.Notification, error) {
	query := `
		SELECT id, type, title, message, unread, created_at
		FROM notifications ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.Type, &n.Title, &n.Message, &n.Unread, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// MarkRead marca un aviso como leído.
func (r *NotificationRepo) MarkRead(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE notifications SET unread = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: aviso %s", domain.ErrNotFound, id)
	}
	return nil
}

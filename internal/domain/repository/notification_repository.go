package repository

import "github.com/tu-usuario/retail-boss/internal/domain/entity"

// NotificationRepository define el puerto de avisos para el tendero.
type NotificationRepository interface {
	List(limit int) ([]*entity.Notification, error)
	MarkRead(id string) error
}

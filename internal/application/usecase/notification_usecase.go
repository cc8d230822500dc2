package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/retail-boss/internal/application/dto"
	"github.com/tu-usuario/retail-boss/internal/domain"
	"github.com/tu-usuario/retail-boss/internal/domain/entity"
	"github.com/tu-usuario/retail-boss/internal/domain/repository"
)

// NotificationUseCase avisos para el tendero.
type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notificationRepo: notificationRepo}
}

// List lista avisos recientes. Sin base retorna los de demostración.
func (uc *NotificationUseCase) List(ctx context.Context, limit int) (*dto.NotificationListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	out := &dto.NotificationListResponse{Notifications: []dto.NotificationResponse{}}
	if uc.notificationRepo == nil {
		out.Notifications = mockNotifications()
		return out, nil
	}
	rows, err := uc.notificationRepo.List(limit)
	if err != nil {
		return nil, err
	}
	for _, n := range rows {
		out.Notifications = append(out.Notifications, dto.NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			Timestamp: n.CreatedAt,
			Unread:    n.Unread,
		})
	}
	return out, nil
}

// MarkRead marca un aviso como leído.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, id string) error {
	if uc.notificationRepo == nil {
		return domain.ErrStoreUnavailable
	}
	return uc.notificationRepo.MarkRead(id)
}

func mockNotifications() []dto.NotificationResponse {
	now := time.Now()
	rows := []*entity.Notification{
		{ID: "1", Type: "low-stock", Title: "Low Stock Alert", Message: "Parle-G Biscuits running low (8 left)", Unread: true, CreatedAt: now.Add(-30 * time.Minute)},
		{ID: "2", Type: "high-demand", Title: "High Demand", Message: "Maggi Noodles selling fast today", Unread: true, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "3", Type: "festival", Title: "Festival Reminder", Message: "Diwali next week - stock up on sweets", Unread: false, CreatedAt: now.Add(-24 * time.Hour)},
	}
	out := make([]dto.NotificationResponse, 0, len(rows))
	for _, n := range rows {
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			Timestamp: n.CreatedAt,
			Unread:    n.Unread,
		})
	}
	return out
}

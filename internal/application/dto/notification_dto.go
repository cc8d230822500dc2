package dto

import "time"

// NotificationResponse un aviso para el tendero.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Unread    bool      `json:"unread"`
}

// NotificationListResponse lista de avisos.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

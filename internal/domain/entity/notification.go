package entity

import "time"

// Notification es un aviso para el tendero (stock bajo, alta demanda, etc.).
type Notification struct {
	ID        string
	Type      string // low-stock, high-demand, festival
	Title     string
	Message   string
	Unread    bool
	CreatedAt time.Time
}

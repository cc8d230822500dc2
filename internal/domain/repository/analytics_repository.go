package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsRepository define consultas agregadas para dashboard y analítica.
type AnalyticsRepository interface {
	// SalesTotalBetween suma el total facturado en [from, to).
	SalesTotalBetween(from, to time.Time) (decimal.Decimal, error)
	CountProducts() (int, error)
	// CountLowStock cuenta productos con saldo por debajo de su nivel mínimo.
	CountLowStock() (int, error)
}

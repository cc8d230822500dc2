package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Modos de pago aceptados en la venta.
const (
	PaymentModeCash = "cash"
	PaymentModeUPI  = "upi"
	PaymentModeCard = "card"
)

// ValidPaymentMode indica si el modo de pago pertenece al enumerado.
func ValidPaymentMode(mode string) bool {
	switch mode {
	case PaymentModeCash, PaymentModeUPI, PaymentModeCard:
		return true
	}
	return false
}

// SalesBill es la cabecera de una factura de venta. Inmutable una vez creada.
type SalesBill struct {
	ID          string
	BillNumber  string // BILL-YYYYMMDD-NNNN, único
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	Total       decimal.Decimal
	PaymentMode string
	CreatedAt   time.Time
}

// SalesBillItem es una línea de la factura con los valores congelados al
// momento de la venta (nombre, precio y tasa de impuesto). La
// desnormalización es deliberada: cambios posteriores al catálogo no deben
// alterar facturas históricas.
type SalesBillItem struct {
	ID          string
	BillID      string
	ProductID   string
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    decimal.Decimal
	TaxRate     decimal.Decimal
	LineTotal   decimal.Decimal
}

package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrStockConflict     = errors.New("conflicto de stock: otro proceso modificó el saldo")
	ErrStoreUnavailable  = errors.New("base de datos no configurada")
)

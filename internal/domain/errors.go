package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("registro no encontrado")
	ErrDuplicate          = errors.New("el customer_id ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrCanceled           = errors.New("comando cancelado por el operador")
	ErrStorageUnavailable = errors.New("almacenamiento no disponible")
	ErrUnknownField       = errors.New("campo de cliente desconocido")
)

package e

import "fmt"

var (
	// 404 Not Found — тексты совпадают с публичным контрактом API
	ErrNoProducts      = fmt.Errorf("No se encontraron productos.")
	ErrProductNotFound = fmt.Errorf("No se encontró producto con ese ID.")

	// 500 Internal Server Error — обобщённые сообщения по операциям
	ErrProductInsert = fmt.Errorf("No se pudo agregar el producto.")
	ErrProductUpdate = fmt.Errorf("No se pudo editar el producto.")
	ErrProductDelete = fmt.Errorf("No se pudo eliminar el producto.")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

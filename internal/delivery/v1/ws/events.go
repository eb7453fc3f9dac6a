package ws

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Имена событий канала реального времени. Контракт унаследован от клиентов,
// поэтому имена фиксированы.
const (
	// сервер → клиент: полный список товаров
	EventListaProductos = "listaProductos"
	// клиент → сервер: новый товар
	EventNuevoProducto = "nuevoProducto"
	// клиент → сервер: новое сообщение; сервер → клиент: полный журнал
	EventNuevoMensaje = "nuevoMensaje"
)

// Envelope — обёртка любого события канала в обе стороны.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// newProductData — полезная нагрузка события nuevoProducto.
type newProductData struct {
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Thumbnail string          `json:"thumbnail"`
}

// newMessageData — полезная нагрузка входящего события nuevoMensaje.
type newMessageData struct {
	Email string `json:"email"`
	Texto string `json:"texto"`
	Fecha string `json:"fecha"`
}

// MarshalEnvelope упаковывает событие с данными в wire-формат канала.
func MarshalEnvelope(event string, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Envelope{Event: event, Data: raw})
}

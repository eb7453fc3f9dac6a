package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/shopspring/decimal"
)

// ErrorResponse — тело ошибки публичного API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// productPayload — присланные клиентом поля товара.
// Поля не валидируются; decimal принимает цену и числом, и строкой.
type productPayload struct {
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Thumbnail string          `json:"thumbnail"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}

// ToHTTPResponse сопоставляет ошибку операции со статусом и публичным сообщением.
// Всё, что не NotFound, сворачивается в обобщённое сообщение операции:
// внутренние детали наружу не выходят.
func ToHTTPResponse(err error, fallback error) (int, string) {
	switch {
	case errors.Is(err, e.ErrNoProducts):
		return http.StatusNotFound, e.ErrNoProducts.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	default:
		return http.StatusInternalServerError, fallback.Error()
	}
}

func WriteError(w http.ResponseWriter, err error, fallback error) {
	code, msg := ToHTTPResponse(err, fallback)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func parseProductPayload(r *http.Request) (*usecase.SaveProductReq, error) {
	var payload productPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return usecase.NewSaveProductReq(payload.Title, payload.Price, payload.Thumbnail), nil
}

package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Контракт API отдаёт цену как JSON-число, без кавычек
	decimal.MarshalJSONWithoutQuotes = true
}

// Product описывает товар каталога
type Product struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"` // numeric(10,2) в хранилище
	Thumbnail string          `json:"thumbnail"`
}

// NewProduct создаёт товар с новым уникальным идентификатором.
// Поля не валидируются и сохраняются как есть.
func NewProduct(title string, price decimal.Decimal, thumbnail string) *Product {
	return &Product{
		ID:        uuid.NewString(),
		Title:     title,
		Price:     price,
		Thumbnail: thumbnail,
	}
}

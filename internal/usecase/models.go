package usecase

import "github.com/shopspring/decimal"

// CATALOG USECASE

// SaveProductReq — пользовательские поля товара для создания или обновления.
// Значения не валидируются и передаются в хранилище как есть.
type SaveProductReq struct {
	Title     string
	Price     decimal.Decimal
	Thumbnail string
}

// CHAT USECASE

// NewMessageReq — входящее сообщение чата.
type NewMessageReq struct {
	Email string
	Texto string
	Fecha string
}

// MAPPERS

func NewSaveProductReq(title string, price decimal.Decimal, thumbnail string) *SaveProductReq {
	return &SaveProductReq{
		Title:     title,
		Price:     price,
		Thumbnail: thumbnail,
	}
}

func NewNewMessageReq(email, texto, fecha string) *NewMessageReq {
	return &NewMessageReq{
		Email: email,
		Texto: texto,
		Fecha: fecha,
	}
}

package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
)

type ProductRepository interface {
	SelectAll(ctx context.Context) ([]domain.Product, error)
	SelectByID(ctx context.Context, id string) ([]domain.Product, error)
	Insert(ctx context.Context, product *domain.Product) error
	// Update возвращает число затронутых строк.
	Update(ctx context.Context, id string, product *domain.Product) (int64, error)
	// Delete возвращает число затронутых строк.
	Delete(ctx context.Context, id string) (int64, error)
}

type MessageRepository interface {
	SelectAll(ctx context.Context) ([]domain.Message, error)
	Insert(ctx context.Context, message *domain.Message) error
}

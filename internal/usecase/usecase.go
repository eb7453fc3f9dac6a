package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
)

type CatalogUC interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) ([]domain.Product, error)
	Create(ctx context.Context, req *SaveProductReq) (*domain.Product, error)
	UpdateByID(ctx context.Context, id string, req *SaveProductReq) (*domain.Product, error)
	DeleteByID(ctx context.Context, id string) error
}

type ChatUC interface {
	ListMessages(ctx context.Context) ([]domain.Message, error)
	AppendMessage(ctx context.Context, req *NewMessageReq) error
}

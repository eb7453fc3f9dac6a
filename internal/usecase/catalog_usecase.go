package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
)

// CatalogUseCase реализует бизнес-логику каталога товаров.
// Кэша нет: каждое чтение — свежий запрос к хранилищу.
type CatalogUseCase struct {
	productRepo ProductRepository
	logger      logger.Logger
}

func NewCatalogUC(productRepo ProductRepository, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// List возвращает все товары каталога.
// Пустая коллекция считается отсутствием результата (e.ErrNoProducts) —
// осознанная политика публичного контракта, не бага.
func (c *CatalogUseCase) List(ctx context.Context) ([]domain.Product, error) {
	const op = "CatalogUseCase.List"

	products, err := c.productRepo.SelectAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(products) == 0 {
		return nil, e.ErrNoProducts
	}

	return products, nil
}

// GetByID возвращает товары с данным идентификатором.
// Хранилище уникальность не гарантирует: несколько совпадений возвращаются как есть.
func (c *CatalogUseCase) GetByID(ctx context.Context, id string) ([]domain.Product, error) {
	const op = "CatalogUseCase.GetByID"

	products, err := c.productRepo.SelectByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(products) == 0 {
		return nil, e.ErrProductNotFound
	}

	return products, nil
}

// Create собирает товар через фабрику сущностей и сохраняет его.
func (c *CatalogUseCase) Create(ctx context.Context, req *SaveProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.Create"

	product := domain.NewProduct(req.Title, req.Price, req.Thumbnail)

	if err := c.productRepo.Insert(ctx, product); err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// UpdateByID перезаписывает поля строк(и) с данным идентификатором.
// Успех определяется числом затронутых строк; при успехе возвращаются присланные поля.
func (c *CatalogUseCase) UpdateByID(ctx context.Context, id string, req *SaveProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.UpdateByID"

	product := &domain.Product{
		ID:        id,
		Title:     req.Title,
		Price:     req.Price,
		Thumbnail: req.Thumbnail,
	}

	affected, err := c.productRepo.Update(ctx, id, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if affected == 0 {
		return nil, e.ErrProductNotFound
	}

	return product, nil
}

// DeleteByID удаляет строки с данным идентификатором.
func (c *CatalogUseCase) DeleteByID(ctx context.Context, id string) error {
	const op = "CatalogUseCase.DeleteByID"

	affected, err := c.productRepo.Delete(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}

	if affected == 0 {
		return e.ErrProductNotFound
	}

	return nil
}

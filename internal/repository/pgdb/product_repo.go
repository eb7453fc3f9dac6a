package pgdb

import (
	"context"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

func NewProductRepo(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// SelectAll возвращает все строки таблицы productos.
func (p *ProductRepo) SelectAll(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, title, price, thumbnail
		FROM productos
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// SelectByID возвращает строки с данным идентификатором.
// Уникальность id здесь не утверждается: сколько строк совпало, столько и вернётся.
func (p *ProductRepo) SelectByID(ctx context.Context, id string) ([]domain.Product, error) {
	query := `
		SELECT id, title, price, thumbnail
		FROM productos
		WHERE id = $1
	`

	rows, err := p.pool.Query(ctx, query, id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// Insert сохраняет новый товар.
func (p *ProductRepo) Insert(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO productos (id, title, price, thumbnail)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := p.pool.Exec(ctx, query, product.ID, product.Title, product.Price, product.Thumbnail); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Update перезаписывает поля строк(и) с данным идентификатором и возвращает число затронутых строк.
func (p *ProductRepo) Update(ctx context.Context, id string, product *domain.Product) (int64, error) {
	query := `
		UPDATE productos
		SET title = $1, price = $2, thumbnail = $3
		WHERE id = $4
	`

	tag, err := p.pool.Exec(ctx, query, product.Title, product.Price, product.Thumbnail, id)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return tag.RowsAffected(), nil
}

// Delete удаляет строки с данным идентификатором и возвращает число затронутых строк.
func (p *ProductRepo) Delete(ctx context.Context, id string) (int64, error) {
	query := `
		DELETE FROM productos
		WHERE id = $1
	`

	tag, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return tag.RowsAffected(), nil
}

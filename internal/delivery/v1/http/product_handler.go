package http

import (
	"fmt"
	"net/http"

	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewProductHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Список товаров
//	@Description	Возвращает все товары каталога. Пустой каталог считается 404.
//	@Tags			productos
//	@Produce		json
//	@Success		200	{array}		domain.Product
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/productos/listar [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.catalogUsecase.List(r.Context())
	if err != nil {
		p.logger.Warnf("list products: %s", err.Error())
		WriteError(w, err, e.ErrNoProducts)
		return
	}

	WriteSuccess(w, http.StatusOK, products)
}

// getProductByID
//
//	@Summary		Товары по идентификатору
//	@Description	Возвращает товары с данным id; совпадений может быть несколько.
//	@Tags			productos
//	@Produce		json
//	@Param			id	path		string	true	"Идентификатор товара"
//	@Success		200	{array}		domain.Product
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/productos/listar/{id} [get]
func (p *ProductHandler) getProductByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	products, err := p.catalogUsecase.GetByID(r.Context(), id)
	if err != nil {
		p.logger.Warnf("get product %s: %s", id, err.Error())
		WriteError(w, err, e.ErrProductNotFound)
		return
	}

	WriteSuccess(w, http.StatusOK, products)
}

// saveProduct
//
//	@Summary		Сохранение товара
//	@Description	Создаёт товар со сгенерированным id и возвращает его.
//	@Tags			productos
//	@Accept			json
//	@Produce		json
//	@Param			producto	body		productPayload	true	"Поля товара"
//	@Success		200			{object}	domain.Product
//	@Failure		500			{object}	ErrorResponse
//	@Router			/productos/guardar [post]
func (p *ProductHandler) saveProduct(w http.ResponseWriter, r *http.Request) {
	req, err := parseProductPayload(r)
	if err != nil {
		p.logger.Warnf("save product: decode body: %s", err.Error())
		WriteError(w, err, e.ErrProductInsert)
		return
	}

	product, err := p.catalogUsecase.Create(r.Context(), req)
	if err != nil {
		p.logger.Warnf("save product: %s", err.Error())
		WriteError(w, err, e.ErrProductInsert)
		return
	}

	WriteSuccess(w, http.StatusOK, product)
}

// updateProduct
//
//	@Summary		Обновление товара
//	@Description	Перезаписывает поля товара по id и возвращает присланные значения.
//	@Tags			productos
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string			true	"Идентификатор товара"
//	@Param			producto	body		productPayload	true	"Новые поля товара"
//	@Success		200			{object}	domain.Product
//	@Failure		404			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/productos/actualizar/{id} [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	req, err := parseProductPayload(r)
	if err != nil {
		p.logger.Warnf("update product %s: decode body: %s", id, err.Error())
		WriteError(w, err, e.ErrProductUpdate)
		return
	}

	product, err := p.catalogUsecase.UpdateByID(r.Context(), id, req)
	if err != nil {
		p.logger.Warnf("update product %s: %s", id, err.Error())
		WriteError(w, err, e.ErrProductUpdate)
		return
	}

	WriteSuccess(w, http.StatusOK, product)
}

// deleteProduct
//
//	@Summary		Удаление товара
//	@Description	Удаляет товар по id.
//	@Tags			productos
//	@Produce		json
//	@Param			id	path		string	true	"Идентификатор товара"
//	@Success		200	{string}	string
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/productos/borrar/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := p.catalogUsecase.DeleteByID(r.Context(), id); err != nil {
		p.logger.Warnf("delete product %s: %s", id, err.Error())
		WriteError(w, err, e.ErrProductDelete)
		return
	}

	WriteSuccess(w, http.StatusOK, fmt.Sprintf("Objeto id: %s eliminado correctamente", id))
}

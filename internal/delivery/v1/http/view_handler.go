package http

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

// ViewHandler отдаёт серверные страницы: форму добавления товара и список каталога.
type ViewHandler struct {
	catalogUsecase usecase.CatalogUC
	templates      *template.Template
	logger         logger.Logger
}

func NewViewHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *ViewHandler {
	return &ViewHandler{
		catalogUsecase: catalogUsecase,
		templates:      template.Must(template.ParseFS(templatesFS, "templates/*.html")),
		logger:         logger,
	}
}

func (v *ViewHandler) renderForm(w http.ResponseWriter, r *http.Request) {
	if err := v.templates.ExecuteTemplate(w, "formulario.html", nil); err != nil {
		v.logger.Errorf(err, "render formulario")
	}
}

// renderProductList рендерит текущее состояние каталога свежим запросом к хранилищу.
// Пустой каталог здесь рендерится пустой таблицей, в отличие от REST-контракта.
func (v *ViewHandler) renderProductList(w http.ResponseWriter, r *http.Request) {
	products, err := v.catalogUsecase.List(r.Context())
	if err != nil && !errors.Is(err, e.ErrNoProducts) {
		v.logger.Warnf("render product list: %s", err.Error())
		http.Error(w, "error interno", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"listaProductos": products,
	}

	if err := v.templates.ExecuteTemplate(w, "productos.html", data); err != nil {
		v.logger.Errorf(err, "render productos")
	}
}

package http

import (
	"net/http"

	_ "github.com/DRSN-tech/catalog-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// Init регистрирует REST-маршруты каталога, серверные страницы и канал реального времени.
func (r *Router) Init(catalogUC usecase.CatalogUC, realtime http.Handler) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api", func(api chi.Router) {
		prHandler := NewProductHandler(catalogUC, r.logger)
		registerProductRoutes(api, prHandler)
	})

	viewHandler := NewViewHandler(catalogUC, r.logger)
	r.router.Get("/", viewHandler.renderForm)
	r.router.Get("/productos/vista", viewHandler.renderProductList)

	r.router.Handle("/ws", realtime)
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/productos", func(pr chi.Router) {
		pr.Get("/listar", prHandler.listProducts)
		pr.Get("/listar/{id}", prHandler.getProductByID)
		pr.Post("/guardar", prHandler.saveProduct)
		pr.Put("/actualizar/{id}", prHandler.updateProduct)
		pr.Delete("/borrar/{id}", prHandler.deleteProduct)
	})
}

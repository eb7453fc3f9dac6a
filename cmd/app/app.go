// Каталог товаров с журналом чата в реальном времени.
//
//	@title			Catalog Backend API
//	@version		1.0
//	@description	CRUD каталога товаров и канал реального времени для чата.
//	@BasePath		/api
package main

import (
	"github.com/DRSN-tech/catalog-backend/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	app.Run()
}

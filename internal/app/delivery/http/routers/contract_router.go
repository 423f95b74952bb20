package routers

import (
	"plantao-service/internal/app/delivery/http/controllers"
	"plantao-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachContractRoutes(router chi.Router, middlewares *middlewares.Middlewares, contractController *controllers.ContractController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", contractController.List)
	router.Get("/{contractID}", contractController.Get)
	router.Post("/{contractID}/check-in", contractController.CheckIn)
	router.Post("/{contractID}/check-out", contractController.CheckOut)
	router.Post("/{contractID}/cancel", contractController.Cancel)
}

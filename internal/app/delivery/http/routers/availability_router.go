package routers

import (
	"plantao-service/internal/app/delivery/http/controllers"
	"plantao-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, middlewares *middlewares.Middlewares, availabilityController *controllers.AvailabilityController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", availabilityController.List)
	router.Post("/", availabilityController.Submit)
	router.Put("/{slotID}", availabilityController.Update)
	router.Delete("/{slotID}", availabilityController.Delete)
}

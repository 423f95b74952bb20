package routers

import (
	"plantao-service/internal/app/delivery/http/controllers"
	"plantao-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, middlewares *middlewares.Middlewares, dashboardController *controllers.DashboardController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", dashboardController.Summary)
}

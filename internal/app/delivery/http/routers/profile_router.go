package routers

import (
	"plantao-service/internal/app/delivery/http/controllers"
	"plantao-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachProfileRoutes(router chi.Router, middlewares *middlewares.Middlewares, profileController *controllers.ProfileController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", profileController.Get)
	router.Put("/personal", profileController.UpdatePersonal)
	router.Put("/professional", profileController.UpdateProfessional)
	router.Put("/financial", profileController.UpdateFinancial)
	router.Post("/photo", profileController.UploadPhoto)
	router.Post("/face", profileController.EnrollFace)
	router.Post("/documents/finalize", profileController.FinalizeDocuments)
	router.Post("/documents/{key}", profileController.UploadDocument)
}

package routers

import (
	"plantao-service/internal/app/delivery/http/controllers"
	"plantao-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachProposalRoutes(router chi.Router, middlewares *middlewares.Middlewares, proposalController *controllers.ProposalController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", proposalController.List)
	router.Post("/", proposalController.Create)
	router.Get("/matching", proposalController.ListMatching)
	router.Get("/{proposalID}", proposalController.Get)
	router.Post("/{proposalID}/accept", proposalController.Accept)
	router.Post("/{proposalID}/reject", proposalController.Reject)
}

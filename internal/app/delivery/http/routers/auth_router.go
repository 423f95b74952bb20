package routers

import (
	"net/http"
	"plantao-service/internal/app/delivery/http/controllers"
	"plantao-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, limiter func(http.Handler) http.Handler, authController *controllers.AuthController) {
	router.Group(func(r chi.Router) {
		r.Use(limiter)
		r.Post("/register", authController.Register)
		r.Post("/login", authController.Login)
		r.Post("/forgot-password", authController.ForgotPassword)
		r.Post("/reset-password", authController.ResetPassword)
	})

	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
	router.With(middlewares.Authenticate).Get("/me", authController.Me)
}

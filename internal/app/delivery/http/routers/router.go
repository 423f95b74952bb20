package routers

import (
	"fmt"
	"net/http"
	"plantao-service/internal/app/config"
	"plantao-service/internal/app/delivery/http/controllers"
	"plantao-service/internal/app/delivery/http/middlewares"
	"plantao-service/internal/pkg/constvars"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Auth         *controllers.AuthController
	Availability *controllers.AvailabilityController
	Proposal     *controllers.ProposalController
	Contract     *controllers.ContractController
	Profile      *controllers.ProfileController
	Dashboard    *controllers.DashboardController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrls *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	if internalConfig.App.MaxRequests > 0 {
		router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	}

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	authLimiter := newAuthLimiter(internalConfig, middlewares)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authLimiter, ctrls.Auth)
			})

			r.Route("/availability", func(r chi.Router) {
				attachAvailabilityRoutes(r, middlewares, ctrls.Availability)
			})

			r.Route("/proposals", func(r chi.Router) {
				attachProposalRoutes(r, middlewares, ctrls.Proposal)
			})

			r.Route("/contracts", func(r chi.Router) {
				attachContractRoutes(r, middlewares, ctrls.Contract)
			})

			r.Route("/profile", func(r chi.Router) {
				attachProfileRoutes(r, middlewares, ctrls.Profile)
			})

			r.Route("/dashboard", func(r chi.Router) {
				attachDashboardRoutes(r, middlewares, ctrls.Dashboard)
			})
		})
	})
}

// newAuthLimiter throttles the unauthenticated credential endpoints per IP.
func newAuthLimiter(internalConfig *config.InternalConfig, m *middlewares.Middlewares) func(http.Handler) http.Handler {
	perMinute := internalConfig.App.AuthRateLimitPerMinute
	if perMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	blockTime := time.Duration(internalConfig.App.AuthRateLimitBlockTimeInMinutes) * time.Minute
	limiter := middlewares.NewRateLimiter(m.Log, perMinute, time.Minute/time.Duration(perMinute), blockTime)
	return limiter.Limit
}

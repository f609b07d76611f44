package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/greenbites/greenbites-backend/api/controllers"
	"github.com/greenbites/greenbites-backend/api/middleware"
	"github.com/greenbites/greenbites-backend/internal/auth"
	"github.com/greenbites/greenbites-backend/internal/donations"
	"github.com/greenbites/greenbites-backend/internal/messages"
	"github.com/greenbites/greenbites-backend/internal/notifications"
	"github.com/greenbites/greenbites-backend/internal/requests"
	"github.com/greenbites/greenbites-backend/pkg/auth/session"
	"github.com/greenbites/greenbites-backend/pkg/config"
	"github.com/greenbites/greenbites-backend/pkg/db"
	"github.com/greenbites/greenbites-backend/pkg/enums"
	"github.com/greenbites/greenbites-backend/pkg/logger"
	"github.com/greenbites/greenbites-backend/pkg/metrics"
)

// Deps bundles everything the router needs wired in.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             db.Pinger
	SessionManager session.AccessSessionChecker
	HTTPMetrics    *metrics.HTTPMetrics
	Registry       *prometheus.Registry

	AuthService          auth.Service
	DonationsService     donations.Service
	RequestsService      requests.Service
	NotificationsService notifications.Service
	MessagesService      messages.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, logg))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.AuthLogin(deps.AuthService, logg))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionManager, logg))

		r.Get("/ping", controllers.PrivatePing())
		r.Post("/v1/auth/logout", controllers.AuthLogout(deps.AuthService, logg))

		r.Get("/v1/stats", controllers.ImpactStats(deps.DonationsService, deps.RequestsService, logg))

		r.Route("/v1/donations", func(r chi.Router) {
			r.Use(middleware.RequireRole(string(enums.UserRoleDonor), logg))
			r.Get("/", controllers.ListDonations(deps.DonationsService, logg))
			r.Post("/", controllers.CreateDonation(deps.DonationsService, logg))
			r.Post("/{id}/status", controllers.UpdateDonationStatus(deps.DonationsService, logg))
			r.Delete("/{id}", controllers.DeleteDonation(deps.DonationsService, logg))
		})

		r.Route("/v1/requests", func(r chi.Router) {
			r.Use(middleware.RequireRole(string(enums.UserRoleSeeker), logg))
			r.Get("/", controllers.ListRequests(deps.RequestsService, logg))
			r.Post("/", controllers.CreateRequest(deps.RequestsService, logg))
			r.Post("/{id}/status", controllers.UpdateRequestStatus(deps.RequestsService, logg))
			r.Delete("/{id}", controllers.DeleteRequest(deps.RequestsService, logg))
		})

		r.Route("/v1/notifications", func(r chi.Router) {
			r.Get("/", controllers.ListNotifications(deps.NotificationsService, logg))
			r.Post("/{id}/read", controllers.MarkNotificationRead(deps.NotificationsService, logg))
			r.Post("/clear", controllers.ClearNotifications(deps.NotificationsService, logg))
		})

		r.Route("/v1/messages", func(r chi.Router) {
			r.Get("/", controllers.ListMessages(deps.MessagesService, logg))
			r.Post("/{id}/read", controllers.MarkMessageRead(deps.MessagesService, logg))
			r.Delete("/{id}", controllers.DeleteMessage(deps.MessagesService, logg))
		})
	})

	return r
}

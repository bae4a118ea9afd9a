package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"sportlebanon/internal/activity"
	"sportlebanon/internal/admins"
	"sportlebanon/internal/api"
	"sportlebanon/internal/auth"
	"sportlebanon/internal/booking"
	"sportlebanon/internal/field"
	"sportlebanon/internal/moderation"
	"sportlebanon/internal/notify"
	"sportlebanon/internal/owner"
	"sportlebanon/internal/report"
	"sportlebanon/internal/settings"
	"sportlebanon/pkg/config"
)

type Dependencies struct {
	Cfg       config.Config
	DB        *pgxpool.Pool
	Redis     *redis.Client
	Publisher *notify.Publisher
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	metrics := api.NewMetrics()
	r.Use(metrics.Instrument)
	r.Use(api.CORSMiddleware(api.CORSOptions{
		AllowedOrigins: deps.Cfg.AdminAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAgeSeconds:  600,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	adminsRepo := admins.NewRepository(deps.DB)
	authHandlers := auth.Handlers{
		Cfg:    deps.Cfg,
		Admins: adminsRepo,
	}

	settingsStore := settings.Store{Repo: settings.NewRepository(deps.DB)}
	if deps.Redis != nil {
		settingsStore.Cache = settings.NewCache(deps.Redis)
	}

	moderationHandlers := moderation.Handlers{
		DB:        deps.DB,
		Owners:    owner.NewRepository(deps.DB),
		Fields:    field.NewRepository(deps.DB),
		Bookings:  booking.NewRepository(deps.DB),
		Activity:  activity.NewRepository(deps.DB),
		Settings:  settingsStore,
		Publisher: deps.Publisher,
		Metrics:   metrics,
	}
	reportHandlers := report.Handlers{
		Bookings: moderationHandlers.Bookings,
		Owners:   moderationHandlers.Owners,
	}

	// v1
	r.Route("/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandlers.Login)

		// Everything below requires an admin bearer token.
		r.Group(func(r chi.Router) {
			r.Use(api.AdminAuth(deps.Cfg, adminsRepo))

			r.Get("/entities/{kind}", moderationHandlers.List)
			r.Get("/entities/{kind}/{id}", moderationHandlers.Get)
			r.Put("/entities/{kind}/{id}/{action}", moderationHandlers.Transition)

			r.Get("/admin/activity", moderationHandlers.ActivityFeed)

			r.Get("/admin/settings", moderationHandlers.GetSettings)
			r.Put("/admin/settings/commission-rate", moderationHandlers.UpdateCommissionRate)

			r.Get("/admin/reports/bookings.xlsx", reportHandlers.BookingsXLSX)
			r.Get("/admin/reports/owners.xlsx", reportHandlers.OwnersXLSX)
		})
	})

	return r
}

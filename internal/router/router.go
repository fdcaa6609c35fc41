package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"aviation-institute-api/internal/handler"
	"aviation-institute-api/internal/logging"
	"aviation-institute-api/internal/middleware"
	"aviation-institute-api/internal/session"
)

// Config holds everything the router wires together.
type Config struct {
	Handler   *handler.Handler
	Cookies   *session.Codec
	Sessions  session.Store
	Logger    *logging.Logger
	Limiter   *middleware.RateLimiter
	UploadDir string
	Metrics   http.Handler
}

func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(chimw.RedirectSlashes)
	r.Use(middleware.RequestLogger(cfg.Logger))

	// uploaded files are public once stored
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics)
	}

	h := cfg.Handler
	limited := middleware.RateLimit(cfg.Limiter)

	// public surface
	r.With(limited).Post("/api/appointment", h.SubmitAppointment)
	r.With(limited).Post("/api/admin-login", h.Login)
	r.Get("/api/news", h.ListNews)
	r.Get("/api/gallery", h.ListGallery)
	r.Get("/api/about", h.About)

	// privileged surface, all behind the session gate
	r.Group(func(priv chi.Router) {
		priv.Use(middleware.RequireSession(cfg.Cookies, cfg.Sessions))

		priv.Post("/api/admin-logout", h.Logout)
		priv.Get("/api/admins", h.ListAdmins)
		priv.Post("/api/admin-create", h.CreateAdmin)
		priv.Post("/api/admin-changepassword", h.ChangePassword)

		priv.Get("/api/appointments", h.ListAppointments)
		priv.Put("/api/appointment-status/{id}", h.UpdateAppointmentStatus)
		priv.Delete("/api/appointment-delete/{id}", h.DeleteAppointment)

		priv.Post("/api/news", h.CreateNews)
		priv.Delete("/api/news/{id}", h.DeleteNews)

		priv.Post("/api/gallery-upload", h.UploadGalleryPhotos)
		priv.Delete("/api/gallery/{id}", h.DeleteGalleryPhoto)

		priv.Put("/api/about", h.UpdateAbout)
	})

	return r
}
